package cli

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/track"
)

// DocumentKind identifies curve documents among other YAML files.
const DocumentKind = "track/polyline"

// Document is the YAML form of a curve: a polyline through z-up curve
// space with a tilt angle in radians at every point.
type Document struct {
	Kind   string          `yaml:"kind"`
	Points []DocumentPoint `yaml:"points"`
}

// DocumentPoint is one control point of the serialized polyline.
type DocumentPoint struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Z    float64 `yaml:"z"`
	Tilt float64 `yaml:"tilt"`
}

// NewDocument converts a polyline to its document form.
func NewDocument(line track.Polyline) *Document {
	doc := &Document{
		Kind:   DocumentKind,
		Points: make([]DocumentPoint, len(line)),
	}
	for i, cp := range line {
		doc.Points[i] = DocumentPoint{
			X:    cp.Position.X,
			Y:    cp.Position.Y,
			Z:    cp.Position.Z,
			Tilt: cp.Tilt,
		}
	}
	return doc
}

// LoadDocument reads and parses a curve document from a YAML file.
// Unknown fields are rejected so typos surface instead of dropping data.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "reading curve document", err)
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, WrapExitError(ExitCommandError, "parsing curve document", err)
	}
	return &doc, nil
}

// Polyline validates the document and converts it to a polyline.
func (d *Document) Polyline() (track.Polyline, error) {
	if d.Kind != DocumentKind {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("not a curve document: kind %q, want %q", d.Kind, DocumentKind))
	}
	if len(d.Points) == 0 {
		return nil, NewExitError(ExitCommandError, "curve document has no points")
	}
	line := make(track.Polyline, len(d.Points))
	for i, p := range d.Points {
		for _, v := range [...]float64{p.X, p.Y, p.Z, p.Tilt} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, NewExitError(ExitCommandError, fmt.Sprintf("curve document point %d is not finite", i))
			}
		}
		line[i] = track.CurvePoint{
			Position: track.Pt(p.X, p.Y, p.Z),
			Tilt:     p.Tilt,
		}
	}
	return line, nil
}

// Write encodes the document as YAML.
func (d *Document) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return WrapExitError(ExitFailure, "encoding curve document", err)
	}
	return enc.Close()
}
