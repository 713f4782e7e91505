package cli

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/track"
)

func TestDocumentRoundtrip(t *testing.T) {
	line := track.Polyline{
		{Position: track.Pt(0, 0, 0), Tilt: 0},
		{Position: track.Pt(1, 2, 3), Tilt: 0.25},
	}

	doc := NewDocument(line)
	assert.Equal(t, DocumentKind, doc.Kind)

	got, err := doc.Polyline()
	require.NoError(t, err)
	assert.Equal(t, line, got)
}

func TestDocument_WriteAndLoad(t *testing.T) {
	line := track.Polyline{{Position: track.Pt(0, -1.5, 2), Tilt: 0.5}}

	buf := &bytes.Buffer{}
	require.NoError(t, NewDocument(line).Write(buf))

	want := `kind: track/polyline
points:
  - x: 0
    y: -1.5
    z: 2
    tilt: 0.5
`
	assert.Equal(t, want, buf.String())

	path := filepath.Join(t.TempDir(), "curve.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)
	got, err := doc.Polyline()
	require.NoError(t, err)
	assert.Equal(t, line, got)
}

func TestDocument_WrongKind(t *testing.T) {
	doc := &Document{Kind: "track/mesh", Points: []DocumentPoint{{}}}
	_, err := doc.Polyline()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "not a curve document")
}

func TestDocument_NoPoints(t *testing.T) {
	doc := &Document{Kind: DocumentKind}
	_, err := doc.Polyline()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "no points")
}

func TestDocument_NonFinitePoint(t *testing.T) {
	doc := &Document{
		Kind: DocumentKind,
		Points: []DocumentPoint{
			{X: 0, Y: 0, Z: 0, Tilt: 0},
			{X: math.NaN(), Y: 0, Z: 0, Tilt: 0},
		},
	}
	_, err := doc.Polyline()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "point 1 is not finite")
}

func TestLoadDocument_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: track/polyline\npoints: 7\n"), 0o644))

	_, err := LoadDocument(path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLoadDocument_UnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.yaml")
	content := "kind: track/polyline\npoints:\n  - x: 0\n    y: 0\n    z: 0\n    roll: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field roll not found")
}
