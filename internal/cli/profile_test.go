package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	p, err := LoadProfile(writeProfile(t, "point_count: 128\nlegacy_orientation: true\n"))
	require.NoError(t, err)
	assert.Equal(t, 128, p.PointCount)
	assert.True(t, p.LegacyOrientation)
	assert.False(t, p.Verbose)
}

func TestLoadProfile_UnknownField(t *testing.T) {
	_, err := LoadProfile(writeProfile(t, "point_cout: 128\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field point_cout not found")
}

func TestLoadProfile_NegativePointCount(t *testing.T) {
	_, err := LoadProfile(writeProfile(t, "point_count: -3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "point_count must not be negative")
}

func TestLoadProfile_Missing(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
