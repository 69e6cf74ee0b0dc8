package cmd

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildRegistryDefaults(t *testing.T) {
	g := &Globals{}
	reg, err := g.BuildRegistry(discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 5, reg.Protocol())
}

func TestBuildRegistryProtocolFlag(t *testing.T) {
	g := &Globals{Protocol: 6}
	reg, err := g.BuildRegistry(discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 6, reg.Protocol())

	g = &Globals{Protocol: 7}
	_, err = g.BuildRegistry(discardLogger())
	assert.Error(t, err)
}

func TestBuildRegistryFromProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"protocolMajor": 6, "layers": 8}`), 0o644))

	g := &Globals{Profile: path}
	reg, err := g.BuildRegistry(discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 6, reg.Protocol())
	assert.Equal(t, 8, reg.Context().Layers)

	// Explicit protocol flag overrides the profile.
	g = &Globals{Profile: path, Protocol: 5}
	reg, err = g.BuildRegistry(discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 5, reg.Protocol())
}

func TestConfigTemplateCoversGlobals(t *testing.T) {
	root := buildMapFromStruct(reflect.TypeOf(Globals{}))

	log, ok := root["log"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "info", log["level"])
	assert.Equal(t, "", log["file"])
	assert.Contains(t, root, "protocol")
	assert.Contains(t, root, "profile")
}

func TestConfigInitWritesTemplate(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "config.json")
	c := &ConfigInit{Format: "json", Output: dest}
	require.NoError(t, c.Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var root map[string]any
	require.NoError(t, json.Unmarshal(data, &root))
	assert.Contains(t, root, "log")

	// A second run refuses to overwrite without --force.
	assert.Error(t, c.Run())
	c.Force = true
	assert.NoError(t, c.Run())
}
