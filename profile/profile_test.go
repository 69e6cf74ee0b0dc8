package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyforge-kb/keyforge/keycodes"
	"github.com/keyforge-kb/keyforge/profile"
)

func TestLoadFormats(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"device.json": `{
  "protocolMajor": 6,
  "layers": 8,
  "macroCount": 4,
  "tapDanceCount": 2,
  "midi": "basic",
  "supportedFeatures": ["rgblight"],
  "customKeycodes": [{"name": "KC_FNLOCK", "title": "Fn Lock", "shortName": "FnLk"}]
}`,
		"device.yaml": `protocolMajor: 6
layers: 8
macroCount: 4
tapDanceCount: 2
midi: basic
supportedFeatures:
  - rgblight
customKeycodes:
  - name: KC_FNLOCK
    title: Fn Lock
    shortName: FnLk
`,
		"device.toml": `protocolMajor = 6
layers = 8
macroCount = 4
tapDanceCount = 2
midi = "basic"
supportedFeatures = ["rgblight"]

[[customKeycodes]]
name = "KC_FNLOCK"
title = "Fn Lock"
shortName = "FnLk"
`,
	}

	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		ctx, err := profile.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, 6, ctx.ProtocolMajor, name)
		assert.Equal(t, 8, ctx.Layers, name)
		assert.Equal(t, 4, ctx.MacroCount, name)
		assert.Equal(t, 2, ctx.TapDanceCount, name)
		assert.Equal(t, "basic", ctx.MIDI, name)
		assert.Equal(t, []string{"rgblight"}, ctx.SupportedFeatures, name)
		require.Len(t, ctx.CustomKeycodes, 1, name)
		assert.Equal(t, keycodes.CustomKeycode{
			Name: "KC_FNLOCK", Title: "Fn Lock", ShortName: "FnLk",
		}, ctx.CustomKeycodes[0], name)
	}
}

func TestParseFillsDefaults(t *testing.T) {
	ctx, err := profile.Parse([]byte(`{"layers": 12}`), "json")
	require.NoError(t, err)
	assert.Equal(t, 5, ctx.ProtocolMajor)
	assert.Equal(t, 12, ctx.Layers)
	assert.Equal(t, keycodes.DefaultContext().MacroCount, ctx.MacroCount)
}

func TestParseClampsUnknownProtocol(t *testing.T) {
	ctx, err := profile.Parse([]byte(`{"protocolMajor": 9}`), "json")
	require.NoError(t, err)
	assert.Equal(t, 5, ctx.ProtocolMajor)
}

func TestParseErrors(t *testing.T) {
	_, err := profile.Parse([]byte(`{`), "json")
	assert.Error(t, err)

	_, err = profile.Parse([]byte(`layers = 4`), "ini")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := profile.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
