// Package profile loads device capability profiles from disk. A profile is a
// small JSON, YAML or TOML document describing one keyboard's protocol
// version, layer count and slot counts; it feeds a registry rebuild so the
// codec matches the device instead of the generic defaults.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/keyforge-kb/keyforge/keycodes"
)

// Load reads a profile file and returns the capability context it describes.
// The format is chosen by file extension: .json, .yaml/.yml or .toml.
func Load(path string) (keycodes.Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return keycodes.Context{}, fmt.Errorf("reading profile: %w", err)
	}
	return Parse(data, formatForPath(path))
}

// Parse decodes profile data in the given format ("json", "yaml" or "toml").
// Fields absent from the document keep the default context values, so a
// profile only has to state what differs from the defaults.
func Parse(data []byte, format string) (keycodes.Context, error) {
	ctx := keycodes.DefaultContext()
	var err error
	switch format {
	case "json":
		err = json.Unmarshal(data, &ctx)
	case "yaml":
		err = yaml.Unmarshal(data, &ctx)
	case "toml":
		err = toml.Unmarshal(data, &ctx)
	default:
		return keycodes.Context{}, fmt.Errorf("unsupported profile format %q", format)
	}
	if err != nil {
		return keycodes.Context{}, fmt.Errorf("parsing %s profile: %w", format, err)
	}

	// Anything other than 6 means the legacy layout.
	if ctx.ProtocolMajor != 6 {
		ctx.ProtocolMajor = 5
	}
	if ctx.Layers <= 0 {
		ctx.Layers = keycodes.DefaultContext().Layers
	}
	return ctx, nil
}

func formatForPath(path string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}
