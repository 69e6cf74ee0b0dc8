package cmd

import (
	"fmt"
	"log/slog"

	"github.com/keyforge-kb/keyforge/keycodes"
	"github.com/keyforge-kb/keyforge/profile"
)

// LogConfig configures the logger shared by all commands.
type LogConfig struct {
	Level string `help:"Log level (trace, debug, info, warn, error)" enum:"trace,debug,info,warn,error" default:"info" env:"KEYFORGE_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"KEYFORGE_LOG_FILE"`
}

// Globals holds the flags every command accepts. The protocol flag overrides
// whatever the profile reports; zero means "use the profile's version".
type Globals struct {
	Log      LogConfig `embed:"" prefix:"log."`
	Protocol int       `help:"Protocol major version, 5 or 6 (defaults to the profile's version, else 5)" env:"KEYFORGE_PROTOCOL"`
	Profile  string    `help:"Device profile file (json, yaml or toml)" type:"existingfile" env:"KEYFORGE_PROFILE"`
}

// BuildRegistry constructs the keycode registry selected by the global flags:
// profile context first, then the protocol override.
func (g *Globals) BuildRegistry(logger *slog.Logger) (*keycodes.Registry, error) {
	ctx := keycodes.DefaultContext()
	if g.Profile != "" {
		loaded, err := profile.Load(g.Profile)
		if err != nil {
			return nil, fmt.Errorf("loading profile: %w", err)
		}
		ctx = loaded
		logger.Debug("loaded device profile",
			"path", g.Profile,
			"protocol", ctx.ProtocolMajor,
			"layers", ctx.Layers,
			"macros", ctx.MacroCount)
	}
	if g.Protocol != 0 {
		if g.Protocol != 5 && g.Protocol != 6 {
			return nil, fmt.Errorf("unsupported protocol version %d", g.Protocol)
		}
		ctx.ProtocolMajor = g.Protocol
	}

	r := keycodes.New()
	r.RebuildWithContext(ctx)
	logger.Debug("registry ready", "protocol", r.Protocol(), "keycodes", len(r.All()))
	return r, nil
}
