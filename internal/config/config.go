// Package config declares the top-level CLI grammar. Kong parses flags,
// environment variables and configuration files into this structure.
package config

import (
	"github.com/keyforge-kb/keyforge/internal/cmd"
)

// CLI is the root command structure.
type CLI struct {
	cmd.Globals

	// Config is consumed before parsing to seed the configuration file
	// candidates; kong only records it here.
	Config string `help:"Path to a configuration file" env:"KEYFORGE_CONFIG"`

	Deserialize     cmd.Deserialize     `cmd:"" help:"Resolve keycode expressions to numeric values"`
	Serialize       cmd.Serialize       `cmd:"" help:"Render numeric keycode values as canonical text"`
	Normalize       cmd.Normalize       `cmd:"" help:"Canonicalize keycode expressions"`
	Dump            cmd.Dump            `cmd:"" help:"List the keycodes of the active registry"`
	NormalizeKeymap cmd.NormalizeKeymap `cmd:"" name:"normalize-keymap" help:"Canonicalize every entry of a keymap file"`
	ConfigCmd       cmd.ConfigCommand   `cmd:"" name:"config" help:"Manage configuration files"`
}
