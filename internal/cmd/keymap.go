package cmd

import (
	"fmt"
	"log/slog"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/keyforge-kb/keyforge/keymap"
)

// NormalizeKeymap rewrites every entry of a keymap file to canonical keycode
// text.
type NormalizeKeymap struct {
	File    string `arg:"" help:"Keymap file (json or yaml)" type:"existingfile"`
	Output  string `help:"Destination file (defaults to stdout)" short:"o" xor:"dest"`
	InPlace bool   `help:"Rewrite the input file" short:"i" xor:"dest"`
	Check   bool   `help:"Exit non-zero if the keymap is not canonical, without writing" xor:"dest"`
}

// Run is called by Kong when the normalize-keymap command is executed.
func (c *NormalizeKeymap) Run(g *Globals, logger *slog.Logger) error {
	reg, err := g.BuildRegistry(logger)
	if err != nil {
		return err
	}

	doc, err := keymap.Load(c.File)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	changed := doc.Normalize(reg)
	logger.Info("normalized keymap", "file", c.File, "layers", len(doc.Layers), "changed", changed)

	switch {
	case c.Check:
		if changed > 0 {
			return fmt.Errorf("%s: %d entries are not canonical", c.File, changed)
		}
		return nil
	case c.InPlace:
		return doc.Save(c.File)
	case c.Output != "":
		return doc.Save(c.Output)
	default:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}
}
