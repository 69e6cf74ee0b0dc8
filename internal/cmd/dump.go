package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/keyforge-kb/keyforge/keycodes"
)

// Dump lists the visible keycodes of the active registry by category.
type Dump struct {
	Category string `help:"Limit output to one category" optional:""`
	All      bool   `help:"Include hidden keycodes"`
}

// Run is called by Kong when the dump command is executed.
func (c *Dump) Run(g *Globals, logger *slog.Logger) error {
	reg, err := g.BuildRegistry(logger)
	if err != nil {
		return err
	}

	categories := keycodes.Categories
	if c.Category != "" {
		categories = []keycodes.Category{keycodes.Category(c.Category)}
	}

	// Align columns when writing to a terminal; tab-separate for pipes.
	tty := term.IsTerminal(int(os.Stdout.Fd()))

	printed := 0
	for _, cat := range categories {
		var members []keycodes.Keycode
		if c.All {
			for _, kc := range reg.All() {
				if kc.Category == cat {
					members = append(members, kc)
				}
			}
		} else {
			members = reg.Visible(cat)
		}
		if len(members) == 0 {
			continue
		}

		if tty {
			fmt.Printf("[%s]\n", cat)
		}
		for _, kc := range members {
			if tty {
				fmt.Printf("  %-20s 0x%04x  %s\n", kc.ID, kc.Value, kc.Label)
			} else {
				fmt.Printf("%s\t0x%04x\t%s\t%s\n", kc.ID, kc.Value, cat, kc.Label)
			}
		}
		printed += len(members)
	}

	if printed == 0 && c.Category != "" {
		return fmt.Errorf("unknown category %q", c.Category)
	}
	logger.Debug("dumped registry", "keycodes", printed, "protocol", reg.Protocol())
	return nil
}
