package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Deserialize resolves keycode expressions to their 16-bit protocol values.
type Deserialize struct {
	Exprs []string `arg:"" name:"expr" help:"Keycode expressions, e.g. KC_A or LSFT(KC_1)"`
}

// Run is called by Kong when the deserialize command is executed.
func (c *Deserialize) Run(g *Globals, logger *slog.Logger) error {
	reg, err := g.BuildRegistry(logger)
	if err != nil {
		return err
	}
	for _, expr := range c.Exprs {
		v := reg.Deserialize(expr)
		logger.Debug("deserialized", "expr", expr, "value", v)
		fmt.Printf("0x%04x\n", v)
	}
	return nil
}

// Serialize renders numeric keycode values as canonical text.
type Serialize struct {
	Values []string `arg:"" name:"value" help:"Numeric keycode values, decimal or 0x-prefixed hex"`
}

// Run is called by Kong when the serialize command is executed.
func (c *Serialize) Run(g *Globals, logger *slog.Logger) error {
	reg, err := g.BuildRegistry(logger)
	if err != nil {
		return err
	}
	for _, raw := range c.Values {
		n, err := strconv.ParseUint(strings.TrimSpace(raw), 0, 16)
		if err != nil {
			return fmt.Errorf("invalid keycode value %q: %w", raw, err)
		}
		fmt.Println(reg.Serialize(uint16(n)))
	}
	return nil
}

// Normalize rewrites keycode expressions to their canonical text.
type Normalize struct {
	Exprs []string `arg:"" name:"expr" help:"Keycode expressions to canonicalize"`
}

// Run is called by Kong when the normalize command is executed.
func (c *Normalize) Run(g *Globals, logger *slog.Logger) error {
	reg, err := g.BuildRegistry(logger)
	if err != nil {
		return err
	}
	for _, expr := range c.Exprs {
		fmt.Println(reg.Normalize(expr))
	}
	return nil
}
