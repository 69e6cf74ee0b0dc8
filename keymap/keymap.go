// Package keymap reads and writes whole-keyboard keymap documents. A document
// carries one entry per layer per key, written either as keycode text or as a
// raw number; the package converts between that form and flat per-layer value
// buffers using a codec registry.
package keymap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/keyforge-kb/keyforge/keycodes"
)

// Document is a keymap file: an ordered list of layers, each an ordered list
// of key entries. Entries are strings so both keycode text and the numeric
// form a firmware dump produces can round-trip.
type Document struct {
	Name   string     `json:"name,omitempty" yaml:"name,omitempty"`
	Layers [][]string `json:"layers" yaml:"layers"`
}

// Load reads a keymap document from disk, JSON or YAML by extension.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}

	var doc rawDocument
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing keymap: %w", err)
	}
	return doc.document(), nil
}

// Save writes a document to disk, JSON or YAML by extension. JSON output is
// indented so the file stays diffable.
func (d *Document) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(d)
	default:
		data, err = json.MarshalIndent(d, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encoding keymap: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing keymap: %w", err)
	}
	return nil
}

// Values converts every layer to raw keycode values through the registry.
// Unresolvable entries become KC_NO, matching the codec's deserialize
// contract.
func (d *Document) Values(r *keycodes.Registry) [][]uint16 {
	out := make([][]uint16, len(d.Layers))
	for i, layer := range d.Layers {
		row := make([]uint16, len(layer))
		for j, entry := range layer {
			row[j] = r.Deserialize(entry)
		}
		out[i] = row
	}
	return out
}

// FromValues builds a document from raw per-layer value buffers, serializing
// each value to its canonical text.
func FromValues(r *keycodes.Registry, layers [][]uint16) *Document {
	doc := &Document{Layers: make([][]string, len(layers))}
	for i, layer := range layers {
		row := make([]string, len(layer))
		for j, v := range layer {
			row[j] = r.Serialize(v)
		}
		doc.Layers[i] = row
	}
	return doc
}

// Normalize rewrites every entry to its canonical text in place and reports
// how many entries changed.
func (d *Document) Normalize(r *keycodes.Registry) int {
	changed := 0
	for _, layer := range d.Layers {
		for j, entry := range layer {
			n := r.Normalize(entry)
			if n != entry {
				layer[j] = n
				changed++
			}
		}
	}
	return changed
}

// Validate checks the document shape: at least one layer, all layers the same
// length.
func (d *Document) Validate() error {
	if len(d.Layers) == 0 {
		return fmt.Errorf("keymap has no layers")
	}
	want := len(d.Layers[0])
	for i, layer := range d.Layers {
		if len(layer) != want {
			return fmt.Errorf("layer %d has %d keys, want %d", i, len(layer), want)
		}
	}
	return nil
}

// rawDocument accepts entries as either strings or numbers, so firmware dumps
// that wrote bare integers still load.
type rawDocument struct {
	Name   string       `json:"name" yaml:"name"`
	Layers [][]rawEntry `json:"layers" yaml:"layers"`
}

type rawEntry struct {
	text string
}

func (e *rawEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.text = s
		return nil
	}
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("keymap entry must be a string or number")
	}
	e.text = fmt.Sprintf("0x%04x", uint16(n))
	return nil
}

func (e *rawEntry) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		e.text = s
		return nil
	}
	var n uint64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("keymap entry must be a string or number")
	}
	e.text = fmt.Sprintf("0x%04x", uint16(n))
	return nil
}

func (r *rawDocument) document() *Document {
	doc := &Document{Name: r.Name, Layers: make([][]string, len(r.Layers))}
	for i, layer := range r.Layers {
		row := make([]string, len(layer))
		for j, entry := range layer {
			row[j] = entry.text
		}
		doc.Layers[i] = row
	}
	return doc
}
