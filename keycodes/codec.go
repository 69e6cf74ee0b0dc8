package keycodes

import (
	"fmt"
	"strings"
)

// KCNo is the "no keycode" sentinel Deserialize degrades to on unparsable
// input.
const KCNo uint16 = 0x0000

// Deserialize converts textual keycode input to its numeric value. Plain hex
// or decimal literals pass through as numbers; anything else goes through the
// expression grammar. It never fails: malformed input yields KCNo so the
// editor always has a value to work with.
func (r *Registry) Deserialize(text string) uint16 {
	text = strings.TrimSpace(text)
	if text == "" {
		return KCNo
	}
	v, err := r.Evaluate(text)
	if err != nil {
		return KCNo
	}
	return v
}

// Serialize converts a numeric value to its canonical textual form. Exact
// table matches win; shifted composites with a named alias render in their
// preferred LSFT(base) form; other composites decompose into wrapper syntax;
// anything else falls back to a hex literal. It always succeeds.
func (r *Registry) Serialize(v uint16) string {
	if s, ok := r.shiftedName[v]; ok {
		return s
	}
	if name, ok := r.byValue[v]; ok {
		return name
	}
	if parts, ok := decomposeValue(r.table.layout, v); ok {
		if parts.hasMod {
			if name, ok := modTokenName[parts.mod]; ok {
				return fmt.Sprintf("%s(%s)", parts.outer, name)
			}
			return fmt.Sprintf("%s(0x%02x)", parts.outer, parts.mod)
		}
		return fmt.Sprintf("%s(%s)", parts.outer, r.Serialize(parts.inner))
	}
	return fmt.Sprintf("0x%04x", v)
}

// Normalize canonicalizes arbitrary textual input into the one form Serialize
// itself produces, collapsing aliases and decomposing composites.
func (r *Registry) Normalize(text string) string {
	return r.Serialize(r.Deserialize(text))
}

// IsBasic reports whether v is a plain 8-bit keycode.
func (r *Registry) IsBasic(v uint16) bool {
	return v <= 0x00FF
}

// IsMask reports whether v lies in a composite wrapper range (modifier wrap,
// mod-tap, layer-tap, layer-mod or one-shot-mod) of the active protocol.
func (r *Registry) IsMask(v uint16) bool {
	p := r.table.layout
	switch {
	case v >= 0x0100 && v <= 0x1FFF:
		return true
	case v >= p.modTapBase && v <= p.modTapBase|0x1FFF:
		return true
	case v >= p.layerTapBase && v <= p.layerTapBase|0x0FFF:
		return true
	case v >= p.layerModBase && v < p.layerModBase+16<<p.layerModShift:
		return true
	case v >= p.osmBase && v <= p.osmBase|0x1F:
		return true
	}
	return false
}

// IsTapDanceKeycode reports whether v addresses a tap-dance slot.
func (r *Registry) IsTapDanceKeycode(v uint16) bool {
	_, ok := r.TapDanceIndex(v)
	return ok
}

// TapDanceIndex extracts the 0-based tap-dance slot index from v.
func (r *Registry) TapDanceIndex(v uint16) (int, bool) {
	base := r.table.layout.tdBase
	if v < base || v >= base+256 {
		return 0, false
	}
	return int(v - base), true
}

// IsMacroKeycode reports whether v addresses a macro slot.
func (r *Registry) IsMacroKeycode(v uint16) bool {
	_, ok := r.MacroIndex(v)
	return ok
}

// MacroIndex extracts the 0-based macro slot index from v.
func (r *Registry) MacroIndex(v uint16) (int, bool) {
	base := r.table.layout.macroBase
	if v < base || v >= base+256 {
		return 0, false
	}
	return int(v - base), true
}

// IsResetKeycode reports whether v requests a jump to the bootloader.
func (r *Registry) IsResetKeycode(v uint16) bool {
	return v == r.table.mustValue("QK_BOOT")
}

// IsLMKeycode reports whether v is a layer-mod composite.
func (r *Registry) IsLMKeycode(v uint16) bool {
	_, _, ok := r.LMParts(v)
	return ok
}

// LMParts splits a layer-mod composite into its layer index and modifier
// bitmask.
func (r *Registry) LMParts(v uint16) (layer int, mods uint16, ok bool) {
	p := r.table.layout
	if v < p.layerModBase || v >= p.layerModBase+16<<p.layerModShift {
		return 0, 0, false
	}
	return int((v >> p.layerModShift) & 0x0F), v & p.layerModModMask, true
}

// IsMomentaryKeycode reports whether v momentarily activates a layer.
func (r *Registry) IsMomentaryKeycode(v uint16) bool {
	_, ok := r.MomentaryLayer(v)
	return ok
}

// MomentaryLayer extracts the layer index from an MO composite.
func (r *Registry) MomentaryLayer(v uint16) (int, bool) {
	base := r.table.layout.moBase
	if v < base || v >= base+32 {
		return 0, false
	}
	return int(v - base), true
}
