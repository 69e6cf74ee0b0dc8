package keycodes

import (
	"fmt"
	"strconv"
	"strings"
)

// wrapperKind enumerates every composite wrapper form the expression grammar
// accepts. Packing is selected by exhaustive switch on the kind; there is no
// string-keyed dispatch.
type wrapperKind int

const (
	wrapMod wrapperKind = iota // LSFT(kc) and friends, fixed modifier set
	wrapModTap                 // LCTL_T(kc) and friends, fixed modifier set
	wrapModTapAny              // MT(mod, kc)
	wrapLayerTap               // LT(layer, kc) or LTn(kc)
	wrapLayerMod               // LM(layer, mod) or LMn(mod)
	wrapMomentary              // MO(layer)
	wrapDefaultLayer           // DF(layer)
	wrapToggleLayer            // TG(layer)
	wrapToLayer                // TO(layer)
	wrapOneShotLayer           // OSL(layer)
	wrapOneShotMod             // OSM(mod)
	wrapTapToggle              // TT(layer)
	wrapTapDance               // TD(index)
)

// wrapper is one resolved wrapper form: its kind plus any argument fixed by
// the name itself (LSFT pins the modifier, LT3 pins the layer).
type wrapper struct {
	kind  wrapperKind
	mods  uint16
	layer int
	arity int
}

// lookupWrapper resolves a call-form name from the expression grammar.
func lookupWrapper(name string) (wrapper, bool) {
	switch name {
	case "MO":
		return wrapper{kind: wrapMomentary, arity: 1}, true
	case "DF":
		return wrapper{kind: wrapDefaultLayer, arity: 1}, true
	case "TG":
		return wrapper{kind: wrapToggleLayer, arity: 1}, true
	case "TO":
		return wrapper{kind: wrapToLayer, arity: 1}, true
	case "OSL":
		return wrapper{kind: wrapOneShotLayer, arity: 1}, true
	case "OSM":
		return wrapper{kind: wrapOneShotMod, arity: 1}, true
	case "TT":
		return wrapper{kind: wrapTapToggle, arity: 1}, true
	case "TD":
		return wrapper{kind: wrapTapDance, arity: 1}, true
	case "MT":
		return wrapper{kind: wrapModTapAny, arity: 2}, true
	case "LT":
		return wrapper{kind: wrapLayerTap, layer: -1, arity: 2}, true
	case "LM":
		return wrapper{kind: wrapLayerMod, layer: -1, arity: 2}, true
	}
	for _, w := range modWraps {
		if name == w.name || (w.alias != "" && name == w.alias) {
			return wrapper{kind: wrapMod, mods: w.mods, arity: 1}, true
		}
	}
	for _, mt := range modTaps {
		if name == mt.name || (mt.alias != "" && name == mt.alias) {
			return wrapper{kind: wrapModTap, mods: mt.mods, arity: 1}, true
		}
	}
	if n, ok := indexSuffix(name, "LT"); ok && n < 16 {
		return wrapper{kind: wrapLayerTap, layer: n, arity: 1}, true
	}
	if n, ok := indexSuffix(name, "LM"); ok && n < 16 {
		return wrapper{kind: wrapLayerMod, layer: n, arity: 1}, true
	}
	return wrapper{}, false
}

// indexSuffix parses names like "LT3": prefix plus a decimal index, nothing
// trailing.
func indexSuffix(name, prefix string) (int, bool) {
	if !strings.HasPrefix(name, prefix) || len(name) == len(prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(name[len(prefix):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// pack combines evaluated arguments per the wrapper's bit layout for the
// given protocol layout. The packing rules are the same ones the table
// generator uses, invoked with runtime arguments.
func (w wrapper) pack(p *protoLayout, args []uint16) (uint16, error) {
	if len(args) != w.arity {
		return 0, fmt.Errorf("wrapper expects %d argument(s), got %d", w.arity, len(args))
	}
	switch w.kind {
	case wrapMod:
		return w.mods<<8 | args[0]&0x00FF, nil
	case wrapModTap:
		return p.modTapBase | w.mods<<8 | args[0]&0x00FF, nil
	case wrapModTapAny:
		return p.modTapBase | (args[0]&0x1F)<<8 | args[1]&0x00FF, nil
	case wrapLayerTap:
		layer, kc := uint16(w.layer), args[0]
		if w.layer < 0 {
			layer, kc = args[0], args[1]
		}
		return p.layerTapBase | (layer&0x0F)<<8 | kc&0x00FF, nil
	case wrapLayerMod:
		layer, mod := uint16(w.layer), args[0]
		if w.layer < 0 {
			layer, mod = args[0], args[1]
		}
		return p.layerModBase | (layer&0x0F)<<p.layerModShift | mod&p.layerModModMask, nil
	case wrapMomentary:
		return p.moBase + args[0]&0x1F, nil
	case wrapDefaultLayer:
		return p.dfBase + args[0]&0x1F, nil
	case wrapToggleLayer:
		return p.tgBase + args[0]&0x1F, nil
	case wrapToLayer:
		return p.toBase | p.toOnPress | args[0]&0x0F, nil
	case wrapOneShotLayer:
		return p.oslBase + args[0]&0x1F, nil
	case wrapOneShotMod:
		return p.osmBase | args[0]&0x1F, nil
	case wrapTapToggle:
		return p.ttBase + args[0]&0x1F, nil
	case wrapTapDance:
		return p.tdBase + args[0]&0xFF, nil
	}
	return 0, fmt.Errorf("unhandled wrapper kind %d", w.kind)
}

// modWrapName / modTapName pick the canonical wrapper name for a modifier
// bitmask when decomposing a value back to text. First entry wins, so
// single-modifier names take precedence over combos with the same mask.
var modWrapName = buildModNameIndex()

func buildModNameIndex() map[uint16]string {
	m := make(map[uint16]string, len(modWraps))
	for _, w := range modWraps {
		if _, ok := m[w.mods]; !ok {
			m[w.mods] = w.name
		}
	}
	return m
}

var modTapName = buildModTapNameIndex()

func buildModTapNameIndex() map[uint16]string {
	m := make(map[uint16]string, len(modTaps))
	for _, mt := range modTaps {
		if _, ok := m[mt.mods]; !ok {
			m[mt.mods] = mt.name
		}
	}
	return m
}

// maskedParts is the result of decomposing a composite value: the outer
// wrapper name plus either an inner keycode or a modifier bitmask.
type maskedParts struct {
	outer  string
	inner  uint16
	mod    uint16
	hasMod bool // inner argument is a modifier bitmask, not a keycode
}

// decomposeValue tests whether v is explainable as a named wrapper applied to
// an inner value under the given layout. Fixed-index families (MO, TD, …)
// are not handled here; they resolve through the reverse index directly.
func decomposeValue(p *protoLayout, v uint16) (maskedParts, bool) {
	switch {
	case v >= 0x0100 && v <= 0x1FFF:
		name, ok := modWrapName[v>>8]
		if !ok {
			return maskedParts{}, false
		}
		return maskedParts{outer: name, inner: v & 0x00FF}, true

	case v >= p.modTapBase && v <= p.modTapBase|0x1FFF:
		name, ok := modTapName[(v>>8)&0x1F]
		if !ok {
			return maskedParts{}, false
		}
		return maskedParts{outer: name, inner: v & 0x00FF}, true

	case v >= p.layerTapBase && v <= p.layerTapBase|0x0FFF:
		layer := (v >> 8) & 0x0F
		return maskedParts{outer: fmt.Sprintf("LT%d", layer), inner: v & 0x00FF}, true

	case v >= p.layerModBase && v < p.layerModBase+(16<<p.layerModShift):
		layer := (v >> p.layerModShift) & 0x0F
		return maskedParts{
			outer:  fmt.Sprintf("LM%d", layer),
			mod:    v & p.layerModModMask,
			hasMod: true,
		}, true

	case v > p.osmBase && v <= p.osmBase|0x1F:
		return maskedParts{outer: "OSM", mod: v & 0x1F, hasMod: true}, true
	}
	return maskedParts{}, false
}

// MaskedID is the structured form of a masked identifier: the wrapper name
// plus its argument placeholder or concrete inner text, e.g.
// {Wrapper: "LSFT", Aux: "KC_A"} for "LSFT(KC_A)". Parsing and rendering are
// the only places the textual "W(aux)" convention appears.
type MaskedID struct {
	Wrapper string
	Aux     string
}

// ParseMaskedID splits "WRAPPER(AUX)" into its components. The aux part may
// itself contain balanced parentheses, e.g. "LSFT(LT3(KC_A))".
func ParseMaskedID(s string) (MaskedID, bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return MaskedID{}, false
	}
	return MaskedID{Wrapper: s[:open], Aux: s[open+1 : len(s)-1]}, true
}

// String renders the textual form of the masked id.
func (m MaskedID) String() string {
	return m.Wrapper + "(" + m.Aux + ")"
}
