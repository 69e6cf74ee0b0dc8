package keycodes

import (
	"fmt"
	"strings"
)

// Registry owns the active protocol version, the generated table and the full
// descriptor collection derived from a device capability context. A rebuild
// replaces everything wholesale; descriptors are never patched in place.
//
// The registry is not safe for concurrent use. The consuming tool drives it
// from a single goroutine and rebuilds atomically between codec calls.
type Registry struct {
	protocol int
	ctx      Context
	table    *Table

	ordered    []*Keycode
	byQmkID    map[string]*Keycode
	byAlias    map[string]*Keycode
	byRecorder map[string]*Keycode
	byValue    map[uint16]string
	categories map[Category][]*Keycode

	// shiftedName is the decomposition preference table: composite value to
	// canonical LSFT(base) rendering.
	shiftedName map[uint16]string
}

// New returns a registry built for protocol major 5 with the default context.
func New() *Registry {
	r := &Registry{}
	r.rebuild(DefaultContext())
	return r
}

// Protocol reports the active protocol major version.
func (r *Registry) Protocol() int {
	return r.protocol
}

// SetProtocol switches the active protocol major version and rebuilds with
// the current context. Any value other than 6 selects the legacy v5 layout.
func (r *Registry) SetProtocol(major int) {
	ctx := r.ctx
	ctx.ProtocolMajor = major
	r.rebuild(ctx)
}

// Rebuild regenerates the registry from the current protocol version with a
// minimal default context, discarding device-specific families.
func (r *Registry) Rebuild() {
	ctx := DefaultContext()
	ctx.ProtocolMajor = r.protocol
	r.rebuild(ctx)
}

// RebuildWithContext regenerates the registry from an explicit device
// capability context. This is the primary entry point once handshake data is
// known.
func (r *Registry) RebuildWithContext(ctx Context) {
	r.rebuild(ctx)
}

// Context returns the capability context of the most recent rebuild.
func (r *Registry) Context() Context {
	return r.ctx
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func (r *Registry) rebuild(ctx Context) {
	major := ctx.ProtocolMajor
	if major != 6 {
		major = 5
	}
	ctx.ProtocolMajor = major

	r.protocol = major
	r.ctx = ctx
	r.table = TableFor(major)
	r.ordered = nil
	r.byQmkID = make(map[string]*Keycode, 1024)
	r.byAlias = make(map[string]*Keycode, 2048)
	r.byRecorder = make(map[string]*Keycode, 256)
	r.byValue = make(map[uint16]string, 1024)
	r.categories = make(map[Category][]*Keycode, len(Categories))
	r.shiftedName = make(map[uint16]string, len(shiftedKeys))

	layers := clamp(ctx.Layers, 1, 32)

	for _, k := range baseKeys() {
		kc := &Keycode{
			ID:        k.name,
			Value:     k.value,
			Label:     k.label,
			Tooltip:   k.tooltip,
			Printable: k.printable,
			Aliases:   append([]string{k.name}, k.aliases...),
			Category:  k.category,
			Hidden:    k.category == CategoryHidden,
		}
		r.index(kc, k.recorder)
	}

	for _, s := range shiftedKeys {
		base := r.table.mustValue(s.inner)
		value := modShift<<8 | base
		kc := &Keycode{
			ID:        s.name,
			Value:     value,
			Label:     s.label,
			Printable: s.label,
			Aliases:   []string{s.name},
			Category:  CategoryShifted,
		}
		r.index(kc, "")
		r.shiftedName[value] = "LSFT(" + s.inner + ")"
	}

	for _, v := range versionedKeys {
		if (v.name == "FN_MO13" || v.name == "FN_MO23") && layers < 4 {
			continue
		}
		kc := &Keycode{
			ID:              v.name,
			Value:           r.table.mustValue(v.name),
			Label:           v.label,
			Tooltip:         v.tooltip,
			Aliases:         append([]string{v.name}, v.aliases...),
			Category:        v.category,
			RequiresFeature: v.feature,
			Hidden:          v.feature != "" && !ctx.hasFeature(v.feature),
		}
		r.index(kc, "")
	}

	for _, m := range midiKeys() {
		hidden := true
		switch m.category {
		case CategoryMIDIBasic:
			hidden = ctx.MIDI != "basic" && ctx.MIDI != "advanced"
		case CategoryMIDIAdvanced:
			hidden = ctx.MIDI != "advanced"
		}
		kc := &Keycode{
			ID:              m.name,
			Value:           r.table.mustValue(m.name),
			Label:           m.label,
			Aliases:         []string{m.name},
			Category:        m.category,
			RequiresFeature: "midi",
			Hidden:          hidden,
		}
		r.index(kc, "")
	}

	// Layer families, sized by the context. The LT/LM bit layouts only fit 16
	// layers; the flat families go up to 32.
	r.layerFamily("MO(%d)", layers, CategoryLayer, "Momentarily activate layer %d while held")
	r.layerFamily("DF(%d)", layers, CategoryLayer, "Set layer %d as the default layer")
	r.layerFamily("TG(%d)", layers, CategoryLayer, "Toggle layer %d on or off")
	r.layerFamily("TO(%d)", clamp(layers, 1, 16), CategoryLayer, "Switch to layer %d")
	r.layerFamily("OSL(%d)", layers, CategoryLayer, "Activate layer %d for the next keypress")
	r.layerFamily("TT(%d)", layers, CategoryLayer, "Momentary layer %d, toggles when tapped repeatedly")

	for _, w := range modWraps {
		id := w.name + "(kc)"
		aliases := []string{id, w.name}
		if w.alias != "" {
			aliases = append(aliases, w.alias, w.alias+"(kc)")
		}
		kc := &Keycode{
			ID:       id,
			Value:    r.table.mustValue(id),
			Label:    w.label,
			Tooltip:  w.tooltip,
			Masked:   true,
			Aliases:  aliases,
			Category: CategoryQuantum,
		}
		r.index(kc, "")
	}
	for _, mt := range modTaps {
		id := mt.name + "(kc)"
		aliases := []string{id, mt.name}
		if mt.alias != "" {
			aliases = append(aliases, mt.alias, mt.alias+"(kc)")
		}
		kc := &Keycode{
			ID:       id,
			Value:    r.table.mustValue(id),
			Label:    mt.label,
			Tooltip:  "Modifier when held, inner keycode when tapped",
			Masked:   true,
			Aliases:  aliases,
			Category: CategoryQuantum,
		}
		r.index(kc, "")
	}
	for i := 0; i < clamp(layers, 1, 16); i++ {
		id := fmt.Sprintf("LT%d(kc)", i)
		kc := &Keycode{
			ID:       id,
			Value:    r.table.mustValue(id),
			Label:    fmt.Sprintf("LT %d", i),
			Tooltip:  fmt.Sprintf("Layer %d when held, inner keycode when tapped", i),
			Masked:   true,
			Aliases:  []string{id, fmt.Sprintf("LT%d", i)},
			Category: CategoryLayer,
		}
		r.index(kc, "")
	}
	for i := 0; i < clamp(layers, 1, 16); i++ {
		id := fmt.Sprintf("LM%d(kc)", i)
		kc := &Keycode{
			ID:       id,
			Value:    r.table.mustValue(id),
			Label:    fmt.Sprintf("LM %d", i),
			Tooltip:  fmt.Sprintf("Activate layer %d with a modifier held", i),
			Masked:   true,
			Aliases:  []string{id, fmt.Sprintf("LM%d", i)},
			Category: CategoryLayer,
		}
		r.index(kc, "")
	}
	{
		kc := &Keycode{
			ID:       "OSM(mod)",
			Value:    r.table.mustValue("OSM(mod)"),
			Label:    "OSM",
			Tooltip:  "Apply the modifier to the next keypress only",
			Masked:   true,
			Aliases:  []string{"OSM(mod)", "OSM"},
			Category: CategoryQuantum,
		}
		r.index(kc, "")
	}

	for i := 0; i < clamp(ctx.MacroCount, 0, 256); i++ {
		name := fmt.Sprintf("M%d", i)
		kc := &Keycode{
			ID:       name,
			Value:    r.table.mustValue(name),
			Label:    name,
			Tooltip:  fmt.Sprintf("Play macro slot %d", i),
			Aliases:  []string{name},
			Category: CategoryMacro,
		}
		r.index(kc, "")
	}
	for i := 0; i < clamp(ctx.TapDanceCount, 0, 256); i++ {
		name := fmt.Sprintf("TD(%d)", i)
		kc := &Keycode{
			ID:       name,
			Value:    r.table.mustValue(name),
			Label:    fmt.Sprintf("TD %d", i),
			Tooltip:  fmt.Sprintf("Tap dance slot %d", i),
			Aliases:  []string{name},
			Category: CategoryTapDance,
		}
		r.index(kc, "")
	}

	for i, custom := range ctx.CustomKeycodes {
		if i >= 64 {
			break
		}
		slot := fmt.Sprintf("USER%02d", i)
		label := custom.ShortName
		if label == "" {
			label = slot
		}
		tooltip := custom.Title
		if tooltip == "" {
			tooltip = slot
		}
		aliases := []string{slot}
		if custom.Name != "" && custom.Name != slot {
			aliases = append(aliases, custom.Name)
		}
		kc := &Keycode{
			ID:       slot,
			Value:    r.table.mustValue(slot),
			Label:    label,
			Tooltip:  tooltip,
			Aliases:  aliases,
			Category: CategoryCustom,
		}
		r.index(kc, "")
	}

	// The reverse index covers the whole table, not just the context-sized
	// descriptor set, so any value the table can name serializes symbolically.
	// Descriptors were indexed first and keep canonical preference.
	for name, v := range r.table.Values {
		if r.table.Masked[name] {
			continue
		}
		if _, dup := r.byValue[v]; !dup {
			r.byValue[v] = name
		}
	}
}

func (r *Registry) layerFamily(pattern string, count int, cat Category, tooltip string) {
	for i := 0; i < count; i++ {
		name := fmt.Sprintf(pattern, i)
		kc := &Keycode{
			ID:       name,
			Value:    r.table.mustValue(name),
			Label:    name,
			Tooltip:  fmt.Sprintf(tooltip, i),
			Aliases:  []string{name},
			Category: cat,
		}
		r.index(kc, "")
	}
}

// index wires one descriptor into every lookup structure. First registration
// wins for aliases and values, so canonical entries must be added first.
func (r *Registry) index(kc *Keycode, recorder string) {
	r.ordered = append(r.ordered, kc)
	r.categories[kc.Category] = append(r.categories[kc.Category], kc)

	id := kc.ID
	if _, ok := r.byQmkID[id]; !ok {
		r.byQmkID[id] = kc
	}
	if masked, ok := ParseMaskedID(id); ok {
		if _, dup := r.byQmkID[masked.Wrapper]; !dup {
			r.byQmkID[masked.Wrapper] = kc
		}
	}
	for _, a := range kc.Aliases {
		if _, dup := r.byAlias[a]; !dup {
			r.byAlias[a] = kc
		}
	}
	if recorder != "" {
		if _, dup := r.byRecorder[recorder]; !dup {
			r.byRecorder[recorder] = kc
		}
	}
	if !kc.Masked {
		if _, dup := r.byValue[kc.Value]; !dup {
			r.byValue[kc.Value] = id
		}
	}
}

// FindKeycode looks a descriptor up by any of its textual aliases.
func (r *Registry) FindKeycode(text string) (Keycode, bool) {
	if kc, ok := r.byAlias[strings.TrimSpace(text)]; ok {
		return *kc, true
	}
	return Keycode{}, false
}

// FindByQmkID looks a descriptor up by canonical identifier. Masked wrapper
// ids resolve with or without their template suffix, so "LSFT" and
// "LSFT(kc)" name the same descriptor.
func (r *Registry) FindByQmkID(id string) (Keycode, bool) {
	if kc, ok := r.byQmkID[strings.TrimSpace(id)]; ok {
		return *kc, true
	}
	return Keycode{}, false
}

// FindByRecorderAlias resolves the narrower alias namespace used when mapping
// captured physical keypresses to keycodes.
func (r *Registry) FindByRecorderAlias(alias string) (Keycode, bool) {
	if kc, ok := r.byRecorder[strings.ToUpper(strings.TrimSpace(alias))]; ok {
		return *kc, true
	}
	return Keycode{}, false
}

// FindOuterKeycode resolves the wrapper component of a masked id like
// "LSFT(KC_A)".
func (r *Registry) FindOuterKeycode(text string) (Keycode, bool) {
	masked, ok := ParseMaskedID(strings.TrimSpace(text))
	if !ok {
		return Keycode{}, false
	}
	return r.FindByQmkID(masked.Wrapper)
}

// FindInnerKeycode resolves the inner component of a masked id like
// "LSFT(KC_A)". Modifier tokens and nested composites report not-found.
func (r *Registry) FindInnerKeycode(text string) (Keycode, bool) {
	masked, ok := ParseMaskedID(strings.TrimSpace(text))
	if !ok {
		return Keycode{}, false
	}
	return r.FindKeycode(masked.Aux)
}

// KeycodeLabel renders the display label for a textual keycode. Masked
// composites compose the wrapper label with the inner label; unknown text is
// returned unchanged so the editor always has something to show.
func (r *Registry) KeycodeLabel(text string) string {
	text = strings.TrimSpace(text)
	if kc, ok := r.byAlias[text]; ok {
		return kc.Label
	}
	if masked, ok := ParseMaskedID(text); ok {
		if outer, ok := r.byQmkID[masked.Wrapper]; ok {
			return outer.Label + " " + r.KeycodeLabel(masked.Aux)
		}
	}
	return text
}

// KeycodeTooltip returns the long description for a textual keycode, if one
// exists.
func (r *Registry) KeycodeTooltip(text string) (string, bool) {
	kc, ok := r.FindKeycode(text)
	if !ok || kc.Tooltip == "" {
		return "", false
	}
	return kc.Tooltip, true
}

// Visible lists the non-hidden descriptors of one category, in build order.
func (r *Registry) Visible(cat Category) []Keycode {
	members := r.categories[cat]
	out := make([]Keycode, 0, len(members))
	for _, kc := range members {
		if !kc.Hidden {
			out = append(out, *kc)
		}
	}
	return out
}

// All returns every descriptor of the most recent rebuild, including hidden
// ones, in build order.
func (r *Registry) All() []Keycode {
	out := make([]Keycode, len(r.ordered))
	for i, kc := range r.ordered {
		out[i] = *kc
	}
	return out
}
