package keycodes

import "fmt"

// Table holds the complete symbolic→numeric mapping for one protocol major
// version, plus the set of masked wrapper template names. Tables are built
// fresh by TableFor and never mutated afterwards.
type Table struct {
	Values map[string]uint16
	Masked map[string]bool

	layout *protoLayout
}

// protoLayout pins down where each composite family lives in the 16-bit space
// for one protocol major version. All v5/v6 divergence is data in these two
// values; the expansion code below is version-agnostic.
type protoLayout struct {
	major int

	modTapBase      uint16
	layerTapBase    uint16
	layerModBase    uint16
	layerModShift   uint
	layerModModMask uint16

	toBase    uint16
	toOnPress uint16 // explicit on-press bit, zero in v6
	moBase    uint16
	dfBase    uint16
	tgBase    uint16
	oslBase   uint16
	osmBase   uint16
	ttBase    uint16

	tdBase    uint16
	macroBase uint16
	userBase  uint16
	midiBase  uint16
}

var layoutV5 = protoLayout{
	major:           5,
	modTapBase:      0x6000,
	layerTapBase:    0x4000,
	layerModBase:    0x5900,
	layerModShift:   4,
	layerModModMask: 0x000F,
	toBase:          0x5000,
	toOnPress:       0x0010,
	moBase:          0x5100,
	dfBase:          0x5200,
	tgBase:          0x5300,
	oslBase:         0x5400,
	osmBase:         0x5500,
	ttBase:          0x5800,
	tdBase:          0x5700,
	macroBase:       0x3000,
	userBase:        0x5F80,
	midiBase:        0x5C60,
}

var layoutV6 = protoLayout{
	major:           6,
	modTapBase:      0x2000,
	layerTapBase:    0x4000,
	layerModBase:    0x5000,
	layerModShift:   5,
	layerModModMask: 0x001F,
	toBase:          0x5200,
	toOnPress:       0,
	moBase:          0x5220,
	dfBase:          0x5240,
	tgBase:          0x5260,
	oslBase:         0x5280,
	osmBase:         0x52A0,
	ttBase:          0x52C0,
	tdBase:          0x5700,
	macroBase:       0x7700,
	userBase:        0x7E40,
	midiBase:        0x7100,
}

func layoutFor(major int) *protoLayout {
	switch major {
	case 5:
		return &layoutV5
	case 6:
		return &layoutV6
	}
	panic(fmt.Sprintf("keycodes: no layout for protocol major %d", major))
}

// indexedFamily is a declarative descriptor for a parameterized keycode
// family: a name pattern, a fixed index range and a per-layout packing rule.
// One expansion loop in TableFor evaluates all of them.
type indexedFamily struct {
	name   func(i int) string
	count  int
	value  func(p *protoLayout, i int) uint16
	masked bool
}

var indexedFamilies = []indexedFamily{
	{
		name:  func(i int) string { return fmt.Sprintf("MO(%d)", i) },
		count: 32,
		value: func(p *protoLayout, i int) uint16 { return p.moBase + uint16(i) },
	},
	{
		name:  func(i int) string { return fmt.Sprintf("DF(%d)", i) },
		count: 32,
		value: func(p *protoLayout, i int) uint16 { return p.dfBase + uint16(i) },
	},
	{
		name:  func(i int) string { return fmt.Sprintf("TG(%d)", i) },
		count: 32,
		value: func(p *protoLayout, i int) uint16 { return p.tgBase + uint16(i) },
	},
	{
		// v5 carries an explicit on-press bit that v6 dropped.
		name:  func(i int) string { return fmt.Sprintf("TO(%d)", i) },
		count: 16,
		value: func(p *protoLayout, i int) uint16 { return p.toBase | p.toOnPress | uint16(i) },
	},
	{
		name:  func(i int) string { return fmt.Sprintf("OSL(%d)", i) },
		count: 32,
		value: func(p *protoLayout, i int) uint16 { return p.oslBase + uint16(i) },
	},
	{
		name:  func(i int) string { return fmt.Sprintf("TT(%d)", i) },
		count: 32,
		value: func(p *protoLayout, i int) uint16 { return p.ttBase + uint16(i) },
	},
	{
		name:  func(i int) string { return fmt.Sprintf("TD(%d)", i) },
		count: 256,
		value: func(p *protoLayout, i int) uint16 { return p.tdBase + uint16(i) },
	},
	{
		name:  func(i int) string { return fmt.Sprintf("M%d", i) },
		count: 256,
		value: func(p *protoLayout, i int) uint16 { return p.macroBase + uint16(i) },
	},
	{
		name:  func(i int) string { return fmt.Sprintf("USER%02d", i) },
		count: 64,
		value: func(p *protoLayout, i int) uint16 { return p.userBase + uint16(i) },
	},
	{
		name:   func(i int) string { return fmt.Sprintf("LT%d(kc)", i) },
		count:  16,
		value:  func(p *protoLayout, i int) uint16 { return p.layerTapBase | uint16(i)<<8 },
		masked: true,
	},
	{
		name:   func(i int) string { return fmt.Sprintf("LM%d(kc)", i) },
		count:  16,
		value:  func(p *protoLayout, i int) uint16 { return p.layerModBase | uint16(i)<<p.layerModShift },
		masked: true,
	},
}

// TableFor generates the keycode table for a protocol major version. It is
// pure and deterministic: the same version always yields an identical, fresh
// table. Unknown versions are a programming error and panic.
func TableFor(major int) *Table {
	p := layoutFor(major)
	t := &Table{
		Values: make(map[string]uint16, 1024),
		Masked: make(map[string]bool, 64),
		layout: p,
	}

	add := func(name string, value uint16) {
		if _, dup := t.Values[name]; dup {
			panic(fmt.Sprintf("keycodes: duplicate table entry %q", name))
		}
		t.Values[name] = value
	}

	for _, k := range baseKeys() {
		add(k.name, k.value)
	}
	for _, s := range shiftedKeys {
		add(s.name, modShift<<8|t.mustValue(s.inner))
	}
	for _, v := range versionedKeys {
		if p.major == 6 {
			add(v.name, v.v6)
		} else {
			add(v.name, v.v5)
		}
	}
	for _, m := range midiKeys() {
		add(m.name, p.midiBase+m.offset)
	}

	for _, f := range indexedFamilies {
		for i := 0; i < f.count; i++ {
			name := f.name(i)
			add(name, f.value(p, i))
			if f.masked {
				t.Masked[name] = true
			}
		}
	}

	for _, w := range modWraps {
		name := w.name + "(kc)"
		add(name, w.mods<<8)
		t.Masked[name] = true
	}
	for _, mt := range modTaps {
		name := mt.name + "(kc)"
		add(name, p.modTapBase|mt.mods<<8)
		t.Masked[name] = true
	}
	add("OSM(mod)", p.osmBase)
	t.Masked["OSM(mod)"] = true

	return t
}

// mustValue resolves a name the generator itself depends on. A miss is a
// construction-time defect, not user input, so it panics.
func (t *Table) mustValue(name string) uint16 {
	v, ok := t.Values[name]
	if !ok {
		panic(fmt.Sprintf("keycodes: table generator references unknown base key %q", name))
	}
	return v
}

// Protocol reports the protocol major version this table was generated for.
func (t *Table) Protocol() int {
	return t.layout.major
}
