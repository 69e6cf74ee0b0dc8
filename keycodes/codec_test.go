package keycodes_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyforge-kb/keyforge/keycodes"
)

func TestRoundTripAllTableValues(t *testing.T) {
	for _, major := range []int{5, 6} {
		t.Run(fmt.Sprintf("v%d", major), func(t *testing.T) {
			r := keycodes.New()
			r.SetProtocol(major)
			tbl := keycodes.TableFor(major)

			for name, v := range tbl.Values {
				if tbl.Masked[name] {
					continue // templates are not complete textual values
				}
				text := r.Serialize(v)
				assert.Equal(t, v, r.Deserialize(text), "value %s (%#04x) via %q", name, v, text)
			}
		})
	}
}

func TestRoundTripComposites(t *testing.T) {
	r := keycodes.New()

	for _, expr := range []string{
		"LSFT(KC_A)", "RALT(KC_TAB)", "HYPR(KC_SPC)",
		"LT3(KC_ESC)", "LCTL_T(KC_BSPC)", "MT(MOD_RGUI, KC_Z)",
		"LM2(MOD_LSFT)", "OSM(MOD_LALT)",
	} {
		v := r.Deserialize(expr)
		require.NotEqual(t, keycodes.KCNo, v, "deserialize %q", expr)
		assert.Equal(t, v, r.Deserialize(r.Serialize(v)), "round trip %q", expr)
	}
}

func TestSerializePrefersNamedShiftedForm(t *testing.T) {
	r := keycodes.New()

	// 0x021E is "shifted 1": the curated alias table wins over both the
	// KC_EXLM reverse match and the generic wrapper form.
	assert.Equal(t, "LSFT(KC_1)", r.Serialize(0x021E))
	assert.Equal(t, "LSFT(KC_GRV)", r.Serialize(0x0235))

	// The alias still deserializes to the same value.
	assert.Equal(t, uint16(0x021E), r.Deserialize("KC_EXLM"))
	assert.Equal(t, "LSFT(KC_1)", r.Normalize("KC_EXLM"))
}

func TestSerializeFallsBackToHex(t *testing.T) {
	r := keycodes.New()

	assert.Equal(t, "0xffff", r.Serialize(0xFFFF))
	assert.Equal(t, uint16(0xFFFF), r.Deserialize("0xffff"))
}

func TestSerializeDecomposition(t *testing.T) {
	r := keycodes.New() // protocol 5

	tests := []struct {
		name  string
		value uint16
		want  string
	}{
		{name: "known table value", value: 0x0004, want: "KC_A"},
		{name: "no keycode", value: 0x0000, want: "KC_NO"},
		{name: "modifier wrap", value: 0x0204, want: "LSFT(KC_A)"},
		{name: "right modifier wrap", value: 0x1404, want: "RALT(KC_A)"},
		{name: "meh wrap", value: 0x072C, want: "MEH(KC_SPC)"},
		{name: "layer tap", value: 0x4304, want: "LT3(KC_A)"},
		{name: "mod tap", value: 0x6104, want: "LCTL_T(KC_A)"},
		{name: "layer mod", value: 0x5934, want: "LM3(MOD_LALT)"},
		{name: "one shot mod", value: 0x5511, want: "OSM(MOD_RCTL)"},
		{name: "momentary from reverse index", value: 0x5103, want: "MO(3)"},
		{name: "tap dance from reverse index", value: 0x5707, want: "TD(7)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Serialize(tt.value))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	r := keycodes.New()

	inputs := []string{
		"KC_A", "kc_bogus", "LSFT(KC_1)", "KC_EXLM", "0x21e",
		"LT(2, KC_A)", "4 + 1", "0xffff", "", "MO(3)",
	}
	for _, in := range inputs {
		once := r.Normalize(in)
		assert.Equal(t, once, r.Normalize(once), "normalize(%q)", in)
	}
}

func TestLMEncodingDiffersByProtocol(t *testing.T) {
	r := keycodes.New()

	// Same logical request, layer 3 with right alt: only v6 has the fifth
	// modifier bit, so the encodings differ, yet each decodes back to its
	// own canonical form.
	r.SetProtocol(6)
	v6 := r.Deserialize("LM3(MOD_RALT)")
	assert.Equal(t, uint16(0x5074), v6)
	assert.Equal(t, "LM3(MOD_RALT)", r.Serialize(v6))
	layer, mods, ok := r.LMParts(v6)
	require.True(t, ok)
	assert.Equal(t, 3, layer)
	assert.Equal(t, uint16(0x14), mods)

	r.SetProtocol(5)
	v5 := r.Deserialize("LM3(MOD_LALT)")
	assert.Equal(t, uint16(0x5934), v5)
	assert.Equal(t, "LM3(MOD_LALT)", r.Serialize(v5))
	layer, mods, ok = r.LMParts(v5)
	require.True(t, ok)
	assert.Equal(t, 3, layer)
	assert.Equal(t, uint16(0x04), mods)

	assert.NotEqual(t, v5, v6)
}

func TestPredicates(t *testing.T) {
	r := keycodes.New() // protocol 5

	assert.True(t, r.IsBasic(0x0004))
	assert.False(t, r.IsBasic(0x0204))

	assert.True(t, r.IsMask(0x0204))  // modifier wrap
	assert.True(t, r.IsMask(0x4304))  // layer tap
	assert.True(t, r.IsMask(0x6104))  // mod tap
	assert.True(t, r.IsMask(0x5934))  // layer mod
	assert.False(t, r.IsMask(0x0004)) // plain keycode
	assert.False(t, r.IsMask(0x5103)) // momentary is not a masked composite

	idx, ok := r.TapDanceIndex(0x5707)
	require.True(t, ok)
	assert.Equal(t, 7, idx)
	assert.True(t, r.IsTapDanceKeycode(0x5700))
	assert.False(t, r.IsTapDanceKeycode(0x5800))

	idx, ok = r.MacroIndex(0x3005)
	require.True(t, ok)
	assert.Equal(t, 5, idx)
	assert.False(t, r.IsMacroKeycode(0x7705)) // v6 macro base, not v5

	assert.True(t, r.IsResetKeycode(0x5C00))
	r.SetProtocol(6)
	assert.True(t, r.IsResetKeycode(0x7C00))
	assert.False(t, r.IsResetKeycode(0x5C00))
	assert.True(t, r.IsMacroKeycode(0x7705))

	layerIdx, ok := r.MomentaryLayer(0x5223)
	require.True(t, ok)
	assert.Equal(t, 3, layerIdx)
	assert.True(t, r.IsMomentaryKeycode(0x5220))
	assert.False(t, r.IsMomentaryKeycode(0x5100)) // v5 base under v6
}
