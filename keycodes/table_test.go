package keycodes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyforge-kb/keyforge/keycodes"
)

func TestTableDeterministic(t *testing.T) {
	for _, major := range []int{5, 6} {
		a := keycodes.TableFor(major)
		b := keycodes.TableFor(major)
		assert.Equal(t, a.Values, b.Values, "values for v%d", major)
		assert.Equal(t, a.Masked, b.Masked, "masked set for v%d", major)
	}
}

func TestTableSharedBasicsAcrossVersions(t *testing.T) {
	v5 := keycodes.TableFor(5)
	v6 := keycodes.TableFor(6)

	shared := []string{
		"KC_NO", "KC_TRNS", "KC_A", "KC_Z", "KC_1", "KC_0",
		"KC_ENT", "KC_SPC", "KC_F1", "KC_F24", "KC_LCTL", "KC_RGUI",
		"KC_MUTE", "KC_MPLY", "KC_EXLM", "KC_QUES",
	}
	for _, name := range shared {
		v, ok := v5.Values[name]
		require.True(t, ok, "v5 missing %s", name)
		w, ok := v6.Values[name]
		require.True(t, ok, "v6 missing %s", name)
		assert.Equal(t, v, w, "%s differs between versions", name)
	}
}

func TestTableVersionLayouts(t *testing.T) {
	v5 := keycodes.TableFor(5)
	v6 := keycodes.TableFor(6)

	tests := []struct {
		name string
		v5   uint16
		v6   uint16
	}{
		// v5 TO carries an explicit on-press bit; v6 uses plain addition.
		{name: "TO(3)", v5: 0x5013, v6: 0x5203},
		{name: "MO(0)", v5: 0x5100, v6: 0x5220},
		{name: "MO(31)", v5: 0x511F, v6: 0x523F},
		{name: "DF(1)", v5: 0x5201, v6: 0x5241},
		{name: "TG(2)", v5: 0x5302, v6: 0x5262},
		{name: "OSL(5)", v5: 0x5405, v6: 0x5285},
		{name: "TT(1)", v5: 0x5801, v6: 0x52C1},
		// Tap dance shares a base across versions; macros moved wholesale.
		{name: "TD(0)", v5: 0x5700, v6: 0x5700},
		{name: "TD(255)", v5: 0x57FF, v6: 0x57FF},
		{name: "M0", v5: 0x3000, v6: 0x7700},
		{name: "M255", v5: 0x30FF, v6: 0x77FF},
		{name: "USER00", v5: 0x5F80, v6: 0x7E40},
		// Layer-tap layout is shared, layer-mod packing is not.
		{name: "LT3(kc)", v5: 0x4300, v6: 0x4300},
		{name: "LM3(kc)", v5: 0x5930, v6: 0x5060},
		// Mod-tap base moved in the keycode refactor.
		{name: "LCTL_T(kc)", v5: 0x6100, v6: 0x2100},
		{name: "OSM(mod)", v5: 0x5500, v6: 0x52A0},
		{name: "QK_BOOT", v5: 0x5C00, v6: 0x7C00},
		{name: "FN_MO13", v5: 0x5F10, v6: 0x7C77},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got5, ok := v5.Values[tt.name]
			require.True(t, ok, "v5 missing %s", tt.name)
			got6, ok := v6.Values[tt.name]
			require.True(t, ok, "v6 missing %s", tt.name)
			assert.Equal(t, tt.v5, got5, "v5 value")
			assert.Equal(t, tt.v6, got6, "v6 value")
		})
	}
}

func TestTableMaskedSet(t *testing.T) {
	for _, major := range []int{5, 6} {
		tbl := keycodes.TableFor(major)
		for _, name := range []string{"LSFT(kc)", "HYPR(kc)", "LT0(kc)", "LT15(kc)", "LM0(kc)", "LCTL_T(kc)", "ALL_T(kc)", "OSM(mod)"} {
			assert.True(t, tbl.Masked[name], "v%d: %s should be masked", major, name)
		}
		for _, name := range []string{"KC_A", "MO(0)", "TD(0)", "M0"} {
			assert.False(t, tbl.Masked[name], "v%d: %s should not be masked", major, name)
		}
	}
}

func TestTableV5PlaceholdersForV6Families(t *testing.T) {
	v5 := keycodes.TableFor(5)
	v6 := keycodes.TableFor(6)

	// v6-only families still resolve in v5, at fake addresses above 0xF000.
	for _, name := range []string{"SQ_ON", "SH_TOGG", "JS_0", "RM_TOGG"} {
		v, ok := v5.Values[name]
		require.True(t, ok, "v5 missing %s", name)
		assert.GreaterOrEqual(t, v, uint16(0xF000), "%s should use a fake v5 address", name)

		w, ok := v6.Values[name]
		require.True(t, ok, "v6 missing %s", name)
		assert.Less(t, w, uint16(0xF000), "%s should use a real v6 address", name)
	}
}

func TestTableUnknownVersionPanics(t *testing.T) {
	assert.Panics(t, func() { keycodes.TableFor(7) })
}
