package keycodes_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyforge-kb/keyforge/keycodes"
)

func TestFamilySizingFollowsContext(t *testing.T) {
	r := keycodes.New()
	r.RebuildWithContext(keycodes.Context{
		ProtocolMajor: 5,
		Layers:        4,
		MacroCount:    3,
		TapDanceCount: 2,
	})

	for i := 0; i < 4; i++ {
		_, ok := r.FindKeycode(fmt.Sprintf("MO(%d)", i))
		assert.True(t, ok, "MO(%d) should exist", i)
		_, ok = r.FindByQmkID(fmt.Sprintf("LT%d(kc)", i))
		assert.True(t, ok, "LT%d should exist", i)
	}
	_, ok := r.FindKeycode("MO(4)")
	assert.False(t, ok, "MO(4) must not exist with 4 layers")
	_, ok = r.FindByQmkID("LT4(kc)")
	assert.False(t, ok, "LT4 must not exist with 4 layers")

	for i := 0; i < 3; i++ {
		_, ok := r.FindKeycode(fmt.Sprintf("M%d", i))
		assert.True(t, ok, "M%d should exist", i)
	}
	_, ok = r.FindKeycode("M3")
	assert.False(t, ok, "M3 must not exist with 3 macros")

	_, ok = r.FindKeycode("TD(1)")
	assert.True(t, ok)
	_, ok = r.FindKeycode("TD(2)")
	assert.False(t, ok, "TD(2) must not exist with 2 tap dance slots")
}

func TestRebuildReplacesWholesale(t *testing.T) {
	r := keycodes.New()
	r.RebuildWithContext(keycodes.Context{ProtocolMajor: 5, Layers: 8, MacroCount: 16})

	_, ok := r.FindKeycode("MO(7)")
	require.True(t, ok)

	r.RebuildWithContext(keycodes.Context{ProtocolMajor: 5, Layers: 2, MacroCount: 4})

	_, ok = r.FindKeycode("MO(7)")
	assert.False(t, ok, "stale layer member survived rebuild")
	_, ok = r.FindKeycode("M9")
	assert.False(t, ok, "stale macro member survived rebuild")
}

func TestTriLayerShortcutsNeedFourLayers(t *testing.T) {
	r := keycodes.New()

	r.RebuildWithContext(keycodes.Context{ProtocolMajor: 5, Layers: 4})
	_, ok := r.FindKeycode("FN_MO13")
	assert.True(t, ok)

	r.RebuildWithContext(keycodes.Context{ProtocolMajor: 5, Layers: 3})
	_, ok = r.FindKeycode("FN_MO13")
	assert.False(t, ok)
	_, ok = r.FindKeycode("FN_MO23")
	assert.False(t, ok)
}

func TestCustomKeycodeDefaulting(t *testing.T) {
	r := keycodes.New()
	r.RebuildWithContext(keycodes.Context{
		ProtocolMajor: 5,
		Layers:        4,
		CustomKeycodes: []keycodes.CustomKeycode{
			{Name: "KC_FNLOCK", Title: "Fn Lock", ShortName: "FnLk"},
			{Name: "KC_MISSION"},
		},
	})

	kc, ok := r.FindKeycode("USER00")
	require.True(t, ok)
	assert.Equal(t, "FnLk", kc.Label)
	assert.Equal(t, "Fn Lock", kc.Tooltip)

	// Device name works as an alias for the same slot.
	byName, ok := r.FindKeycode("KC_FNLOCK")
	require.True(t, ok)
	assert.Equal(t, kc.ID, byName.ID)

	// Missing title and short name fall back to the slot identifier.
	kc, ok = r.FindKeycode("USER01")
	require.True(t, ok)
	assert.Equal(t, "USER01", kc.Label)
	assert.Equal(t, "USER01", kc.Tooltip)
}

func TestFeatureGatingHidesButKeepsAddressable(t *testing.T) {
	r := keycodes.New()
	r.RebuildWithContext(keycodes.Context{ProtocolMajor: 6, Layers: 4})

	kc, ok := r.FindKeycode("RGB_TOG")
	require.True(t, ok, "hidden keycodes must stay addressable")
	assert.True(t, kc.Hidden)
	for _, visible := range r.Visible(keycodes.CategoryLighting) {
		assert.NotEqual(t, "RGB_TOG", visible.ID)
	}

	r.RebuildWithContext(keycodes.Context{
		ProtocolMajor:     6,
		Layers:            4,
		SupportedFeatures: []string{"rgblight"},
	})
	kc, ok = r.FindKeycode("RGB_TOG")
	require.True(t, ok)
	assert.False(t, kc.Hidden)
}

func TestMIDIVisibilityFollowsContext(t *testing.T) {
	r := keycodes.New()

	check := func(midi string, wantBasic, wantAdvanced bool) {
		t.Helper()
		r.RebuildWithContext(keycodes.Context{ProtocolMajor: 6, Layers: 4, MIDI: midi})
		on, ok := r.FindKeycode("MI_ON")
		require.True(t, ok)
		assert.Equal(t, wantBasic, !on.Hidden, "MI_ON visible with midi=%q", midi)
		c, ok := r.FindKeycode("MI_C")
		require.True(t, ok)
		assert.Equal(t, wantAdvanced, !c.Hidden, "MI_C visible with midi=%q", midi)
	}

	check("", false, false)
	check("basic", true, false)
	check("advanced", true, true)
}

func TestLookups(t *testing.T) {
	r := keycodes.New()

	kc, ok := r.FindKeycode("KC_ENTER") // alias
	require.True(t, ok)
	assert.Equal(t, "KC_ENT", kc.ID)
	assert.Equal(t, kc.ID, kc.Aliases[0])

	kc, ok = r.FindByQmkID("LSFT")
	require.True(t, ok)
	assert.Equal(t, "LSFT(kc)", kc.ID)
	assert.True(t, kc.Masked)

	kc, ok = r.FindByRecorderAlias("backspace")
	require.True(t, ok)
	assert.Equal(t, "KC_BSPC", kc.ID)

	outer, ok := r.FindOuterKeycode("LSFT(KC_A)")
	require.True(t, ok)
	assert.Equal(t, "LSFT(kc)", outer.ID)

	inner, ok := r.FindInnerKeycode("LSFT(KC_A)")
	require.True(t, ok)
	assert.Equal(t, "KC_A", inner.ID)

	_, ok = r.FindKeycode("KC_NOPE")
	assert.False(t, ok)
	_, ok = r.FindOuterKeycode("KC_A")
	assert.False(t, ok)
}

func TestLabelsAndTooltips(t *testing.T) {
	r := keycodes.New()

	assert.Equal(t, "Enter", r.KeycodeLabel("KC_ENT"))
	assert.Equal(t, "LSft+ A", r.KeycodeLabel("LSFT(KC_A)"))
	assert.Equal(t, "0x1234", r.KeycodeLabel("0x1234"))

	tip, ok := r.KeycodeTooltip("KC_TRNS")
	require.True(t, ok)
	assert.NotEmpty(t, tip)
	_, ok = r.KeycodeTooltip("KC_A")
	assert.False(t, ok)
}

func TestHiddenCategoryNeverListed(t *testing.T) {
	r := keycodes.New()

	kc, ok := r.FindKeycode("KC_LCAP")
	require.True(t, ok)
	assert.True(t, kc.Hidden)
	assert.Empty(t, r.Visible(keycodes.CategoryHidden))
}

func TestDefaultProtocolForUnknownMajor(t *testing.T) {
	r := keycodes.New()
	r.RebuildWithContext(keycodes.Context{ProtocolMajor: 0, Layers: 4})
	assert.Equal(t, 5, r.Protocol())

	r.SetProtocol(6)
	assert.Equal(t, 6, r.Protocol())
	r.SetProtocol(4)
	assert.Equal(t, 5, r.Protocol())
}
