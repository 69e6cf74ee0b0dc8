package keycodes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keyforge-kb/keyforge/keycodes"
)

func TestEvaluateExpressions(t *testing.T) {
	r := keycodes.New() // protocol 5

	tests := []struct {
		name string
		expr string
		want uint16
	}{
		{name: "decimal literal", expr: "4", want: 0x0004},
		{name: "hex literal", expr: "0x1E", want: 0x001E},
		{name: "hex literal uppercase prefix", expr: "0XffFF", want: 0xFFFF},
		{name: "bare identifier", expr: "KC_A", want: 0x0004},
		{name: "identifier alias", expr: "KC_ENTER", want: 0x0028},
		{name: "and binds tighter than or", expr: "0x03 | 0xFF & 0xF0", want: 0x00F3},
		{name: "xor between or and and", expr: "0x0F ^ 0x01 | 0x100", want: 0x010E},
		{name: "additive binds tighter than and", expr: "0xFF & 0xF0 + 0x10", want: 0x0000},
		{name: "shift binds tighter than add", expr: "1 + 1 << 8", want: 0x0101},
		{name: "unary minus", expr: "-1", want: 0xFFFF},
		{name: "parenthesized", expr: "(1 | 2) << 4", want: 0x0030},
		{name: "identifier arithmetic", expr: "KC_A + 1", want: 0x0005},

		{name: "modifier wrap", expr: "LSFT(KC_A)", want: 0x0204},
		{name: "modifier wrap short form", expr: "S(KC_A)", want: 0x0204},
		{name: "stacked wrap mods", expr: "HYPR(KC_SPC)", want: 0x0F2C},
		{name: "layer tap two args", expr: "LT(2, KC_A)", want: 0x4204},
		{name: "layer tap indexed", expr: "LT2(KC_A)", want: 0x4204},
		{name: "mod tap convenience", expr: "LCTL_T(KC_A)", want: 0x6104},
		{name: "mod tap generic", expr: "MT(MOD_LSFT, KC_A)", want: 0x6204},
		{name: "layer mod", expr: "LM(3, MOD_LALT)", want: 0x5934},
		{name: "layer mod indexed", expr: "LM3(MOD_LALT)", want: 0x5934},
		{name: "momentary", expr: "MO(3)", want: 0x5103},
		{name: "to layer sets on-press bit", expr: "TO(2)", want: 0x5012},
		{name: "tap dance", expr: "TD(7)", want: 0x5707},
		{name: "one shot mod", expr: "OSM(MOD_RCTL)", want: 0x5511},
		{name: "wrapper arg is an expression", expr: "LT(1+1, KC_A)", want: 0x4204},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Evaluate(tt.expr)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateFailures(t *testing.T) {
	r := keycodes.New()

	tests := []struct {
		name string
		expr string
	}{
		{name: "two identifiers no operator", expr: "KC_A KC_B"},
		{name: "invalid character", expr: "KC_A @ 2"},
		{name: "unknown identifier", expr: "KC_BOGUS"},
		{name: "unknown wrapper", expr: "WAT(KC_A)"},
		{name: "dangling operator", expr: "KC_A |"},
		{name: "unclosed call", expr: "LSFT(KC_A"},
		{name: "unclosed paren", expr: "(KC_A"},
		{name: "stray close paren", expr: "KC_A)"},
		{name: "empty input", expr: ""},
		{name: "lone shift bracket", expr: "1 < 2"},
		{name: "malformed hex", expr: "0x"},
		{name: "wrong arity", expr: "LT(1, KC_A, KC_B)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Evaluate(tt.expr)
			assert.Error(t, err)

			// The codec surface degrades the same inputs to the sentinel.
			assert.Equal(t, keycodes.KCNo, r.Deserialize(tt.expr))
		})
	}
}

func TestEvaluateProtocolDependence(t *testing.T) {
	r := keycodes.New()

	r.SetProtocol(5)
	v5, err := r.Evaluate("LM3(MOD_LALT)")
	assert.NoError(t, err)

	r.SetProtocol(6)
	v6, err := r.Evaluate("LM3(MOD_LALT)")
	assert.NoError(t, err)

	assert.Equal(t, uint16(0x5934), v5)
	assert.Equal(t, uint16(0x5064), v6)
	assert.NotEqual(t, v5, v6)
}
