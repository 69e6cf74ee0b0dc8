package keycodes

import "fmt"

// QMK modifier bits as used inside composite keycodes. The low four bits
// select the modifier, bit 4 moves it to the right-hand side.
const (
	modCtrl  uint16 = 0x01
	modShift uint16 = 0x02
	modAlt   uint16 = 0x04
	modGUI   uint16 = 0x08
	modRight uint16 = 0x10
)

// modTokens are the bare identifiers the expression grammar accepts as
// modifier arguments (LM, MT, OSM). They are not keycodes and never appear
// in the registry.
var modTokens = map[string]uint16{
	"MOD_LCTL": modCtrl,
	"MOD_LSFT": modShift,
	"MOD_LALT": modAlt,
	"MOD_LGUI": modGUI,
	"MOD_RCTL": modRight | modCtrl,
	"MOD_RSFT": modRight | modShift,
	"MOD_RALT": modRight | modAlt,
	"MOD_RGUI": modRight | modGUI,
	"MOD_MEH":  modCtrl | modShift | modAlt,
	"MOD_HYPR": modCtrl | modShift | modAlt | modGUI,
}

// modTokenName is the preferred rendering of a modifier bitmask when a
// composite value is decomposed back to text.
var modTokenName = map[uint16]string{
	modCtrl:                              "MOD_LCTL",
	modShift:                             "MOD_LSFT",
	modAlt:                               "MOD_LALT",
	modGUI:                               "MOD_LGUI",
	modRight | modCtrl:                   "MOD_RCTL",
	modRight | modShift:                  "MOD_RSFT",
	modRight | modAlt:                    "MOD_RALT",
	modRight | modGUI:                    "MOD_RGUI",
	modCtrl | modShift | modAlt:          "MOD_MEH",
	modCtrl | modShift | modAlt | modGUI: "MOD_HYPR",
}

// modWrap describes one modifier wrapper template, e.g. LSFT(kc).
type modWrap struct {
	name    string
	alias   string // short form, e.g. S for LSFT
	mods    uint16
	label   string
	tooltip string
}

var modWraps = []modWrap{
	{name: "LCTL", alias: "C", mods: modCtrl, label: "LCtl+", tooltip: "Hold Left Ctrl and press the inner keycode"},
	{name: "LSFT", alias: "S", mods: modShift, label: "LSft+", tooltip: "Hold Left Shift and press the inner keycode"},
	{name: "LALT", alias: "A", mods: modAlt, label: "LAlt+", tooltip: "Hold Left Alt and press the inner keycode"},
	{name: "LGUI", alias: "G", mods: modGUI, label: "LGui+", tooltip: "Hold Left GUI and press the inner keycode"},
	{name: "RCTL", mods: modRight | modCtrl, label: "RCtl+"},
	{name: "RSFT", mods: modRight | modShift, label: "RSft+"},
	{name: "RALT", mods: modRight | modAlt, label: "RAlt+"},
	{name: "RGUI", mods: modRight | modGUI, label: "RGui+"},
	{name: "LCA", mods: modCtrl | modAlt, label: "LCtl+LAlt+"},
	{name: "LSA", mods: modShift | modAlt, label: "LSft+LAlt+"},
	{name: "LCAG", mods: modCtrl | modAlt | modGUI, label: "LCtl+LAlt+LGui+"},
	{name: "SGUI", mods: modShift | modGUI, label: "LSft+LGui+"},
	{name: "RSA", mods: modRight | modShift | modAlt, label: "RSft+RAlt+"},
	{name: "RCS", mods: modRight | modCtrl | modShift, label: "RCtl+RSft+"},
	{name: "MEH", mods: modCtrl | modShift | modAlt, label: "Meh+", tooltip: "Ctrl+Shift+Alt"},
	{name: "HYPR", mods: modCtrl | modShift | modAlt | modGUI, label: "Hyper+", tooltip: "Ctrl+Shift+Alt+GUI"},
}

// modTap describes one mod-tap convenience template, e.g. LCTL_T(kc).
type modTap struct {
	name  string
	alias string
	mods  uint16
	label string
}

var modTaps = []modTap{
	{name: "LCTL_T", alias: "CTL_T", mods: modCtrl, label: "LCtl/Tap"},
	{name: "LSFT_T", alias: "SFT_T", mods: modShift, label: "LSft/Tap"},
	{name: "LALT_T", alias: "ALT_T", mods: modAlt, label: "LAlt/Tap"},
	{name: "LGUI_T", alias: "GUI_T", mods: modGUI, label: "LGui/Tap"},
	{name: "RCTL_T", mods: modRight | modCtrl, label: "RCtl/Tap"},
	{name: "RSFT_T", mods: modRight | modShift, label: "RSft/Tap"},
	{name: "RALT_T", mods: modRight | modAlt, label: "RAlt/Tap"},
	{name: "RGUI_T", mods: modRight | modGUI, label: "RGui/Tap"},
	{name: "C_S_T", mods: modCtrl | modShift, label: "Ctl+Sft/Tap"},
	{name: "LCA_T", mods: modCtrl | modAlt, label: "Ctl+Alt/Tap"},
	{name: "LSA_T", mods: modShift | modAlt, label: "Sft+Alt/Tap"},
	{name: "LCAG_T", mods: modCtrl | modAlt | modGUI, label: "Ctl+Alt+Gui/Tap"},
	{name: "SGUI_T", mods: modShift | modGUI, label: "Sft+Gui/Tap"},
	{name: "RCS_T", mods: modRight | modCtrl | modShift, label: "RCtl+RSft/Tap"},
	{name: "MEH_T", mods: modCtrl | modShift | modAlt, label: "Meh/Tap"},
	{name: "ALL_T", alias: "HYPR_T", mods: modCtrl | modShift | modAlt | modGUI, label: "Hyper/Tap"},
}

// baseKey is one table entry whose value is identical in both protocol
// versions (plain HID usages plus the QMK consumer/system block).
type baseKey struct {
	name      string
	value     uint16
	label     string
	printable string
	tooltip   string
	category  Category
	aliases   []string
	recorder  string
}

// baseKeys builds the version-independent portion of the table. Letters,
// digits, function and keypad keys are generated; the rest is curated.
func baseKeys() []baseKey {
	var keys []baseKey

	keys = append(keys,
		baseKey{name: "KC_NO", value: 0x00, label: "", category: CategorySpecial, aliases: []string{"XXXXXXX"}},
		baseKey{name: "KC_TRNS", value: 0x01, label: "▽", tooltip: "Pass the key through to the layer below", category: CategorySpecial, aliases: []string{"KC_TRANSPARENT", "_______"}},
	)

	for i := 0; i < 26; i++ {
		c := byte('A' + i)
		keys = append(keys, baseKey{
			name:      "KC_" + string(c),
			value:     0x04 + uint16(i),
			label:     string(c),
			printable: string(c + 'a' - 'A'),
			category:  CategoryBasic,
			recorder:  string(c),
		})
	}
	for i := 0; i < 10; i++ {
		c := byte('1' + i)
		if i == 9 {
			c = '0'
		}
		keys = append(keys, baseKey{
			name:      "KC_" + string(c),
			value:     0x1E + uint16(i),
			label:     string(c),
			printable: string(c),
			category:  CategoryBasic,
			recorder:  string(c),
		})
	}

	keys = append(keys,
		baseKey{name: "KC_ENT", value: 0x28, label: "Enter", category: CategoryBasic, aliases: []string{"KC_ENTER"}, recorder: "ENTER"},
		baseKey{name: "KC_ESC", value: 0x29, label: "Esc", category: CategoryBasic, aliases: []string{"KC_ESCAPE"}, recorder: "ESC"},
		baseKey{name: "KC_BSPC", value: 0x2A, label: "Bksp", category: CategoryBasic, aliases: []string{"KC_BSPACE"}, recorder: "BACKSPACE"},
		baseKey{name: "KC_TAB", value: 0x2B, label: "Tab", category: CategoryBasic, recorder: "TAB"},
		baseKey{name: "KC_SPC", value: 0x2C, label: "Space", printable: " ", category: CategoryBasic, aliases: []string{"KC_SPACE"}, recorder: "SPACE"},
		baseKey{name: "KC_MINS", value: 0x2D, label: "-", printable: "-", category: CategoryBasic, aliases: []string{"KC_MINUS"}, recorder: "MINUS"},
		baseKey{name: "KC_EQL", value: 0x2E, label: "=", printable: "=", category: CategoryBasic, aliases: []string{"KC_EQUAL"}, recorder: "EQUAL"},
		baseKey{name: "KC_LBRC", value: 0x2F, label: "[", printable: "[", category: CategoryBasic, aliases: []string{"KC_LBRACKET"}, recorder: "LEFTBRACE"},
		baseKey{name: "KC_RBRC", value: 0x30, label: "]", printable: "]", category: CategoryBasic, aliases: []string{"KC_RBRACKET"}, recorder: "RIGHTBRACE"},
		baseKey{name: "KC_BSLS", value: 0x31, label: "\\", printable: "\\", category: CategoryBasic, aliases: []string{"KC_BSLASH"}, recorder: "BACKSLASH"},
		baseKey{name: "KC_NUHS", value: 0x32, label: "ISO #", category: CategoryISO, aliases: []string{"KC_NONUS_HASH"}},
		baseKey{name: "KC_SCLN", value: 0x33, label: ";", printable: ";", category: CategoryBasic, aliases: []string{"KC_SCOLON"}, recorder: "SEMICOLON"},
		baseKey{name: "KC_QUOT", value: 0x34, label: "'", printable: "'", category: CategoryBasic, aliases: []string{"KC_QUOTE"}, recorder: "APOSTROPHE"},
		baseKey{name: "KC_GRV", value: 0x35, label: "`", printable: "`", category: CategoryBasic, aliases: []string{"KC_GRAVE"}, recorder: "GRAVE"},
		baseKey{name: "KC_COMM", value: 0x36, label: ",", printable: ",", category: CategoryBasic, aliases: []string{"KC_COMMA"}, recorder: "COMMA"},
		baseKey{name: "KC_DOT", value: 0x37, label: ".", printable: ".", category: CategoryBasic, recorder: "DOT"},
		baseKey{name: "KC_SLSH", value: 0x38, label: "/", printable: "/", category: CategoryBasic, aliases: []string{"KC_SLASH"}, recorder: "SLASH"},
		baseKey{name: "KC_CAPS", value: 0x39, label: "Caps Lock", category: CategoryBasic, aliases: []string{"KC_CAPSLOCK"}, recorder: "CAPSLOCK"},
	)

	for i := 0; i < 12; i++ {
		keys = append(keys, baseKey{
			name:     fmt.Sprintf("KC_F%d", i+1),
			value:    0x3A + uint16(i),
			label:    fmt.Sprintf("F%d", i+1),
			category: CategoryBasic,
			recorder: fmt.Sprintf("F%d", i+1),
		})
	}

	keys = append(keys,
		baseKey{name: "KC_PSCR", value: 0x46, label: "Print Screen", category: CategoryBasic, aliases: []string{"KC_PSCREEN"}, recorder: "SYSRQ"},
		baseKey{name: "KC_SCRL", value: 0x47, label: "Scroll Lock", category: CategoryBasic, aliases: []string{"KC_SLCK", "KC_SCROLLLOCK"}, recorder: "SCROLLLOCK"},
		baseKey{name: "KC_PAUS", value: 0x48, label: "Pause", category: CategoryBasic, aliases: []string{"KC_PAUSE"}, recorder: "PAUSE"},
		baseKey{name: "KC_INS", value: 0x49, label: "Insert", category: CategoryBasic, aliases: []string{"KC_INSERT"}, recorder: "INSERT"},
		baseKey{name: "KC_HOME", value: 0x4A, label: "Home", category: CategoryBasic, recorder: "HOME"},
		baseKey{name: "KC_PGUP", value: 0x4B, label: "Page Up", category: CategoryBasic, recorder: "PAGEUP"},
		baseKey{name: "KC_DEL", value: 0x4C, label: "Del", category: CategoryBasic, aliases: []string{"KC_DELETE"}, recorder: "DELETE"},
		baseKey{name: "KC_END", value: 0x4D, label: "End", category: CategoryBasic, recorder: "END"},
		baseKey{name: "KC_PGDN", value: 0x4E, label: "Page Down", category: CategoryBasic, aliases: []string{"KC_PGDOWN"}, recorder: "PAGEDOWN"},
		baseKey{name: "KC_RGHT", value: 0x4F, label: "→", category: CategoryBasic, aliases: []string{"KC_RIGHT"}, recorder: "RIGHT"},
		baseKey{name: "KC_LEFT", value: 0x50, label: "←", category: CategoryBasic, recorder: "LEFT"},
		baseKey{name: "KC_DOWN", value: 0x51, label: "↓", category: CategoryBasic, recorder: "DOWN"},
		baseKey{name: "KC_UP", value: 0x52, label: "↑", category: CategoryBasic, recorder: "UP"},
		baseKey{name: "KC_NUM", value: 0x53, label: "Num Lock", category: CategoryBasic, aliases: []string{"KC_NLCK", "KC_NUMLOCK"}, recorder: "NUMLOCK"},
		baseKey{name: "KC_PSLS", value: 0x54, label: "Num /", printable: "/", category: CategoryBasic, aliases: []string{"KC_KP_SLASH"}, recorder: "KPSLASH"},
		baseKey{name: "KC_PAST", value: 0x55, label: "Num *", printable: "*", category: CategoryBasic, aliases: []string{"KC_KP_ASTERISK"}, recorder: "KPASTERISK"},
		baseKey{name: "KC_PMNS", value: 0x56, label: "Num -", printable: "-", category: CategoryBasic, aliases: []string{"KC_KP_MINUS"}, recorder: "KPMINUS"},
		baseKey{name: "KC_PPLS", value: 0x57, label: "Num +", printable: "+", category: CategoryBasic, aliases: []string{"KC_KP_PLUS"}, recorder: "KPPLUS"},
		baseKey{name: "KC_PENT", value: 0x58, label: "Num Enter", category: CategoryBasic, aliases: []string{"KC_KP_ENTER"}, recorder: "KPENTER"},
	)

	for i := 0; i < 10; i++ {
		c := byte('1' + i)
		if i == 9 {
			c = '0'
		}
		keys = append(keys, baseKey{
			name:      "KC_P" + string(c),
			value:     0x59 + uint16(i),
			label:     "Num " + string(c),
			printable: string(c),
			category:  CategoryBasic,
			aliases:   []string{"KC_KP_" + string(c)},
			recorder:  "KP" + string(c),
		})
	}

	keys = append(keys,
		baseKey{name: "KC_PDOT", value: 0x63, label: "Num .", printable: ".", category: CategoryBasic, aliases: []string{"KC_KP_DOT"}, recorder: "KPDOT"},
		baseKey{name: "KC_NUBS", value: 0x64, label: "ISO \\", category: CategoryISO, aliases: []string{"KC_NONUS_BSLASH"}},
		baseKey{name: "KC_APP", value: 0x65, label: "Menu", category: CategoryBasic, aliases: []string{"KC_APPLICATION"}, recorder: "COMPOSE"},
		baseKey{name: "KC_PEQL", value: 0x67, label: "Num =", printable: "=", category: CategoryBasic, aliases: []string{"KC_KP_EQUAL"}},
	)

	for i := 0; i < 12; i++ {
		keys = append(keys, baseKey{
			name:     fmt.Sprintf("KC_F%d", i+13),
			value:    0x68 + uint16(i),
			label:    fmt.Sprintf("F%d", i+13),
			category: CategoryBasic,
			recorder: fmt.Sprintf("F%d", i+13),
		})
	}

	keys = append(keys,
		// Locking variants are addressable but never offered in listings.
		baseKey{name: "KC_LCAP", value: 0x82, label: "Locking Caps", category: CategoryHidden},
		baseKey{name: "KC_LNUM", value: 0x83, label: "Locking Num", category: CategoryHidden},
		baseKey{name: "KC_LSCR", value: 0x84, label: "Locking Scroll", category: CategoryHidden},

		baseKey{name: "KC_RO", value: 0x87, label: "ろ", category: CategoryISO, aliases: []string{"KC_INT1"}},
		baseKey{name: "KC_KANA", value: 0x88, label: "かな", category: CategoryISO, aliases: []string{"KC_INT2"}},
		baseKey{name: "KC_JYEN", value: 0x89, label: "¥", category: CategoryISO, aliases: []string{"KC_INT3"}},
		baseKey{name: "KC_HENK", value: 0x8A, label: "変換", category: CategoryISO, aliases: []string{"KC_INT4"}},
		baseKey{name: "KC_MHEN", value: 0x8B, label: "無変換", category: CategoryISO, aliases: []string{"KC_INT5"}},
		baseKey{name: "KC_LNG1", value: 0x90, label: "한/영", category: CategoryISO, aliases: []string{"KC_LANG1", "KC_HAEN"}},
		baseKey{name: "KC_LNG2", value: 0x91, label: "漢字", category: CategoryISO, aliases: []string{"KC_LANG2", "KC_HANJ"}},

		baseKey{name: "KC_PWR", value: 0xA5, label: "Power", category: CategoryMedia, aliases: []string{"KC_SYSTEM_POWER"}},
		baseKey{name: "KC_SLEP", value: 0xA6, label: "Sleep", category: CategoryMedia, aliases: []string{"KC_SYSTEM_SLEEP"}},
		baseKey{name: "KC_WAKE", value: 0xA7, label: "Wake", category: CategoryMedia, aliases: []string{"KC_SYSTEM_WAKE"}},
		baseKey{name: "KC_MUTE", value: 0xA8, label: "Mute", category: CategoryMedia, aliases: []string{"KC_AUDIO_MUTE"}},
		baseKey{name: "KC_VOLU", value: 0xA9, label: "Vol +", category: CategoryMedia, aliases: []string{"KC_AUDIO_VOL_UP"}},
		baseKey{name: "KC_VOLD", value: 0xAA, label: "Vol -", category: CategoryMedia, aliases: []string{"KC_AUDIO_VOL_DOWN"}},
		baseKey{name: "KC_MNXT", value: 0xAB, label: "Next Track", category: CategoryMedia, aliases: []string{"KC_MEDIA_NEXT_TRACK"}},
		baseKey{name: "KC_MPRV", value: 0xAC, label: "Prev Track", category: CategoryMedia, aliases: []string{"KC_MEDIA_PREV_TRACK"}},
		baseKey{name: "KC_MSTP", value: 0xAD, label: "Stop", category: CategoryMedia, aliases: []string{"KC_MEDIA_STOP"}},
		baseKey{name: "KC_MPLY", value: 0xAE, label: "Play/Pause", category: CategoryMedia, aliases: []string{"KC_MEDIA_PLAY_PAUSE"}},
		baseKey{name: "KC_MSEL", value: 0xAF, label: "Media Select", category: CategoryMedia, aliases: []string{"KC_MEDIA_SELECT"}},
		baseKey{name: "KC_EJCT", value: 0xB0, label: "Eject", category: CategoryMedia, aliases: []string{"KC_MEDIA_EJECT"}},
		baseKey{name: "KC_MAIL", value: 0xB1, label: "Mail", category: CategoryMedia},
		baseKey{name: "KC_CALC", value: 0xB2, label: "Calculator", category: CategoryMedia, aliases: []string{"KC_CALCULATOR"}},
		baseKey{name: "KC_MYCM", value: 0xB3, label: "My Computer", category: CategoryMedia, aliases: []string{"KC_MY_COMPUTER"}},
		baseKey{name: "KC_WSCH", value: 0xB4, label: "Web Search", category: CategoryMedia, aliases: []string{"KC_WWW_SEARCH"}},
		baseKey{name: "KC_WHOM", value: 0xB5, label: "Web Home", category: CategoryMedia, aliases: []string{"KC_WWW_HOME"}},
		baseKey{name: "KC_WBAK", value: 0xB6, label: "Web Back", category: CategoryMedia, aliases: []string{"KC_WWW_BACK"}},
		baseKey{name: "KC_WFWD", value: 0xB7, label: "Web Forward", category: CategoryMedia, aliases: []string{"KC_WWW_FORWARD"}},
		baseKey{name: "KC_WSTP", value: 0xB8, label: "Web Stop", category: CategoryMedia, aliases: []string{"KC_WWW_STOP"}},
		baseKey{name: "KC_WREF", value: 0xB9, label: "Web Refresh", category: CategoryMedia, aliases: []string{"KC_WWW_REFRESH"}},
		baseKey{name: "KC_WFAV", value: 0xBA, label: "Web Favorites", category: CategoryMedia, aliases: []string{"KC_WWW_FAVORITES"}},
		baseKey{name: "KC_MFFD", value: 0xBB, label: "Fast Forward", category: CategoryMedia, aliases: []string{"KC_MEDIA_FAST_FORWARD"}},
		baseKey{name: "KC_MRWD", value: 0xBC, label: "Rewind", category: CategoryMedia, aliases: []string{"KC_MEDIA_REWIND"}},
		baseKey{name: "KC_BRIU", value: 0xBD, label: "Brightness +", category: CategoryMedia, aliases: []string{"KC_BRIGHTNESS_UP"}},
		baseKey{name: "KC_BRID", value: 0xBE, label: "Brightness -", category: CategoryMedia, aliases: []string{"KC_BRIGHTNESS_DOWN"}},

		baseKey{name: "KC_LCTL", value: 0xE0, label: "Left Ctrl", category: CategoryBasic, aliases: []string{"KC_LCTRL"}, recorder: "LEFTCTRL"},
		baseKey{name: "KC_LSFT", value: 0xE1, label: "Left Shift", category: CategoryBasic, aliases: []string{"KC_LSHIFT"}, recorder: "LEFTSHIFT"},
		baseKey{name: "KC_LALT", value: 0xE2, label: "Left Alt", category: CategoryBasic, recorder: "LEFTALT"},
		baseKey{name: "KC_LGUI", value: 0xE3, label: "Left GUI", category: CategoryBasic, aliases: []string{"KC_LCMD", "KC_LWIN"}, recorder: "LEFTMETA"},
		baseKey{name: "KC_RCTL", value: 0xE4, label: "Right Ctrl", category: CategoryBasic, aliases: []string{"KC_RCTRL"}, recorder: "RIGHTCTRL"},
		baseKey{name: "KC_RSFT", value: 0xE5, label: "Right Shift", category: CategoryBasic, aliases: []string{"KC_RSHIFT"}, recorder: "RIGHTSHIFT"},
		baseKey{name: "KC_RALT", value: 0xE6, label: "Right Alt", category: CategoryBasic, recorder: "RIGHTALT"},
		baseKey{name: "KC_RGUI", value: 0xE7, label: "Right GUI", category: CategoryBasic, aliases: []string{"KC_RCMD", "KC_RWIN"}, recorder: "RIGHTMETA"},
	)

	return keys
}

// shiftedKey is a named shifted-symbol alias, e.g. KC_EXLM for LSFT(KC_1).
// The list is authoritative domain data: it drives both table membership and
// the decomposition preference when a shifted composite is serialized.
type shiftedKey struct {
	name  string
	inner string // base key the symbol sits on
	label string
}

var shiftedKeys = []shiftedKey{
	{name: "KC_TILD", inner: "KC_GRV", label: "~"},
	{name: "KC_EXLM", inner: "KC_1", label: "!"},
	{name: "KC_AT", inner: "KC_2", label: "@"},
	{name: "KC_HASH", inner: "KC_3", label: "#"},
	{name: "KC_DLR", inner: "KC_4", label: "$"},
	{name: "KC_PERC", inner: "KC_5", label: "%"},
	{name: "KC_CIRC", inner: "KC_6", label: "^"},
	{name: "KC_AMPR", inner: "KC_7", label: "&"},
	{name: "KC_ASTR", inner: "KC_8", label: "*"},
	{name: "KC_LPRN", inner: "KC_9", label: "("},
	{name: "KC_RPRN", inner: "KC_0", label: ")"},
	{name: "KC_UNDS", inner: "KC_MINS", label: "_"},
	{name: "KC_PLUS", inner: "KC_EQL", label: "+"},
	{name: "KC_LCBR", inner: "KC_LBRC", label: "{"},
	{name: "KC_RCBR", inner: "KC_RBRC", label: "}"},
	{name: "KC_PIPE", inner: "KC_BSLS", label: "|"},
	{name: "KC_COLN", inner: "KC_SCLN", label: ":"},
	{name: "KC_DQUO", inner: "KC_QUOT", label: "\""},
	{name: "KC_LABK", inner: "KC_COMM", label: "<"},
	{name: "KC_RABK", inner: "KC_DOT", label: ">"},
	{name: "KC_QUES", inner: "KC_SLSH", label: "?"},
}

// versionedKey is a table entry whose numeric value depends on the protocol
// major version. Families only present as real codes in v6 get fake v5
// addresses above 0xF000, outside every real v5 range, so both tables expose
// the same name set; the registry hides them when the feature is missing.
type versionedKey struct {
	name     string
	v5, v6   uint16
	label    string
	tooltip  string
	category Category
	aliases  []string
	feature  string
}

const fakeV5Base = 0xF000

var versionedKeys = []versionedKey{
	// Boot / debug
	{name: "QK_BOOT", v5: 0x5C00, v6: 0x7C00, label: "Reset", tooltip: "Jump to bootloader", category: CategoryBoot, aliases: []string{"RESET"}},
	{name: "DB_TOGG", v5: 0x5C01, v6: 0x7C02, label: "Debug", tooltip: "Toggle debug mode", category: CategoryBoot, aliases: []string{"DEBUG"}},
	{name: "EE_CLR", v5: 0x5C02, v6: 0x7C03, label: "EEPROM Clear", category: CategoryBoot, aliases: []string{"EEP_RST", "EEPROM_RESET"}},

	// Quantum
	{name: "QK_GESC", v5: 0x5C16, v6: 0x7C16, label: "Esc `", tooltip: "Esc normally, ` with GUI or Shift", category: CategoryQuantum, aliases: []string{"KC_GESC", "GRAVE_ESC"}},
	{name: "CW_TOGG", v5: fakeV5Base + 0x80, v6: 0x7C73, label: "Caps Word", category: CategoryQuantum, feature: "caps_word"},

	// Backlight
	{name: "BL_ON", v5: 0x5CB0, v6: 0x7800, label: "BL On", category: CategoryBacklight, feature: "backlight"},
	{name: "BL_OFF", v5: 0x5CB1, v6: 0x7801, label: "BL Off", category: CategoryBacklight, feature: "backlight"},
	{name: "BL_TOGG", v5: 0x5CB2, v6: 0x7802, label: "BL Toggle", category: CategoryBacklight, feature: "backlight"},
	{name: "BL_DEC", v5: 0x5CB3, v6: 0x7803, label: "BL -", category: CategoryBacklight, feature: "backlight"},
	{name: "BL_INC", v5: 0x5CB4, v6: 0x7804, label: "BL +", category: CategoryBacklight, feature: "backlight"},
	{name: "BL_STEP", v5: 0x5CB5, v6: 0x7805, label: "BL Cycle", category: CategoryBacklight, feature: "backlight"},
	{name: "BL_BRTG", v5: 0x5CB6, v6: 0x7806, label: "BL Breathe", category: CategoryBacklight, feature: "backlight"},

	// RGB underglow
	{name: "RGB_TOG", v5: 0x5CC0, v6: 0x7820, label: "RGB Toggle", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_MOD", v5: 0x5CC1, v6: 0x7821, label: "RGB Mode +", category: CategoryLighting, aliases: []string{"RGB_MODE_FORWARD"}, feature: "rgblight"},
	{name: "RGB_RMOD", v5: 0x5CC2, v6: 0x7822, label: "RGB Mode -", category: CategoryLighting, aliases: []string{"RGB_MODE_REVERSE"}, feature: "rgblight"},
	{name: "RGB_HUI", v5: 0x5CC3, v6: 0x7823, label: "Hue +", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_HUD", v5: 0x5CC4, v6: 0x7824, label: "Hue -", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_SAI", v5: 0x5CC5, v6: 0x7825, label: "Sat +", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_SAD", v5: 0x5CC6, v6: 0x7826, label: "Sat -", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_VAI", v5: 0x5CC7, v6: 0x7827, label: "Bright +", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_VAD", v5: 0x5CC8, v6: 0x7828, label: "Bright -", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_SPI", v5: 0x5CC9, v6: 0x7829, label: "Effect +", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_SPD", v5: 0x5CCA, v6: 0x782A, label: "Effect -", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_M_P", v5: 0x5CCB, v6: 0x782B, label: "RGB Plain", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_M_B", v5: 0x5CCC, v6: 0x782C, label: "RGB Breathe", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_M_R", v5: 0x5CCD, v6: 0x782D, label: "RGB Rainbow", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_M_SW", v5: 0x5CCE, v6: 0x782E, label: "RGB Swirl", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_M_SN", v5: 0x5CCF, v6: 0x782F, label: "RGB Snake", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_M_K", v5: 0x5CD0, v6: 0x7830, label: "RGB Knight", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_M_X", v5: 0x5CD1, v6: 0x7831, label: "RGB Xmas", category: CategoryLighting, feature: "rgblight"},
	{name: "RGB_M_G", v5: 0x5CD2, v6: 0x7832, label: "RGB Gradient", category: CategoryLighting, feature: "rgblight"},

	// RGB matrix: real codes only in v6
	{name: "RM_ON", v5: fakeV5Base + 0x00, v6: 0x7840, label: "Matrix On", category: CategoryLighting, feature: "rgb_matrix"},
	{name: "RM_OFF", v5: fakeV5Base + 0x01, v6: 0x7841, label: "Matrix Off", category: CategoryLighting, feature: "rgb_matrix"},
	{name: "RM_TOGG", v5: fakeV5Base + 0x02, v6: 0x7842, label: "Matrix Toggle", category: CategoryLighting, feature: "rgb_matrix"},
	{name: "RM_NEXT", v5: fakeV5Base + 0x03, v6: 0x7843, label: "Matrix Mode +", category: CategoryLighting, feature: "rgb_matrix"},
	{name: "RM_HUEU", v5: fakeV5Base + 0x04, v6: 0x7844, label: "Matrix Hue +", category: CategoryLighting, feature: "rgb_matrix"},
	{name: "RM_HUED", v5: fakeV5Base + 0x05, v6: 0x7845, label: "Matrix Hue -", category: CategoryLighting, feature: "rgb_matrix"},
	{name: "RM_SATU", v5: fakeV5Base + 0x06, v6: 0x7846, label: "Matrix Sat +", category: CategoryLighting, feature: "rgb_matrix"},
	{name: "RM_SATD", v5: fakeV5Base + 0x07, v6: 0x7847, label: "Matrix Sat -", category: CategoryLighting, feature: "rgb_matrix"},
	{name: "RM_VALU", v5: fakeV5Base + 0x08, v6: 0x7848, label: "Matrix Bright +", category: CategoryLighting, feature: "rgb_matrix"},
	{name: "RM_VALD", v5: fakeV5Base + 0x09, v6: 0x7849, label: "Matrix Bright -", category: CategoryLighting, feature: "rgb_matrix"},

	// Sequencer: real codes only in v6
	{name: "SQ_ON", v5: fakeV5Base + 0x20, v6: 0x7200, label: "Seq On", category: CategoryQuantum, feature: "sequencer"},
	{name: "SQ_OFF", v5: fakeV5Base + 0x21, v6: 0x7201, label: "Seq Off", category: CategoryQuantum, feature: "sequencer"},
	{name: "SQ_TOGG", v5: fakeV5Base + 0x22, v6: 0x7202, label: "Seq Toggle", category: CategoryQuantum, feature: "sequencer"},

	// Swap hands: real codes only in v6
	{name: "SH_TOGG", v5: fakeV5Base + 0x40, v6: 0x56F0, label: "Swap Toggle", category: CategoryQuantum, feature: "swap_hands"},
	{name: "SH_ON", v5: fakeV5Base + 0x41, v6: 0x56F1, label: "Swap On", category: CategoryQuantum, feature: "swap_hands"},
	{name: "SH_OFF", v5: fakeV5Base + 0x42, v6: 0x56F2, label: "Swap Off", category: CategoryQuantum, feature: "swap_hands"},
	{name: "SH_MON", v5: fakeV5Base + 0x43, v6: 0x56F3, label: "Swap Hold", category: CategoryQuantum, feature: "swap_hands"},
	{name: "SH_MOFF", v5: fakeV5Base + 0x44, v6: 0x56F4, label: "Unswap Hold", category: CategoryQuantum, feature: "swap_hands"},
	{name: "SH_TT", v5: fakeV5Base + 0x45, v6: 0x56F5, label: "Swap Tap Toggle", category: CategoryQuantum, feature: "swap_hands"},
	{name: "SH_OS", v5: fakeV5Base + 0x46, v6: 0x56F6, label: "Swap One Shot", category: CategoryQuantum, feature: "swap_hands"},

	// Joystick buttons: real codes only in v6
	{name: "JS_0", v5: fakeV5Base + 0x60, v6: 0x7400, label: "Joy 0", category: CategoryQuantum, feature: "joystick"},
	{name: "JS_1", v5: fakeV5Base + 0x61, v6: 0x7401, label: "Joy 1", category: CategoryQuantum, feature: "joystick"},
	{name: "JS_2", v5: fakeV5Base + 0x62, v6: 0x7402, label: "Joy 2", category: CategoryQuantum, feature: "joystick"},
	{name: "JS_3", v5: fakeV5Base + 0x63, v6: 0x7403, label: "Joy 3", category: CategoryQuantum, feature: "joystick"},
	{name: "JS_4", v5: fakeV5Base + 0x64, v6: 0x7404, label: "Joy 4", category: CategoryQuantum, feature: "joystick"},
	{name: "JS_5", v5: fakeV5Base + 0x65, v6: 0x7405, label: "Joy 5", category: CategoryQuantum, feature: "joystick"},
	{name: "JS_6", v5: fakeV5Base + 0x66, v6: 0x7406, label: "Joy 6", category: CategoryQuantum, feature: "joystick"},
	{name: "JS_7", v5: fakeV5Base + 0x67, v6: 0x7407, label: "Joy 7", category: CategoryQuantum, feature: "joystick"},

	// Dynamic macro controls
	{name: "DM_REC1", v5: 0x5D00, v6: 0x7C40, label: "Rec Macro 1", category: CategoryMacroBase},
	{name: "DM_REC2", v5: 0x5D01, v6: 0x7C41, label: "Rec Macro 2", category: CategoryMacroBase},
	{name: "DM_RSTP", v5: 0x5D02, v6: 0x7C42, label: "Stop Rec", category: CategoryMacroBase},
	{name: "DM_PLY1", v5: 0x5D03, v6: 0x7C43, label: "Play Macro 1", category: CategoryMacroBase},
	{name: "DM_PLY2", v5: 0x5D04, v6: 0x7C44, label: "Play Macro 2", category: CategoryMacroBase},

	// Combined momentary shortcuts for layer pairs (1,3) and (2,3)
	{name: "FN_MO13", v5: 0x5F10, v6: 0x7C77, label: "Fn1 (Fn3)", tooltip: "Momentary layer 1, layer 3 when combined with Fn2", category: CategoryLayer, aliases: []string{"TL_LOWR"}},
	{name: "FN_MO23", v5: 0x5F11, v6: 0x7C78, label: "Fn2 (Fn3)", tooltip: "Momentary layer 2, layer 3 when combined with Fn1", category: CategoryLayer, aliases: []string{"TL_UPPR"}},
}

// midiKey values sit at midiBase+offset of the active layout so the whole
// block relocates between protocol versions.
type midiKey struct {
	name     string
	offset   uint16
	label    string
	category Category
}

func midiKeys() []midiKey {
	keys := []midiKey{
		{name: "MI_ON", offset: 0x00, label: "MIDI On", category: CategoryMIDIBasic},
		{name: "MI_OFF", offset: 0x01, label: "MIDI Off", category: CategoryMIDIBasic},
		{name: "MI_TOGG", offset: 0x02, label: "MIDI Toggle", category: CategoryMIDIBasic},
	}
	notes := []string{"C", "Cs", "D", "Ds", "E", "F", "Fs", "G", "Gs", "A", "As", "B"}
	for i, n := range notes {
		keys = append(keys, midiKey{
			name:     "MI_" + n,
			offset:   0x03 + uint16(i),
			label:    "MIDI " + n,
			category: CategoryMIDIAdvanced,
		})
	}
	advanced := []struct {
		name  string
		label string
	}{
		{"MI_OCTD", "Octave -"}, {"MI_OCTU", "Octave +"},
		{"MI_TRSD", "Transpose -"}, {"MI_TRSU", "Transpose +"},
		{"MI_VELD", "Velocity -"}, {"MI_VELU", "Velocity +"},
		{"MI_CHND", "Channel -"}, {"MI_CHNU", "Channel +"},
		{"MI_AOFF", "Notes Off"}, {"MI_SUS", "Sustain"},
		{"MI_PORT", "Portamento"}, {"MI_SOST", "Sostenuto"},
		{"MI_SOFT", "Soft Pedal"}, {"MI_LEG", "Legato"},
		{"MI_MOD", "Modulation"}, {"MI_BNDD", "Bend -"}, {"MI_BNDU", "Bend +"},
	}
	for i, a := range advanced {
		keys = append(keys, midiKey{
			name:     a.name,
			offset:   0x0F + uint16(i),
			label:    "MIDI " + a.label,
			category: CategoryMIDIAdvanced,
		})
	}
	return keys
}
