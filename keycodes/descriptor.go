package keycodes

// Category groups keycodes for UI-facing enumeration.
type Category string

const (
	CategoryBasic        Category = "basic"
	CategorySpecial      Category = "special"
	CategoryShifted      Category = "shifted"
	CategoryISO          Category = "iso"
	CategoryBoot         Category = "boot"
	CategoryQuantum      Category = "quantum"
	CategoryLayer        Category = "layer"
	CategoryBacklight    Category = "backlight"
	CategoryLighting     Category = "lighting"
	CategoryMedia        Category = "media"
	CategoryMIDIBasic    Category = "midi-basic"
	CategoryMIDIAdvanced Category = "midi-advanced"
	CategoryMacroBase    Category = "macro-base"
	CategoryMacro        Category = "macro"
	CategoryTapDance     Category = "tap-dance"
	CategoryCustom       Category = "custom"
	CategoryHidden       Category = "hidden"
)

// Categories lists all categories in the order a UI should present them.
var Categories = []Category{
	CategoryBasic,
	CategorySpecial,
	CategoryShifted,
	CategoryISO,
	CategoryLayer,
	CategoryBoot,
	CategoryQuantum,
	CategoryBacklight,
	CategoryLighting,
	CategoryMedia,
	CategoryMIDIBasic,
	CategoryMIDIAdvanced,
	CategoryMacroBase,
	CategoryMacro,
	CategoryTapDance,
	CategoryCustom,
	CategoryHidden,
}

// Keycode describes one named key function from the active registry.
// Instances handed out by lookups are snapshots; callers must re-resolve by
// identifier after a rebuild rather than hold on to old descriptors.
type Keycode struct {
	// ID is the canonical textual identifier, stable across rebuilds for the
	// same logical keycode. Masked wrappers carry their template suffix,
	// e.g. "LSFT(kc)".
	ID string
	// Value is the 16-bit protocol value (template base value for masked ids).
	Value uint16
	// Label is a short display string.
	Label string
	// Tooltip is an optional longer description.
	Tooltip string
	// Masked marks wrapper templates that consume an inner keycode or
	// modifier argument.
	Masked bool
	// Printable is the character emitted on keypress, when there is one.
	Printable string
	// Aliases lists acceptable textual forms. Aliases[0] == ID.
	Aliases []string
	Category Category
	// Hidden keycodes stay addressable but are excluded from category
	// listings, e.g. when the device lacks the required feature.
	Hidden bool
	// RequiresFeature names the capability the device must report for this
	// keycode to be visible.
	RequiresFeature string
}

// CustomKeycode is a device-defined keycode slot as reported by device
// configuration. Title and ShortName are optional.
type CustomKeycode struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	ShortName string `json:"shortName,omitempty" yaml:"shortName,omitempty" toml:"shortName,omitempty"`
}

// Context carries the device capability data that parameterizes a registry
// rebuild: how many layers and slots exist and which optional features the
// firmware reports.
type Context struct {
	ProtocolMajor     int             `json:"protocolMajor" yaml:"protocolMajor" toml:"protocolMajor"`
	Layers            int             `json:"layers" yaml:"layers" toml:"layers"`
	MacroCount        int             `json:"macroCount" yaml:"macroCount" toml:"macroCount"`
	TapDanceCount     int             `json:"tapDanceCount" yaml:"tapDanceCount" toml:"tapDanceCount"`
	CustomKeycodes    []CustomKeycode `json:"customKeycodes,omitempty" yaml:"customKeycodes,omitempty" toml:"customKeycodes,omitempty"`
	MIDI              string          `json:"midi,omitempty" yaml:"midi,omitempty" toml:"midi,omitempty"`
	SupportedFeatures []string        `json:"supportedFeatures,omitempty" yaml:"supportedFeatures,omitempty" toml:"supportedFeatures,omitempty"`
}

// DefaultContext returns the minimal context used before a device handshake
// has supplied real capability data.
func DefaultContext() Context {
	return Context{
		ProtocolMajor: 5,
		Layers:        4,
		MacroCount:    16,
		TapDanceCount: 0,
	}
}

func (c Context) hasFeature(name string) bool {
	for _, f := range c.SupportedFeatures {
		if f == name {
			return true
		}
	}
	return false
}
