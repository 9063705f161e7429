package tip

// DefaultPresets are the quick amounts offered in the tip dialog.
var DefaultPresets = []Amount{USDC(1), USDC(5), USDC(10), USDC(25)}

// DefaultPresetIndex selects 5 USDC.
const DefaultPresetIndex = 1

// Selection is the state of the tip dialog: a preset choice plus optional custom text.
type Selection struct {
	presets  []Amount
	selected int
	custom   string
}

// NewSelection starts on preset index def. Empty presets use DefaultPresets and
// an out-of-range def falls back to the first preset.
func NewSelection(presets []Amount, def int) *Selection {
	if len(presets) == 0 {
		presets = DefaultPresets
		def = DefaultPresetIndex
	}
	if def < 0 || def >= len(presets) {
		def = 0
	}
	cp := make([]Amount, len(presets))
	copy(cp, presets)
	return &Selection{presets: cp, selected: def}
}

// Presets returns the preset amounts.
func (s *Selection) Presets() []Amount {
	return s.presets
}

// Selected is the index of the selected preset.
func (s *Selection) Selected() int {
	return s.selected
}

// Select picks preset i and clears the custom entry. Out-of-range i is ignored.
func (s *Selection) Select(i int) {
	if i < 0 || i >= len(s.presets) {
		return
	}
	s.selected = i
	s.custom = ""
}

// Cycle moves the preset selection by delta, wrapping around.
func (s *Selection) Cycle(delta int) {
	n := len(s.presets)
	s.Select(((s.selected+delta)%n + n) % n)
}

// SetCustom stores the raw custom amount text.
func (s *Selection) SetCustom(text string) {
	s.custom = text
}

// Custom returns the raw custom amount text.
func (s *Selection) Custom() string {
	return s.custom
}

// UsingCustom reports whether the custom entry currently decides the amount.
func (s *Selection) UsingCustom() bool {
	_, err := ParseAmount(s.custom)
	return err == nil
}

// Final is the amount that will be sent: the custom entry if it parses to a
// positive amount, otherwise the selected preset.
func (s *Selection) Final() Amount {
	if a, err := ParseAmount(s.custom); err == nil {
		return a
	}
	return s.presets[s.selected]
}
