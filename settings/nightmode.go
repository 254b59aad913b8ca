package settings

import (
	"fmt"
	"strings"
)

// NightMode is the persisted appearance preference.
type NightMode uint8

const (
	NightFollowSystem NightMode = iota // follow the platform setting
	NightNo                            // always light
	NightYes                           // always dark
)

var nightModes = [...]struct {
	value string
	label string
}{
	NightFollowSystem: {"follow_system", "Follow system"},
	NightNo:           {"no", "Light"},
	NightYes:          {"yes", "Dark"},
}

// String returns the stored literal: "follow_system", "no" or "yes".
func (m NightMode) String() string {
	if int(m) < len(nightModes) {
		return nightModes[m].value
	}
	return nightModes[NightFollowSystem].value
}

// Label returns the text shown next to the option.
func (m NightMode) Label() string {
	if int(m) < len(nightModes) {
		return nightModes[m].label
	}
	return nightModes[NightFollowSystem].label
}

// Dark resolves the mode to a dark or light appearance.
func (m NightMode) Dark(systemDark bool) bool {
	switch m {
	case NightYes:
		return true
	case NightNo:
		return false
	default:
		return systemDark
	}
}

// ParseNightMode maps a stored literal to a NightMode. Unknown values yield
// NightFollowSystem and an error.
func ParseNightMode(s string) (NightMode, error) {
	for i, m := range nightModes {
		if strings.EqualFold(s, m.value) {
			return NightMode(i), nil
		}
	}
	return NightFollowSystem, fmt.Errorf("unknown night mode %q", s)
}
