package os

import (
	"fmt"
	"strings"
)

// Family is the coarse operating system category of a machine image.
// It is always derived from the image selector, never supplied directly.
type Family int

const (
	UnknownFamily Family = iota

	LinuxFamily   Family = iota
	WindowsFamily Family = iota
)

var familyNames = map[Family]string{
	UnknownFamily: "unknown",
	LinuxFamily:   "linux",
	WindowsFamily: "windows",
}

func (f Family) String() string {
	if name, found := familyNames[f]; found {
		return name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Label is the human-readable form used in summaries.
func (f Family) Label() string {
	switch f {
	case WindowsFamily:
		return "Windows"
	case LinuxFamily:
		return "Linux"
	default:
		return "Unknown"
	}
}

// NewFamilyFromString parses the String() form, case-insensitive.
func NewFamilyFromString(familyStr string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(familyStr)) {
	case "windows":
		return WindowsFamily, nil
	case "linux":
		return LinuxFamily, nil
	case "unknown", "":
		return UnknownFamily, nil
	default:
		return UnknownFamily, fmt.Errorf("unknown OS family: %s", familyStr)
	}
}

func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := NewFamilyFromString(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
