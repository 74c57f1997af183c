// internal/defs/types.go
package defs

import "fmt"

// MortalCategory — тип смертного; определяет восприимчивость к страху.
type MortalCategory int

const (
	Child MortalCategory = iota
	Adult
	Elderly
	Skeptic
	Believer
)

var mortalCategoryNames = []string{"Child", "Adult", "Elderly", "Skeptic", "Believer"}

func (c MortalCategory) String() string {
	if c < 0 || int(c) >= len(mortalCategoryNames) {
		return fmt.Sprintf("MortalCategory(%d)", int(c))
	}
	return mortalCategoryNames[c]
}

func (c MortalCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *MortalCategory) UnmarshalText(b []byte) error {
	i, err := parseName(mortalCategoryNames, string(b), "mortal category")
	*c = MortalCategory(i)
	return err
}

// GhostCategory — тип призрака; определяет набор сил.
type GhostCategory int

const (
	Poltergeist GhostCategory = iota
	Banshee
	Wraith
	Phantom
	Specter
)

var ghostCategoryNames = []string{"Poltergeist", "Banshee", "Wraith", "Phantom", "Specter"}

func (c GhostCategory) String() string {
	if c < 0 || int(c) >= len(ghostCategoryNames) {
		return fmt.Sprintf("GhostCategory(%d)", int(c))
	}
	return ghostCategoryNames[c]
}

func (c GhostCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *GhostCategory) UnmarshalText(b []byte) error {
	i, err := parseName(ghostCategoryNames, string(b), "ghost category")
	*c = GhostCategory(i)
	return err
}

// AnchorCategory — тип якоря; определяет бонус и импульс якоря.
type AnchorCategory int

const (
	Mirror AnchorCategory = iota
	Electrical
	Furniture
	Plumbing
	Temperature
	Generic
)

var anchorCategoryNames = []string{"Mirror", "Electrical", "Furniture", "Plumbing", "Temperature", "Generic"}

func (c AnchorCategory) String() string {
	if c < 0 || int(c) >= len(anchorCategoryNames) {
		return fmt.Sprintf("AnchorCategory(%d)", int(c))
	}
	return anchorCategoryNames[c]
}

func (c AnchorCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *AnchorCategory) UnmarshalText(b []byte) error {
	i, err := parseName(anchorCategoryNames, string(b), "anchor category")
	*c = AnchorCategory(i)
	return err
}

// StatusKind identifies one of the timed overlays a mortal can carry.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusStun
	StatusFreeze
	StatusSlow
	StatusPossess
)

var statusKindNames = []string{"None", "Stun", "Freeze", "Slow", "Possess"}

func (k StatusKind) String() string {
	if k < 0 || int(k) >= len(statusKindNames) {
		return fmt.Sprintf("StatusKind(%d)", int(k))
	}
	return statusKindNames[k]
}

func (k StatusKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *StatusKind) UnmarshalText(b []byte) error {
	i, err := parseName(statusKindNames, string(b), "status kind")
	*k = StatusKind(i)
	return err
}

func parseName(names []string, s, what string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", what, s)
}
