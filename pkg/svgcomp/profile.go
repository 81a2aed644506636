package svgcomp

import (
	"fmt"
	"strings"
)

// Profile is a versioned set of root-element rules. Earlier revisions of the
// converter only dropped id from the root; the current one also drops width
// and height and exposes a size prop instead.
type Profile struct {
	Name string
	// RootOmit lists attributes removed from the root element.
	RootOmit []string
	// SizeProp adds an optional numeric size prop rendered as width and height.
	SizeProp bool
	// DefaultSize is the size prop's default value.
	DefaultSize int
}

var (
	// ProfileV1 drops only id from the root and has no size prop.
	ProfileV1 = Profile{
		Name:     "v1",
		RootOmit: []string{"id"},
	}

	// ProfileV2 drops id, width and height from the root and injects a size prop.
	ProfileV2 = Profile{
		Name:        "v2",
		RootOmit:    []string{"id", "width", "height"},
		SizeProp:    true,
		DefaultSize: 24,
	}

	// DefaultProfile is the current revision.
	DefaultProfile = ProfileV2
)

var profiles = map[string]Profile{
	ProfileV1.Name: ProfileV1,
	ProfileV2.Name: ProfileV2,
}

// LookupProfile returns the profile registered under name.
func LookupProfile(name string) (Profile, error) {
	p, ok := profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (want v1 or v2)", name)
	}
	return p, nil
}

// omits reports whether the profile removes attr from the root element.
func (p Profile) omits(attr string) bool {
	for _, name := range p.RootOmit {
		if name == attr {
			return true
		}
	}
	return false
}
