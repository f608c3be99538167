package keyboard

import "fmt"

// LogicalKey is the meaning of a key under the active layout.
// Character producing keys are resolved by the layout library and never
// appear here. The zero value is the unidentified key.
type LogicalKey struct {
	named NamedKey
}

// UnidentifiedKey is the logical key used when no meaning is known.
var UnidentifiedKey = LogicalKey{}

// Named returns the logical key for n.
func Named(n NamedKey) LogicalKey {
	return LogicalKey{named: n}
}

// Named reports the key name, if the key is identified.
func (k LogicalKey) Named() (NamedKey, bool) {
	return k.named, k.named != 0
}

func (k LogicalKey) String() string {
	if k.named == 0 {
		return "Unidentified"
	}
	return k.named.String()
}

// Location is the coarse position of a key that exists more than once
// on a keyboard.
type Location uint8

const (
	LocationStandard Location = iota
	LocationLeft
	LocationRight
	LocationNumpad
)

func (l Location) String() string {
	switch l {
	case LocationStandard:
		return "Standard"
	case LocationLeft:
		return "Left"
	case LocationRight:
		return "Right"
	case LocationNumpad:
		return "Numpad"
	default:
		return fmt.Sprintf("Location(%d)", uint8(l))
	}
}
