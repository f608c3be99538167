package keymap

import (
	"github.com/Alia5/xkeymap/keyboard"
	"github.com/Alia5/xkeymap/keysym"
)

// KeysymToLocation classifies sym as a left or right modifier, a keypad
// key, or a standard key. It does not consult the logical key table.
func KeysymToLocation(sym keysym.Keysym) keyboard.Location {
	switch sym {
	case keysym.ShiftL,
		keysym.ControlL,
		keysym.MetaL,
		keysym.AltL,
		keysym.SuperL,
		keysym.HyperL:
		return keyboard.LocationLeft
	case keysym.ShiftR,
		keysym.ControlR,
		keysym.MetaR,
		keysym.AltR,
		keysym.SuperR,
		keysym.HyperR:
		return keyboard.LocationRight
	case keysym.KP0,
		keysym.KP1,
		keysym.KP2,
		keysym.KP3,
		keysym.KP4,
		keysym.KP5,
		keysym.KP6,
		keysym.KP7,
		keysym.KP8,
		keysym.KP9,
		keysym.KPSpace,
		keysym.KPTab,
		keysym.KPEnter,
		keysym.KPF1,
		keysym.KPF2,
		keysym.KPF3,
		keysym.KPF4,
		keysym.KPHome,
		keysym.KPLeft,
		keysym.KPUp,
		keysym.KPRight,
		keysym.KPDown,
		keysym.KPPageUp,
		keysym.KPPageDown,
		keysym.KPEnd,
		keysym.KPBegin,
		keysym.KPInsert,
		keysym.KPDelete,
		keysym.KPEqual,
		keysym.KPMultiply,
		keysym.KPAdd,
		keysym.KPSeparator,
		keysym.KPSubtract,
		keysym.KPDecimal,
		keysym.KPDivide:
		return keyboard.LocationNumpad
	default:
		return keyboard.LocationStandard
	}
}
