// Package keymap translates between Linux scan codes, physical keys,
// XKB key symbols and logical keys.
//
// All functions are pure table lookups and are safe for concurrent use.
package keymap

import (
	"math"

	"github.com/Alia5/xkeymap/keyboard"
)

// Scan codes reported by X11 and Wayland are offset by 8 from the codes
// the Linux kernel uses.
const xkbOffset = 8

// NoKeyScancode is reported by the kernel when a key press has no key
// (KEY_UNKNOWN).
const NoKeyScancode = 240

// scancodes maps native (kernel) scan codes to physical keys. The values
// come from linux/include/uapi/linux/input-event-codes.h. Codes that are
// hard to verify or have no portable KeyCode are left out on purpose and
// map to an unidentified key carrying the raw code.
var scancodes = [...]keyboard.KeyCode{
	1:  keyboard.KeyEscape,
	2:  keyboard.KeyDigit1,
	3:  keyboard.KeyDigit2,
	4:  keyboard.KeyDigit3,
	5:  keyboard.KeyDigit4,
	6:  keyboard.KeyDigit5,
	7:  keyboard.KeyDigit6,
	8:  keyboard.KeyDigit7,
	9:  keyboard.KeyDigit8,
	10: keyboard.KeyDigit9,
	11: keyboard.KeyDigit0,
	12: keyboard.KeyMinus,
	13: keyboard.KeyEqual,
	14: keyboard.KeyBackspace,
	15: keyboard.KeyTab,
	16: keyboard.KeyQ,
	17: keyboard.KeyW,
	18: keyboard.KeyE,
	19: keyboard.KeyR,
	20: keyboard.KeyT,
	21: keyboard.KeyY,
	22: keyboard.KeyU,
	23: keyboard.KeyI,
	24: keyboard.KeyO,
	25: keyboard.KeyP,
	26: keyboard.KeyBracketLeft,
	27: keyboard.KeyBracketRight,
	28: keyboard.KeyEnter,
	29: keyboard.KeyControlLeft,
	30: keyboard.KeyA,
	31: keyboard.KeyS,
	32: keyboard.KeyD,
	33: keyboard.KeyF,
	34: keyboard.KeyG,
	35: keyboard.KeyH,
	36: keyboard.KeyJ,
	37: keyboard.KeyK,
	38: keyboard.KeyL,
	39: keyboard.KeySemicolon,
	40: keyboard.KeyQuote,
	41: keyboard.KeyBackquote,
	42: keyboard.KeyShiftLeft,
	43: keyboard.KeyBackslash,
	44: keyboard.KeyZ,
	45: keyboard.KeyX,
	46: keyboard.KeyC,
	47: keyboard.KeyV,
	48: keyboard.KeyB,
	49: keyboard.KeyN,
	50: keyboard.KeyM,
	51: keyboard.KeyComma,
	52: keyboard.KeyPeriod,
	53: keyboard.KeySlash,
	54: keyboard.KeyShiftRight,
	55: keyboard.KeyNumpadMultiply,
	56: keyboard.KeyAltLeft,
	57: keyboard.KeySpace,
	58: keyboard.KeyCapsLock,
	59: keyboard.KeyF1,
	60: keyboard.KeyF2,
	61: keyboard.KeyF3,
	62: keyboard.KeyF4,
	63: keyboard.KeyF5,
	64: keyboard.KeyF6,
	65: keyboard.KeyF7,
	66: keyboard.KeyF8,
	67: keyboard.KeyF9,
	68: keyboard.KeyF10,
	69: keyboard.KeyNumLock,
	70: keyboard.KeyScrollLock,
	71: keyboard.KeyNumpad7,
	72: keyboard.KeyNumpad8,
	73: keyboard.KeyNumpad9,
	74: keyboard.KeyNumpadSubtract,
	75: keyboard.KeyNumpad4,
	76: keyboard.KeyNumpad5,
	77: keyboard.KeyNumpad6,
	78: keyboard.KeyNumpadAdd,
	79: keyboard.KeyNumpad1,
	80: keyboard.KeyNumpad2,
	81: keyboard.KeyNumpad3,
	82: keyboard.KeyNumpad0,
	83: keyboard.KeyNumpadDecimal,
	// 84: unassigned
	85: keyboard.KeyLang5,
	86: keyboard.KeyIntlBackslash,
	87: keyboard.KeyF11,
	88: keyboard.KeyF12,
	89: keyboard.KeyIntlRo,
	90: keyboard.KeyLang3,
	91: keyboard.KeyLang4,
	92: keyboard.KeyConvert,
	93: keyboard.KeyKanaMode,
	94: keyboard.KeyNonConvert,
	// 95: KEY_KPJPCOMMA
	96:  keyboard.KeyNumpadEnter,
	97:  keyboard.KeyControlRight,
	98:  keyboard.KeyNumpadDivide,
	99:  keyboard.KeyPrintScreen,
	100: keyboard.KeyAltRight,
	// 101: KEY_LINEFEED
	102: keyboard.KeyHome,
	103: keyboard.KeyArrowUp,
	104: keyboard.KeyPageUp,
	105: keyboard.KeyArrowLeft,
	106: keyboard.KeyArrowRight,
	107: keyboard.KeyEnd,
	108: keyboard.KeyArrowDown,
	109: keyboard.KeyPageDown,
	110: keyboard.KeyInsert,
	111: keyboard.KeyDelete,
	// 112: KEY_MACRO
	113: keyboard.KeyAudioVolumeMute,
	114: keyboard.KeyAudioVolumeDown,
	115: keyboard.KeyAudioVolumeUp,
	// 116: KEY_POWER
	117: keyboard.KeyNumpadEqual,
	// 118: KEY_KPPLUSMINUS
	119: keyboard.KeyPause,
	// 120: KEY_SCALE
	121: keyboard.KeyNumpadComma,
	122: keyboard.KeyLang1,
	123: keyboard.KeyLang2,
	124: keyboard.KeyIntlYen,
	125: keyboard.KeySuperLeft,
	126: keyboard.KeySuperRight,
	127: keyboard.KeyContextMenu,
	// 128..162: KEY_STOP through KEY_EJECTCLOSECD
	163: keyboard.KeyMediaTrackNext,
	164: keyboard.KeyMediaPlayPause,
	165: keyboard.KeyMediaTrackPrevious,
	166: keyboard.KeyMediaStop,
	// 167..182: KEY_RECORD through KEY_REDO
	183: keyboard.KeyF13,
	184: keyboard.KeyF14,
	185: keyboard.KeyF15,
	186: keyboard.KeyF16,
	187: keyboard.KeyF17,
	188: keyboard.KeyF18,
	189: keyboard.KeyF19,
	190: keyboard.KeyF20,
	191: keyboard.KeyF21,
	192: keyboard.KeyF22,
	193: keyboard.KeyF23,
	194: keyboard.KeyF24,
	// 200..248: KEY_PLAYCD through KEY_MICMUTE, except 240 (NoKeyScancode)
}

// physicalScancodes is the inverse of scancodes, indexed by KeyCode.
// Zero means the key code has no scan code.
var physicalScancodes = func() (inv [keyboard.KeyCodeCount]uint32) {
	for sc, k := range scancodes {
		if k == keyboard.KeyUnknown {
			continue
		}
		if inv[k] != 0 {
			panic("keymap: duplicate scan code for " + k.String())
		}
		inv[k] = uint32(sc)
	}
	return inv
}()

// ScancodeToPhysical maps an X11/Wayland keycode, which is offset by 8
// from the kernel numbering, to a physical key.
func ScancodeToPhysical(keycode uint32) keyboard.PhysicalKey {
	return NativeScancodeToPhysical(nativeScancode(keycode))
}

// nativeScancode removes the X11 offset, saturating at zero.
func nativeScancode(keycode uint32) uint32 {
	if keycode < xkbOffset {
		return 0
	}
	return keycode - xkbOffset
}

// NativeScancodeToPhysical maps a Linux kernel scan code to a physical
// key. Codes without a KeyCode map to an unidentified key that carries
// the code, except NoKeyScancode which maps to the explicit "no key"
// sentinel.
func NativeScancodeToPhysical(scancode uint32) keyboard.PhysicalKey {
	if scancode == NoKeyScancode {
		return keyboard.Unidentified(keyboard.NativeKeyCode{})
	}
	if scancode < uint32(len(scancodes)) {
		if k := scancodes[scancode]; k != keyboard.KeyUnknown {
			return keyboard.Code(k)
		}
	}
	return keyboard.Unidentified(keyboard.Xkb(scancode))
}

// PhysicalToScancode returns the kernel scan code of key. It reports
// false for key codes that have no Linux scan code and for native codes
// of other platforms.
func PhysicalToScancode(key keyboard.PhysicalKey) (uint32, bool) {
	if native, ok := key.Native(); ok {
		switch native.Kind {
		case keyboard.NativeUnidentified:
			return NoKeyScancode, true
		case keyboard.NativeXkb:
			return native.Code, true
		default:
			return 0, false
		}
	}
	code, _ := key.KeyCode()
	if int(code) >= len(physicalScancodes) {
		return 0, false
	}
	sc := physicalScancodes[code]
	return sc, sc != 0
}

// PhysicalToKeycode is PhysicalToScancode in X11/Wayland numbering.
// Carried raw codes that have no keycode after the offset report false.
func PhysicalToKeycode(key keyboard.PhysicalKey) (uint32, bool) {
	sc, ok := PhysicalToScancode(key)
	if !ok || sc > math.MaxUint32-xkbOffset {
		return 0, false
	}
	return sc + xkbOffset, true
}
