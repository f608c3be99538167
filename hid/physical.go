package hid

import (
	"github.com/Alia5/xkeymap/keyboard"
)

// usages maps HID usages to physical keys, following the usage column of
// the W3C UI Events KeyboardEvent code tables.
var usages = [256]keyboard.KeyCode{
	KeyA: keyboard.KeyA, KeyB: keyboard.KeyB, KeyC: keyboard.KeyC, KeyD: keyboard.KeyD,
	KeyE: keyboard.KeyE, KeyF: keyboard.KeyF, KeyG: keyboard.KeyG, KeyH: keyboard.KeyH,
	KeyI: keyboard.KeyI, KeyJ: keyboard.KeyJ, KeyK: keyboard.KeyK, KeyL: keyboard.KeyL,
	KeyM: keyboard.KeyM, KeyN: keyboard.KeyN, KeyO: keyboard.KeyO, KeyP: keyboard.KeyP,
	KeyQ: keyboard.KeyQ, KeyR: keyboard.KeyR, KeyS: keyboard.KeyS, KeyT: keyboard.KeyT,
	KeyU: keyboard.KeyU, KeyV: keyboard.KeyV, KeyW: keyboard.KeyW, KeyX: keyboard.KeyX,
	KeyY: keyboard.KeyY, KeyZ: keyboard.KeyZ,

	Key1: keyboard.KeyDigit1, Key2: keyboard.KeyDigit2, Key3: keyboard.KeyDigit3,
	Key4: keyboard.KeyDigit4, Key5: keyboard.KeyDigit5, Key6: keyboard.KeyDigit6,
	Key7: keyboard.KeyDigit7, Key8: keyboard.KeyDigit8, Key9: keyboard.KeyDigit9,
	Key0: keyboard.KeyDigit0,

	KeyEnter:      keyboard.KeyEnter,
	KeyEscape:     keyboard.KeyEscape,
	KeyBackspace:  keyboard.KeyBackspace,
	KeyTab:        keyboard.KeyTab,
	KeySpace:      keyboard.KeySpace,
	KeyMinus:      keyboard.KeyMinus,
	KeyEqual:      keyboard.KeyEqual,
	KeyLeftBrace:  keyboard.KeyBracketLeft,
	KeyRightBrace: keyboard.KeyBracketRight,
	KeyBackslash:  keyboard.KeyBackslash,
	KeySemicolon:  keyboard.KeySemicolon,
	KeyApostrophe: keyboard.KeyQuote,
	KeyGrave:      keyboard.KeyBackquote,
	KeyComma:      keyboard.KeyComma,
	KeyPeriod:     keyboard.KeyPeriod,
	KeySlash:      keyboard.KeySlash,
	KeyCapsLock:   keyboard.KeyCapsLock,

	KeyF1: keyboard.KeyF1, KeyF2: keyboard.KeyF2, KeyF3: keyboard.KeyF3, KeyF4: keyboard.KeyF4,
	KeyF5: keyboard.KeyF5, KeyF6: keyboard.KeyF6, KeyF7: keyboard.KeyF7, KeyF8: keyboard.KeyF8,
	KeyF9: keyboard.KeyF9, KeyF10: keyboard.KeyF10, KeyF11: keyboard.KeyF11, KeyF12: keyboard.KeyF12,

	KeyPrintScreen: keyboard.KeyPrintScreen,
	KeyScrollLock:  keyboard.KeyScrollLock,
	KeyPause:       keyboard.KeyPause,
	KeyInsert:      keyboard.KeyInsert,
	KeyHome:        keyboard.KeyHome,
	KeyPageUp:      keyboard.KeyPageUp,
	KeyDelete:      keyboard.KeyDelete,
	KeyEnd:         keyboard.KeyEnd,
	KeyPageDown:    keyboard.KeyPageDown,

	KeyRight: keyboard.KeyArrowRight,
	KeyLeft:  keyboard.KeyArrowLeft,
	KeyDown:  keyboard.KeyArrowDown,
	KeyUp:    keyboard.KeyArrowUp,

	KeyNumLock:    keyboard.KeyNumLock,
	KeyKpSlash:    keyboard.KeyNumpadDivide,
	KeyKpAsterisk: keyboard.KeyNumpadMultiply,
	KeyKpMinus:    keyboard.KeyNumpadSubtract,
	KeyKpPlus:     keyboard.KeyNumpadAdd,
	KeyKpEnter:    keyboard.KeyNumpadEnter,
	KeyKp1:        keyboard.KeyNumpad1,
	KeyKp2:        keyboard.KeyNumpad2,
	KeyKp3:        keyboard.KeyNumpad3,
	KeyKp4:        keyboard.KeyNumpad4,
	KeyKp5:        keyboard.KeyNumpad5,
	KeyKp6:        keyboard.KeyNumpad6,
	KeyKp7:        keyboard.KeyNumpad7,
	KeyKp8:        keyboard.KeyNumpad8,
	KeyKp9:        keyboard.KeyNumpad9,
	KeyKp0:        keyboard.KeyNumpad0,
	KeyKpDot:      keyboard.KeyNumpadDecimal,

	KeyNonUSBackslash: keyboard.KeyIntlBackslash,
	KeyApplication:    keyboard.KeyContextMenu,
	KeyPower:          keyboard.KeyPower,
	KeyKpEqual:        keyboard.KeyNumpadEqual,

	KeyF13: keyboard.KeyF13, KeyF14: keyboard.KeyF14, KeyF15: keyboard.KeyF15, KeyF16: keyboard.KeyF16,
	KeyF17: keyboard.KeyF17, KeyF18: keyboard.KeyF18, KeyF19: keyboard.KeyF19, KeyF20: keyboard.KeyF20,
	KeyF21: keyboard.KeyF21, KeyF22: keyboard.KeyF22, KeyF23: keyboard.KeyF23, KeyF24: keyboard.KeyF24,

	// KeyExecute, KeyMenu and KeyStop have no portable key code.
	KeyHelp:       keyboard.KeyHelp,
	KeySelect:     keyboard.KeySelect,
	KeyAgain:      keyboard.KeyAgain,
	KeyUndo:       keyboard.KeyUndo,
	KeyCut:        keyboard.KeyCut,
	KeyCopy:       keyboard.KeyCopy,
	KeyPaste:      keyboard.KeyPaste,
	KeyFind:       keyboard.KeyFind,
	KeyMute:       keyboard.KeyAudioVolumeMute,
	KeyVolumeUp:   keyboard.KeyAudioVolumeUp,
	KeyVolumeDown: keyboard.KeyAudioVolumeDown,

	KeyKpComma:          keyboard.KeyNumpadComma,
	KeyRo:               keyboard.KeyIntlRo,
	KeyKatakanaHiragana: keyboard.KeyKanaMode,
	KeyYen:              keyboard.KeyIntlYen,
	KeyHenkan:           keyboard.KeyConvert,
	KeyMuhenkan:         keyboard.KeyNonConvert,
	KeyHangeul:          keyboard.KeyLang1,
	KeyHanja:            keyboard.KeyLang2,
	KeyKatakana:         keyboard.KeyLang3,
	KeyHiragana:         keyboard.KeyLang4,
	KeyZenkakuHankaku:   keyboard.KeyLang5,

	KeyLeftCtrl:   keyboard.KeyControlLeft,
	KeyLeftShift:  keyboard.KeyShiftLeft,
	KeyLeftAlt:    keyboard.KeyAltLeft,
	KeyLeftGUI:    keyboard.KeySuperLeft,
	KeyRightCtrl:  keyboard.KeyControlRight,
	KeyRightShift: keyboard.KeyShiftRight,
	KeyRightAlt:   keyboard.KeyAltRight,
	KeyRightGUI:   keyboard.KeySuperRight,

	KeyMediaPlayPause: keyboard.KeyMediaPlayPause,
	KeyMediaStop:      keyboard.KeyMediaStop,
	KeyMediaNext:      keyboard.KeyMediaTrackNext,
	KeyMediaPrevious:  keyboard.KeyMediaTrackPrevious,
}

// physicalUsages is the inverse of usages. Usage 0 (no event) is never a
// valid entry, so zero means "no usage".
var physicalUsages = func() (inv [keyboard.KeyCodeCount]Usage) {
	for u, k := range usages {
		if k == keyboard.KeyUnknown {
			continue
		}
		if inv[k] != 0 {
			panic("hid: duplicate usage for " + k.String())
		}
		inv[k] = Usage(u)
	}
	return inv
}()

// FromPhysical returns the HID usage of key. Unidentified keys and key
// codes without a usage report false.
func FromPhysical(key keyboard.PhysicalKey) (Usage, bool) {
	code, ok := key.KeyCode()
	if !ok || int(code) >= len(physicalUsages) {
		return 0, false
	}
	u := physicalUsages[code]
	return u, u != 0
}

// ToPhysical returns the physical key reported by usage u. Usages
// without a key code map to the unidentified sentinel.
func ToPhysical(u Usage) keyboard.PhysicalKey {
	if k := usages[u]; k != keyboard.KeyUnknown {
		return keyboard.Code(k)
	}
	return keyboard.Unidentified(keyboard.NativeKeyCode{})
}

// ModifierBit returns the modifier byte bit of a modifier usage
// (KeyLeftCtrl through KeyRightGUI).
func ModifierBit(u Usage) (uint8, bool) {
	if u < KeyLeftCtrl || u > KeyRightGUI {
		return 0, false
	}
	return 1 << (u - KeyLeftCtrl), true
}
