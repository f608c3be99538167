package keyboard

import "strconv"

// KeyCode identifies a key by its physical position on a US-layout
// keyboard, independent of the active layout.
//
// The zero value, KeyUnknown, is never produced by a table lookup.
type KeyCode uint16

// Physical key codes.
const (
	KeyUnknown KeyCode = iota

	// Writing system keys
	KeyBackquote
	KeyBackslash
	KeyBracketLeft
	KeyBracketRight
	KeyComma
	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
	KeyEqual
	KeyIntlBackslash
	KeyIntlRo
	KeyIntlYen
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyMinus
	KeyPeriod
	KeyQuote
	KeySemicolon
	KeySlash

	// Functional keys
	KeyAltLeft
	KeyAltRight
	KeyBackspace
	KeyCapsLock
	KeyContextMenu
	KeyControlLeft
	KeyControlRight
	KeyEnter
	KeySuperLeft
	KeySuperRight
	KeyShiftLeft
	KeyShiftRight
	KeySpace
	KeyTab

	// IME keys
	KeyConvert
	KeyKanaMode
	KeyLang1
	KeyLang2
	KeyLang3
	KeyLang4
	KeyLang5
	KeyNonConvert
	KeyHiragana
	KeyKatakana

	// Control pad
	KeyDelete
	KeyEnd
	KeyHelp
	KeyHome
	KeyInsert
	KeyPageDown
	KeyPageUp

	// Arrow pad
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp

	// Numpad
	KeyNumLock
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadBackspace
	KeyNumpadClear
	KeyNumpadClearEntry
	KeyNumpadComma
	KeyNumpadDecimal
	KeyNumpadDivide
	KeyNumpadEnter
	KeyNumpadEqual
	KeyNumpadHash
	KeyNumpadMultiply
	KeyNumpadParenLeft
	KeyNumpadParenRight
	KeyNumpadStar
	KeyNumpadSubtract

	// Function section
	KeyEscape
	KeyFn
	KeyFnLock
	KeyPrintScreen
	KeyScrollLock
	KeyPause

	// Media keys
	KeyBrowserBack
	KeyBrowserFavorites
	KeyBrowserForward
	KeyBrowserHome
	KeyBrowserRefresh
	KeyBrowserSearch
	KeyBrowserStop
	KeyEject
	KeyLaunchApp1
	KeyLaunchApp2
	KeyLaunchMail
	KeyMediaPlayPause
	KeyMediaSelect
	KeyMediaStop
	KeyMediaTrackNext
	KeyMediaTrackPrevious
	KeyPower
	KeySleep
	KeyAudioVolumeDown
	KeyAudioVolumeMute
	KeyAudioVolumeUp
	KeyWakeUp

	// Legacy and non-standard keys
	KeyMeta
	KeyHyper
	KeyTurbo
	KeyAbort
	KeyResume
	KeySuspend
	KeyAgain
	KeyCopy
	KeyCut
	KeyFind
	KeyOpen
	KeyPaste
	KeyProps
	KeySelect
	KeyUndo

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	KeyF26
	KeyF27
	KeyF28
	KeyF29
	KeyF30
	KeyF31
	KeyF32
	KeyF33
	KeyF34
	KeyF35

	keyCodeCount
)

var keyCodeNames = [keyCodeCount]string{
	KeyUnknown:            "Unknown",
	KeyBackquote:          "Backquote",
	KeyBackslash:          "Backslash",
	KeyBracketLeft:        "BracketLeft",
	KeyBracketRight:       "BracketRight",
	KeyComma:              "Comma",
	KeyDigit0:             "Digit0",
	KeyDigit1:             "Digit1",
	KeyDigit2:             "Digit2",
	KeyDigit3:             "Digit3",
	KeyDigit4:             "Digit4",
	KeyDigit5:             "Digit5",
	KeyDigit6:             "Digit6",
	KeyDigit7:             "Digit7",
	KeyDigit8:             "Digit8",
	KeyDigit9:             "Digit9",
	KeyEqual:              "Equal",
	KeyIntlBackslash:      "IntlBackslash",
	KeyIntlRo:             "IntlRo",
	KeyIntlYen:            "IntlYen",
	KeyA:                  "KeyA",
	KeyB:                  "KeyB",
	KeyC:                  "KeyC",
	KeyD:                  "KeyD",
	KeyE:                  "KeyE",
	KeyF:                  "KeyF",
	KeyG:                  "KeyG",
	KeyH:                  "KeyH",
	KeyI:                  "KeyI",
	KeyJ:                  "KeyJ",
	KeyK:                  "KeyK",
	KeyL:                  "KeyL",
	KeyM:                  "KeyM",
	KeyN:                  "KeyN",
	KeyO:                  "KeyO",
	KeyP:                  "KeyP",
	KeyQ:                  "KeyQ",
	KeyR:                  "KeyR",
	KeyS:                  "KeyS",
	KeyT:                  "KeyT",
	KeyU:                  "KeyU",
	KeyV:                  "KeyV",
	KeyW:                  "KeyW",
	KeyX:                  "KeyX",
	KeyY:                  "KeyY",
	KeyZ:                  "KeyZ",
	KeyMinus:              "Minus",
	KeyPeriod:             "Period",
	KeyQuote:              "Quote",
	KeySemicolon:          "Semicolon",
	KeySlash:              "Slash",
	KeyAltLeft:            "AltLeft",
	KeyAltRight:           "AltRight",
	KeyBackspace:          "Backspace",
	KeyCapsLock:           "CapsLock",
	KeyContextMenu:        "ContextMenu",
	KeyControlLeft:        "ControlLeft",
	KeyControlRight:       "ControlRight",
	KeyEnter:              "Enter",
	KeySuperLeft:          "SuperLeft",
	KeySuperRight:         "SuperRight",
	KeyShiftLeft:          "ShiftLeft",
	KeyShiftRight:         "ShiftRight",
	KeySpace:              "Space",
	KeyTab:                "Tab",
	KeyConvert:            "Convert",
	KeyKanaMode:           "KanaMode",
	KeyLang1:              "Lang1",
	KeyLang2:              "Lang2",
	KeyLang3:              "Lang3",
	KeyLang4:              "Lang4",
	KeyLang5:              "Lang5",
	KeyNonConvert:         "NonConvert",
	KeyHiragana:           "Hiragana",
	KeyKatakana:           "Katakana",
	KeyDelete:             "Delete",
	KeyEnd:                "End",
	KeyHelp:               "Help",
	KeyHome:               "Home",
	KeyInsert:             "Insert",
	KeyPageDown:           "PageDown",
	KeyPageUp:             "PageUp",
	KeyArrowDown:          "ArrowDown",
	KeyArrowLeft:          "ArrowLeft",
	KeyArrowRight:         "ArrowRight",
	KeyArrowUp:            "ArrowUp",
	KeyNumLock:            "NumLock",
	KeyNumpad0:            "Numpad0",
	KeyNumpad1:            "Numpad1",
	KeyNumpad2:            "Numpad2",
	KeyNumpad3:            "Numpad3",
	KeyNumpad4:            "Numpad4",
	KeyNumpad5:            "Numpad5",
	KeyNumpad6:            "Numpad6",
	KeyNumpad7:            "Numpad7",
	KeyNumpad8:            "Numpad8",
	KeyNumpad9:            "Numpad9",
	KeyNumpadAdd:          "NumpadAdd",
	KeyNumpadBackspace:    "NumpadBackspace",
	KeyNumpadClear:        "NumpadClear",
	KeyNumpadClearEntry:   "NumpadClearEntry",
	KeyNumpadComma:        "NumpadComma",
	KeyNumpadDecimal:      "NumpadDecimal",
	KeyNumpadDivide:       "NumpadDivide",
	KeyNumpadEnter:        "NumpadEnter",
	KeyNumpadEqual:        "NumpadEqual",
	KeyNumpadHash:         "NumpadHash",
	KeyNumpadMultiply:     "NumpadMultiply",
	KeyNumpadParenLeft:    "NumpadParenLeft",
	KeyNumpadParenRight:   "NumpadParenRight",
	KeyNumpadStar:         "NumpadStar",
	KeyNumpadSubtract:     "NumpadSubtract",
	KeyEscape:             "Escape",
	KeyFn:                 "Fn",
	KeyFnLock:             "FnLock",
	KeyPrintScreen:        "PrintScreen",
	KeyScrollLock:         "ScrollLock",
	KeyPause:              "Pause",
	KeyBrowserBack:        "BrowserBack",
	KeyBrowserFavorites:   "BrowserFavorites",
	KeyBrowserForward:     "BrowserForward",
	KeyBrowserHome:        "BrowserHome",
	KeyBrowserRefresh:     "BrowserRefresh",
	KeyBrowserSearch:      "BrowserSearch",
	KeyBrowserStop:        "BrowserStop",
	KeyEject:              "Eject",
	KeyLaunchApp1:         "LaunchApp1",
	KeyLaunchApp2:         "LaunchApp2",
	KeyLaunchMail:         "LaunchMail",
	KeyMediaPlayPause:     "MediaPlayPause",
	KeyMediaSelect:        "MediaSelect",
	KeyMediaStop:          "MediaStop",
	KeyMediaTrackNext:     "MediaTrackNext",
	KeyMediaTrackPrevious: "MediaTrackPrevious",
	KeyPower:              "Power",
	KeySleep:              "Sleep",
	KeyAudioVolumeDown:    "AudioVolumeDown",
	KeyAudioVolumeMute:    "AudioVolumeMute",
	KeyAudioVolumeUp:      "AudioVolumeUp",
	KeyWakeUp:             "WakeUp",
	KeyMeta:               "Meta",
	KeyHyper:              "Hyper",
	KeyTurbo:              "Turbo",
	KeyAbort:              "Abort",
	KeyResume:             "Resume",
	KeySuspend:            "Suspend",
	KeyAgain:              "Again",
	KeyCopy:               "Copy",
	KeyCut:                "Cut",
	KeyFind:               "Find",
	KeyOpen:               "Open",
	KeyPaste:              "Paste",
	KeyProps:              "Props",
	KeySelect:             "Select",
	KeyUndo:               "Undo",
	KeyF1:                 "F1",
	KeyF2:                 "F2",
	KeyF3:                 "F3",
	KeyF4:                 "F4",
	KeyF5:                 "F5",
	KeyF6:                 "F6",
	KeyF7:                 "F7",
	KeyF8:                 "F8",
	KeyF9:                 "F9",
	KeyF10:                "F10",
	KeyF11:                "F11",
	KeyF12:                "F12",
	KeyF13:                "F13",
	KeyF14:                "F14",
	KeyF15:                "F15",
	KeyF16:                "F16",
	KeyF17:                "F17",
	KeyF18:                "F18",
	KeyF19:                "F19",
	KeyF20:                "F20",
	KeyF21:                "F21",
	KeyF22:                "F22",
	KeyF23:                "F23",
	KeyF24:                "F24",
	KeyF25:                "F25",
	KeyF26:                "F26",
	KeyF27:                "F27",
	KeyF28:                "F28",
	KeyF29:                "F29",
	KeyF30:                "F30",
	KeyF31:                "F31",
	KeyF32:                "F32",
	KeyF33:                "F33",
	KeyF34:                "F34",
	KeyF35:                "F35",
}

var keyCodesByName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, keyCodeCount)
	for k := KeyUnknown + 1; k < keyCodeCount; k++ {
		m[keyCodeNames[k]] = k
	}
	return m
}()

// KeyCodeCount is one past the largest valid KeyCode.
const KeyCodeCount = int(keyCodeCount)

func (k KeyCode) String() string {
	if k < keyCodeCount {
		return keyCodeNames[k]
	}
	return "KeyCode(" + strconv.Itoa(int(k)) + ")"
}

// ParseKeyCode returns the KeyCode named s, as printed by KeyCode.String.
func ParseKeyCode(s string) (KeyCode, bool) {
	k, ok := keyCodesByName[s]
	return k, ok
}
