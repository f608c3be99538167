package keyboard

import "strconv"

// NamedKey is a key with a standardized, layout independent meaning.
// Values follow the W3C UI Events KeyboardEvent key names.
type NamedKey uint16

// Named keys. The zero value is not a named key.
const (
	_ NamedKey = iota

	// Modifiers
	NamedAlt
	NamedAltGraph
	NamedCapsLock
	NamedControl
	NamedFn
	NamedFnLock
	NamedNumLock
	NamedScrollLock
	NamedShift
	NamedSymbol
	NamedSymbolLock
	NamedMeta
	NamedHyper
	NamedSuper

	// Whitespace and editing
	NamedEnter
	NamedTab
	NamedSpace
	NamedBackspace
	NamedClear
	NamedCopy
	NamedCrSel
	NamedCut
	NamedDelete
	NamedEraseEof
	NamedExSel
	NamedInsert
	NamedPaste
	NamedRedo
	NamedUndo

	// Navigation
	NamedArrowDown
	NamedArrowLeft
	NamedArrowRight
	NamedArrowUp
	NamedEnd
	NamedHome
	NamedPageDown
	NamedPageUp

	// UI
	NamedAttn
	NamedCancel
	NamedContextMenu
	NamedEscape
	NamedExecute
	NamedFind
	NamedHelp
	NamedPause
	NamedPlay
	NamedSelect
	NamedZoomIn
	NamedZoomOut

	// Device
	NamedBrightnessDown
	NamedBrightnessUp
	NamedEject
	NamedLogOff
	NamedPower
	NamedPrintScreen
	NamedHibernate
	NamedStandby
	NamedWakeUp

	// IME and composition
	NamedAllCandidates
	NamedAlphanumeric
	NamedCodeInput
	NamedCompose
	NamedConvert
	NamedGroupFirst
	NamedGroupLast
	NamedGroupNext
	NamedGroupPrevious
	NamedModeChange
	NamedNonConvert
	NamedPreviousCandidate
	NamedSingleCandidate
	NamedHangulMode
	NamedHanjaMode
	NamedJunjaMode
	NamedEisu
	NamedHankaku
	NamedHiragana
	NamedHiraganaKatakana
	NamedKanaMode
	NamedKanjiMode
	NamedKatakana
	NamedRomaji
	NamedZenkaku
	NamedZenkakuHankaku

	// Media
	NamedMediaAudioTrack
	NamedMediaFastForward
	NamedMediaPause
	NamedMediaPlay
	NamedMediaPlayPause
	NamedMediaRecord
	NamedMediaRewind
	NamedMediaStop
	NamedMediaTrackNext
	NamedMediaTrackPrevious
	NamedRandomToggle
	NamedSubtitle
	NamedVideoModeNext
	NamedSplitScreenToggle

	// Audio
	NamedAudioVolumeDown
	NamedAudioVolumeUp
	NamedAudioVolumeMute

	// Applications
	NamedLaunchApplication1
	NamedLaunchApplication2
	NamedLaunchCalendar
	NamedLaunchMail
	NamedLaunchMediaPlayer
	NamedLaunchMusicPlayer
	NamedLaunchPhone
	NamedLaunchScreenSaver
	NamedLaunchSpreadsheet
	NamedLaunchWebBrowser
	NamedLaunchWebCam
	NamedLaunchWordProcessor

	// Browser
	NamedBrowserBack
	NamedBrowserFavorites
	NamedBrowserForward
	NamedBrowserHome
	NamedBrowserRefresh
	NamedBrowserSearch
	NamedBrowserStop

	// Document and mail
	NamedClose
	NamedMailForward
	NamedMailReply
	NamedMailSend
	NamedNew
	NamedOpen
	NamedSave
	NamedSpellCheck

	// Function keys
	NamedF1
	NamedF2
	NamedF3
	NamedF4
	NamedF5
	NamedF6
	NamedF7
	NamedF8
	NamedF9
	NamedF10
	NamedF11
	NamedF12
	NamedF13
	NamedF14
	NamedF15
	NamedF16
	NamedF17
	NamedF18
	NamedF19
	NamedF20
	NamedF21
	NamedF22
	NamedF23
	NamedF24
	NamedF25
	NamedF26
	NamedF27
	NamedF28
	NamedF29
	NamedF30
	NamedF31
	NamedF32
	NamedF33
	NamedF34
	NamedF35

	namedKeyCount
)

var namedKeyNames = [namedKeyCount]string{
	NamedAlt:                 "Alt",
	NamedAltGraph:            "AltGraph",
	NamedCapsLock:            "CapsLock",
	NamedControl:             "Control",
	NamedFn:                  "Fn",
	NamedFnLock:              "FnLock",
	NamedNumLock:             "NumLock",
	NamedScrollLock:          "ScrollLock",
	NamedShift:               "Shift",
	NamedSymbol:              "Symbol",
	NamedSymbolLock:          "SymbolLock",
	NamedMeta:                "Meta",
	NamedHyper:               "Hyper",
	NamedSuper:               "Super",
	NamedEnter:               "Enter",
	NamedTab:                 "Tab",
	NamedSpace:               "Space",
	NamedBackspace:           "Backspace",
	NamedClear:               "Clear",
	NamedCopy:                "Copy",
	NamedCrSel:               "CrSel",
	NamedCut:                 "Cut",
	NamedDelete:              "Delete",
	NamedEraseEof:            "EraseEof",
	NamedExSel:               "ExSel",
	NamedInsert:              "Insert",
	NamedPaste:               "Paste",
	NamedRedo:                "Redo",
	NamedUndo:                "Undo",
	NamedArrowDown:           "ArrowDown",
	NamedArrowLeft:           "ArrowLeft",
	NamedArrowRight:          "ArrowRight",
	NamedArrowUp:             "ArrowUp",
	NamedEnd:                 "End",
	NamedHome:                "Home",
	NamedPageDown:            "PageDown",
	NamedPageUp:              "PageUp",
	NamedAttn:                "Attn",
	NamedCancel:              "Cancel",
	NamedContextMenu:         "ContextMenu",
	NamedEscape:              "Escape",
	NamedExecute:             "Execute",
	NamedFind:                "Find",
	NamedHelp:                "Help",
	NamedPause:               "Pause",
	NamedPlay:                "Play",
	NamedSelect:              "Select",
	NamedZoomIn:              "ZoomIn",
	NamedZoomOut:             "ZoomOut",
	NamedBrightnessDown:      "BrightnessDown",
	NamedBrightnessUp:        "BrightnessUp",
	NamedEject:               "Eject",
	NamedLogOff:              "LogOff",
	NamedPower:               "Power",
	NamedPrintScreen:         "PrintScreen",
	NamedHibernate:           "Hibernate",
	NamedStandby:             "Standby",
	NamedWakeUp:              "WakeUp",
	NamedAllCandidates:       "AllCandidates",
	NamedAlphanumeric:        "Alphanumeric",
	NamedCodeInput:           "CodeInput",
	NamedCompose:             "Compose",
	NamedConvert:             "Convert",
	NamedGroupFirst:          "GroupFirst",
	NamedGroupLast:           "GroupLast",
	NamedGroupNext:           "GroupNext",
	NamedGroupPrevious:       "GroupPrevious",
	NamedModeChange:          "ModeChange",
	NamedNonConvert:          "NonConvert",
	NamedPreviousCandidate:   "PreviousCandidate",
	NamedSingleCandidate:     "SingleCandidate",
	NamedHangulMode:          "HangulMode",
	NamedHanjaMode:           "HanjaMode",
	NamedJunjaMode:           "JunjaMode",
	NamedEisu:                "Eisu",
	NamedHankaku:             "Hankaku",
	NamedHiragana:            "Hiragana",
	NamedHiraganaKatakana:    "HiraganaKatakana",
	NamedKanaMode:            "KanaMode",
	NamedKanjiMode:           "KanjiMode",
	NamedKatakana:            "Katakana",
	NamedRomaji:              "Romaji",
	NamedZenkaku:             "Zenkaku",
	NamedZenkakuHankaku:      "ZenkakuHankaku",
	NamedMediaAudioTrack:     "MediaAudioTrack",
	NamedMediaFastForward:    "MediaFastForward",
	NamedMediaPause:          "MediaPause",
	NamedMediaPlay:           "MediaPlay",
	NamedMediaPlayPause:      "MediaPlayPause",
	NamedMediaRecord:         "MediaRecord",
	NamedMediaRewind:         "MediaRewind",
	NamedMediaStop:           "MediaStop",
	NamedMediaTrackNext:      "MediaTrackNext",
	NamedMediaTrackPrevious:  "MediaTrackPrevious",
	NamedRandomToggle:        "RandomToggle",
	NamedSubtitle:            "Subtitle",
	NamedVideoModeNext:       "VideoModeNext",
	NamedSplitScreenToggle:   "SplitScreenToggle",
	NamedAudioVolumeDown:     "AudioVolumeDown",
	NamedAudioVolumeUp:       "AudioVolumeUp",
	NamedAudioVolumeMute:     "AudioVolumeMute",
	NamedLaunchApplication1:  "LaunchApplication1",
	NamedLaunchApplication2:  "LaunchApplication2",
	NamedLaunchCalendar:      "LaunchCalendar",
	NamedLaunchMail:          "LaunchMail",
	NamedLaunchMediaPlayer:   "LaunchMediaPlayer",
	NamedLaunchMusicPlayer:   "LaunchMusicPlayer",
	NamedLaunchPhone:         "LaunchPhone",
	NamedLaunchScreenSaver:   "LaunchScreenSaver",
	NamedLaunchSpreadsheet:   "LaunchSpreadsheet",
	NamedLaunchWebBrowser:    "LaunchWebBrowser",
	NamedLaunchWebCam:        "LaunchWebCam",
	NamedLaunchWordProcessor: "LaunchWordProcessor",
	NamedBrowserBack:         "BrowserBack",
	NamedBrowserFavorites:    "BrowserFavorites",
	NamedBrowserForward:      "BrowserForward",
	NamedBrowserHome:         "BrowserHome",
	NamedBrowserRefresh:      "BrowserRefresh",
	NamedBrowserSearch:       "BrowserSearch",
	NamedBrowserStop:         "BrowserStop",
	NamedClose:               "Close",
	NamedMailForward:         "MailForward",
	NamedMailReply:           "MailReply",
	NamedMailSend:            "MailSend",
	NamedNew:                 "New",
	NamedOpen:                "Open",
	NamedSave:                "Save",
	NamedSpellCheck:          "SpellCheck",
	NamedF1:                  "F1",
	NamedF2:                  "F2",
	NamedF3:                  "F3",
	NamedF4:                  "F4",
	NamedF5:                  "F5",
	NamedF6:                  "F6",
	NamedF7:                  "F7",
	NamedF8:                  "F8",
	NamedF9:                  "F9",
	NamedF10:                 "F10",
	NamedF11:                 "F11",
	NamedF12:                 "F12",
	NamedF13:                 "F13",
	NamedF14:                 "F14",
	NamedF15:                 "F15",
	NamedF16:                 "F16",
	NamedF17:                 "F17",
	NamedF18:                 "F18",
	NamedF19:                 "F19",
	NamedF20:                 "F20",
	NamedF21:                 "F21",
	NamedF22:                 "F22",
	NamedF23:                 "F23",
	NamedF24:                 "F24",
	NamedF25:                 "F25",
	NamedF26:                 "F26",
	NamedF27:                 "F27",
	NamedF28:                 "F28",
	NamedF29:                 "F29",
	NamedF30:                 "F30",
	NamedF31:                 "F31",
	NamedF32:                 "F32",
	NamedF33:                 "F33",
	NamedF34:                 "F34",
	NamedF35:                 "F35",
}

var namedKeysByName = func() map[string]NamedKey {
	m := make(map[string]NamedKey, namedKeyCount)
	for n := NamedKey(1); n < namedKeyCount; n++ {
		m[namedKeyNames[n]] = n
	}
	return m
}()

// NamedKeyCount is one past the largest valid NamedKey.
const NamedKeyCount = int(namedKeyCount)

func (n NamedKey) String() string {
	if n > 0 && n < namedKeyCount {
		return namedKeyNames[n]
	}
	return "NamedKey(" + strconv.Itoa(int(n)) + ")"
}

// ParseNamedKey returns the NamedKey named s, as printed by NamedKey.String.
func ParseNamedKey(s string) (NamedKey, bool) {
	n, ok := namedKeysByName[s]
	return n, ok
}
