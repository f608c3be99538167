package keymap

import (
	"github.com/Alia5/xkeymap/keyboard"
	"github.com/Alia5/xkeymap/keysym"
)

// namedKeysyms maps key symbols to their logical name. Several symbols
// share a name: keypad navigation resolves like the main block, and the
// left and right variants of a modifier collapse into one.
var namedKeysyms = map[keysym.Keysym]keyboard.NamedKey{
	// TTY function keys
	keysym.BackSpace: keyboard.NamedBackspace,
	keysym.Tab:       keyboard.NamedTab,
	// Linefeed
	keysym.Clear:      keyboard.NamedClear,
	keysym.Return:     keyboard.NamedEnter,
	keysym.Pause:      keyboard.NamedPause,
	keysym.ScrollLock: keyboard.NamedScrollLock,
	keysym.SysReq:     keyboard.NamedPrintScreen,
	keysym.Escape:     keyboard.NamedEscape,
	keysym.Delete:     keyboard.NamedDelete,

	// IME keys
	keysym.MultiKey:          keyboard.NamedCompose,
	keysym.Codeinput:         keyboard.NamedCodeInput,
	keysym.SingleCandidate:   keyboard.NamedSingleCandidate,
	keysym.MultipleCandidate: keyboard.NamedAllCandidates,
	keysym.PreviousCandidate: keyboard.NamedPreviousCandidate,

	// Japanese keys
	keysym.Kanji:            keyboard.NamedKanjiMode,
	keysym.Muhenkan:         keyboard.NamedNonConvert,
	keysym.HenkanMode:       keyboard.NamedConvert,
	keysym.Romaji:           keyboard.NamedRomaji,
	keysym.Hiragana:         keyboard.NamedHiragana,
	keysym.HiraganaKatakana: keyboard.NamedHiraganaKatakana,
	keysym.Zenkaku:          keyboard.NamedZenkaku,
	keysym.Hankaku:          keyboard.NamedHankaku,
	keysym.ZenkakuHankaku:   keyboard.NamedZenkakuHankaku,
	// Touroku, Massyo
	keysym.KanaLock:   keyboard.NamedKanaMode,
	keysym.KanaShift:  keyboard.NamedKanaMode,
	keysym.EisuShift:  keyboard.NamedAlphanumeric,
	keysym.EisuToggle: keyboard.NamedAlphanumeric,

	// Cursor control and motion
	keysym.Home:     keyboard.NamedHome,
	keysym.Left:     keyboard.NamedArrowLeft,
	keysym.Up:       keyboard.NamedArrowUp,
	keysym.Right:    keyboard.NamedArrowRight,
	keysym.Down:     keyboard.NamedArrowDown,
	keysym.PageUp:   keyboard.NamedPageUp,
	keysym.PageDown: keyboard.NamedPageDown,
	keysym.End:      keyboard.NamedEnd,
	// Begin

	// Misc functions
	keysym.Select:     keyboard.NamedSelect,
	keysym.Print:      keyboard.NamedPrintScreen,
	keysym.Execute:    keyboard.NamedExecute,
	keysym.Insert:     keyboard.NamedInsert,
	keysym.Undo:       keyboard.NamedUndo,
	keysym.Redo:       keyboard.NamedRedo,
	keysym.Menu:       keyboard.NamedContextMenu,
	keysym.Find:       keyboard.NamedFind,
	keysym.Cancel:     keyboard.NamedCancel,
	keysym.Help:       keyboard.NamedHelp,
	keysym.Break:      keyboard.NamedPause,
	keysym.ModeSwitch: keyboard.NamedModeChange,
	keysym.NumLock:    keyboard.NamedNumLock,

	// Keypad keys resolve like their main block counterparts. KP_Begin is
	// the key labeled 5 with NumLock off and has no name; the operators and
	// digits produce characters.
	keysym.KPTab:      keyboard.NamedTab,
	keysym.KPEnter:    keyboard.NamedEnter,
	keysym.KPF1:       keyboard.NamedF1,
	keysym.KPF2:       keyboard.NamedF2,
	keysym.KPF3:       keyboard.NamedF3,
	keysym.KPF4:       keyboard.NamedF4,
	keysym.KPHome:     keyboard.NamedHome,
	keysym.KPLeft:     keyboard.NamedArrowLeft,
	keysym.KPUp:       keyboard.NamedArrowUp,
	keysym.KPRight:    keyboard.NamedArrowRight,
	keysym.KPDown:     keyboard.NamedArrowDown,
	keysym.KPPageUp:   keyboard.NamedPageUp,
	keysym.KPPageDown: keyboard.NamedPageDown,
	keysym.KPEnd:      keyboard.NamedEnd,
	keysym.KPInsert:   keyboard.NamedInsert,
	keysym.KPDelete:   keyboard.NamedDelete,

	// Function keys
	keysym.F1:  keyboard.NamedF1,
	keysym.F2:  keyboard.NamedF2,
	keysym.F3:  keyboard.NamedF3,
	keysym.F4:  keyboard.NamedF4,
	keysym.F5:  keyboard.NamedF5,
	keysym.F6:  keyboard.NamedF6,
	keysym.F7:  keyboard.NamedF7,
	keysym.F8:  keyboard.NamedF8,
	keysym.F9:  keyboard.NamedF9,
	keysym.F10: keyboard.NamedF10,
	keysym.F11: keyboard.NamedF11,
	keysym.F12: keyboard.NamedF12,
	keysym.F13: keyboard.NamedF13,
	keysym.F14: keyboard.NamedF14,
	keysym.F15: keyboard.NamedF15,
	keysym.F16: keyboard.NamedF16,
	keysym.F17: keyboard.NamedF17,
	keysym.F18: keyboard.NamedF18,
	keysym.F19: keyboard.NamedF19,
	keysym.F20: keyboard.NamedF20,
	keysym.F21: keyboard.NamedF21,
	keysym.F22: keyboard.NamedF22,
	keysym.F23: keyboard.NamedF23,
	keysym.F24: keyboard.NamedF24,
	keysym.F25: keyboard.NamedF25,
	keysym.F26: keyboard.NamedF26,
	keysym.F27: keyboard.NamedF27,
	keysym.F28: keyboard.NamedF28,
	keysym.F29: keyboard.NamedF29,
	keysym.F30: keyboard.NamedF30,
	keysym.F31: keyboard.NamedF31,
	keysym.F32: keyboard.NamedF32,
	keysym.F33: keyboard.NamedF33,
	keysym.F34: keyboard.NamedF34,
	keysym.F35: keyboard.NamedF35,

	// Modifiers. Left and right variants share one name.
	keysym.ShiftL:   keyboard.NamedShift,
	keysym.ShiftR:   keyboard.NamedShift,
	keysym.ControlL: keyboard.NamedControl,
	keysym.ControlR: keyboard.NamedControl,
	keysym.CapsLock: keyboard.NamedCapsLock,
	// Shift_Lock, Meta_L, Meta_R
	keysym.AltL:   keyboard.NamedAlt,
	keysym.AltR:   keyboard.NamedAlt,
	keysym.SuperL: keyboard.NamedSuper,
	keysym.SuperR: keyboard.NamedSuper,
	keysym.HyperL: keyboard.NamedHyper,
	keysym.HyperR: keyboard.NamedHyper,

	// XKB function and modifier keys
	keysym.ISOLevel3Shift: keyboard.NamedAltGraph,
	keysym.ISOLevel3Latch: keyboard.NamedAltGraph,
	keysym.ISOLevel3Lock:  keyboard.NamedAltGraph,
	keysym.ISONextGroup:   keyboard.NamedGroupNext,
	keysym.ISOPrevGroup:   keyboard.NamedGroupPrevious,
	keysym.ISOFirstGroup:  keyboard.NamedGroupFirst,
	keysym.ISOLastGroup:   keyboard.NamedGroupLast,
	keysym.ISOLeftTab:     keyboard.NamedTab,
	keysym.ISOEnter:       keyboard.NamedEnter,

	// 3270 terminal keys
	keysym.Terminal3270EraseEOF:     keyboard.NamedEraseEof,
	keysym.Terminal3270Attn:         keyboard.NamedAttn,
	keysym.Terminal3270Play:         keyboard.NamedPlay,
	keysym.Terminal3270ExSelect:     keyboard.NamedExSel,
	keysym.Terminal3270CursorSelect: keyboard.NamedCrSel,
	keysym.Terminal3270PrintScreen:  keyboard.NamedPrintScreen,
	keysym.Terminal3270Enter:        keyboard.NamedEnter,

	keysym.Space: keyboard.NamedSpace,

	// XFree86 backlight controls
	keysym.XF86MonBrightnessUp:   keyboard.NamedBrightnessUp,
	keysym.XF86MonBrightnessDown: keyboard.NamedBrightnessDown,

	// XFree86 "Internet"
	keysym.XF86Standby:          keyboard.NamedStandby,
	keysym.XF86AudioLowerVolume: keyboard.NamedAudioVolumeDown,
	keysym.XF86AudioRaiseVolume: keyboard.NamedAudioVolumeUp,
	keysym.XF86AudioPlay:        keyboard.NamedMediaPlay,
	keysym.XF86AudioStop:        keyboard.NamedMediaStop,
	keysym.XF86AudioPrev:        keyboard.NamedMediaTrackPrevious,
	keysym.XF86AudioNext:        keyboard.NamedMediaTrackNext,
	keysym.XF86HomePage:         keyboard.NamedBrowserHome,
	keysym.XF86Mail:             keyboard.NamedLaunchMail,
	keysym.XF86Search:           keyboard.NamedBrowserSearch,
	keysym.XF86AudioRecord:      keyboard.NamedMediaRecord,

	// XFree86 PDA
	keysym.XF86Calculator: keyboard.NamedLaunchApplication2,
	keysym.XF86Calendar:   keyboard.NamedLaunchCalendar,
	keysym.XF86PowerDown:  keyboard.NamedPower,

	// XFree86 more "Internet"
	keysym.XF86Back:        keyboard.NamedBrowserBack,
	keysym.XF86Forward:     keyboard.NamedBrowserForward,
	keysym.XF86Refresh:     keyboard.NamedBrowserRefresh,
	keysym.XF86PowerOff:    keyboard.NamedPower,
	keysym.XF86WakeUp:      keyboard.NamedWakeUp,
	keysym.XF86Eject:       keyboard.NamedEject,
	keysym.XF86ScreenSaver: keyboard.NamedLaunchScreenSaver,
	keysym.XF86WWW:         keyboard.NamedLaunchWebBrowser,
	keysym.XF86Sleep:       keyboard.NamedStandby,
	keysym.XF86Favorites:   keyboard.NamedBrowserFavorites,
	keysym.XF86AudioPause:  keyboard.NamedMediaPause,
	keysym.XF86MyComputer:  keyboard.NamedLaunchApplication1,
	keysym.XF86AudioRewind: keyboard.NamedMediaRewind,

	// XFree86 applications and documents
	keysym.XF86Calculater:  keyboard.NamedLaunchApplication2,
	keysym.XF86Close:       keyboard.NamedClose,
	keysym.XF86Copy:        keyboard.NamedCopy,
	keysym.XF86Cut:         keyboard.NamedCut,
	keysym.XF86Excel:       keyboard.NamedLaunchSpreadsheet,
	keysym.XF86LogOff:      keyboard.NamedLogOff,
	keysym.XF86MySites:     keyboard.NamedBrowserFavorites,
	keysym.XF86New:         keyboard.NamedNew,
	keysym.XF86Open:        keyboard.NamedOpen,
	keysym.XF86Paste:       keyboard.NamedPaste,
	keysym.XF86Phone:       keyboard.NamedLaunchPhone,
	keysym.XF86Reply:       keyboard.NamedMailReply,
	keysym.XF86Reload:      keyboard.NamedBrowserRefresh,
	keysym.XF86Save:        keyboard.NamedSave,
	keysym.XF86Send:        keyboard.NamedMailSend,
	keysym.XF86Spell:       keyboard.NamedSpellCheck,
	keysym.XF86SplitScreen: keyboard.NamedSplitScreenToggle,
	keysym.XF86Video:       keyboard.NamedLaunchMediaPlayer,
	keysym.XF86Word:        keyboard.NamedLaunchWordProcessor,
	keysym.XF86ZoomIn:      keyboard.NamedZoomIn,
	keysym.XF86ZoomOut:     keyboard.NamedZoomOut,
	keysym.XF86WebCam:      keyboard.NamedLaunchWebCam,
	keysym.XF86MailForward: keyboard.NamedMailForward,
	keysym.XF86Music:       keyboard.NamedLaunchMusicPlayer,

	// XFree86 media and power
	keysym.XF86AudioForward:    keyboard.NamedMediaFastForward,
	keysym.XF86AudioRandomPlay: keyboard.NamedRandomToggle,
	keysym.XF86Subtitle:        keyboard.NamedSubtitle,
	keysym.XF86AudioCycleTrack: keyboard.NamedMediaAudioTrack,
	keysym.XF86Suspend:         keyboard.NamedStandby,
	keysym.XF86Hibernate:       keyboard.NamedHibernate,
	keysym.XF86AudioMute:       keyboard.NamedAudioVolumeMute,
	keysym.XF86NextVMode:       keyboard.NamedVideoModeNext,

	// Sun vendor keys
	keysym.SunCopy:                 keyboard.NamedCopy,
	keysym.SunOpen:                 keyboard.NamedOpen,
	keysym.SunPaste:                keyboard.NamedPaste,
	keysym.SunCut:                  keyboard.NamedCut,
	keysym.SunAudioLowerVolume:     keyboard.NamedAudioVolumeDown,
	keysym.SunAudioMute:            keyboard.NamedAudioVolumeMute,
	keysym.SunAudioRaiseVolume:     keyboard.NamedAudioVolumeUp,
	keysym.SunVideoLowerBrightness: keyboard.NamedBrightnessDown,
	keysym.SunVideoRaiseBrightness: keyboard.NamedBrightnessUp,
}

// KeysymToLogical returns the logical key for sym. Symbols that produce
// characters are not named here and resolve to keyboard.UnidentifiedKey
// like any other unknown symbol.
func KeysymToLogical(sym keysym.Keysym) keyboard.LogicalKey {
	if n, ok := namedKeysyms[sym]; ok {
		return keyboard.Named(n)
	}
	return keyboard.UnidentifiedKey
}
