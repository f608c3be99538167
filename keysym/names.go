package keysym

// names holds the canonical xkb spelling of every symbol declared in
// this package.
var names = map[Keysym]string{
	BackSpace:                "BackSpace",
	Tab:                      "Tab",
	Linefeed:                 "Linefeed",
	Clear:                    "Clear",
	Return:                   "Return",
	Pause:                    "Pause",
	ScrollLock:               "Scroll_Lock",
	SysReq:                   "Sys_Req",
	Escape:                   "Escape",
	Delete:                   "Delete",
	MultiKey:                 "Multi_key",
	Codeinput:                "Codeinput",
	SingleCandidate:          "SingleCandidate",
	MultipleCandidate:        "MultipleCandidate",
	PreviousCandidate:        "PreviousCandidate",
	Kanji:                    "Kanji",
	Muhenkan:                 "Muhenkan",
	HenkanMode:               "Henkan_Mode",
	Romaji:                   "Romaji",
	Hiragana:                 "Hiragana",
	Katakana:                 "Katakana",
	HiraganaKatakana:         "Hiragana_Katakana",
	Zenkaku:                  "Zenkaku",
	Hankaku:                  "Hankaku",
	ZenkakuHankaku:           "Zenkaku_Hankaku",
	Touroku:                  "Touroku",
	Massyo:                   "Massyo",
	KanaLock:                 "Kana_Lock",
	KanaShift:                "Kana_Shift",
	EisuShift:                "Eisu_Shift",
	EisuToggle:               "Eisu_toggle",
	Home:                     "Home",
	Left:                     "Left",
	Up:                       "Up",
	Right:                    "Right",
	Down:                     "Down",
	PageUp:                   "Page_Up",
	PageDown:                 "Page_Down",
	End:                      "End",
	Begin:                    "Begin",
	Select:                   "Select",
	Print:                    "Print",
	Execute:                  "Execute",
	Insert:                   "Insert",
	Undo:                     "Undo",
	Redo:                     "Redo",
	Menu:                     "Menu",
	Find:                     "Find",
	Cancel:                   "Cancel",
	Help:                     "Help",
	Break:                    "Break",
	ModeSwitch:               "Mode_switch",
	NumLock:                  "Num_Lock",
	KPSpace:                  "KP_Space",
	KPTab:                    "KP_Tab",
	KPEnter:                  "KP_Enter",
	KPF1:                     "KP_F1",
	KPF2:                     "KP_F2",
	KPF3:                     "KP_F3",
	KPF4:                     "KP_F4",
	KPHome:                   "KP_Home",
	KPLeft:                   "KP_Left",
	KPUp:                     "KP_Up",
	KPRight:                  "KP_Right",
	KPDown:                   "KP_Down",
	KPPageUp:                 "KP_Page_Up",
	KPPageDown:               "KP_Page_Down",
	KPEnd:                    "KP_End",
	KPBegin:                  "KP_Begin",
	KPInsert:                 "KP_Insert",
	KPDelete:                 "KP_Delete",
	KPEqual:                  "KP_Equal",
	KPMultiply:               "KP_Multiply",
	KPAdd:                    "KP_Add",
	KPSeparator:              "KP_Separator",
	KPSubtract:               "KP_Subtract",
	KPDecimal:                "KP_Decimal",
	KPDivide:                 "KP_Divide",
	KP0:                      "KP_0",
	KP1:                      "KP_1",
	KP2:                      "KP_2",
	KP3:                      "KP_3",
	KP4:                      "KP_4",
	KP5:                      "KP_5",
	KP6:                      "KP_6",
	KP7:                      "KP_7",
	KP8:                      "KP_8",
	KP9:                      "KP_9",
	F1:                       "F1",
	F2:                       "F2",
	F3:                       "F3",
	F4:                       "F4",
	F5:                       "F5",
	F6:                       "F6",
	F7:                       "F7",
	F8:                       "F8",
	F9:                       "F9",
	F10:                      "F10",
	F11:                      "F11",
	F12:                      "F12",
	F13:                      "F13",
	F14:                      "F14",
	F15:                      "F15",
	F16:                      "F16",
	F17:                      "F17",
	F18:                      "F18",
	F19:                      "F19",
	F20:                      "F20",
	F21:                      "F21",
	F22:                      "F22",
	F23:                      "F23",
	F24:                      "F24",
	F25:                      "F25",
	F26:                      "F26",
	F27:                      "F27",
	F28:                      "F28",
	F29:                      "F29",
	F30:                      "F30",
	F31:                      "F31",
	F32:                      "F32",
	F33:                      "F33",
	F34:                      "F34",
	F35:                      "F35",
	ShiftL:                   "Shift_L",
	ShiftR:                   "Shift_R",
	ControlL:                 "Control_L",
	ControlR:                 "Control_R",
	CapsLock:                 "Caps_Lock",
	ShiftLock:                "Shift_Lock",
	MetaL:                    "Meta_L",
	MetaR:                    "Meta_R",
	AltL:                     "Alt_L",
	AltR:                     "Alt_R",
	SuperL:                   "Super_L",
	SuperR:                   "Super_R",
	HyperL:                   "Hyper_L",
	HyperR:                   "Hyper_R",
	ISOLock:                  "ISO_Lock",
	ISOLevel2Latch:           "ISO_Level2_Latch",
	ISOLevel3Shift:           "ISO_Level3_Shift",
	ISOLevel3Latch:           "ISO_Level3_Latch",
	ISOLevel3Lock:            "ISO_Level3_Lock",
	ISOGroupLatch:            "ISO_Group_Latch",
	ISOGroupLock:             "ISO_Group_Lock",
	ISONextGroup:             "ISO_Next_Group",
	ISONextGroupLock:         "ISO_Next_Group_Lock",
	ISOPrevGroup:             "ISO_Prev_Group",
	ISOPrevGroupLock:         "ISO_Prev_Group_Lock",
	ISOFirstGroup:            "ISO_First_Group",
	ISOFirstGroupLock:        "ISO_First_Group_Lock",
	ISOLastGroup:             "ISO_Last_Group",
	ISOLastGroupLock:         "ISO_Last_Group_Lock",
	ISOLevel5Shift:           "ISO_Level5_Shift",
	ISOLevel5Latch:           "ISO_Level5_Latch",
	ISOLevel5Lock:            "ISO_Level5_Lock",
	ISOLeftTab:               "ISO_Left_Tab",
	ISOEnter:                 "ISO_Enter",
	Terminal3270Duplicate:    "3270_Duplicate",
	Terminal3270FieldMark:    "3270_FieldMark",
	Terminal3270Right2:       "3270_Right2",
	Terminal3270Left2:        "3270_Left2",
	Terminal3270BackTab:      "3270_BackTab",
	Terminal3270EraseEOF:     "3270_EraseEOF",
	Terminal3270EraseInput:   "3270_EraseInput",
	Terminal3270Reset:        "3270_Reset",
	Terminal3270Quit:         "3270_Quit",
	Terminal3270PA1:          "3270_PA1",
	Terminal3270PA2:          "3270_PA2",
	Terminal3270PA3:          "3270_PA3",
	Terminal3270Test:         "3270_Test",
	Terminal3270Attn:         "3270_Attn",
	Terminal3270CursorBlink:  "3270_CursorBlink",
	Terminal3270AltCursor:    "3270_AltCursor",
	Terminal3270KeyClick:     "3270_KeyClick",
	Terminal3270Jump:         "3270_Jump",
	Terminal3270Ident:        "3270_Ident",
	Terminal3270Rule:         "3270_Rule",
	Terminal3270Copy:         "3270_Copy",
	Terminal3270Play:         "3270_Play",
	Terminal3270Setup:        "3270_Setup",
	Terminal3270Record:       "3270_Record",
	Terminal3270ChangeScreen: "3270_ChangeScreen",
	Terminal3270DeleteWord:   "3270_DeleteWord",
	Terminal3270ExSelect:     "3270_ExSelect",
	Terminal3270CursorSelect: "3270_CursorSelect",
	Terminal3270PrintScreen:  "3270_PrintScreen",
	Terminal3270Enter:        "3270_Enter",
	Space:                    "space",
	XF86ModeLock:             "XF86ModeLock",
	XF86MonBrightnessUp:      "XF86MonBrightnessUp",
	XF86MonBrightnessDown:    "XF86MonBrightnessDown",
	XF86KbdLightOnOff:        "XF86KbdLightOnOff",
	XF86KbdBrightnessUp:      "XF86KbdBrightnessUp",
	XF86KbdBrightnessDown:    "XF86KbdBrightnessDown",
	XF86Standby:              "XF86Standby",
	XF86AudioLowerVolume:     "XF86AudioLowerVolume",
	XF86AudioMute:            "XF86AudioMute",
	XF86AudioRaiseVolume:     "XF86AudioRaiseVolume",
	XF86AudioPlay:            "XF86AudioPlay",
	XF86AudioStop:            "XF86AudioStop",
	XF86AudioPrev:            "XF86AudioPrev",
	XF86AudioNext:            "XF86AudioNext",
	XF86HomePage:             "XF86HomePage",
	XF86Mail:                 "XF86Mail",
	XF86Start:                "XF86Start",
	XF86Search:               "XF86Search",
	XF86AudioRecord:          "XF86AudioRecord",
	XF86Calculator:           "XF86Calculator",
	XF86Memo:                 "XF86Memo",
	XF86ToDoList:             "XF86ToDoList",
	XF86Calendar:             "XF86Calendar",
	XF86PowerDown:            "XF86PowerDown",
	XF86ContrastAdjust:       "XF86ContrastAdjust",
	XF86Back:                 "XF86Back",
	XF86Forward:              "XF86Forward",
	XF86Stop:                 "XF86Stop",
	XF86Refresh:              "XF86Refresh",
	XF86PowerOff:             "XF86PowerOff",
	XF86WakeUp:               "XF86WakeUp",
	XF86Eject:                "XF86Eject",
	XF86ScreenSaver:          "XF86ScreenSaver",
	XF86WWW:                  "XF86WWW",
	XF86Sleep:                "XF86Sleep",
	XF86Favorites:            "XF86Favorites",
	XF86AudioPause:           "XF86AudioPause",
	XF86AudioMedia:           "XF86AudioMedia",
	XF86MyComputer:           "XF86MyComputer",
	XF86AudioRewind:          "XF86AudioRewind",
	XF86Calculater:           "XF86Calculater",
	XF86Close:                "XF86Close",
	XF86Copy:                 "XF86Copy",
	XF86Cut:                  "XF86Cut",
	XF86Excel:                "XF86Excel",
	XF86LogOff:               "XF86LogOff",
	XF86MySites:              "XF86MySites",
	XF86New:                  "XF86New",
	XF86Open:                 "XF86Open",
	XF86Paste:                "XF86Paste",
	XF86Phone:                "XF86Phone",
	XF86Reply:                "XF86Reply",
	XF86Reload:               "XF86Reload",
	XF86Save:                 "XF86Save",
	XF86Send:                 "XF86Send",
	XF86Spell:                "XF86Spell",
	XF86SplitScreen:          "XF86SplitScreen",
	XF86Video:                "XF86Video",
	XF86Word:                 "XF86Word",
	XF86ZoomIn:               "XF86ZoomIn",
	XF86ZoomOut:              "XF86ZoomOut",
	XF86WebCam:               "XF86WebCam",
	XF86MailForward:          "XF86MailForward",
	XF86Music:                "XF86Music",
	XF86AudioForward:         "XF86AudioForward",
	XF86AudioRandomPlay:      "XF86AudioRandomPlay",
	XF86Subtitle:             "XF86Subtitle",
	XF86AudioCycleTrack:      "XF86AudioCycleTrack",
	XF86Suspend:              "XF86Suspend",
	XF86Hibernate:            "XF86Hibernate",
	XF86NextVMode:            "XF86Next_VMode",
	XF86PrevVMode:            "XF86Prev_VMode",
	SunProps:                 "SunProps",
	SunFront:                 "SunFront",
	SunCopy:                  "SunCopy",
	SunOpen:                  "SunOpen",
	SunPaste:                 "SunPaste",
	SunCut:                   "SunCut",
	SunPowerSwitch:           "SunPowerSwitch",
	SunAudioLowerVolume:      "SunAudioLowerVolume",
	SunAudioMute:             "SunAudioMute",
	SunAudioRaiseVolume:      "SunAudioRaiseVolume",
	SunVideoDegauss:          "SunVideoDegauss",
	SunVideoLowerBrightness:  "SunVideoLowerBrightness",
	SunVideoRaiseBrightness:  "SunVideoRaiseBrightness",
	SunPowerSwitchShift:      "SunPowerSwitchShift",
}

var aliasNames = map[string]Keysym{
	"Prior":           Prior,
	"Next":            Next,
	"KP_Prior":        KPPrior,
	"KP_Next":         KPNext,
	"Henkan":          Henkan,
	"Kanji_Bangou":    KanjiBangou,
	"Zen_Koho":        ZenKoho,
	"Mae_Koho":        MaeKoho,
	"script_switch":   ScriptSwitch,
	"ISO_Group_Shift": ISOGroupShift,
}
