package keysym

// X keyboard symbols consumed by the key tables. Values match
// xkbcommon-keysyms.h; printable symbols other than space are omitted.
const (
	// TTY function keys
	BackSpace  Keysym = 0xff08
	Tab        Keysym = 0xff09
	Linefeed   Keysym = 0xff0a
	Clear      Keysym = 0xff0b
	Return     Keysym = 0xff0d
	Pause      Keysym = 0xff13
	ScrollLock Keysym = 0xff14
	SysReq     Keysym = 0xff15
	Escape     Keysym = 0xff1b
	Delete     Keysym = 0xffff

	// International and multi-key character composition
	MultiKey          Keysym = 0xff20
	Codeinput         Keysym = 0xff37
	SingleCandidate   Keysym = 0xff3c
	MultipleCandidate Keysym = 0xff3d
	PreviousCandidate Keysym = 0xff3e

	// Japanese keyboard support
	Kanji            Keysym = 0xff21
	Muhenkan         Keysym = 0xff22
	HenkanMode       Keysym = 0xff23
	Romaji           Keysym = 0xff24
	Hiragana         Keysym = 0xff25
	Katakana         Keysym = 0xff26
	HiraganaKatakana Keysym = 0xff27
	Zenkaku          Keysym = 0xff28
	Hankaku          Keysym = 0xff29
	ZenkakuHankaku   Keysym = 0xff2a
	Touroku          Keysym = 0xff2b
	Massyo           Keysym = 0xff2c
	KanaLock         Keysym = 0xff2d
	KanaShift        Keysym = 0xff2e
	EisuShift        Keysym = 0xff2f
	EisuToggle       Keysym = 0xff30

	// Cursor control and motion
	Home     Keysym = 0xff50
	Left     Keysym = 0xff51
	Up       Keysym = 0xff52
	Right    Keysym = 0xff53
	Down     Keysym = 0xff54
	PageUp   Keysym = 0xff55
	PageDown Keysym = 0xff56
	End      Keysym = 0xff57
	Begin    Keysym = 0xff58

	// Misc functions
	Select     Keysym = 0xff60
	Print      Keysym = 0xff61
	Execute    Keysym = 0xff62
	Insert     Keysym = 0xff63
	Undo       Keysym = 0xff65
	Redo       Keysym = 0xff66
	Menu       Keysym = 0xff67
	Find       Keysym = 0xff68
	Cancel     Keysym = 0xff69
	Help       Keysym = 0xff6a
	Break      Keysym = 0xff6b
	ModeSwitch Keysym = 0xff7e
	NumLock    Keysym = 0xff7f

	// Keypad functions
	KPSpace     Keysym = 0xff80
	KPTab       Keysym = 0xff89
	KPEnter     Keysym = 0xff8d
	KPF1        Keysym = 0xff91
	KPF2        Keysym = 0xff92
	KPF3        Keysym = 0xff93
	KPF4        Keysym = 0xff94
	KPHome      Keysym = 0xff95
	KPLeft      Keysym = 0xff96
	KPUp        Keysym = 0xff97
	KPRight     Keysym = 0xff98
	KPDown      Keysym = 0xff99
	KPPageUp    Keysym = 0xff9a
	KPPageDown  Keysym = 0xff9b
	KPEnd       Keysym = 0xff9c
	KPBegin     Keysym = 0xff9d
	KPInsert    Keysym = 0xff9e
	KPDelete    Keysym = 0xff9f
	KPEqual     Keysym = 0xffbd
	KPMultiply  Keysym = 0xffaa
	KPAdd       Keysym = 0xffab
	KPSeparator Keysym = 0xffac
	KPSubtract  Keysym = 0xffad
	KPDecimal   Keysym = 0xffae
	KPDivide    Keysym = 0xffaf
	KP0         Keysym = 0xffb0
	KP1         Keysym = 0xffb1
	KP2         Keysym = 0xffb2
	KP3         Keysym = 0xffb3
	KP4         Keysym = 0xffb4
	KP5         Keysym = 0xffb5
	KP6         Keysym = 0xffb6
	KP7         Keysym = 0xffb7
	KP8         Keysym = 0xffb8
	KP9         Keysym = 0xffb9

	// Function keys
	F1  Keysym = 0xffbe
	F2  Keysym = 0xffbf
	F3  Keysym = 0xffc0
	F4  Keysym = 0xffc1
	F5  Keysym = 0xffc2
	F6  Keysym = 0xffc3
	F7  Keysym = 0xffc4
	F8  Keysym = 0xffc5
	F9  Keysym = 0xffc6
	F10 Keysym = 0xffc7
	F11 Keysym = 0xffc8
	F12 Keysym = 0xffc9
	F13 Keysym = 0xffca
	F14 Keysym = 0xffcb
	F15 Keysym = 0xffcc
	F16 Keysym = 0xffcd
	F17 Keysym = 0xffce
	F18 Keysym = 0xffcf
	F19 Keysym = 0xffd0
	F20 Keysym = 0xffd1
	F21 Keysym = 0xffd2
	F22 Keysym = 0xffd3
	F23 Keysym = 0xffd4
	F24 Keysym = 0xffd5
	F25 Keysym = 0xffd6
	F26 Keysym = 0xffd7
	F27 Keysym = 0xffd8
	F28 Keysym = 0xffd9
	F29 Keysym = 0xffda
	F30 Keysym = 0xffdb
	F31 Keysym = 0xffdc
	F32 Keysym = 0xffdd
	F33 Keysym = 0xffde
	F34 Keysym = 0xffdf
	F35 Keysym = 0xffe0

	// Modifiers
	ShiftL    Keysym = 0xffe1
	ShiftR    Keysym = 0xffe2
	ControlL  Keysym = 0xffe3
	ControlR  Keysym = 0xffe4
	CapsLock  Keysym = 0xffe5
	ShiftLock Keysym = 0xffe6
	MetaL     Keysym = 0xffe7
	MetaR     Keysym = 0xffe8
	AltL      Keysym = 0xffe9
	AltR      Keysym = 0xffea
	SuperL    Keysym = 0xffeb
	SuperR    Keysym = 0xffec
	HyperL    Keysym = 0xffed
	HyperR    Keysym = 0xffee

	// Keyboard (XKB) extension function and modifier keys
	ISOLock           Keysym = 0xfe01
	ISOLevel2Latch    Keysym = 0xfe02
	ISOLevel3Shift    Keysym = 0xfe03
	ISOLevel3Latch    Keysym = 0xfe04
	ISOLevel3Lock     Keysym = 0xfe05
	ISOGroupLatch     Keysym = 0xfe06
	ISOGroupLock      Keysym = 0xfe07
	ISONextGroup      Keysym = 0xfe08
	ISONextGroupLock  Keysym = 0xfe09
	ISOPrevGroup      Keysym = 0xfe0a
	ISOPrevGroupLock  Keysym = 0xfe0b
	ISOFirstGroup     Keysym = 0xfe0c
	ISOFirstGroupLock Keysym = 0xfe0d
	ISOLastGroup      Keysym = 0xfe0e
	ISOLastGroupLock  Keysym = 0xfe0f
	ISOLevel5Shift    Keysym = 0xfe11
	ISOLevel5Latch    Keysym = 0xfe12
	ISOLevel5Lock     Keysym = 0xfe13
	ISOLeftTab        Keysym = 0xfe20
	ISOEnter          Keysym = 0xfe34

	// 3270 terminal keys
	Terminal3270Duplicate    Keysym = 0xfd01
	Terminal3270FieldMark    Keysym = 0xfd02
	Terminal3270Right2       Keysym = 0xfd03
	Terminal3270Left2        Keysym = 0xfd04
	Terminal3270BackTab      Keysym = 0xfd05
	Terminal3270EraseEOF     Keysym = 0xfd06
	Terminal3270EraseInput   Keysym = 0xfd07
	Terminal3270Reset        Keysym = 0xfd08
	Terminal3270Quit         Keysym = 0xfd09
	Terminal3270PA1          Keysym = 0xfd0a
	Terminal3270PA2          Keysym = 0xfd0b
	Terminal3270PA3          Keysym = 0xfd0c
	Terminal3270Test         Keysym = 0xfd0d
	Terminal3270Attn         Keysym = 0xfd0e
	Terminal3270CursorBlink  Keysym = 0xfd0f
	Terminal3270AltCursor    Keysym = 0xfd10
	Terminal3270KeyClick     Keysym = 0xfd11
	Terminal3270Jump         Keysym = 0xfd12
	Terminal3270Ident        Keysym = 0xfd13
	Terminal3270Rule         Keysym = 0xfd14
	Terminal3270Copy         Keysym = 0xfd15
	Terminal3270Play         Keysym = 0xfd16
	Terminal3270Setup        Keysym = 0xfd17
	Terminal3270Record       Keysym = 0xfd18
	Terminal3270ChangeScreen Keysym = 0xfd19
	Terminal3270DeleteWord   Keysym = 0xfd1a
	Terminal3270ExSelect     Keysym = 0xfd1b
	Terminal3270CursorSelect Keysym = 0xfd1c
	Terminal3270PrintScreen  Keysym = 0xfd1d
	Terminal3270Enter        Keysym = 0xfd1e

	// Latin 1
	Space Keysym = 0x0020

	// XFree86 vendor specific keysyms
	XF86ModeLock          Keysym = 0x1008ff01
	XF86MonBrightnessUp   Keysym = 0x1008ff02
	XF86MonBrightnessDown Keysym = 0x1008ff03
	XF86KbdLightOnOff     Keysym = 0x1008ff04
	XF86KbdBrightnessUp   Keysym = 0x1008ff05
	XF86KbdBrightnessDown Keysym = 0x1008ff06
	XF86Standby           Keysym = 0x1008ff10
	XF86AudioLowerVolume  Keysym = 0x1008ff11
	XF86AudioMute         Keysym = 0x1008ff12
	XF86AudioRaiseVolume  Keysym = 0x1008ff13
	XF86AudioPlay         Keysym = 0x1008ff14
	XF86AudioStop         Keysym = 0x1008ff15
	XF86AudioPrev         Keysym = 0x1008ff16
	XF86AudioNext         Keysym = 0x1008ff17
	XF86HomePage          Keysym = 0x1008ff18
	XF86Mail              Keysym = 0x1008ff19
	XF86Start             Keysym = 0x1008ff1a
	XF86Search            Keysym = 0x1008ff1b
	XF86AudioRecord       Keysym = 0x1008ff1c
	XF86Calculator        Keysym = 0x1008ff1d
	XF86Memo              Keysym = 0x1008ff1e
	XF86ToDoList          Keysym = 0x1008ff1f
	XF86Calendar          Keysym = 0x1008ff20
	XF86PowerDown         Keysym = 0x1008ff21
	XF86ContrastAdjust    Keysym = 0x1008ff22
	XF86Back              Keysym = 0x1008ff26
	XF86Forward           Keysym = 0x1008ff27
	XF86Stop              Keysym = 0x1008ff28
	XF86Refresh           Keysym = 0x1008ff29
	XF86PowerOff          Keysym = 0x1008ff2a
	XF86WakeUp            Keysym = 0x1008ff2b
	XF86Eject             Keysym = 0x1008ff2c
	XF86ScreenSaver       Keysym = 0x1008ff2d
	XF86WWW               Keysym = 0x1008ff2e
	XF86Sleep             Keysym = 0x1008ff2f
	XF86Favorites         Keysym = 0x1008ff30
	XF86AudioPause        Keysym = 0x1008ff31
	XF86AudioMedia        Keysym = 0x1008ff32
	XF86MyComputer        Keysym = 0x1008ff33
	XF86AudioRewind       Keysym = 0x1008ff3e
	XF86Calculater        Keysym = 0x1008ff54
	XF86Close             Keysym = 0x1008ff56
	XF86Copy              Keysym = 0x1008ff57
	XF86Cut               Keysym = 0x1008ff58
	XF86Excel             Keysym = 0x1008ff5c
	XF86LogOff            Keysym = 0x1008ff61
	XF86MySites           Keysym = 0x1008ff67
	XF86New               Keysym = 0x1008ff68
	XF86Open              Keysym = 0x1008ff6b
	XF86Paste             Keysym = 0x1008ff6d
	XF86Phone             Keysym = 0x1008ff6e
	XF86Reply             Keysym = 0x1008ff72
	XF86Reload            Keysym = 0x1008ff73
	XF86Save              Keysym = 0x1008ff77
	XF86Send              Keysym = 0x1008ff7b
	XF86Spell             Keysym = 0x1008ff7c
	XF86SplitScreen       Keysym = 0x1008ff7d
	XF86Video             Keysym = 0x1008ff87
	XF86Word              Keysym = 0x1008ff89
	XF86ZoomIn            Keysym = 0x1008ff8b
	XF86ZoomOut           Keysym = 0x1008ff8c
	XF86WebCam            Keysym = 0x1008ff8f
	XF86MailForward       Keysym = 0x1008ff90
	XF86Music             Keysym = 0x1008ff92
	XF86AudioForward      Keysym = 0x1008ff97
	XF86AudioRandomPlay   Keysym = 0x1008ff99
	XF86Subtitle          Keysym = 0x1008ff9a
	XF86AudioCycleTrack   Keysym = 0x1008ff9b
	XF86Suspend           Keysym = 0x1008ffa7
	XF86Hibernate         Keysym = 0x1008ffa8
	XF86NextVMode         Keysym = 0x1008fe22
	XF86PrevVMode         Keysym = 0x1008fe23

	// Sun vendor specific keysyms
	SunProps                Keysym = 0x1005ff70
	SunFront                Keysym = 0x1005ff71
	SunCopy                 Keysym = 0x1005ff72
	SunOpen                 Keysym = 0x1005ff73
	SunPaste                Keysym = 0x1005ff74
	SunCut                  Keysym = 0x1005ff75
	SunPowerSwitch          Keysym = 0x1005ff76
	SunAudioLowerVolume     Keysym = 0x1005ff77
	SunAudioMute            Keysym = 0x1005ff78
	SunAudioRaiseVolume     Keysym = 0x1005ff79
	SunVideoDegauss         Keysym = 0x1005ff7a
	SunVideoLowerBrightness Keysym = 0x1005ff7b
	SunVideoRaiseBrightness Keysym = 0x1005ff7c
	SunPowerSwitchShift     Keysym = 0x1005ff7d

	// Aliases
	Prior         = PageUp
	Next          = PageDown
	KPPrior       = KPPageUp
	KPNext        = KPPageDown
	Henkan        = HenkanMode
	KanjiBangou   = Codeinput
	ZenKoho       = MultipleCandidate
	MaeKoho       = PreviousCandidate
	ScriptSwitch  = ModeSwitch
	ISOGroupShift = ModeSwitch
)
