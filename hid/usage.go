// Package hid bridges physical keys and USB HID Keyboard/Keypad page
// usage codes (usage page 0x07).
package hid

// Usage is a USB HID Keyboard/Keypad page usage code.
type Usage uint8

// Modifier byte bitmasks of a boot keyboard report.
const (
	ModLeftCtrl   = 0x01
	ModLeftShift  = 0x02
	ModLeftAlt    = 0x04
	ModLeftGUI    = 0x08 // Windows/Command key
	ModRightCtrl  = 0x10
	ModRightShift = 0x20
	ModRightAlt   = 0x40
	ModRightGUI   = 0x80
)

// Keyboard/Keypad page usages.
const (
	// Letters A-Z
	KeyA Usage = 0x04
	KeyB Usage = 0x05
	KeyC Usage = 0x06
	KeyD Usage = 0x07
	KeyE Usage = 0x08
	KeyF Usage = 0x09
	KeyG Usage = 0x0A
	KeyH Usage = 0x0B
	KeyI Usage = 0x0C
	KeyJ Usage = 0x0D
	KeyK Usage = 0x0E
	KeyL Usage = 0x0F
	KeyM Usage = 0x10
	KeyN Usage = 0x11
	KeyO Usage = 0x12
	KeyP Usage = 0x13
	KeyQ Usage = 0x14
	KeyR Usage = 0x15
	KeyS Usage = 0x16
	KeyT Usage = 0x17
	KeyU Usage = 0x18
	KeyV Usage = 0x19
	KeyW Usage = 0x1A
	KeyX Usage = 0x1B
	KeyY Usage = 0x1C
	KeyZ Usage = 0x1D

	// Numbers 1-0 (top row)
	Key1 Usage = 0x1E
	Key2 Usage = 0x1F
	Key3 Usage = 0x20
	Key4 Usage = 0x21
	Key5 Usage = 0x22
	Key6 Usage = 0x23
	Key7 Usage = 0x24
	Key8 Usage = 0x25
	Key9 Usage = 0x26
	Key0 Usage = 0x27

	// Special keys
	KeyEnter      Usage = 0x28
	KeyEscape     Usage = 0x29
	KeyBackspace  Usage = 0x2A
	KeyTab        Usage = 0x2B
	KeySpace      Usage = 0x2C
	KeyMinus      Usage = 0x2D // - and _
	KeyEqual      Usage = 0x2E // = and +
	KeyLeftBrace  Usage = 0x2F // [ and {
	KeyRightBrace Usage = 0x30 // ] and }
	KeyBackslash  Usage = 0x31 // \ and |
	KeyNonUSHash  Usage = 0x32 // Non-US # and ~
	KeySemicolon  Usage = 0x33 // ; and :
	KeyApostrophe Usage = 0x34 // ' and "
	KeyGrave      Usage = 0x35 // ` and ~
	KeyComma      Usage = 0x36 // , and <
	KeyPeriod     Usage = 0x37 // . and >
	KeySlash      Usage = 0x38 // / and ?
	KeyCapsLock   Usage = 0x39

	// Function keys
	KeyF1  Usage = 0x3A
	KeyF2  Usage = 0x3B
	KeyF3  Usage = 0x3C
	KeyF4  Usage = 0x3D
	KeyF5  Usage = 0x3E
	KeyF6  Usage = 0x3F
	KeyF7  Usage = 0x40
	KeyF8  Usage = 0x41
	KeyF9  Usage = 0x42
	KeyF10 Usage = 0x43
	KeyF11 Usage = 0x44
	KeyF12 Usage = 0x45

	// Control keys
	KeyPrintScreen Usage = 0x46
	KeyScrollLock  Usage = 0x47
	KeyPause       Usage = 0x48
	KeyInsert      Usage = 0x49
	KeyHome        Usage = 0x4A
	KeyPageUp      Usage = 0x4B
	KeyDelete      Usage = 0x4C
	KeyEnd         Usage = 0x4D
	KeyPageDown    Usage = 0x4E

	// Arrow keys
	KeyRight Usage = 0x4F
	KeyLeft  Usage = 0x50
	KeyDown  Usage = 0x51
	KeyUp    Usage = 0x52

	// Numpad
	KeyNumLock    Usage = 0x53
	KeyKpSlash    Usage = 0x54 // Keypad /
	KeyKpAsterisk Usage = 0x55 // Keypad *
	KeyKpMinus    Usage = 0x56 // Keypad -
	KeyKpPlus     Usage = 0x57 // Keypad +
	KeyKpEnter    Usage = 0x58 // Keypad Enter
	KeyKp1        Usage = 0x59 // Keypad 1 and End
	KeyKp2        Usage = 0x5A // Keypad 2 and Down
	KeyKp3        Usage = 0x5B // Keypad 3 and PageDn
	KeyKp4        Usage = 0x5C // Keypad 4 and Left
	KeyKp5        Usage = 0x5D // Keypad 5
	KeyKp6        Usage = 0x5E // Keypad 6 and Right
	KeyKp7        Usage = 0x5F // Keypad 7 and Home
	KeyKp8        Usage = 0x60 // Keypad 8 and Up
	KeyKp9        Usage = 0x61 // Keypad 9 and PageUp
	KeyKp0        Usage = 0x62 // Keypad 0 and Insert
	KeyKpDot      Usage = 0x63 // Keypad . and Delete

	// Additional keys
	KeyNonUSBackslash Usage = 0x64 // Non-US \ and |
	KeyApplication    Usage = 0x65 // Application (Windows Menu key)
	KeyPower          Usage = 0x66
	KeyKpEqual        Usage = 0x67 // Keypad =

	// Extended function keys
	KeyF13 Usage = 0x68
	KeyF14 Usage = 0x69
	KeyF15 Usage = 0x6A
	KeyF16 Usage = 0x6B
	KeyF17 Usage = 0x6C
	KeyF18 Usage = 0x6D
	KeyF19 Usage = 0x6E
	KeyF20 Usage = 0x6F
	KeyF21 Usage = 0x70
	KeyF22 Usage = 0x71
	KeyF23 Usage = 0x72
	KeyF24 Usage = 0x73

	// Execution keys
	KeyExecute    Usage = 0x74
	KeyHelp       Usage = 0x75
	KeyMenu       Usage = 0x76
	KeySelect     Usage = 0x77
	KeyStop       Usage = 0x78
	KeyAgain      Usage = 0x79 // Redo
	KeyUndo       Usage = 0x7A
	KeyCut        Usage = 0x7B
	KeyCopy       Usage = 0x7C
	KeyPaste      Usage = 0x7D
	KeyFind       Usage = 0x7E
	KeyMute       Usage = 0x7F
	KeyVolumeUp   Usage = 0x80
	KeyVolumeDown Usage = 0x81

	// International and language keys
	KeyKpComma          Usage = 0x85
	KeyRo               Usage = 0x87 // International1
	KeyKatakanaHiragana Usage = 0x88 // International2
	KeyYen              Usage = 0x89 // International3
	KeyHenkan           Usage = 0x8A // International4
	KeyMuhenkan         Usage = 0x8B // International5
	KeyHangeul          Usage = 0x90 // LANG1
	KeyHanja            Usage = 0x91 // LANG2
	KeyKatakana         Usage = 0x92 // LANG3
	KeyHiragana         Usage = 0x93 // LANG4
	KeyZenkakuHankaku   Usage = 0x94 // LANG5

	// Modifiers
	KeyLeftCtrl   Usage = 0xE0
	KeyLeftShift  Usage = 0xE1
	KeyLeftAlt    Usage = 0xE2
	KeyLeftGUI    Usage = 0xE3
	KeyRightCtrl  Usage = 0xE4
	KeyRightShift Usage = 0xE5
	KeyRightAlt   Usage = 0xE6
	KeyRightGUI   Usage = 0xE7

	// Media control keys (vendor range used by common boot keyboards)
	KeyMediaPlayPause Usage = 0xE8 // Play/Pause
	KeyMediaStop      Usage = 0xE9 // Stop
	KeyMediaNext      Usage = 0xEB // Next Track
	KeyMediaPrevious  Usage = 0xEC // Previous Track
)
