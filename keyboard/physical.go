// Package keyboard defines the portable key values produced by the
// translation tables in keymap and hid.
//
// A key press is described two ways: a PhysicalKey names the position
// of the key on the keyboard, a LogicalKey names what the key means
// under the active layout. Both are small comparable values and can be
// used directly as map keys or compared with ==.
package keyboard

import "fmt"

// NativeKind tells which platform a NativeKeyCode came from.
type NativeKind uint8

const (
	// NativeUnidentified means the platform explicitly reported that
	// there is no key. It is the zero value.
	NativeUnidentified NativeKind = iota
	NativeAndroid
	NativeMacOS
	NativeWindows
	// NativeXkb carries a Linux/XKB scan code in native (kernel) numbering.
	NativeXkb
)

func (k NativeKind) String() string {
	switch k {
	case NativeUnidentified:
		return "Unidentified"
	case NativeAndroid:
		return "Android"
	case NativeMacOS:
		return "MacOS"
	case NativeWindows:
		return "Windows"
	case NativeXkb:
		return "Xkb"
	default:
		return fmt.Sprintf("NativeKind(%d)", uint8(k))
	}
}

// NativeKeyCode is a platform specific code for a key that has no
// KeyCode. The zero value is the explicit "no key" sentinel.
type NativeKeyCode struct {
	Kind NativeKind
	Code uint32
}

// Xkb returns the native code carrying a raw scan code.
func Xkb(scancode uint32) NativeKeyCode {
	return NativeKeyCode{Kind: NativeXkb, Code: scancode}
}

// Android returns the native code carrying an Android scan code.
func Android(scancode uint32) NativeKeyCode {
	return NativeKeyCode{Kind: NativeAndroid, Code: scancode}
}

// MacOS returns the native code carrying a macOS virtual key code.
func MacOS(code uint16) NativeKeyCode {
	return NativeKeyCode{Kind: NativeMacOS, Code: uint32(code)}
}

// Windows returns the native code carrying a Windows scan code.
func Windows(code uint16) NativeKeyCode {
	return NativeKeyCode{Kind: NativeWindows, Code: uint32(code)}
}

func (n NativeKeyCode) String() string {
	if n.Kind == NativeUnidentified {
		return "Unidentified"
	}
	return fmt.Sprintf("%s(%d)", n.Kind, n.Code)
}

// PhysicalKey is either a known KeyCode or an unidentified key that
// keeps whatever the platform reported about it.
type PhysicalKey struct {
	code   KeyCode
	native NativeKeyCode
}

// Code returns the physical key for k. Code(KeyUnknown) is the same
// value as Unidentified(NativeKeyCode{}).
func Code(k KeyCode) PhysicalKey {
	return PhysicalKey{code: k}
}

// Unidentified returns the physical key for a key without a KeyCode.
func Unidentified(n NativeKeyCode) PhysicalKey {
	return PhysicalKey{native: n}
}

// KeyCode reports the key code, if the key is identified.
func (p PhysicalKey) KeyCode() (KeyCode, bool) {
	return p.code, p.code != KeyUnknown
}

// Native reports the native code, if the key is unidentified.
func (p PhysicalKey) Native() (NativeKeyCode, bool) {
	return p.native, p.code == KeyUnknown
}

func (p PhysicalKey) String() string {
	if p.code != KeyUnknown {
		return p.code.String()
	}
	if p.native.Kind == NativeUnidentified {
		return "Unidentified"
	}
	return "Unidentified(" + p.native.String() + ")"
}
