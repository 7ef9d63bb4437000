// Package conf holds the packed configuration descriptor: one device/runtime
// condition combination (locale, screen, density, input, SDK level) under
// which a resource value applies.
//
// Enumerated axes share small bitmask fields. Every axis occupies a fixed
// bit range in its field; setting an axis clears exactly that range first,
// so re-applying the same wire value is idempotent. Two configs are the same
// configuration iff every field compares equal.
package conf

import (
	"fmt"
	"strings"
)

// Bit ranges and per-axis constants. An axis value of zero means the axis
// is unconstrained.
const (
	MaskLayoutDir uint8 = 0xc0 // in ScreenLayout
	LayoutDirLTR  uint8 = 0x40
	LayoutDirRTL  uint8 = 0x80

	MaskScreenSize   uint8 = 0x0f // in ScreenLayout
	ScreenSizeSmall  uint8 = 0x01
	ScreenSizeNormal uint8 = 0x02
	ScreenSizeLarge  uint8 = 0x03
	ScreenSizeXLarge uint8 = 0x04

	MaskScreenLong uint8 = 0x30 // in ScreenLayout
	ScreenLongNo   uint8 = 0x10
	ScreenLongYes  uint8 = 0x20

	MaskScreenRound uint8 = 0x03 // in ScreenLayout2
	ScreenRoundNo   uint8 = 0x01
	ScreenRoundYes  uint8 = 0x02

	MaskWideColorGamut uint8 = 0x03 // in ColorMode
	WideColorGamutNo   uint8 = 0x01
	WideColorGamutYes  uint8 = 0x02

	MaskHDR uint8 = 0x0c // in ColorMode
	HDRNo   uint8 = 0x04
	HDRYes  uint8 = 0x08

	OrientationPort   uint8 = 0x01
	OrientationLand   uint8 = 0x02
	OrientationSquare uint8 = 0x03

	MaskUIModeType       uint8 = 0x0f // in UIMode
	UIModeTypeNormal     uint8 = 0x01
	UIModeTypeDesk       uint8 = 0x02
	UIModeTypeCar        uint8 = 0x03
	UIModeTypeTelevision uint8 = 0x04
	UIModeTypeAppliance  uint8 = 0x05
	UIModeTypeWatch      uint8 = 0x06
	UIModeTypeVRHeadset  uint8 = 0x07

	MaskUIModeNight uint8 = 0x30 // in UIMode
	UIModeNightNo   uint8 = 0x10
	UIModeNightYes  uint8 = 0x20

	TouchscreenNoTouch uint8 = 0x01
	TouchscreenStylus  uint8 = 0x02
	TouchscreenFinger  uint8 = 0x03

	MaskKeysHidden uint8 = 0x03 // in InputFlags
	KeysHiddenNo   uint8 = 0x01
	KeysHiddenYes  uint8 = 0x02
	KeysHiddenSoft uint8 = 0x03

	KeyboardNoKeys uint8 = 0x01
	KeyboardQwerty uint8 = 0x02
	Keyboard12Key  uint8 = 0x03

	MaskNavHidden uint8 = 0x0c // in InputFlags
	NavHiddenNo   uint8 = 0x04
	NavHiddenYes  uint8 = 0x08

	NavigationNoNav     uint8 = 0x01
	NavigationDPad      uint8 = 0x02
	NavigationTrackball uint8 = 0x03
	NavigationWheel     uint8 = 0x04
)

// Config is one packed configuration descriptor. The zero value is the
// default configuration (no axis constrained).
type Config struct {
	MCC uint16
	MNC uint16

	// Locale subtags as spelled in the (validated) BCP-47 tag.
	Language string
	Script   string
	Region   string
	Variant  string

	ScreenLayout  uint8 // layout direction | screen size | screen long
	ScreenLayout2 uint8 // screen round
	ColorMode     uint8 // wide color gamut | HDR
	Orientation   uint8
	UIMode        uint8 // UI mode type | UI mode night
	Touchscreen   uint8
	Keyboard      uint8
	Navigation    uint8
	InputFlags    uint8 // keys hidden | nav hidden

	Density               uint16
	ScreenWidth           uint16
	ScreenHeight          uint16
	ScreenWidthDp         uint16
	ScreenHeightDp        uint16
	SmallestScreenWidthDp uint16
	SDKVersion            uint16
}

// Default is the unconstrained configuration.
var Default = Config{}

// Locale returns the BCP-47 tag spelled from the stored subtags, or "" when
// no locale is set.
func (c Config) Locale() string {
	if c.Language == "" {
		return ""
	}
	parts := []string{c.Language}
	if c.Script != "" {
		parts = append(parts, c.Script)
	}
	if c.Region != "" {
		parts = append(parts, c.Region)
	}
	if c.Variant != "" {
		parts = append(parts, c.Variant)
	}
	return strings.Join(parts, "-")
}

// String renders the configuration as a dash-separated qualifier list, with
// "default" for the unconstrained configuration.
func (c Config) String() string {
	var q []string
	if c.MCC != 0 {
		q = append(q, fmt.Sprintf("mcc%d", c.MCC))
	}
	if c.MNC != 0 {
		q = append(q, fmt.Sprintf("mnc%d", c.MNC))
	}
	if l := c.Locale(); l != "" {
		q = append(q, l)
	}
	switch c.ScreenLayout & MaskLayoutDir {
	case LayoutDirLTR:
		q = append(q, "ldltr")
	case LayoutDirRTL:
		q = append(q, "ldrtl")
	}
	if c.SmallestScreenWidthDp != 0 {
		q = append(q, fmt.Sprintf("sw%ddp", c.SmallestScreenWidthDp))
	}
	if c.ScreenWidthDp != 0 {
		q = append(q, fmt.Sprintf("w%ddp", c.ScreenWidthDp))
	}
	if c.ScreenHeightDp != 0 {
		q = append(q, fmt.Sprintf("h%ddp", c.ScreenHeightDp))
	}
	switch c.ScreenLayout & MaskScreenSize {
	case ScreenSizeSmall:
		q = append(q, "small")
	case ScreenSizeNormal:
		q = append(q, "normal")
	case ScreenSizeLarge:
		q = append(q, "large")
	case ScreenSizeXLarge:
		q = append(q, "xlarge")
	}
	switch c.ScreenLayout & MaskScreenLong {
	case ScreenLongYes:
		q = append(q, "long")
	case ScreenLongNo:
		q = append(q, "notlong")
	}
	switch c.ScreenLayout2 & MaskScreenRound {
	case ScreenRoundYes:
		q = append(q, "round")
	case ScreenRoundNo:
		q = append(q, "notround")
	}
	switch c.ColorMode & MaskWideColorGamut {
	case WideColorGamutYes:
		q = append(q, "widecg")
	case WideColorGamutNo:
		q = append(q, "nowidecg")
	}
	switch c.ColorMode & MaskHDR {
	case HDRYes:
		q = append(q, "highdr")
	case HDRNo:
		q = append(q, "lowdr")
	}
	switch c.Orientation {
	case OrientationPort:
		q = append(q, "port")
	case OrientationLand:
		q = append(q, "land")
	case OrientationSquare:
		q = append(q, "square")
	}
	switch c.UIMode & MaskUIModeType {
	case UIModeTypeDesk:
		q = append(q, "desk")
	case UIModeTypeCar:
		q = append(q, "car")
	case UIModeTypeTelevision:
		q = append(q, "television")
	case UIModeTypeAppliance:
		q = append(q, "appliance")
	case UIModeTypeWatch:
		q = append(q, "watch")
	case UIModeTypeVRHeadset:
		q = append(q, "vrheadset")
	}
	switch c.UIMode & MaskUIModeNight {
	case UIModeNightYes:
		q = append(q, "night")
	case UIModeNightNo:
		q = append(q, "notnight")
	}
	if c.Density != 0 {
		q = append(q, fmt.Sprintf("%ddpi", c.Density))
	}
	switch c.Touchscreen {
	case TouchscreenNoTouch:
		q = append(q, "notouch")
	case TouchscreenStylus:
		q = append(q, "stylus")
	case TouchscreenFinger:
		q = append(q, "finger")
	}
	switch c.InputFlags & MaskKeysHidden {
	case KeysHiddenNo:
		q = append(q, "keysexposed")
	case KeysHiddenYes:
		q = append(q, "keyshidden")
	case KeysHiddenSoft:
		q = append(q, "keyssoft")
	}
	switch c.Keyboard {
	case KeyboardNoKeys:
		q = append(q, "nokeys")
	case KeyboardQwerty:
		q = append(q, "qwerty")
	case Keyboard12Key:
		q = append(q, "12key")
	}
	switch c.InputFlags & MaskNavHidden {
	case NavHiddenNo:
		q = append(q, "navexposed")
	case NavHiddenYes:
		q = append(q, "navhidden")
	}
	switch c.Navigation {
	case NavigationNoNav:
		q = append(q, "nonav")
	case NavigationDPad:
		q = append(q, "dpad")
	case NavigationTrackball:
		q = append(q, "trackball")
	case NavigationWheel:
		q = append(q, "wheel")
	}
	if c.ScreenWidth != 0 || c.ScreenHeight != 0 {
		q = append(q, fmt.Sprintf("%dx%d", c.ScreenWidth, c.ScreenHeight))
	}
	if c.SDKVersion != 0 {
		q = append(q, fmt.Sprintf("v%d", c.SDKVersion))
	}
	if len(q) == 0 {
		return "default"
	}
	return strings.Join(q, "-")
}
