package decoder

import (
	"github.com/rsrc/rsrc/conf"
	"github.com/rsrc/rsrc/pb"
)

// DecodeConfig decodes a wire configuration into a packed descriptor.
// A nil input yields the default configuration.
//
// Axes are applied in wire field order. Enumerated axes clear their bit
// range first and leave it cleared for unset or unrecognized wire values;
// scalar axes truncate to their in-memory width. The locale axis is the
// only fallible one; on an invalid tag the axes decoded before it remain
// applied and the caller must discard the config.
func DecodeConfig(pbConfig *pb.Configuration) (conf.Config, error) {
	var out conf.Config
	if pbConfig == nil {
		return out, nil
	}

	out.MCC = uint16(pbConfig.Mcc)
	out.MNC = uint16(pbConfig.Mnc)

	if pbConfig.Locale != "" {
		if err := out.SetLocale(pbConfig.Locale); err != nil {
			return out, &InvalidLocaleError{Locale: pbConfig.Locale, Err: err}
		}
	}

	switch pbConfig.LayoutDirection {
	case pb.LayoutDirectionLtr:
		out.ScreenLayout = out.ScreenLayout&^conf.MaskLayoutDir | conf.LayoutDirLTR
	case pb.LayoutDirectionRtl:
		out.ScreenLayout = out.ScreenLayout&^conf.MaskLayoutDir | conf.LayoutDirRTL
	}

	out.SmallestScreenWidthDp = uint16(pbConfig.SmallestScreenWidthDp)
	out.ScreenWidthDp = uint16(pbConfig.ScreenWidthDp)
	out.ScreenHeightDp = uint16(pbConfig.ScreenHeightDp)

	switch pbConfig.ScreenLayoutSize {
	case pb.ScreenLayoutSizeSmall:
		out.ScreenLayout = out.ScreenLayout&^conf.MaskScreenSize | conf.ScreenSizeSmall
	case pb.ScreenLayoutSizeNormal:
		out.ScreenLayout = out.ScreenLayout&^conf.MaskScreenSize | conf.ScreenSizeNormal
	case pb.ScreenLayoutSizeLarge:
		out.ScreenLayout = out.ScreenLayout&^conf.MaskScreenSize | conf.ScreenSizeLarge
	case pb.ScreenLayoutSizeXlarge:
		out.ScreenLayout = out.ScreenLayout&^conf.MaskScreenSize | conf.ScreenSizeXLarge
	}

	switch pbConfig.ScreenLayoutLong {
	case pb.ScreenLayoutLongLong:
		out.ScreenLayout = out.ScreenLayout&^conf.MaskScreenLong | conf.ScreenLongYes
	case pb.ScreenLayoutLongNotlong:
		out.ScreenLayout = out.ScreenLayout&^conf.MaskScreenLong | conf.ScreenLongNo
	}

	switch pbConfig.ScreenRound {
	case pb.ScreenRoundRound:
		out.ScreenLayout2 = out.ScreenLayout2&^conf.MaskScreenRound | conf.ScreenRoundYes
	case pb.ScreenRoundNotround:
		out.ScreenLayout2 = out.ScreenLayout2&^conf.MaskScreenRound | conf.ScreenRoundNo
	}

	switch pbConfig.WideColorGamut {
	case pb.WideColorGamutWidecg:
		out.ColorMode = out.ColorMode&^conf.MaskWideColorGamut | conf.WideColorGamutYes
	case pb.WideColorGamutNowidecg:
		out.ColorMode = out.ColorMode&^conf.MaskWideColorGamut | conf.WideColorGamutNo
	}

	switch pbConfig.Hdr {
	case pb.HdrHighdr:
		out.ColorMode = out.ColorMode&^conf.MaskHDR | conf.HDRYes
	case pb.HdrLowdr:
		out.ColorMode = out.ColorMode&^conf.MaskHDR | conf.HDRNo
	}

	switch pbConfig.Orientation {
	case pb.OrientationPort:
		out.Orientation = conf.OrientationPort
	case pb.OrientationLand:
		out.Orientation = conf.OrientationLand
	case pb.OrientationSquare:
		out.Orientation = conf.OrientationSquare
	}

	switch pbConfig.UiModeType {
	case pb.UiModeTypeNormal:
		out.UIMode = out.UIMode&^conf.MaskUIModeType | conf.UIModeTypeNormal
	case pb.UiModeTypeDesk:
		out.UIMode = out.UIMode&^conf.MaskUIModeType | conf.UIModeTypeDesk
	case pb.UiModeTypeCar:
		out.UIMode = out.UIMode&^conf.MaskUIModeType | conf.UIModeTypeCar
	case pb.UiModeTypeTelevision:
		out.UIMode = out.UIMode&^conf.MaskUIModeType | conf.UIModeTypeTelevision
	case pb.UiModeTypeAppliance:
		out.UIMode = out.UIMode&^conf.MaskUIModeType | conf.UIModeTypeAppliance
	case pb.UiModeTypeWatch:
		out.UIMode = out.UIMode&^conf.MaskUIModeType | conf.UIModeTypeWatch
	case pb.UiModeTypeVrheadset:
		out.UIMode = out.UIMode&^conf.MaskUIModeType | conf.UIModeTypeVRHeadset
	}

	switch pbConfig.UiModeNight {
	case pb.UiModeNightNight:
		out.UIMode = out.UIMode&^conf.MaskUIModeNight | conf.UIModeNightYes
	case pb.UiModeNightNotnight:
		out.UIMode = out.UIMode&^conf.MaskUIModeNight | conf.UIModeNightNo
	}

	out.Density = uint16(pbConfig.Density)

	switch pbConfig.Touchscreen {
	case pb.TouchscreenNotouch:
		out.Touchscreen = conf.TouchscreenNoTouch
	case pb.TouchscreenStylus:
		out.Touchscreen = conf.TouchscreenStylus
	case pb.TouchscreenFinger:
		out.Touchscreen = conf.TouchscreenFinger
	}

	switch pbConfig.KeysHidden {
	case pb.KeysHiddenKeysexposed:
		out.InputFlags = out.InputFlags&^conf.MaskKeysHidden | conf.KeysHiddenNo
	case pb.KeysHiddenKeyshidden:
		out.InputFlags = out.InputFlags&^conf.MaskKeysHidden | conf.KeysHiddenYes
	case pb.KeysHiddenKeyssoft:
		out.InputFlags = out.InputFlags&^conf.MaskKeysHidden | conf.KeysHiddenSoft
	}

	switch pbConfig.Keyboard {
	case pb.KeyboardNokeys:
		out.Keyboard = conf.KeyboardNoKeys
	case pb.KeyboardQwerty:
		out.Keyboard = conf.KeyboardQwerty
	case pb.KeyboardTwelvekey:
		out.Keyboard = conf.Keyboard12Key
	}

	switch pbConfig.NavHidden {
	case pb.NavHiddenNavexposed:
		out.InputFlags = out.InputFlags&^conf.MaskNavHidden | conf.NavHiddenNo
	case pb.NavHiddenNavhidden:
		out.InputFlags = out.InputFlags&^conf.MaskNavHidden | conf.NavHiddenYes
	}

	switch pbConfig.Navigation {
	case pb.NavigationNonav:
		out.Navigation = conf.NavigationNoNav
	case pb.NavigationDpad:
		out.Navigation = conf.NavigationDPad
	case pb.NavigationTrackball:
		out.Navigation = conf.NavigationTrackball
	case pb.NavigationWheel:
		out.Navigation = conf.NavigationWheel
	}

	out.ScreenWidth = uint16(pbConfig.ScreenWidth)
	out.ScreenHeight = uint16(pbConfig.ScreenHeight)
	out.SDKVersion = uint16(pbConfig.SdkVersion)
	return out, nil
}
