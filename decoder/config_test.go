package decoder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/rsrc/rsrc/conf"
	"github.com/rsrc/rsrc/decoder"
	"github.com/rsrc/rsrc/pb"
)

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name   string
		config *pb.Configuration
		want   conf.Config
	}{
		{
			name:   "Nil",
			config: nil,
			want:   conf.Config{},
		},
		{
			name:   "Empty",
			config: &pb.Configuration{},
			want:   conf.Config{},
		},
		{
			name:   "MccMnc",
			config: &pb.Configuration{Mcc: 310, Mnc: 260},
			want:   conf.Config{MCC: 310, MNC: 260},
		},
		{
			name:   "LayoutDirection",
			config: &pb.Configuration{LayoutDirection: pb.LayoutDirectionRtl},
			want:   conf.Config{ScreenLayout: conf.LayoutDirRTL},
		},
		{
			name: "ScreenLayoutCombined",
			config: &pb.Configuration{
				ScreenLayoutSize: pb.ScreenLayoutSizeXlarge,
				ScreenLayoutLong: pb.ScreenLayoutLongLong,
				LayoutDirection:  pb.LayoutDirectionLtr,
			},
			want: conf.Config{ScreenLayout: conf.LayoutDirLTR | conf.ScreenSizeXLarge | conf.ScreenLongYes},
		},
		{
			name: "ColorMode",
			config: &pb.Configuration{
				WideColorGamut: pb.WideColorGamutWidecg,
				Hdr:            pb.HdrLowdr,
			},
			want: conf.Config{ColorMode: conf.WideColorGamutYes | conf.HDRNo},
		},
		{
			name:   "ScreenRound",
			config: &pb.Configuration{ScreenRound: pb.ScreenRoundRound},
			want:   conf.Config{ScreenLayout2: conf.ScreenRoundYes},
		},
		{
			name: "UiMode",
			config: &pb.Configuration{
				UiModeType:  pb.UiModeTypeWatch,
				UiModeNight: pb.UiModeNightNotnight,
			},
			want: conf.Config{UIMode: conf.UIModeTypeWatch | conf.UIModeNightNo},
		},
		{
			name: "Input",
			config: &pb.Configuration{
				Touchscreen: pb.TouchscreenFinger,
				KeysHidden:  pb.KeysHiddenKeyssoft,
				Keyboard:    pb.KeyboardQwerty,
				NavHidden:   pb.NavHiddenNavexposed,
				Navigation:  pb.NavigationDpad,
			},
			want: conf.Config{
				Touchscreen: conf.TouchscreenFinger,
				InputFlags:  conf.KeysHiddenSoft | conf.NavHiddenNo,
				Keyboard:    conf.KeyboardQwerty,
				Navigation:  conf.NavigationDPad,
			},
		},
		{
			name: "Dimensions",
			config: &pb.Configuration{
				SmallestScreenWidthDp: 600,
				ScreenWidthDp:         720,
				ScreenHeightDp:        1280,
				ScreenWidth:           1080,
				ScreenHeight:          1920,
				Density:               320,
				SdkVersion:            26,
			},
			want: conf.Config{
				SmallestScreenWidthDp: 600,
				ScreenWidthDp:         720,
				ScreenHeightDp:        1280,
				ScreenWidth:           1080,
				ScreenHeight:          1920,
				Density:               320,
				SDKVersion:            26,
			},
		},
		{
			name: "ScalarTruncation",
			// Wire values wider than the in-memory fields truncate
			// silently.
			config: &pb.Configuration{Density: 0x10140},
			want:   conf.Config{Density: 0x0140},
		},
		{
			name: "UnrecognizedEnumLeavesAxisClear",
			config: &pb.Configuration{
				Orientation: pb.Orientation(99),
				UiModeNight: pb.UiModeNight(42),
			},
			want: conf.Config{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decoder.DecodeConfig(tt.config)
			if err != nil {
				t.Fatalf("DecodeConfig() err = %v", err)
			}
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("Diff (-got +want)\n%s", diff)
			}
		})
	}
}

func TestDecodeConfig_locale(t *testing.T) {
	got, err := decoder.DecodeConfig(&pb.Configuration{
		Locale:      "pt-BR",
		UiModeNight: pb.UiModeNightNight,
		Density:     480,
	})
	if err != nil {
		t.Fatalf("DecodeConfig() err = %v", err)
	}
	want := conf.Config{
		Language: "pt",
		Region:   "BR",
		UIMode:   conf.UIModeNightYes,
		Density:  480,
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Diff (-got +want)\n%s", diff)
	}
}

func TestDecodeConfig_invalidLocale(t *testing.T) {
	_, err := decoder.DecodeConfig(&pb.Configuration{Locale: "no!such!locale"})
	if err == nil {
		t.Fatalf("Want error")
	}
	localeErr, ok := errors.Cause(err).(*decoder.InvalidLocaleError)
	if !ok {
		t.Fatalf("err = %T, want *InvalidLocaleError", errors.Cause(err))
	}
	if localeErr.Locale != "no!such!locale" {
		t.Errorf("Locale = %q", localeErr.Locale)
	}
}

func TestDecodeConfig_idempotent(t *testing.T) {
	in := &pb.Configuration{
		Locale:           "en-US",
		ScreenLayoutSize: pb.ScreenLayoutSizeNormal,
		UiModeNight:      pb.UiModeNightNight,
		Density:          160,
	}
	first, err := decoder.DecodeConfig(in)
	if err != nil {
		t.Fatal(err)
	}
	second, err := decoder.DecodeConfig(in)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Re-decode differs:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestDecodeConfig_singleAxisDiff(t *testing.T) {
	base := &pb.Configuration{
		ScreenLayoutSize: pb.ScreenLayoutSizeNormal,
		UiModeType:       pb.UiModeTypeCar,
		UiModeNight:      pb.UiModeNightNotnight,
	}
	night := &pb.Configuration{
		ScreenLayoutSize: pb.ScreenLayoutSizeNormal,
		UiModeType:       pb.UiModeTypeCar,
		UiModeNight:      pb.UiModeNightNight,
	}

	a, err := decoder.DecodeConfig(base)
	if err != nil {
		t.Fatal(err)
	}
	b, err := decoder.DecodeConfig(night)
	if err != nil {
		t.Fatal(err)
	}

	// Only the night bit range differs.
	if diff := (a.UIMode ^ b.UIMode) &^ conf.MaskUIModeNight; diff != 0 {
		t.Errorf("Bits outside the night range differ: 0x%02x", diff)
	}
	if a.UIMode&conf.MaskUIModeNight == b.UIMode&conf.MaskUIModeNight {
		t.Errorf("Night range does not differ")
	}
	a.UIMode, b.UIMode = 0, 0
	if a != b {
		t.Errorf("Other fields differ:\na %+v\nb %+v", a, b)
	}
}
