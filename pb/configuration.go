package pb

import "github.com/golang/protobuf/proto"

// Enumerated configuration axes. Zero is always "unset": the axis was not
// constrained by the producer and must be left cleared when decoding.
type (
	LayoutDirection  int32
	ScreenLayoutSize int32
	ScreenLayoutLong int32
	ScreenRound      int32
	WideColorGamut   int32
	Hdr              int32
	Orientation      int32
	UiModeType       int32
	UiModeNight      int32
	Touchscreen      int32
	KeysHidden       int32
	Keyboard         int32
	NavHidden        int32
	Navigation       int32
)

const (
	LayoutDirectionUnset LayoutDirection = 0
	LayoutDirectionLtr   LayoutDirection = 1
	LayoutDirectionRtl   LayoutDirection = 2

	ScreenLayoutSizeUnset  ScreenLayoutSize = 0
	ScreenLayoutSizeSmall  ScreenLayoutSize = 1
	ScreenLayoutSizeNormal ScreenLayoutSize = 2
	ScreenLayoutSizeLarge  ScreenLayoutSize = 3
	ScreenLayoutSizeXlarge ScreenLayoutSize = 4

	ScreenLayoutLongUnset   ScreenLayoutLong = 0
	ScreenLayoutLongLong    ScreenLayoutLong = 1
	ScreenLayoutLongNotlong ScreenLayoutLong = 2

	ScreenRoundUnset    ScreenRound = 0
	ScreenRoundRound    ScreenRound = 1
	ScreenRoundNotround ScreenRound = 2

	WideColorGamutUnset    WideColorGamut = 0
	WideColorGamutWidecg   WideColorGamut = 1
	WideColorGamutNowidecg WideColorGamut = 2

	HdrUnset  Hdr = 0
	HdrHighdr Hdr = 1
	HdrLowdr  Hdr = 2

	OrientationUnset  Orientation = 0
	OrientationPort   Orientation = 1
	OrientationLand   Orientation = 2
	OrientationSquare Orientation = 3

	UiModeTypeUnset      UiModeType = 0
	UiModeTypeNormal     UiModeType = 1
	UiModeTypeDesk       UiModeType = 2
	UiModeTypeCar        UiModeType = 3
	UiModeTypeTelevision UiModeType = 4
	UiModeTypeAppliance  UiModeType = 5
	UiModeTypeWatch      UiModeType = 6
	UiModeTypeVrheadset  UiModeType = 7

	UiModeNightUnset    UiModeNight = 0
	UiModeNightNight    UiModeNight = 1
	UiModeNightNotnight UiModeNight = 2

	TouchscreenUnset   Touchscreen = 0
	TouchscreenNotouch Touchscreen = 1
	TouchscreenStylus  Touchscreen = 2
	TouchscreenFinger  Touchscreen = 3

	KeysHiddenUnset       KeysHidden = 0
	KeysHiddenKeysexposed KeysHidden = 1
	KeysHiddenKeyshidden  KeysHidden = 2
	KeysHiddenKeyssoft    KeysHidden = 3

	KeyboardUnset     Keyboard = 0
	KeyboardNokeys    Keyboard = 1
	KeyboardQwerty    Keyboard = 2
	KeyboardTwelvekey Keyboard = 3

	NavHiddenUnset      NavHidden = 0
	NavHiddenNavexposed NavHidden = 1
	NavHiddenNavhidden  NavHidden = 2

	NavigationUnset     Navigation = 0
	NavigationNonav     Navigation = 1
	NavigationDpad      Navigation = 2
	NavigationTrackball Navigation = 3
	NavigationWheel     Navigation = 4
)

// Configuration describes one device/runtime condition combination a value
// applies under. Scalar axes are wire-width uint32 and are truncated to
// their in-memory width during decode.
type Configuration struct {
	Mcc                   uint32           `protobuf:"varint,1,opt,name=mcc,proto3" json:"mcc,omitempty"`
	Mnc                   uint32           `protobuf:"varint,2,opt,name=mnc,proto3" json:"mnc,omitempty"`
	Locale                string           `protobuf:"bytes,3,opt,name=locale,proto3" json:"locale,omitempty"`
	LayoutDirection       LayoutDirection  `protobuf:"varint,4,opt,name=layout_direction,json=layoutDirection,proto3,enum=rsrc.pb.Configuration_LayoutDirection" json:"layout_direction,omitempty"`
	ScreenWidth           uint32           `protobuf:"varint,5,opt,name=screen_width,json=screenWidth,proto3" json:"screen_width,omitempty"`
	ScreenHeight          uint32           `protobuf:"varint,6,opt,name=screen_height,json=screenHeight,proto3" json:"screen_height,omitempty"`
	ScreenWidthDp         uint32           `protobuf:"varint,7,opt,name=screen_width_dp,json=screenWidthDp,proto3" json:"screen_width_dp,omitempty"`
	ScreenHeightDp        uint32           `protobuf:"varint,8,opt,name=screen_height_dp,json=screenHeightDp,proto3" json:"screen_height_dp,omitempty"`
	SmallestScreenWidthDp uint32           `protobuf:"varint,9,opt,name=smallest_screen_width_dp,json=smallestScreenWidthDp,proto3" json:"smallest_screen_width_dp,omitempty"`
	ScreenLayoutSize      ScreenLayoutSize `protobuf:"varint,10,opt,name=screen_layout_size,json=screenLayoutSize,proto3,enum=rsrc.pb.Configuration_ScreenLayoutSize" json:"screen_layout_size,omitempty"`
	ScreenLayoutLong      ScreenLayoutLong `protobuf:"varint,11,opt,name=screen_layout_long,json=screenLayoutLong,proto3,enum=rsrc.pb.Configuration_ScreenLayoutLong" json:"screen_layout_long,omitempty"`
	ScreenRound           ScreenRound      `protobuf:"varint,12,opt,name=screen_round,json=screenRound,proto3,enum=rsrc.pb.Configuration_ScreenRound" json:"screen_round,omitempty"`
	WideColorGamut        WideColorGamut   `protobuf:"varint,13,opt,name=wide_color_gamut,json=wideColorGamut,proto3,enum=rsrc.pb.Configuration_WideColorGamut" json:"wide_color_gamut,omitempty"`
	Hdr                   Hdr              `protobuf:"varint,14,opt,name=hdr,proto3,enum=rsrc.pb.Configuration_Hdr" json:"hdr,omitempty"`
	Orientation           Orientation      `protobuf:"varint,15,opt,name=orientation,proto3,enum=rsrc.pb.Configuration_Orientation" json:"orientation,omitempty"`
	UiModeType            UiModeType       `protobuf:"varint,16,opt,name=ui_mode_type,json=uiModeType,proto3,enum=rsrc.pb.Configuration_UiModeType" json:"ui_mode_type,omitempty"`
	UiModeNight           UiModeNight      `protobuf:"varint,17,opt,name=ui_mode_night,json=uiModeNight,proto3,enum=rsrc.pb.Configuration_UiModeNight" json:"ui_mode_night,omitempty"`
	Density               uint32           `protobuf:"varint,18,opt,name=density,proto3" json:"density,omitempty"`
	Touchscreen           Touchscreen      `protobuf:"varint,19,opt,name=touchscreen,proto3,enum=rsrc.pb.Configuration_Touchscreen" json:"touchscreen,omitempty"`
	KeysHidden            KeysHidden       `protobuf:"varint,20,opt,name=keys_hidden,json=keysHidden,proto3,enum=rsrc.pb.Configuration_KeysHidden" json:"keys_hidden,omitempty"`
	Keyboard              Keyboard         `protobuf:"varint,21,opt,name=keyboard,proto3,enum=rsrc.pb.Configuration_Keyboard" json:"keyboard,omitempty"`
	NavHidden             NavHidden        `protobuf:"varint,22,opt,name=nav_hidden,json=navHidden,proto3,enum=rsrc.pb.Configuration_NavHidden" json:"nav_hidden,omitempty"`
	Navigation            Navigation       `protobuf:"varint,23,opt,name=navigation,proto3,enum=rsrc.pb.Configuration_Navigation" json:"navigation,omitempty"`
	SdkVersion            uint32           `protobuf:"varint,24,opt,name=sdk_version,json=sdkVersion,proto3" json:"sdk_version,omitempty"`
	Product               string           `protobuf:"bytes,25,opt,name=product,proto3" json:"product,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}
