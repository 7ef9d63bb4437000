package pb

import "github.com/golang/protobuf/proto"

// StringPool holds the raw serialized bytes of a string pool. Parsing the
// pool format itself is up to the caller.
type StringPool struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *StringPool) Reset()         { *m = StringPool{} }
func (m *StringPool) String() string { return proto.CompactTextString(m) }
func (*StringPool) ProtoMessage()    {}

// SourcePosition is a line/column position in a source file.
type SourcePosition struct {
	LineNumber   uint32 `protobuf:"varint,1,opt,name=line_number,json=lineNumber,proto3" json:"line_number,omitempty"`
	ColumnNumber uint32 `protobuf:"varint,2,opt,name=column_number,json=columnNumber,proto3" json:"column_number,omitempty"`
}

func (m *SourcePosition) Reset()         { *m = SourcePosition{} }
func (m *SourcePosition) String() string { return proto.CompactTextString(m) }
func (*SourcePosition) ProtoMessage()    {}

// Source points at a path in the table's source string pool.
type Source struct {
	PathIdx  uint32          `protobuf:"varint,1,opt,name=path_idx,json=pathIdx,proto3" json:"path_idx,omitempty"`
	Position *SourcePosition `protobuf:"bytes,2,opt,name=position,proto3" json:"position,omitempty"`
}

func (m *Source) Reset()         { *m = Source{} }
func (m *Source) String() string { return proto.CompactTextString(m) }
func (*Source) ProtoMessage()    {}

// ResourceTable is the root message of a compiled resource container.
type ResourceTable struct {
	SourcePool *StringPool `protobuf:"bytes,1,opt,name=source_pool,json=sourcePool,proto3" json:"source_pool,omitempty"`
	Package    []*Package  `protobuf:"bytes,2,rep,name=package,proto3" json:"package,omitempty"`
}

func (m *ResourceTable) Reset()         { *m = ResourceTable{} }
func (m *ResourceTable) String() string { return proto.CompactTextString(m) }
func (*ResourceTable) ProtoMessage()    {}

// PackageId wraps the package id byte so its presence can be detected.
type PackageId struct {
	Id uint32 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *PackageId) Reset()         { *m = PackageId{} }
func (m *PackageId) String() string { return proto.CompactTextString(m) }
func (*PackageId) ProtoMessage()    {}

type Package struct {
	PackageId   *PackageId `protobuf:"bytes,1,opt,name=package_id,json=packageId,proto3" json:"package_id,omitempty"`
	PackageName string     `protobuf:"bytes,2,opt,name=package_name,json=packageName,proto3" json:"package_name,omitempty"`
	Type        []*Type    `protobuf:"bytes,3,rep,name=type,proto3" json:"type,omitempty"`
}

func (m *Package) Reset()         { *m = Package{} }
func (m *Package) String() string { return proto.CompactTextString(m) }
func (*Package) ProtoMessage()    {}

// TypeId wraps the type id byte so its presence can be detected.
type TypeId struct {
	Id uint32 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *TypeId) Reset()         { *m = TypeId{} }
func (m *TypeId) String() string { return proto.CompactTextString(m) }
func (*TypeId) ProtoMessage()    {}

type Type struct {
	TypeId *TypeId  `protobuf:"bytes,1,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	Name   string   `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Entry  []*Entry `protobuf:"bytes,3,rep,name=entry,proto3" json:"entry,omitempty"`
}

func (m *Type) Reset()         { *m = Type{} }
func (m *Type) String() string { return proto.CompactTextString(m) }
func (*Type) ProtoMessage()    {}

// Visibility of a symbol.
type Visibility int32

const (
	VisibilityUnknown Visibility = 0
	VisibilityPrivate Visibility = 1
	VisibilityPublic  Visibility = 2
)

type SymbolStatus struct {
	Visibility Visibility `protobuf:"varint,1,opt,name=visibility,proto3,enum=rsrc.pb.SymbolStatus_Visibility" json:"visibility,omitempty"`
	Source     *Source    `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Comment    string     `protobuf:"bytes,3,opt,name=comment,proto3" json:"comment,omitempty"`
	AllowNew   bool       `protobuf:"varint,4,opt,name=allow_new,json=allowNew,proto3" json:"allow_new,omitempty"`
}

func (m *SymbolStatus) Reset()         { *m = SymbolStatus{} }
func (m *SymbolStatus) String() string { return proto.CompactTextString(m) }
func (*SymbolStatus) ProtoMessage()    {}

// EntryId wraps the entry id so its presence can be detected.
type EntryId struct {
	Id uint32 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *EntryId) Reset()         { *m = EntryId{} }
func (m *EntryId) String() string { return proto.CompactTextString(m) }
func (*EntryId) ProtoMessage()    {}

type Entry struct {
	EntryId      *EntryId       `protobuf:"bytes,1,opt,name=entry_id,json=entryId,proto3" json:"entry_id,omitempty"`
	Name         string         `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	SymbolStatus *SymbolStatus  `protobuf:"bytes,3,opt,name=symbol_status,json=symbolStatus,proto3" json:"symbol_status,omitempty"`
	ConfigValue  []*ConfigValue `protobuf:"bytes,4,rep,name=config_value,json=configValue,proto3" json:"config_value,omitempty"`
}

func (m *Entry) Reset()         { *m = Entry{} }
func (m *Entry) String() string { return proto.CompactTextString(m) }
func (*Entry) ProtoMessage()    {}

type ConfigValue struct {
	Config *Configuration `protobuf:"bytes,1,opt,name=config,proto3" json:"config,omitempty"`
	Value  *Value         `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *ConfigValue) Reset()         { *m = ConfigValue{} }
func (m *ConfigValue) String() string { return proto.CompactTextString(m) }
func (*ConfigValue) ProtoMessage()    {}
