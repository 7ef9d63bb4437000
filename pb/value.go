package pb

import "github.com/golang/protobuf/proto"

// Value is either an Item or a CompoundValue, plus shared metadata.
type Value struct {
	// Valid variants:
	//	*Value_Item
	//	*Value_CompoundValue
	Value   isValue_Value `protobuf_oneof:"value"`
	Source  *Source       `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	Comment string        `protobuf:"bytes,4,opt,name=comment,proto3" json:"comment,omitempty"`
	Weak    bool          `protobuf:"varint,5,opt,name=weak,proto3" json:"weak,omitempty"`
}

func (m *Value) Reset()         { *m = Value{} }
func (m *Value) String() string { return proto.CompactTextString(m) }
func (*Value) ProtoMessage()    {}

type isValue_Value interface{ isValue_Value() }

type Value_Item struct {
	Item *Item `protobuf:"bytes,1,opt,name=item,proto3,oneof"`
}
type Value_CompoundValue struct {
	CompoundValue *CompoundValue `protobuf:"bytes,2,opt,name=compound_value,json=compoundValue,proto3,oneof"`
}

func (*Value_Item) isValue_Value()          {}
func (*Value_CompoundValue) isValue_Value() {}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*Value) XXX_OneofWrappers() []interface{} {
	return []interface{}{(*Value_Item)(nil), (*Value_CompoundValue)(nil)}
}

// Item is a value that is directly representable as a flat binary value.
type Item struct {
	// Valid variants:
	//	*Item_Ref
	//	*Item_Str
	//	*Item_RawStr
	//	*Item_StyledStr
	//	*Item_File
	//	*Item_Id
	//	*Item_Prim
	Value isItem_Value `protobuf_oneof:"value"`
}

func (m *Item) Reset()         { *m = Item{} }
func (m *Item) String() string { return proto.CompactTextString(m) }
func (*Item) ProtoMessage()    {}

type isItem_Value interface{ isItem_Value() }

type Item_Ref struct {
	Ref *Reference `protobuf:"bytes,1,opt,name=ref,proto3,oneof"`
}
type Item_Str struct {
	Str *String `protobuf:"bytes,2,opt,name=str,proto3,oneof"`
}
type Item_RawStr struct {
	RawStr *RawString `protobuf:"bytes,3,opt,name=raw_str,json=rawStr,proto3,oneof"`
}
type Item_StyledStr struct {
	StyledStr *StyledString `protobuf:"bytes,4,opt,name=styled_str,json=styledStr,proto3,oneof"`
}
type Item_File struct {
	File *FileReference `protobuf:"bytes,5,opt,name=file,proto3,oneof"`
}
type Item_Id struct {
	Id *Id `protobuf:"bytes,6,opt,name=id,proto3,oneof"`
}
type Item_Prim struct {
	Prim *Primitive `protobuf:"bytes,7,opt,name=prim,proto3,oneof"`
}

func (*Item_Ref) isItem_Value()       {}
func (*Item_Str) isItem_Value()       {}
func (*Item_RawStr) isItem_Value()    {}
func (*Item_StyledStr) isItem_Value() {}
func (*Item_File) isItem_Value()      {}
func (*Item_Id) isItem_Value()        {}
func (*Item_Prim) isItem_Value()      {}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*Item) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Item_Ref)(nil),
		(*Item_Str)(nil),
		(*Item_RawStr)(nil),
		(*Item_StyledStr)(nil),
		(*Item_File)(nil),
		(*Item_Id)(nil),
		(*Item_Prim)(nil),
	}
}

// CompoundValue is an aggregate value composed of other items and references.
type CompoundValue struct {
	// Valid variants:
	//	*CompoundValue_Attr
	//	*CompoundValue_Style
	//	*CompoundValue_Styleable
	//	*CompoundValue_Array
	//	*CompoundValue_Plural
	Value isCompoundValue_Value `protobuf_oneof:"value"`
}

func (m *CompoundValue) Reset()         { *m = CompoundValue{} }
func (m *CompoundValue) String() string { return proto.CompactTextString(m) }
func (*CompoundValue) ProtoMessage()    {}

type isCompoundValue_Value interface{ isCompoundValue_Value() }

type CompoundValue_Attr struct {
	Attr *Attribute `protobuf:"bytes,1,opt,name=attr,proto3,oneof"`
}
type CompoundValue_Style struct {
	Style *Style `protobuf:"bytes,2,opt,name=style,proto3,oneof"`
}
type CompoundValue_Styleable struct {
	Styleable *Styleable `protobuf:"bytes,3,opt,name=styleable,proto3,oneof"`
}
type CompoundValue_Array struct {
	Array *Array `protobuf:"bytes,4,opt,name=array,proto3,oneof"`
}
type CompoundValue_Plural struct {
	Plural *Plural `protobuf:"bytes,5,opt,name=plural,proto3,oneof"`
}

func (*CompoundValue_Attr) isCompoundValue_Value()      {}
func (*CompoundValue_Style) isCompoundValue_Value()     {}
func (*CompoundValue_Styleable) isCompoundValue_Value() {}
func (*CompoundValue_Array) isCompoundValue_Value()     {}
func (*CompoundValue_Plural) isCompoundValue_Value()    {}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*CompoundValue) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*CompoundValue_Attr)(nil),
		(*CompoundValue_Style)(nil),
		(*CompoundValue_Styleable)(nil),
		(*CompoundValue_Array)(nil),
		(*CompoundValue_Plural)(nil),
	}
}

// ReferenceType distinguishes resource references from attribute references.
type ReferenceType int32

const (
	ReferenceTypeReference ReferenceType = 0
	ReferenceTypeAttribute ReferenceType = 1
)

type Reference struct {
	Type    ReferenceType `protobuf:"varint,1,opt,name=type,proto3,enum=rsrc.pb.Reference_Type" json:"type,omitempty"`
	Id      uint32        `protobuf:"varint,2,opt,name=id,proto3" json:"id,omitempty"`
	Name    string        `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Private bool          `protobuf:"varint,4,opt,name=private,proto3" json:"private,omitempty"`
}

func (m *Reference) Reset()         { *m = Reference{} }
func (m *Reference) String() string { return proto.CompactTextString(m) }
func (*Reference) ProtoMessage()    {}

// Id is a sentinel item carrying no payload.
type Id struct {
}

func (m *Id) Reset()         { *m = Id{} }
func (m *Id) String() string { return proto.CompactTextString(m) }
func (*Id) ProtoMessage()    {}

type String struct {
	Value string `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *String) Reset()         { *m = String{} }
func (m *String) String() string { return proto.CompactTextString(m) }
func (*String) ProtoMessage()    {}

type RawString struct {
	Value string `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *RawString) Reset()         { *m = RawString{} }
func (m *RawString) String() string { return proto.CompactTextString(m) }
func (*RawString) ProtoMessage()    {}

type StyledString struct {
	Value string               `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	Span  []*StyledString_Span `protobuf:"bytes,2,rep,name=span,proto3" json:"span,omitempty"`
}

func (m *StyledString) Reset()         { *m = StyledString{} }
func (m *StyledString) String() string { return proto.CompactTextString(m) }
func (*StyledString) ProtoMessage()    {}

type StyledString_Span struct {
	Tag       string `protobuf:"bytes,1,opt,name=tag,proto3" json:"tag,omitempty"`
	FirstChar uint32 `protobuf:"varint,2,opt,name=first_char,json=firstChar,proto3" json:"first_char,omitempty"`
	LastChar  uint32 `protobuf:"varint,3,opt,name=last_char,json=lastChar,proto3" json:"last_char,omitempty"`
}

func (m *StyledString_Span) Reset()         { *m = StyledString_Span{} }
func (m *StyledString_Span) String() string { return proto.CompactTextString(m) }
func (*StyledString_Span) ProtoMessage()    {}

// FileType tags the format of a referenced file.
type FileType int32

const (
	FileTypeUnknown   FileType = 0
	FileTypePng       FileType = 1
	FileTypeBinaryXml FileType = 2
	FileTypeProtoXml  FileType = 3
)

type FileReference struct {
	Path string   `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Type FileType `protobuf:"varint,2,opt,name=type,proto3,enum=rsrc.pb.FileReference_Type" json:"type,omitempty"`
}

func (m *FileReference) Reset()         { *m = FileReference{} }
func (m *FileReference) String() string { return proto.CompactTextString(m) }
func (*FileReference) ProtoMessage()    {}

// Primitive is a raw binary value: a type tag plus 32 bits of payload.
type Primitive struct {
	Type uint32 `protobuf:"varint,1,opt,name=type,proto3" json:"type,omitempty"`
	Data uint32 `protobuf:"varint,2,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *Primitive) Reset()         { *m = Primitive{} }
func (m *Primitive) String() string { return proto.CompactTextString(m) }
func (*Primitive) ProtoMessage()    {}

type Attribute struct {
	FormatFlags uint32              `protobuf:"varint,1,opt,name=format_flags,json=formatFlags,proto3" json:"format_flags,omitempty"`
	MinInt      int32               `protobuf:"varint,2,opt,name=min_int,json=minInt,proto3" json:"min_int,omitempty"`
	MaxInt      int32               `protobuf:"varint,3,opt,name=max_int,json=maxInt,proto3" json:"max_int,omitempty"`
	Symbol      []*Attribute_Symbol `protobuf:"bytes,4,rep,name=symbol,proto3" json:"symbol,omitempty"`
}

func (m *Attribute) Reset()         { *m = Attribute{} }
func (m *Attribute) String() string { return proto.CompactTextString(m) }
func (*Attribute) ProtoMessage()    {}

type Attribute_Symbol struct {
	Source  *Source    `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Comment string     `protobuf:"bytes,2,opt,name=comment,proto3" json:"comment,omitempty"`
	Name    *Reference `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Value   uint32     `protobuf:"varint,4,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Attribute_Symbol) Reset()         { *m = Attribute_Symbol{} }
func (m *Attribute_Symbol) String() string { return proto.CompactTextString(m) }
func (*Attribute_Symbol) ProtoMessage()    {}

type Style struct {
	Parent       *Reference     `protobuf:"bytes,1,opt,name=parent,proto3" json:"parent,omitempty"`
	ParentSource *Source        `protobuf:"bytes,2,opt,name=parent_source,json=parentSource,proto3" json:"parent_source,omitempty"`
	Entry        []*Style_Entry `protobuf:"bytes,3,rep,name=entry,proto3" json:"entry,omitempty"`
}

func (m *Style) Reset()         { *m = Style{} }
func (m *Style) String() string { return proto.CompactTextString(m) }
func (*Style) ProtoMessage()    {}

type Style_Entry struct {
	Source  *Source    `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Comment string     `protobuf:"bytes,2,opt,name=comment,proto3" json:"comment,omitempty"`
	Key     *Reference `protobuf:"bytes,3,opt,name=key,proto3" json:"key,omitempty"`
	Item    *Item      `protobuf:"bytes,4,opt,name=item,proto3" json:"item,omitempty"`
}

func (m *Style_Entry) Reset()         { *m = Style_Entry{} }
func (m *Style_Entry) String() string { return proto.CompactTextString(m) }
func (*Style_Entry) ProtoMessage()    {}

type Styleable struct {
	Entry []*Styleable_Entry `protobuf:"bytes,1,rep,name=entry,proto3" json:"entry,omitempty"`
}

func (m *Styleable) Reset()         { *m = Styleable{} }
func (m *Styleable) String() string { return proto.CompactTextString(m) }
func (*Styleable) ProtoMessage()    {}

type Styleable_Entry struct {
	Source  *Source    `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Comment string     `protobuf:"bytes,2,opt,name=comment,proto3" json:"comment,omitempty"`
	Attr    *Reference `protobuf:"bytes,3,opt,name=attr,proto3" json:"attr,omitempty"`
}

func (m *Styleable_Entry) Reset()         { *m = Styleable_Entry{} }
func (m *Styleable_Entry) String() string { return proto.CompactTextString(m) }
func (*Styleable_Entry) ProtoMessage()    {}

type Array struct {
	Element []*Array_Element `protobuf:"bytes,1,rep,name=element,proto3" json:"element,omitempty"`
}

func (m *Array) Reset()         { *m = Array{} }
func (m *Array) String() string { return proto.CompactTextString(m) }
func (*Array) ProtoMessage()    {}

type Array_Element struct {
	Source  *Source `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Comment string  `protobuf:"bytes,2,opt,name=comment,proto3" json:"comment,omitempty"`
	Item    *Item   `protobuf:"bytes,3,opt,name=item,proto3" json:"item,omitempty"`
}

func (m *Array_Element) Reset()         { *m = Array_Element{} }
func (m *Array_Element) String() string { return proto.CompactTextString(m) }
func (*Array_Element) ProtoMessage()    {}

// Arity selects the grammatical plural slot an entry applies to.
type Arity int32

const (
	ArityZero  Arity = 0
	ArityOne   Arity = 1
	ArityTwo   Arity = 2
	ArityFew   Arity = 3
	ArityMany  Arity = 4
	ArityOther Arity = 5
)

type Plural struct {
	Entry []*Plural_Entry `protobuf:"bytes,1,rep,name=entry,proto3" json:"entry,omitempty"`
}

func (m *Plural) Reset()         { *m = Plural{} }
func (m *Plural) String() string { return proto.CompactTextString(m) }
func (*Plural) ProtoMessage()    {}

type Plural_Entry struct {
	Source  *Source `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Comment string  `protobuf:"bytes,2,opt,name=comment,proto3" json:"comment,omitempty"`
	Arity   Arity   `protobuf:"varint,3,opt,name=arity,proto3,enum=rsrc.pb.Plural_Arity" json:"arity,omitempty"`
	Item    *Item   `protobuf:"bytes,4,opt,name=item,proto3" json:"item,omitempty"`
}

func (m *Plural_Entry) Reset()         { *m = Plural_Entry{} }
func (m *Plural_Entry) String() string { return proto.CompactTextString(m) }
func (*Plural_Entry) ProtoMessage()    {}
