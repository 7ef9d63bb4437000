package res

// Meta is the metadata shared by every value: where it came from, its
// comment, and whether it is a weak definition that a later one may replace.
type Meta struct {
	Source  Source
	Comment string
	Weak    bool
}

// ValueMeta returns the shared metadata. It is implemented by embedding
// Meta.
func (m *Meta) ValueMeta() *Meta { return m }

// Value is one resource value. The set of implementations is closed:
// the Item kinds (Reference, Primitive, ID, String, RawString, StyledString,
// FileReference) and the compound kinds (Attribute, Style, Styleable, Array,
// Plural). Dispatch with a type switch; a default case is unreachable for
// values produced by this module.
type Value interface {
	ValueMeta() *Meta
	isValue()
}

// Item is a value directly representable as a flat binary value, without
// further structural decomposition.
type Item interface {
	Value
	isItem()
}

// RefType distinguishes resource references from attribute references.
type RefType uint8

const (
	RefTypeResource RefType = iota
	RefTypeAttribute
)

func (t RefType) String() string {
	if t == RefTypeAttribute {
		return "attribute"
	}
	return "resource"
}

// Reference points at another resource by id, name, or both. A zero ID
// means no numeric id was given; a nil Name means no symbolic name was
// given.
type Reference struct {
	Meta
	Type    RefType
	ID      ResourceID
	Name    *Name
	Private bool
}

// Primitive is a raw binary value: a type tag and 32 bits of payload,
// copied verbatim from the wire.
type Primitive struct {
	Meta
	Type uint8
	Data uint32
}

// ID is a sentinel resource with no payload, used to reserve a name.
type ID struct {
	Meta
}

// String is a pooled string value.
type String struct {
	Meta
	Value StringRef
}

// RawString is a pooled string kept exactly as authored, unescaped.
type RawString struct {
	Meta
	Value StringRef
}

// StyledString is a pooled string with markup spans.
type StyledString struct {
	Meta
	Value StyledRef
}

// FileReference points at a file by pooled path. File is resolved through
// the file lookup at decode time when one is available, and is nil
// otherwise.
type FileReference struct {
	Meta
	Path StringRef
	Type FileType
	File File
}

// Attribute defines the accepted formats and symbols of an attribute.
type Attribute struct {
	Meta
	FormatFlags uint32
	MinInt      int32
	MaxInt      int32
	Symbols     []AttributeSymbol
}

// AttributeSymbol is one enum/flag symbol of an attribute. Its metadata
// lives on the symbol reference.
type AttributeSymbol struct {
	Symbol Reference
	Value  uint32
}

// Style is a set of attribute-to-item mappings with an optional parent.
type Style struct {
	Meta
	Parent  *Reference
	Entries []StyleEntry
}

// StyleEntry maps an attribute reference to an item value.
type StyleEntry struct {
	Key   *Reference
	Value Item
}

// Styleable is an ordered list of attribute references. Duplicates are
// permitted at this layer; later stages merge them.
type Styleable struct {
	Meta
	Entries []*Reference
}

// Array is an ordered list of items.
type Array struct {
	Meta
	Elements []Item
}

// Plural slot indices by grammatical arity.
const (
	PluralZero = iota
	PluralOne
	PluralTwo
	PluralFew
	PluralMany
	PluralOther
	PluralCount
)

// Plural holds one optional item per grammatical arity.
type Plural struct {
	Meta
	Values [PluralCount]Item
}

func (*Reference) isValue()     {}
func (*Primitive) isValue()     {}
func (*ID) isValue()            {}
func (*String) isValue()        {}
func (*RawString) isValue()     {}
func (*StyledString) isValue()  {}
func (*FileReference) isValue() {}
func (*Attribute) isValue()     {}
func (*Style) isValue()         {}
func (*Styleable) isValue()     {}
func (*Array) isValue()         {}
func (*Plural) isValue()        {}

func (*Reference) isItem()     {}
func (*Primitive) isItem()     {}
func (*ID) isItem()            {}
func (*String) isItem()        {}
func (*RawString) isItem()     {}
func (*StyledString) isItem()  {}
func (*FileReference) isItem() {}
