package pb

import "github.com/golang/protobuf/proto"

// XmlNode is one node of a compiled XML document: an element or raw text.
type XmlNode struct {
	// Valid variants:
	//	*XmlNode_Element
	//	*XmlNode_Text
	Node   isXmlNode_Node  `protobuf_oneof:"node"`
	Source *SourcePosition `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
}

func (m *XmlNode) Reset()         { *m = XmlNode{} }
func (m *XmlNode) String() string { return proto.CompactTextString(m) }
func (*XmlNode) ProtoMessage()    {}

type isXmlNode_Node interface{ isXmlNode_Node() }

type XmlNode_Element struct {
	Element *XmlElement `protobuf:"bytes,1,opt,name=element,proto3,oneof"`
}
type XmlNode_Text struct {
	Text string `protobuf:"bytes,2,opt,name=text,proto3,oneof"`
}

func (*XmlNode_Element) isXmlNode_Node() {}
func (*XmlNode_Text) isXmlNode_Node()    {}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*XmlNode) XXX_OneofWrappers() []interface{} {
	return []interface{}{(*XmlNode_Element)(nil), (*XmlNode_Text)(nil)}
}

// GetElement returns the element payload, or nil for non-element nodes.
func (m *XmlNode) GetElement() *XmlElement {
	if x, ok := m.Node.(*XmlNode_Element); ok {
		return x.Element
	}
	return nil
}

type XmlElement struct {
	NamespaceDeclaration []*XmlNamespace `protobuf:"bytes,1,rep,name=namespace_declaration,json=namespaceDeclaration,proto3" json:"namespace_declaration,omitempty"`
	NamespaceUri         string          `protobuf:"bytes,2,opt,name=namespace_uri,json=namespaceUri,proto3" json:"namespace_uri,omitempty"`
	Name                 string          `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Attribute            []*XmlAttribute `protobuf:"bytes,4,rep,name=attribute,proto3" json:"attribute,omitempty"`
	Child                []*XmlNode      `protobuf:"bytes,5,rep,name=child,proto3" json:"child,omitempty"`
}

func (m *XmlElement) Reset()         { *m = XmlElement{} }
func (m *XmlElement) String() string { return proto.CompactTextString(m) }
func (*XmlElement) ProtoMessage()    {}

type XmlNamespace struct {
	Prefix string          `protobuf:"bytes,1,opt,name=prefix,proto3" json:"prefix,omitempty"`
	Uri    string          `protobuf:"bytes,2,opt,name=uri,proto3" json:"uri,omitempty"`
	Source *SourcePosition `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
}

func (m *XmlNamespace) Reset()         { *m = XmlNamespace{} }
func (m *XmlNamespace) String() string { return proto.CompactTextString(m) }
func (*XmlNamespace) ProtoMessage()    {}

type XmlAttribute struct {
	NamespaceUri string          `protobuf:"bytes,1,opt,name=namespace_uri,json=namespaceUri,proto3" json:"namespace_uri,omitempty"`
	Name         string          `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Value        string          `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
	Source       *SourcePosition `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
	ResourceId   uint32          `protobuf:"varint,5,opt,name=resource_id,json=resourceId,proto3" json:"resource_id,omitempty"`
	CompiledItem *Item           `protobuf:"bytes,6,opt,name=compiled_item,json=compiledItem,proto3" json:"compiled_item,omitempty"`
}

func (m *XmlAttribute) Reset()         { *m = XmlAttribute{} }
func (m *XmlAttribute) String() string { return proto.CompactTextString(m) }
func (*XmlAttribute) ProtoMessage()    {}
