// Package xmltree models a compiled XML document: an element tree with
// namespace declarations, attributes (optionally carrying pre-compiled
// values), and interleaved text.
package xmltree

import "github.com/rsrc/rsrc/res"

// Document is one decoded XML resource. It owns its element tree and the
// string pool the pre-compiled attribute values were registered into.
type Document struct {
	Root    *Element
	Strings *res.Pool
}

// Node is either an *Element or a *Text. The set is closed.
type Node interface {
	isNode()
}

// Element is one XML element. Children keep wire order and are owned
// exclusively by their parent.
type Element struct {
	NamespaceURI   string
	Name           string
	NamespaceDecls []NamespaceDecl
	Attributes     []Attribute
	Children       []Node
	LineNumber     int
	ColumnNumber   int
}

// AppendChild appends n to the element's children.
func (el *Element) AppendChild(n Node) {
	el.Children = append(el.Children, n)
}

// Text is a literal text node.
type Text struct {
	Text         string
	LineNumber   int
	ColumnNumber int
}

func (*Element) isNode() {}
func (*Text) isNode()    {}

// NamespaceDecl is one xmlns declaration on an element.
type NamespaceDecl struct {
	Prefix       string
	URI          string
	LineNumber   int
	ColumnNumber int
}

// Attribute is one attribute of an element. CompiledValue and
// CompiledAttribute are set only when the producer pre-compiled the raw
// value.
type Attribute struct {
	NamespaceURI string
	Name         string
	Value        string

	CompiledValue     res.Item
	CompiledAttribute *AttributeRef
}

// AttributeRef associates an attribute with the numeric id of its compiled
// attribute definition. The definition itself is filled in by a later
// stage.
type AttributeRef struct {
	Attr res.Attribute
	ID   res.ResourceID
}
