package decoder

import (
	"fmt"

	"github.com/rsrc/rsrc/conf"
	"github.com/rsrc/rsrc/pb"
	"github.com/rsrc/rsrc/res"
	"github.com/rsrc/rsrc/xmltree"
)

// DecodeXML decodes a compiled XML message into a document. A node without
// an element payload (a document with no root) yields a nil document and no
// error.
func DecodeXML(pbNode *pb.XmlNode) (*xmltree.Document, error) {
	if pbNode == nil || pbNode.GetElement() == nil {
		return nil, nil
	}

	doc := &xmltree.Document{
		Root:    &xmltree.Element{},
		Strings: res.NewPool(),
	}
	if err := decodeElement(pbNode, doc.Root, doc.Strings); err != nil {
		return nil, err
	}
	return doc, nil
}

// decodeElement fills el from a wire element node, recursing into element
// children in wire order.
func decodeElement(pbNode *pb.XmlNode, el *xmltree.Element, pool res.ValuePool) error {
	pbEl := pbNode.GetElement()
	el.Name = pbEl.Name
	el.NamespaceURI = pbEl.NamespaceUri
	if pbNode.Source != nil {
		el.LineNumber = int(pbNode.Source.LineNumber)
		el.ColumnNumber = int(pbNode.Source.ColumnNumber)
	}

	for _, pbNs := range pbEl.NamespaceDeclaration {
		decl := xmltree.NamespaceDecl{
			Prefix: pbNs.Prefix,
			URI:    pbNs.Uri,
		}
		if pbNs.Source != nil {
			decl.LineNumber = int(pbNs.Source.LineNumber)
			decl.ColumnNumber = int(pbNs.Source.ColumnNumber)
		}
		el.NamespaceDecls = append(el.NamespaceDecls, decl)
	}

	for _, pbAttr := range pbEl.Attribute {
		attr := xmltree.Attribute{
			NamespaceURI: pbAttr.NamespaceUri,
			Name:         pbAttr.Name,
			Value:        pbAttr.Value,
		}
		if pbAttr.ResourceId != 0 {
			// Placeholder association; the attribute definition is filled
			// in by a later stage.
			attr.CompiledAttribute = &xmltree.AttributeRef{ID: res.ResourceID(pbAttr.ResourceId)}
		}
		if pbAttr.CompiledItem != nil {
			// No source pool or file lookup exists at attribute
			// granularity.
			item, err := decodeItem(pbAttr.CompiledItem, res.EmptySourcePool{}, conf.Config{}, pool, nil)
			if err != nil {
				return err
			}
			if pbAttr.Source != nil {
				item.ValueMeta().Source = res.Source{}.WithLine(int(pbAttr.Source.LineNumber))
			}
			attr.CompiledValue = item
		}
		el.Attributes = append(el.Attributes, attr)
	}

	for _, pbChild := range pbEl.Child {
		switch child := pbChild.Node.(type) {
		case *pb.XmlNode_Text:
			text := &xmltree.Text{Text: child.Text}
			if pbChild.Source != nil {
				text.LineNumber = int(pbChild.Source.LineNumber)
				text.ColumnNumber = int(pbChild.Source.ColumnNumber)
			}
			el.AppendChild(text)

		case *pb.XmlNode_Element:
			childEl := &xmltree.Element{}
			if err := decodeElement(pbChild, childEl, pool); err != nil {
				return err
			}
			el.AppendChild(childEl)

		default:
			panic(fmt.Sprintf("decoder: unknown xml node variant %T", pbChild.Node))
		}
	}
	return nil
}
