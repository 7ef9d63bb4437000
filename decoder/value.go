package decoder

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/rsrc/rsrc/conf"
	"github.com/rsrc/rsrc/pb"
	"github.com/rsrc/rsrc/res"
)

// decodeValue decodes one wire value, item or compound, and attaches the
// shared metadata. A value with no payload at all violates the producer
// contract and panics.
func decodeValue(pbValue *pb.Value, srcPool res.SourcePool, config conf.Config, pool res.ValuePool, files res.FileLookup) (res.Value, error) {
	if pbValue == nil {
		panic("decoder: value has no payload")
	}

	var value res.Value
	switch v := pbValue.Value.(type) {
	case *pb.Value_Item:
		item, err := decodeItem(v.Item, srcPool, config, pool, files)
		if err != nil {
			return nil, err
		}
		value = item

	case *pb.Value_CompoundValue:
		compound, err := decodeCompoundValue(v.CompoundValue, srcPool, config, pool, files)
		if err != nil {
			return nil, err
		}
		value = compound

	default:
		panic(fmt.Sprintf("decoder: value has neither item nor compound payload (%T)", pbValue.Value))
	}

	meta := value.ValueMeta()
	meta.Weak = pbValue.Weak
	applyMeta(pbValue.Source, pbValue.Comment, srcPool, meta)
	return value, nil
}

func decodeCompoundValue(pbCompound *pb.CompoundValue, srcPool res.SourcePool, config conf.Config, pool res.ValuePool, files res.FileLookup) (res.Value, error) {
	if pbCompound == nil {
		panic("decoder: compound value has no payload")
	}
	switch cv := pbCompound.Value.(type) {
	case *pb.CompoundValue_Attr:
		return decodeAttribute(cv.Attr, srcPool)
	case *pb.CompoundValue_Style:
		return decodeStyle(cv.Style, srcPool, config, pool, files)
	case *pb.CompoundValue_Styleable:
		return decodeStyleable(cv.Styleable, srcPool)
	case *pb.CompoundValue_Array:
		return decodeArray(cv.Array, srcPool, config, pool, files)
	case *pb.CompoundValue_Plural:
		return decodePlural(cv.Plural, srcPool, config, pool, files)
	default:
		panic(fmt.Sprintf("decoder: unknown compound value variant %T", pbCompound.Value))
	}
}

func decodeAttribute(pbAttr *pb.Attribute, srcPool res.SourcePool) (*res.Attribute, error) {
	attr := &res.Attribute{
		FormatFlags: pbAttr.FormatFlags,
		MinInt:      pbAttr.MinInt,
		MaxInt:      pbAttr.MaxInt,
	}
	for _, pbSymbol := range pbAttr.Symbol {
		ref, err := decodeReference(pbSymbol.Name)
		if err != nil {
			return nil, errors.Wrap(err, "attribute symbol")
		}
		applyMeta(pbSymbol.Source, pbSymbol.Comment, srcPool, &ref.Meta)
		attr.Symbols = append(attr.Symbols, res.AttributeSymbol{
			Symbol: *ref,
			Value:  pbSymbol.Value,
		})
	}
	return attr, nil
}

func decodeStyle(pbStyle *pb.Style, srcPool res.SourcePool, config conf.Config, pool res.ValuePool, files res.FileLookup) (*res.Style, error) {
	style := &res.Style{}
	if pbStyle.Parent != nil {
		parent, err := decodeReference(pbStyle.Parent)
		if err != nil {
			return nil, errors.Wrap(err, "style parent")
		}
		if pbStyle.ParentSource != nil {
			parent.Source = decodeSource(pbStyle.ParentSource, srcPool)
		}
		style.Parent = parent
	}

	for _, pbEntry := range pbStyle.Entry {
		key, err := decodeReference(pbEntry.Key)
		if err != nil {
			return nil, errors.Wrap(err, "style entry key")
		}
		applyMeta(pbEntry.Source, pbEntry.Comment, srcPool, &key.Meta)

		item, err := decodeItem(pbEntry.Item, srcPool, config, pool, files)
		if err != nil {
			return nil, errors.Wrap(err, "style entry value")
		}
		// The entry's metadata rides on both the key and the item.
		applyMeta(pbEntry.Source, pbEntry.Comment, srcPool, item.ValueMeta())

		style.Entries = append(style.Entries, res.StyleEntry{Key: key, Value: item})
	}
	return style, nil
}

// decodeStyleable keeps entries in wire order. Duplicate attribute
// references are permitted at this layer.
func decodeStyleable(pbStyleable *pb.Styleable, srcPool res.SourcePool) (*res.Styleable, error) {
	styleable := &res.Styleable{}
	for _, pbEntry := range pbStyleable.Entry {
		ref, err := decodeReference(pbEntry.Attr)
		if err != nil {
			return nil, errors.Wrap(err, "styleable entry")
		}
		applyMeta(pbEntry.Source, pbEntry.Comment, srcPool, &ref.Meta)
		styleable.Entries = append(styleable.Entries, ref)
	}
	return styleable, nil
}

func decodeArray(pbArray *pb.Array, srcPool res.SourcePool, config conf.Config, pool res.ValuePool, files res.FileLookup) (*res.Array, error) {
	array := &res.Array{}
	for _, pbElement := range pbArray.Element {
		item, err := decodeItem(pbElement.Item, srcPool, config, pool, files)
		if err != nil {
			return nil, errors.Wrap(err, "array element")
		}
		applyMeta(pbElement.Source, pbElement.Comment, srcPool, item.ValueMeta())
		array.Elements = append(array.Elements, item)
	}
	return array, nil
}

// decodePlural routes each entry to the slot of its arity; unrecognized
// arities fall into the "other" slot. A later entry for the same slot
// overwrites the earlier one.
func decodePlural(pbPlural *pb.Plural, srcPool res.SourcePool, config conf.Config, pool res.ValuePool, files res.FileLookup) (*res.Plural, error) {
	plural := &res.Plural{}
	for _, pbEntry := range pbPlural.Entry {
		item, err := decodeItem(pbEntry.Item, srcPool, config, pool, files)
		if err != nil {
			return nil, errors.Wrap(err, "plural entry")
		}
		applyMeta(pbEntry.Source, pbEntry.Comment, srcPool, item.ValueMeta())
		plural.Values[pluralSlot(pbEntry.Arity)] = item
	}
	return plural, nil
}

func pluralSlot(arity pb.Arity) int {
	switch arity {
	case pb.ArityZero:
		return res.PluralZero
	case pb.ArityOne:
		return res.PluralOne
	case pb.ArityTwo:
		return res.PluralTwo
	case pb.ArityFew:
		return res.PluralFew
	case pb.ArityMany:
		return res.PluralMany
	default:
		return res.PluralOther
	}
}

// decodeItem decodes one wire item. An item with no payload violates the
// producer contract and panics.
func decodeItem(pbItem *pb.Item, srcPool res.SourcePool, config conf.Config, pool res.ValuePool, files res.FileLookup) (res.Item, error) {
	if pbItem == nil {
		panic("decoder: item has no payload")
	}
	switch v := pbItem.Value.(type) {
	case *pb.Item_Ref:
		return decodeReference(v.Ref)

	case *pb.Item_Prim:
		return &res.Primitive{Type: uint8(v.Prim.Type), Data: v.Prim.Data}, nil

	case *pb.Item_Id:
		return &res.ID{}, nil

	case *pb.Item_Str:
		ref := pool.MakeRef(v.Str.Value, res.RefContext{Priority: res.PriorityNormal, Config: config})
		return &res.String{Value: ref}, nil

	case *pb.Item_RawStr:
		ref := pool.MakeRef(v.RawStr.Value, res.RefContext{Priority: res.PriorityNormal, Config: config})
		return &res.RawString{Value: ref}, nil

	case *pb.Item_StyledStr:
		styled := res.StyleString{Value: v.StyledStr.Value}
		for _, pbSpan := range v.StyledStr.Span {
			styled.Spans = append(styled.Spans, res.Span{
				Tag:       pbSpan.Tag,
				FirstChar: pbSpan.FirstChar,
				LastChar:  pbSpan.LastChar,
			})
		}
		ref := pool.MakeStyledRef(styled, res.RefContext{Priority: res.PriorityNormal, Config: config})
		return &res.StyledString{Value: ref}, nil

	case *pb.Item_File:
		ref := pool.MakeRef(v.File.Path, res.RefContext{Priority: res.PriorityHigh, Config: config})
		file := &res.FileReference{Path: ref, Type: fileType(v.File.Type)}
		if files != nil {
			file.File = files.FindFile(file.Path.Value)
		}
		return file, nil

	default:
		panic(fmt.Sprintf("decoder: unknown item variant %T", pbItem.Value))
	}
}

// decodeReference decodes a wire reference. A nil input yields an empty
// reference, matching a producer that omitted the message.
func decodeReference(pbRef *pb.Reference) (*res.Reference, error) {
	if pbRef == nil {
		return &res.Reference{}, nil
	}

	ref := &res.Reference{Private: pbRef.Private}
	if pbRef.Type == pb.ReferenceTypeAttribute {
		ref.Type = res.RefTypeAttribute
	}
	if pbRef.Id != 0 {
		ref.ID = res.ResourceID(pbRef.Id)
	}
	if pbRef.Name != "" {
		name, _, ok := res.ParseName(pbRef.Name)
		if !ok {
			return nil, &InvalidResourceNameError{Name: pbRef.Name}
		}
		ref.Name = &name
	}
	return ref, nil
}

func fileType(t pb.FileType) res.FileType {
	switch t {
	case pb.FileTypePng:
		return res.FilePNG
	case pb.FileTypeBinaryXml:
		return res.FileBinaryXML
	case pb.FileTypeProtoXml:
		return res.FileProtoXML
	default:
		return res.FileUnknown
	}
}

// applyMeta copies a wire source and comment onto value metadata.
func applyMeta(pbSource *pb.Source, comment string, srcPool res.SourcePool, meta *res.Meta) {
	if pbSource != nil {
		meta.Source = decodeSource(pbSource, srcPool)
	}
	meta.Comment = comment
}

// decodeSource resolves a wire source to a path in the source pool plus a
// line.
func decodeSource(pbSource *pb.Source, srcPool res.SourcePool) res.Source {
	source := res.Source{Path: srcPool.String(pbSource.PathIdx)}
	if pbSource.Position != nil {
		source.Line = int(pbSource.Position.LineNumber)
	}
	return source
}
