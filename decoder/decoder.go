package decoder

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rsrc/rsrc/pb"
	"github.com/rsrc/rsrc/res"
)

// SourcePoolParser parses the raw bytes of a serialized source string pool
// into a readable pool.
type SourcePoolParser func(data []byte) (res.SourcePool, error)

// TableOptions carries the external collaborators a table decode may use.
// All fields are optional.
type TableOptions struct {
	// Files resolves file-reference paths to file handles. Unresolved
	// paths are left without a handle.
	Files res.FileLookup

	// SourcePool parses the table's serialized source pool. When nil, a
	// present pool is ignored and all source paths resolve to "".
	SourcePool SourcePoolParser

	// Logger, when set, receives per-package decode progress at debug
	// level.
	Logger *zap.Logger
}

// DecodeTable decodes a wire resource table into table. On error the table
// may be partially populated and must be discarded.
func DecodeTable(pbTable *pb.ResourceTable, opts TableOptions, table *res.Table) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var srcPool res.SourcePool = res.EmptySourcePool{}
	if pbTable.SourcePool != nil && opts.SourcePool != nil {
		sp, err := opts.SourcePool(pbTable.SourcePool.Data)
		if err != nil {
			return &InvalidSourcePoolError{Err: err}
		}
		srcPool = sp
	}

	for _, pbPkg := range pbTable.Package {
		if err := decodePackage(pbPkg, srcPool, opts.Files, table); err != nil {
			return errors.Wrapf(err, "package %q", pbPkg.PackageName)
		}
		logger.Debug("decoded package",
			zap.String("package", pbPkg.PackageName),
			zap.Int("types", len(pbPkg.Type)))
	}
	return nil
}

// decodePackage builds one table package from its wire form, then resolves
// reference names from the ids collected along the way. The id index is
// scoped to this one package build.
func decodePackage(pbPkg *pb.Package, srcPool res.SourcePool, files res.FileLookup, table *res.Table) error {
	var pkgID *uint8
	if pbPkg.PackageId != nil {
		v := uint8(pbPkg.PackageId.Id)
		pkgID = &v
	}

	idIndex := make(map[res.ResourceID]res.Name)

	pkg := table.FindOrCreatePackage(pbPkg.PackageName, pkgID)
	for _, pbType := range pbPkg.Type {
		kind, known := res.ParseKind(pbType.Name)
		if !known {
			return &UnknownResourceTypeError{Name: pbType.Name}
		}

		typ := pkg.FindOrCreateType(kind)
		if pbType.TypeId != nil {
			v := uint8(pbType.TypeId.Id)
			typ.ID = &v
		}

		for _, pbEntry := range pbType.Entry {
			entry := typ.FindOrCreateEntry(pbEntry.Name)
			if pbEntry.EntryId != nil {
				v := uint16(pbEntry.EntryId.Id)
				entry.ID = &v
			}

			if pbEntry.SymbolStatus != nil {
				decodeSymbolStatus(pbEntry.SymbolStatus, srcPool, entry, typ)
			}

			// The id index only accepts ids whose package, type and entry
			// components were all explicitly present.
			if pbPkg.PackageId != nil && pbType.TypeId != nil && pbEntry.EntryId != nil {
				rid := res.MakeResourceID(
					uint8(pbPkg.PackageId.Id),
					uint8(pbType.TypeId.Id),
					uint16(pbEntry.EntryId.Id),
				)
				if rid.IsValid() {
					idIndex[rid] = res.Name{Package: pkg.Name, Type: kind, Entry: entry.Name}
				}
			}

			for _, pbCV := range pbEntry.ConfigValue {
				config, err := DecodeConfig(pbCV.Config)
				if err != nil {
					return err
				}
				var product string
				if pbCV.Config != nil {
					product = pbCV.Config.Product
				}

				cv := entry.FindOrCreateValue(config, product)
				if cv.Value != nil {
					return &DuplicateConfigError{Config: config, Product: product}
				}

				value, err := decodeValue(pbCV.Value, srcPool, config, table.Strings, files)
				if err != nil {
					return errors.Wrapf(err, "resource %s/%s", kind, entry.Name)
				}
				cv.Value = value
			}
		}
	}

	resolveReferenceNames(pkg, idIndex)
	return nil
}

// decodeSymbolStatus applies an entry's symbol status and propagates its
// visibility to the owning type: public always wins; private claims the
// type only while it is still undefined.
func decodeSymbolStatus(pbStatus *pb.SymbolStatus, srcPool res.SourcePool, entry *res.Entry, typ *res.Type) {
	if pbStatus.Source != nil {
		entry.Symbol.Source = decodeSource(pbStatus.Source, srcPool)
	}
	entry.Symbol.Comment = pbStatus.Comment
	entry.Symbol.AllowNew = pbStatus.AllowNew

	var state res.Visibility
	switch pbStatus.Visibility {
	case pb.VisibilityPrivate:
		state = res.VisibilityPrivate
	case pb.VisibilityPublic:
		state = res.VisibilityPublic
	default:
		state = res.VisibilityUndefined
	}
	entry.Symbol.State = state

	switch state {
	case res.VisibilityPublic:
		typ.Visibility.State = res.VisibilityPublic
	case res.VisibilityPrivate:
		if typ.Visibility.State == res.VisibilityUndefined {
			typ.Visibility.State = res.VisibilityPrivate
		}
	}
}

// resolveReferenceNames rewrites references whose valid numeric id is in
// the index so they also carry a symbolic name. A name decoded from the
// wire is never overridden.
func resolveReferenceNames(pkg *res.Package, idIndex map[res.ResourceID]res.Name) {
	res.WalkPackageValues(pkg, func(v res.Value) {
		ref, ok := v.(*res.Reference)
		if !ok {
			return
		}
		if !ref.ID.IsValid() || ref.Name != nil {
			return
		}
		if name, ok := idIndex[ref.ID]; ok {
			ref.Name = &name
		}
	})
}
