package decoder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/rsrc/rsrc/decoder"
	"github.com/rsrc/rsrc/pb"
	"github.com/rsrc/rsrc/res"
)

func pbStr(s string) *pb.Value {
	return &pb.Value{Value: &pb.Value_Item{Item: &pb.Item{
		Value: &pb.Item_Str{Str: &pb.String{Value: s}},
	}}}
}

func pbPrim(typ, data uint32) *pb.Value {
	return &pb.Value{Value: &pb.Value_Item{Item: &pb.Item{
		Value: &pb.Item_Prim{Prim: &pb.Primitive{Type: typ, Data: data}},
	}}}
}

func pkgID(id uint32) *pb.PackageId { return &pb.PackageId{Id: id} }
func typID(id uint32) *pb.TypeId    { return &pb.TypeId{Id: id} }
func entID(id uint32) *pb.EntryId   { return &pb.EntryId{Id: id} }

func TestDecodeTable(t *testing.T) {
	pbTable := &pb.ResourceTable{
		Package: []*pb.Package{{
			PackageId:   pkgID(0x7f),
			PackageName: "com.app",
			Type: []*pb.Type{{
				TypeId: typID(0x02),
				Name:   "string",
				Entry: []*pb.Entry{{
					EntryId: entID(0x0001),
					Name:    "app_name",
					ConfigValue: []*pb.ConfigValue{
						{Config: &pb.Configuration{}, Value: pbStr("My App")},
						{Config: &pb.Configuration{Locale: "pt-BR"}, Value: pbStr("Meu App")},
					},
				}},
			}},
		}},
	}

	table := res.NewTable()
	if err := decoder.DecodeTable(pbTable, decoder.TableOptions{}, table); err != nil {
		t.Fatalf("DecodeTable() err = %v", err)
	}

	if len(table.Packages) != 1 {
		t.Fatalf("Packages = %d, want 1", len(table.Packages))
	}
	pkg := table.Packages[0]
	if pkg.Name != "com.app" || pkg.ID == nil || *pkg.ID != 0x7f {
		t.Fatalf("Package = %q id %v", pkg.Name, pkg.ID)
	}
	if len(pkg.Types) != 1 || pkg.Types[0].Kind != res.KindString {
		t.Fatalf("Types = %v", pkg.Types)
	}
	typ := pkg.Types[0]
	if typ.ID == nil || *typ.ID != 0x02 {
		t.Errorf("Type id = %v", typ.ID)
	}
	if len(typ.Entries) != 1 {
		t.Fatalf("Entries = %d, want 1", len(typ.Entries))
	}
	entry := typ.Entries[0]
	if entry.Name != "app_name" || entry.ID == nil || *entry.ID != 0x0001 {
		t.Fatalf("Entry = %q id %v", entry.Name, entry.ID)
	}
	if len(entry.Values) != 2 {
		t.Fatalf("Values = %d, want 2", len(entry.Values))
	}

	got, ok := entry.Values[0].Value.(*res.String)
	if !ok {
		t.Fatalf("Value = %T, want *res.String", entry.Values[0].Value)
	}
	if got.Value.Value != "My App" {
		t.Errorf("Value = %q", got.Value.Value)
	}
	if entry.Values[1].Config.Locale() != "pt-BR" {
		t.Errorf("Second config = %s", entry.Values[1].Config)
	}
	if diff := cmp.Diff(table.Strings.Strings(), []string{"My App", "Meu App"}); diff != "" {
		t.Errorf("Pool diff (-got +want)\n%s", diff)
	}
}

func TestDecodeTable_visibility(t *testing.T) {
	status := func(v pb.Visibility) *pb.SymbolStatus {
		return &pb.SymbolStatus{Visibility: v}
	}
	tests := []struct {
		name    string
		entries []*pb.Entry
		want    res.Visibility
	}{
		{
			name: "PrivateClaimsUndefinedType",
			entries: []*pb.Entry{
				{Name: "a", SymbolStatus: status(pb.VisibilityPrivate)},
			},
			want: res.VisibilityPrivate,
		},
		{
			name: "PublicWinsOverPrivate",
			entries: []*pb.Entry{
				{Name: "a", SymbolStatus: status(pb.VisibilityPrivate)},
				{Name: "b", SymbolStatus: status(pb.VisibilityPublic)},
			},
			want: res.VisibilityPublic,
		},
		{
			name: "PrivateDoesNotDemotePublic",
			entries: []*pb.Entry{
				{Name: "a", SymbolStatus: status(pb.VisibilityPublic)},
				{Name: "b", SymbolStatus: status(pb.VisibilityPrivate)},
			},
			want: res.VisibilityPublic,
		},
		{
			name: "UnknownLeavesTypeUndefined",
			entries: []*pb.Entry{
				{Name: "a", SymbolStatus: status(pb.VisibilityUnknown)},
			},
			want: res.VisibilityUndefined,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pbTable := &pb.ResourceTable{
				Package: []*pb.Package{{
					PackageName: "com.app",
					Type:        []*pb.Type{{Name: "string", Entry: tt.entries}},
				}},
			}
			table := res.NewTable()
			if err := decoder.DecodeTable(pbTable, decoder.TableOptions{}, table); err != nil {
				t.Fatalf("DecodeTable() err = %v", err)
			}
			if got := table.Packages[0].Types[0].Visibility.State; got != tt.want {
				t.Errorf("Type visibility = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDecodeTable_symbolStatus(t *testing.T) {
	pbTable := &pb.ResourceTable{
		Package: []*pb.Package{{
			PackageName: "com.app",
			Type: []*pb.Type{{
				Name: "string",
				Entry: []*pb.Entry{{
					Name: "app_name",
					SymbolStatus: &pb.SymbolStatus{
						Visibility: pb.VisibilityPublic,
						Comment:    "The application label.",
						AllowNew:   true,
						Source:     &pb.Source{PathIdx: 1, Position: &pb.SourcePosition{LineNumber: 12}},
					},
				}},
			}},
		}},
		SourcePool: &pb.StringPool{Data: []byte("raw")},
	}

	table := res.NewTable()
	opts := decoder.TableOptions{
		SourcePool: func(data []byte) (res.SourcePool, error) {
			return fakeSourcePool{"", "res/values/strings.xml"}, nil
		},
	}
	if err := decoder.DecodeTable(pbTable, opts, table); err != nil {
		t.Fatalf("DecodeTable() err = %v", err)
	}

	got := table.Packages[0].Types[0].Entries[0].Symbol
	want := res.SymbolStatus{
		State:    res.VisibilityPublic,
		Comment:  "The application label.",
		AllowNew: true,
		Source:   res.Source{Path: "res/values/strings.xml", Line: 12},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Diff (-got +want)\n%s", diff)
	}
}

type fakeSourcePool []string

func (p fakeSourcePool) String(idx uint32) string {
	if int(idx) >= len(p) {
		return ""
	}
	return p[idx]
}

func TestDecodeTable_duplicateConfig(t *testing.T) {
	pbTable := &pb.ResourceTable{
		Package: []*pb.Package{{
			PackageName: "com.app",
			Type: []*pb.Type{{
				Name: "integer",
				Entry: []*pb.Entry{{
					Name: "count",
					ConfigValue: []*pb.ConfigValue{
						{Config: &pb.Configuration{SdkVersion: 21}, Value: pbPrim(0x10, 1)},
						{Config: &pb.Configuration{SdkVersion: 21}, Value: pbPrim(0x10, 2)},
					},
				}},
			}},
		}},
	}

	err := decoder.DecodeTable(pbTable, decoder.TableOptions{}, res.NewTable())
	if err == nil {
		t.Fatalf("Want error")
	}
	dupErr, ok := errors.Cause(err).(*decoder.DuplicateConfigError)
	if !ok {
		t.Fatalf("err = %T, want *DuplicateConfigError", errors.Cause(err))
	}
	if dupErr.Config.SDKVersion != 21 {
		t.Errorf("Config = %s", dupErr.Config)
	}
}

func TestDecodeTable_distinctProducts(t *testing.T) {
	config := func(product string) *pb.Configuration {
		return &pb.Configuration{Product: product}
	}
	pbTable := &pb.ResourceTable{
		Package: []*pb.Package{{
			PackageName: "com.app",
			Type: []*pb.Type{{
				Name: "string",
				Entry: []*pb.Entry{{
					Name: "price",
					ConfigValue: []*pb.ConfigValue{
						{Config: config(""), Value: pbStr("$0.99")},
						{Config: config("tablet"), Value: pbStr("$1.99")},
					},
				}},
			}},
		}},
	}

	table := res.NewTable()
	if err := decoder.DecodeTable(pbTable, decoder.TableOptions{}, table); err != nil {
		t.Fatalf("DecodeTable() err = %v", err)
	}
	values := table.Packages[0].Types[0].Entries[0].Values
	if len(values) != 2 {
		t.Fatalf("Values = %d, want 2", len(values))
	}
	if values[0].Product != "" || values[1].Product != "tablet" {
		t.Errorf("Products = %q, %q", values[0].Product, values[1].Product)
	}
}

func TestDecodeTable_unknownType(t *testing.T) {
	pbTable := &pb.ResourceTable{
		Package: []*pb.Package{{
			PackageName: "com.app",
			Type:        []*pb.Type{{Name: "gadget"}},
		}},
	}

	err := decoder.DecodeTable(pbTable, decoder.TableOptions{}, res.NewTable())
	if err == nil {
		t.Fatalf("Want error")
	}
	typeErr, ok := errors.Cause(err).(*decoder.UnknownResourceTypeError)
	if !ok {
		t.Fatalf("err = %T, want *UnknownResourceTypeError", errors.Cause(err))
	}
	if typeErr.Name != "gadget" {
		t.Errorf("Name = %q", typeErr.Name)
	}
}

func TestDecodeTable_invalidSourcePool(t *testing.T) {
	pbTable := &pb.ResourceTable{
		SourcePool: &pb.StringPool{Data: []byte{0xff}},
	}
	opts := decoder.TableOptions{
		SourcePool: func(data []byte) (res.SourcePool, error) {
			return nil, errors.New("truncated pool")
		},
	}

	err := decoder.DecodeTable(pbTable, opts, res.NewTable())
	if err == nil {
		t.Fatalf("Want error")
	}
	if _, ok := errors.Cause(err).(*decoder.InvalidSourcePoolError); !ok {
		t.Fatalf("err = %T, want *InvalidSourcePoolError", errors.Cause(err))
	}
}

func TestDecodeTable_resolvesReferenceNames(t *testing.T) {
	style := func(parent *pb.Reference) *pb.Value {
		return &pb.Value{Value: &pb.Value_CompoundValue{CompoundValue: &pb.CompoundValue{
			Value: &pb.CompoundValue_Style{Style: &pb.Style{Parent: parent}},
		}}}
	}
	pbTable := &pb.ResourceTable{
		Package: []*pb.Package{{
			PackageId:   pkgID(0x01),
			PackageName: "android",
			Type: []*pb.Type{{
				TypeId: typID(0x02),
				Name:   "style",
				Entry: []*pb.Entry{
					{
						EntryId: entID(0x0003),
						Name:    "Theme",
						ConfigValue: []*pb.ConfigValue{
							{Config: &pb.Configuration{}, Value: style(nil)},
						},
					},
					{
						EntryId: entID(0x0004),
						Name:    "ByIdOnly",
						ConfigValue: []*pb.ConfigValue{
							{Config: &pb.Configuration{}, Value: style(&pb.Reference{Id: 0x01020003})},
						},
					},
					{
						EntryId: entID(0x0005),
						Name:    "WithWireName",
						ConfigValue: []*pb.ConfigValue{
							{Config: &pb.Configuration{}, Value: style(&pb.Reference{
								Id:   0x01020003,
								Name: "android:style/Theme.Light",
							})},
						},
					},
				},
			}},
		}},
	}

	table := res.NewTable()
	if err := decoder.DecodeTable(pbTable, decoder.TableOptions{}, table); err != nil {
		t.Fatalf("DecodeTable() err = %v", err)
	}

	entries := table.Packages[0].Types[0].Entries
	parent := entries[1].Values[0].Value.(*res.Style).Parent
	if parent.Name == nil {
		t.Fatalf("Parent name not resolved")
	}
	want := res.Name{Package: "android", Type: res.KindStyle, Entry: "Theme"}
	if diff := cmp.Diff(*parent.Name, want); diff != "" {
		t.Errorf("Diff (-got +want)\n%s", diff)
	}

	// A name spelled on the wire stays as spelled even when the id has a
	// different name in the index.
	parent = entries[2].Values[0].Value.(*res.Style).Parent
	if parent.Name == nil || parent.Name.Entry != "Theme.Light" {
		t.Errorf("Wire name overridden: %v", parent.Name)
	}
}

func TestDecodeTable_idIndexRequiresAllIds(t *testing.T) {
	style := func(parent *pb.Reference) *pb.Value {
		return &pb.Value{Value: &pb.Value_CompoundValue{CompoundValue: &pb.CompoundValue{
			Value: &pb.CompoundValue_Style{Style: &pb.Style{Parent: parent}},
		}}}
	}
	// The target entry has no entry id, so 0x01020003 never enters the
	// index and the reference keeps only its numeric id.
	pbTable := &pb.ResourceTable{
		Package: []*pb.Package{{
			PackageId:   pkgID(0x01),
			PackageName: "android",
			Type: []*pb.Type{{
				TypeId: typID(0x02),
				Name:   "style",
				Entry: []*pb.Entry{
					{
						Name: "Theme",
						ConfigValue: []*pb.ConfigValue{
							{Config: &pb.Configuration{}, Value: style(nil)},
						},
					},
					{
						EntryId: entID(0x0004),
						Name:    "Child",
						ConfigValue: []*pb.ConfigValue{
							{Config: &pb.Configuration{}, Value: style(&pb.Reference{Id: 0x01020003})},
						},
					},
				},
			}},
		}},
	}

	table := res.NewTable()
	if err := decoder.DecodeTable(pbTable, decoder.TableOptions{}, table); err != nil {
		t.Fatalf("DecodeTable() err = %v", err)
	}
	parent := table.Packages[0].Types[0].Entries[1].Values[0].Value.(*res.Style).Parent
	if parent.Name != nil {
		t.Errorf("Parent name = %v, want nil", parent.Name)
	}
	if parent.ID != 0x01020003 {
		t.Errorf("Parent id = %s", parent.ID)
	}
}

func TestDecodeTable_errorContext(t *testing.T) {
	pbTable := &pb.ResourceTable{
		Package: []*pb.Package{{
			PackageName: "com.app",
			Type: []*pb.Type{{
				Name: "string",
				Entry: []*pb.Entry{{
					Name: "broken",
					ConfigValue: []*pb.ConfigValue{{
						Config: &pb.Configuration{},
						Value: &pb.Value{Value: &pb.Value_Item{Item: &pb.Item{
							Value: &pb.Item_Ref{Ref: &pb.Reference{Name: "no-slash"}},
						}}},
					}},
				}},
			}},
		}},
	}

	err := decoder.DecodeTable(pbTable, decoder.TableOptions{}, res.NewTable())
	if err == nil {
		t.Fatalf("Want error")
	}
	if _, ok := errors.Cause(err).(*decoder.InvalidResourceNameError); !ok {
		t.Fatalf("err = %T, want *InvalidResourceNameError", errors.Cause(err))
	}
	want := `package "com.app": resource string/broken: invalid resource name "no-slash"`
	if err.Error() != want {
		t.Errorf("err = %q, want %q", err.Error(), want)
	}
}
