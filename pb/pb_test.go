package pb_test

import (
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/google/go-cmp/cmp"

	"github.com/rsrc/rsrc/pb"
)

// A round trip through the wire format exercises the hand-maintained field
// tags and oneof wrappers against the real proto runtime.
func TestResourceTableRoundTrip(t *testing.T) {
	in := &pb.ResourceTable{
		SourcePool: &pb.StringPool{Data: []byte{0x01, 0x02, 0x03}},
		Package: []*pb.Package{{
			PackageId:   &pb.PackageId{Id: 0x7f},
			PackageName: "com.app",
			Type: []*pb.Type{{
				TypeId: &pb.TypeId{Id: 0x02},
				Name:   "string",
				Entry: []*pb.Entry{{
					EntryId: &pb.EntryId{Id: 0x0001},
					Name:    "app_name",
					SymbolStatus: &pb.SymbolStatus{
						Visibility: pb.VisibilityPublic,
						Comment:    "The label.",
						Source:     &pb.Source{PathIdx: 1, Position: &pb.SourcePosition{LineNumber: 3}},
					},
					ConfigValue: []*pb.ConfigValue{{
						Config: &pb.Configuration{
							Locale:      "pt-BR",
							UiModeNight: pb.UiModeNightNight,
							Density:     480,
							Product:     "tablet",
						},
						Value: &pb.Value{
							Value: &pb.Value_Item{Item: &pb.Item{
								Value: &pb.Item_StyledStr{StyledStr: &pb.StyledString{
									Value: "Meu App",
									Span:  []*pb.StyledString_Span{{Tag: "b", FirstChar: 0, LastChar: 2}},
								}},
							}},
							Comment: "Translated.",
							Weak:    true,
						},
					}},
				}},
			}},
		}},
	}

	data, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() err = %v", err)
	}
	out := &pb.ResourceTable{}
	if err := proto.Unmarshal(data, out); err != nil {
		t.Fatalf("Unmarshal() err = %v", err)
	}
	if diff := cmp.Diff(out, in, cmp.Comparer(proto.Equal)); diff != "" {
		t.Errorf("Diff (-got +want)\n%s", diff)
	}
}

func TestValueOneofVariants(t *testing.T) {
	in := &pb.Value{Value: &pb.Value_CompoundValue{CompoundValue: &pb.CompoundValue{
		Value: &pb.CompoundValue_Plural{Plural: &pb.Plural{
			Entry: []*pb.Plural_Entry{{
				Arity: pb.ArityFew,
				Item: &pb.Item{Value: &pb.Item_Ref{Ref: &pb.Reference{
					Type: pb.ReferenceTypeAttribute,
					Id:   0x01010001,
				}}},
			}},
		}},
	}}}

	data, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() err = %v", err)
	}
	out := &pb.Value{}
	if err := proto.Unmarshal(data, out); err != nil {
		t.Fatalf("Unmarshal() err = %v", err)
	}
	if !proto.Equal(out, in) {
		t.Errorf("Round trip changed message:\ngot  %v\nwant %v", out, in)
	}
}
