package pb

import "github.com/golang/protobuf/proto"

// CompiledFile is the header preceding a single compiled file payload.
type CompiledFile struct {
	ResourceName   string                 `protobuf:"bytes,1,opt,name=resource_name,json=resourceName,proto3" json:"resource_name,omitempty"`
	Config         *Configuration         `protobuf:"bytes,2,opt,name=config,proto3" json:"config,omitempty"`
	Type           FileType               `protobuf:"varint,3,opt,name=type,proto3,enum=rsrc.pb.FileReference_Type" json:"type,omitempty"`
	SourcePath     string                 `protobuf:"bytes,4,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	ExportedSymbol []*CompiledFile_Symbol `protobuf:"bytes,5,rep,name=exported_symbol,json=exportedSymbol,proto3" json:"exported_symbol,omitempty"`
}

func (m *CompiledFile) Reset()         { *m = CompiledFile{} }
func (m *CompiledFile) String() string { return proto.CompactTextString(m) }
func (*CompiledFile) ProtoMessage()    {}

type CompiledFile_Symbol struct {
	ResourceName string          `protobuf:"bytes,1,opt,name=resource_name,json=resourceName,proto3" json:"resource_name,omitempty"`
	Source       *SourcePosition `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
}

func (m *CompiledFile_Symbol) Reset()         { *m = CompiledFile_Symbol{} }
func (m *CompiledFile_Symbol) String() string { return proto.CompactTextString(m) }
func (*CompiledFile_Symbol) ProtoMessage()    {}
