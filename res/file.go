package res

import "github.com/rsrc/rsrc/conf"

// FileType tags the format of a referenced file.
type FileType uint8

const (
	FileUnknown FileType = iota
	FilePNG
	FileBinaryXML
	FileProtoXML
)

func (t FileType) String() string {
	switch t {
	case FilePNG:
		return "png"
	case FileBinaryXML:
		return "binary-xml"
	case FileProtoXML:
		return "proto-xml"
	default:
		return "unknown"
	}
}

// File is a handle to a file in an external file collection.
type File interface {
	Path() string
}

// FileLookup finds files by logical path. FindFile returns nil when no file
// matches; that is not an error.
type FileLookup interface {
	FindFile(path string) File
}

// ResourceFile is the decoded header of one compiled file: the resource it
// defines, the configuration it applies under, and the symbols it exports.
type ResourceFile struct {
	Name            Name
	Config          conf.Config
	Source          Source
	Type            FileType
	ExportedSymbols []SourcedName
}

// SourcedName is an exported symbol with the line it was declared on.
type SourcedName struct {
	Name Name
	Line int
}
