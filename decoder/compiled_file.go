package decoder

import (
	"github.com/pkg/errors"

	"github.com/rsrc/rsrc/pb"
	"github.com/rsrc/rsrc/res"
)

// DecodeCompiledFile decodes the header of one compiled file.
func DecodeCompiledFile(pbFile *pb.CompiledFile) (*res.ResourceFile, error) {
	name, _, ok := res.ParseName(pbFile.ResourceName)
	if !ok {
		return nil, errors.Wrap(&InvalidResourceNameError{Name: pbFile.ResourceName}, "compiled file header")
	}

	file := &res.ResourceFile{
		Name:   name,
		Source: res.Source{Path: pbFile.SourcePath},
		Type:   fileType(pbFile.Type),
	}

	config, err := DecodeConfig(pbFile.Config)
	if err != nil {
		return nil, errors.Wrap(err, "invalid resource configuration in compiled file header")
	}
	file.Config = config

	for _, pbSymbol := range pbFile.ExportedSymbol {
		symName, _, ok := res.ParseName(pbSymbol.ResourceName)
		if !ok {
			return nil, errors.Wrap(&InvalidResourceNameError{Name: pbSymbol.ResourceName},
				"exported symbol in compiled file header")
		}
		var line int
		if pbSymbol.Source != nil {
			line = int(pbSymbol.Source.LineNumber)
		}
		file.ExportedSymbols = append(file.ExportedSymbols, res.SourcedName{Name: symName, Line: line})
	}
	return file, nil
}
