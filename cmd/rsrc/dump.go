package main

import (
	"fmt"
	"io/ioutil"
	"log"

	"github.com/golang/protobuf/proto"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rsrc/rsrc/decoder"
	"github.com/rsrc/rsrc/pb"
	"github.com/rsrc/rsrc/res"
	"github.com/rsrc/rsrc/xmltree"
)

var dumpCommand = &cobra.Command{
	Use:   "dump",
	Short: "Decode and print a compiled artifact",
}

var dumpTableCommand = &cobra.Command{
	Use:   "table <file>",
	Short: "Print a compiled resource table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := ioutil.ReadFile(args[0])
		if err != nil {
			return err
		}

		pbTable := &pb.ResourceTable{}
		if err := proto.Unmarshal(data, pbTable); err != nil {
			return err
		}

		table := res.NewTable()
		opts := decoder.TableOptions{Logger: buildLogger()}
		if err := decoder.DecodeTable(pbTable, opts, table); err != nil {
			return err
		}

		printTable(table)
		return nil
	},
}

var dumpXMLCommand = &cobra.Command{
	Use:   "xml <file>",
	Short: "Print a compiled XML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := ioutil.ReadFile(args[0])
		if err != nil {
			return err
		}

		pbNode := &pb.XmlNode{}
		if err := proto.Unmarshal(data, pbNode); err != nil {
			return err
		}

		doc, err := decoder.DecodeXML(pbNode)
		if err != nil {
			return err
		}
		if doc == nil {
			fmt.Println("(no root element)")
			return nil
		}

		printElement(doc.Root, 0)
		return nil
	},
}

var dumpFileCommand = &cobra.Command{
	Use:   "file <file>",
	Short: "Print a compiled file header",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := ioutil.ReadFile(args[0])
		if err != nil {
			return err
		}

		pbFile := &pb.CompiledFile{}
		if err := proto.Unmarshal(data, pbFile); err != nil {
			return err
		}

		file, err := decoder.DecodeCompiledFile(pbFile)
		if err != nil {
			return err
		}

		fmt.Printf("%s type=%s config=%s source=%s\n", file.Name, file.Type, file.Config, file.Source)
		for _, sym := range file.ExportedSymbols {
			fmt.Printf("  exports %s (line %d)\n", sym.Name, sym.Line)
		}
		return nil
	},
}

func buildLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Build logger: %v", err)
	}
	return logger
}

func printTable(table *res.Table) {
	for _, pkg := range table.Packages {
		fmt.Printf("Package %q", pkg.Name)
		if pkg.ID != nil {
			fmt.Printf(" id=0x%02x", *pkg.ID)
		}
		fmt.Println()
		for _, typ := range pkg.Types {
			fmt.Printf("  type %s", typ.Kind)
			if typ.ID != nil {
				fmt.Printf(" id=0x%02x", *typ.ID)
			}
			if typ.Visibility.State != res.VisibilityUndefined {
				fmt.Printf(" (%s)", typ.Visibility.State)
			}
			fmt.Printf(" entryCount=%d\n", len(typ.Entries))
			for _, entry := range typ.Entries {
				fmt.Printf("    %s", entry.Name)
				if entry.ID != nil {
					fmt.Printf(" id=0x%04x", *entry.ID)
				}
				if entry.Symbol.State != res.VisibilityUndefined {
					fmt.Printf(" (%s)", entry.Symbol.State)
				}
				fmt.Println()
				for _, cv := range entry.Values {
					fmt.Printf("      (%s)", cv.Config)
					if cv.Product != "" {
						fmt.Printf(" product=%s", cv.Product)
					}
					fmt.Printf(" %s\n", valueString(cv.Value))
				}
			}
		}
	}
}

func valueString(v res.Value) string {
	switch val := v.(type) {
	case *res.Reference:
		s := "@" + val.ID.String()
		if val.Type == res.RefTypeAttribute {
			s = "?" + val.ID.String()
		}
		if val.Name != nil {
			s += " " + val.Name.String()
		}
		return "(reference) " + s
	case *res.Primitive:
		return fmt.Sprintf("(primitive) type=0x%02x data=0x%08x", val.Type, val.Data)
	case *res.ID:
		return "(id)"
	case *res.String:
		return fmt.Sprintf("(string) %q", val.Value.Value)
	case *res.RawString:
		return fmt.Sprintf("(raw string) %q", val.Value.Value)
	case *res.StyledString:
		return fmt.Sprintf("(styled string) %q spans=%d", val.Value.Value, len(val.Value.Spans))
	case *res.FileReference:
		return fmt.Sprintf("(file) %s type=%s", val.Path.Value, val.Type)
	case *res.Attribute:
		return fmt.Sprintf("(attr) flags=0x%08x symbols=%d", val.FormatFlags, len(val.Symbols))
	case *res.Style:
		s := fmt.Sprintf("(style) entries=%d", len(val.Entries))
		if val.Parent != nil {
			s += " parent=" + valueString(val.Parent)
		}
		return s
	case *res.Styleable:
		return fmt.Sprintf("(styleable) entries=%d", len(val.Entries))
	case *res.Array:
		return fmt.Sprintf("(array) elements=%d", len(val.Elements))
	case *res.Plural:
		n := 0
		for _, item := range val.Values {
			if item != nil {
				n++
			}
		}
		return fmt.Sprintf("(plurals) values=%d", n)
	default:
		return fmt.Sprintf("(unknown %T)", v)
	}
}

func printElement(el *xmltree.Element, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Printf("%sE: %s", indent, el.Name)
	if el.NamespaceURI != "" {
		fmt.Printf(" (ns=%s)", el.NamespaceURI)
	}
	fmt.Printf(" (line=%d)\n", el.LineNumber)
	for _, ns := range el.NamespaceDecls {
		fmt.Printf("%s  N: %s=%s\n", indent, ns.Prefix, ns.URI)
	}
	for _, attr := range el.Attributes {
		fmt.Printf("%s  A: %s=%q", indent, attr.Name, attr.Value)
		if attr.CompiledAttribute != nil {
			fmt.Printf(" id=%s", attr.CompiledAttribute.ID)
		}
		if attr.CompiledValue != nil {
			fmt.Printf(" compiled=%s", valueString(attr.CompiledValue))
		}
		fmt.Println()
	}
	for _, child := range el.Children {
		switch c := child.(type) {
		case *xmltree.Text:
			fmt.Printf("%s  T: %q\n", indent, c.Text)
		case *xmltree.Element:
			printElement(c, depth+1)
		}
	}
}

func init() {
	dumpCommand.AddCommand(dumpTableCommand)
	dumpCommand.AddCommand(dumpXMLCommand)
	dumpCommand.AddCommand(dumpFileCommand)
	cmd.AddCommand(dumpCommand)
}
