package res

import (
	"fmt"

	"github.com/rsrc/rsrc/conf"
)

// Visibility of a symbol to other compilation units.
type Visibility uint8

const (
	VisibilityUndefined Visibility = iota
	VisibilityPrivate
	VisibilityPublic
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityPublic:
		return "public"
	default:
		return "undefined"
	}
}

// SymbolStatus carries the visibility of an entry or type together with
// where it was declared.
type SymbolStatus struct {
	State    Visibility
	Comment  string
	Source   Source
	AllowNew bool
}

// Source points at the file (and optionally line) a resource came from.
type Source struct {
	Path string
	Line int
}

// WithLine returns a copy of the source with the line set.
func (s Source) WithLine(line int) Source {
	s.Line = line
	return s
}

func (s Source) String() string {
	if s.Line > 0 {
		return fmt.Sprintf("%s:%d", s.Path, s.Line)
	}
	return s.Path
}

// Table is the decoded resource table of one compiled unit. It exclusively
// owns its packages and the value string pool their values reference.
type Table struct {
	Packages []*Package
	Strings  *Pool
}

// NewTable returns an empty table with its own value string pool.
func NewTable() *Table {
	return &Table{Strings: NewPool()}
}

// FindOrCreatePackage returns the package with the given name, creating it
// if needed. A non-nil id is recorded on the package.
func (t *Table) FindOrCreatePackage(name string, id *uint8) *Package {
	for _, p := range t.Packages {
		if p.Name == name {
			if id != nil {
				p.ID = id
			}
			return p
		}
	}
	p := &Package{Name: name, ID: id}
	t.Packages = append(t.Packages, p)
	return p
}

// Package owns all types of one resource package. Types are ordered by
// insertion and unique by kind.
type Package struct {
	Name  string
	ID    *uint8
	Types []*Type
}

// FindOrCreateType returns the type node for a kind, creating it if needed.
func (p *Package) FindOrCreateType(k Kind) *Type {
	for _, t := range p.Types {
		if t.Kind == k {
			return t
		}
	}
	t := &Type{Kind: k}
	p.Types = append(p.Types, t)
	return t
}

// Type owns the entries of one resource kind within a package. Entries are
// ordered by insertion and unique by name.
type Type struct {
	Kind       Kind
	ID         *uint8
	Visibility SymbolStatus
	Entries    []*Entry
}

// FindOrCreateEntry returns the entry with the given name, creating it if
// needed.
func (t *Type) FindOrCreateEntry(name string) *Entry {
	for _, e := range t.Entries {
		if e.Name == name {
			return e
		}
	}
	e := &Entry{Name: name}
	t.Entries = append(t.Entries, e)
	return e
}

// Entry owns the per-configuration values of one named resource. The pair
// (configuration, product) is unique per entry.
type Entry struct {
	Name   string
	ID     *uint16
	Symbol SymbolStatus
	Values []*ConfigValue
}

// FindOrCreateValue returns the slot for (config, product), creating an
// empty one if needed. Callers detect duplicates by checking the slot's
// Value before storing.
func (e *Entry) FindOrCreateValue(config conf.Config, product string) *ConfigValue {
	for _, cv := range e.Values {
		if cv.Product == product && cv.Config == config {
			return cv
		}
	}
	cv := &ConfigValue{Config: config, Product: product}
	e.Values = append(e.Values, cv)
	return cv
}

// ConfigValue associates one value with a configuration and product.
type ConfigValue struct {
	Config  conf.Config
	Product string
	Value   Value
}
