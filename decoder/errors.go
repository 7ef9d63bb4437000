package decoder

import (
	"fmt"

	"github.com/rsrc/rsrc/conf"
)

// InvalidLocaleError reports a configuration whose locale is not a valid
// BCP-47 tag.
type InvalidLocaleError struct {
	Locale string
	Err    error
}

func (e *InvalidLocaleError) Error() string {
	return fmt.Sprintf("configuration has invalid locale %q", e.Locale)
}

// UnknownResourceTypeError reports a type name outside the known set.
type UnknownResourceTypeError struct {
	Name string
}

func (e *UnknownResourceTypeError) Error() string {
	return fmt.Sprintf("unknown resource type %q", e.Name)
}

// InvalidResourceNameError reports a resource name that does not parse as
// [package:]type/entry.
type InvalidResourceNameError struct {
	Name string
}

func (e *InvalidResourceNameError) Error() string {
	return fmt.Sprintf("invalid resource name %q", e.Name)
}

// InvalidSourcePoolError reports a source string pool whose raw bytes were
// rejected by the pool parser.
type InvalidSourcePoolError struct {
	Err error
}

func (e *InvalidSourcePoolError) Error() string { return "invalid source pool" }

// DuplicateConfigError reports a second value for the same (configuration,
// product) pair on one entry.
type DuplicateConfigError struct {
	Config  conf.Config
	Product string
}

func (e *DuplicateConfigError) Error() string {
	if e.Product == "" {
		return fmt.Sprintf("duplicate configuration %s in resource table", e.Config)
	}
	return fmt.Sprintf("duplicate configuration %s (product %q) in resource table", e.Config, e.Product)
}
