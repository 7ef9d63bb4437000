package res

import "fmt"

// ResourceID is the packed numeric id of a resource: 8 bits package id,
// 8 bits type id, 16 bits entry id.
type ResourceID uint32

// MakeResourceID packs the three id components.
func MakeResourceID(pkg, typ uint8, entry uint16) ResourceID {
	return ResourceID(uint32(pkg)<<24 | uint32(typ)<<16 | uint32(entry))
}

// PackageID returns the package id component.
func (id ResourceID) PackageID() uint8 { return uint8(id >> 24) }

// TypeID returns the type id component.
func (id ResourceID) TypeID() uint8 { return uint8(id >> 16) }

// EntryID returns the entry id component.
func (id ResourceID) EntryID() uint16 { return uint16(id) }

// IsValid reports whether the package and type components are both nonzero.
// An id assembled before all components are known is not valid and must not
// be used for lookups.
func (id ResourceID) IsValid() bool {
	return id&0xff000000 != 0 && id&0x00ff0000 != 0
}

func (id ResourceID) String() string { return fmt.Sprintf("0x%08x", uint32(id)) }
