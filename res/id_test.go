package res

import "testing"

func TestResourceID(t *testing.T) {
	id := MakeResourceID(0x7f, 0x02, 0x0001)
	if got, want := ResourceID(0x7f020001), id; got != want {
		t.Fatalf("MakeResourceID = %v, want %v", id, want)
	}
	if got, want := id.PackageID(), uint8(0x7f); got != want {
		t.Errorf("PackageID() = 0x%02x, want 0x%02x", got, want)
	}
	if got, want := id.TypeID(), uint8(0x02); got != want {
		t.Errorf("TypeID() = 0x%02x, want 0x%02x", got, want)
	}
	if got, want := id.EntryID(), uint16(0x0001); got != want {
		t.Errorf("EntryID() = 0x%04x, want 0x%04x", got, want)
	}
}

func TestResourceID_IsValid(t *testing.T) {
	tests := []struct {
		id    ResourceID
		valid bool
	}{
		{id: 0x7f020001, valid: true},
		{id: 0x7f020000, valid: true}, // entry id zero is allowed
		{id: 0x00020001, valid: false},
		{id: 0x7f000001, valid: false},
		{id: 0, valid: false},
	}
	for _, tt := range tests {
		if got := tt.id.IsValid(); got != tt.valid {
			t.Errorf("%v.IsValid() = %v, want %v", tt.id, got, tt.valid)
		}
	}
}
