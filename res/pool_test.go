package res

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPool_MakeRef(t *testing.T) {
	p := NewPool()

	a := p.MakeRef("hello", RefContext{Priority: PriorityNormal})
	b := p.MakeRef("world", RefContext{Priority: PriorityNormal})
	c := p.MakeRef("hello", RefContext{Priority: PriorityHigh})

	if a.Value != "hello" || b.Value != "world" || c.Value != "hello" {
		t.Fatalf("Refs carry wrong strings: %v %v %v", a, b, c)
	}

	want := []string{"hello", "world"}
	if diff := cmp.Diff(p.Strings(), want); diff != "" {
		t.Errorf("Diff (-got +want)\n%s", diff)
	}

	// Re-registration with a better priority keeps one entry.
	if got, want := p.entries[0].priority, PriorityHigh; got != want {
		t.Errorf("priority = %v, want %v", got, want)
	}
}

func TestPool_MakeStyledRef(t *testing.T) {
	p := NewPool()

	ref := p.MakeStyledRef(StyleString{
		Value: "bold text",
		Spans: []Span{{Tag: "b", FirstChar: 0, LastChar: 3}},
	}, RefContext{Priority: PriorityNormal})

	if ref.Value != "bold text" {
		t.Errorf("Value = %q", ref.Value)
	}
	want := []Span{{Tag: "b", FirstChar: 0, LastChar: 3}}
	if diff := cmp.Diff(ref.Spans, want); diff != "" {
		t.Errorf("Diff (-got +want)\n%s", diff)
	}
}
