package res

import "github.com/rsrc/rsrc/conf"

// SourcePool is the read side of a source-path string pool. Implementations
// are supplied by the caller; out-of-range indices yield "".
type SourcePool interface {
	String(idx uint32) string
}

// EmptySourcePool resolves every index to "".
type EmptySourcePool struct{}

func (EmptySourcePool) String(uint32) string { return "" }

// Priority orders pool entries when the pool is later serialized. Lower
// sorts first.
type Priority uint32

const (
	PriorityHigh   Priority = 1
	PriorityNormal Priority = 0x7fffffff
	PriorityLow    Priority = 0xffffffff
)

// RefContext describes how a registered string will be used: its priority
// and the configuration it belongs to.
type RefContext struct {
	Priority Priority
	Config   conf.Config
}

// StringRef is a registered plain string.
type StringRef struct {
	Value string
}

func (r StringRef) String() string { return r.Value }

// Span is one markup region of a styled string, by character position.
type Span struct {
	Tag       string
	FirstChar uint32
	LastChar  uint32
}

// StyleString is a string plus its ordered markup spans, before
// registration.
type StyleString struct {
	Value string
	Spans []Span
}

// StyledRef is a registered styled string.
type StyledRef struct {
	Value string
	Spans []Span
}

// ValuePool is the register side of a value string pool. Decoded string
// values hold the refs it returns.
type ValuePool interface {
	MakeRef(s string, ctx RefContext) StringRef
	MakeStyledRef(s StyleString, ctx RefContext) StyledRef
}

// Pool is a small interning ValuePool. It keeps first-registration order
// and remembers the best (lowest) priority seen per string.
type Pool struct {
	entries []poolEntry
	index   map[string]int
	styled  []StyleString
}

type poolEntry struct {
	str      string
	priority Priority
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{index: make(map[string]int)}
}

// MakeRef registers s and returns a ref to it.
func (p *Pool) MakeRef(s string, ctx RefContext) StringRef {
	if i, ok := p.index[s]; ok {
		if ctx.Priority < p.entries[i].priority {
			p.entries[i].priority = ctx.Priority
		}
		return StringRef{Value: s}
	}
	p.index[s] = len(p.entries)
	p.entries = append(p.entries, poolEntry{str: s, priority: ctx.Priority})
	return StringRef{Value: s}
}

// MakeStyledRef registers a styled string and returns a ref to it. Styled
// strings are not deduplicated; their spans make sharing unlikely.
func (p *Pool) MakeStyledRef(s StyleString, ctx RefContext) StyledRef {
	p.MakeRef(s.Value, ctx)
	p.styled = append(p.styled, s)
	return StyledRef{Value: s.Value, Spans: s.Spans}
}

// Strings returns the registered strings in first-registration order.
func (p *Pool) Strings() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.str
	}
	return out
}
