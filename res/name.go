package res

import "strings"

// Kind is the closed set of resource types.
type Kind uint8

// Resource kinds, in sorted order of their type names.
const (
	KindAnim Kind = iota
	KindAnimator
	KindArray
	KindAttr
	KindAttrPrivate
	KindBool
	KindColor
	KindConfigVarying
	KindDimen
	KindDrawable
	KindFont
	KindFraction
	KindID
	KindInteger
	KindInterpolator
	KindLayout
	KindMenu
	KindMipmap
	KindNavigation
	KindPlurals
	KindRaw
	KindString
	KindStyle
	KindStyleable
	KindTransition
	KindXml
)

var kindNames = map[Kind]string{
	KindAnim:          "anim",
	KindAnimator:      "animator",
	KindArray:         "array",
	KindAttr:          "attr",
	KindAttrPrivate:   "^attr-private",
	KindBool:          "bool",
	KindColor:         "color",
	KindConfigVarying: "configVarying",
	KindDimen:         "dimen",
	KindDrawable:      "drawable",
	KindFont:          "font",
	KindFraction:      "fraction",
	KindID:            "id",
	KindInteger:       "integer",
	KindInterpolator:  "interpolator",
	KindLayout:        "layout",
	KindMenu:          "menu",
	KindMipmap:        "mipmap",
	KindNavigation:    "navigation",
	KindPlurals:       "plurals",
	KindRaw:           "raw",
	KindString:        "string",
	KindStyle:         "style",
	KindStyleable:     "styleable",
	KindTransition:    "transition",
	KindXml:           "xml",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, n := range kindNames {
		m[n] = k
	}
	return m
}()

func (k Kind) String() string { return kindNames[k] }

// ParseKind resolves a resource type name. Unknown names fail; the set of
// names is closed.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Name is the symbolic name of a resource: [package:]type/entry.
type Name struct {
	Package string
	Type    Kind
	Entry   string
}

func (n Name) String() string {
	if n.Package == "" {
		return n.Type.String() + "/" + n.Entry
	}
	return n.Package + ":" + n.Type.String() + "/" + n.Entry
}

// ParseName parses "[@|*][package:]type/entry". The leading '*' marks a
// private reference. An empty package is allowed; unknown type names or a
// missing type/entry split fail.
func ParseName(s string) (n Name, private bool, ok bool) {
	if strings.HasPrefix(s, "@") {
		s = s[1:]
	}
	if strings.HasPrefix(s, "*") {
		private = true
		s = s[1:]
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		n.Package = s[:i]
		s = s[i+1:]
	}
	i := strings.IndexByte(s, '/')
	if i <= 0 || i == len(s)-1 {
		return Name{}, false, false
	}
	kind, known := ParseKind(s[:i])
	if !known {
		return Name{}, false, false
	}
	n.Type = kind
	n.Entry = s[i+1:]
	return n, private, true
}
