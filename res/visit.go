package res

// WalkValues calls fn for v and every value nested inside it, parents
// before children. Style entries, array elements, plural slots, styleable
// entries and attribute symbols are all descended into.
func WalkValues(v Value, fn func(Value)) {
	if v == nil {
		return
	}
	fn(v)
	switch val := v.(type) {
	case *Attribute:
		for i := range val.Symbols {
			WalkValues(&val.Symbols[i].Symbol, fn)
		}
	case *Style:
		if val.Parent != nil {
			WalkValues(val.Parent, fn)
		}
		for _, e := range val.Entries {
			if e.Key != nil {
				WalkValues(e.Key, fn)
			}
			if e.Value != nil {
				WalkValues(e.Value, fn)
			}
		}
	case *Styleable:
		for _, ref := range val.Entries {
			WalkValues(ref, fn)
		}
	case *Array:
		for _, item := range val.Elements {
			if item != nil {
				WalkValues(item, fn)
			}
		}
	case *Plural:
		for _, item := range val.Values {
			if item != nil {
				WalkValues(item, fn)
			}
		}
	}
}

// WalkPackageValues calls fn for every value reachable in the package.
func WalkPackageValues(p *Package, fn func(Value)) {
	for _, t := range p.Types {
		for _, e := range t.Entries {
			for _, cv := range e.Values {
				if cv.Value != nil {
					WalkValues(cv.Value, fn)
				}
			}
		}
	}
}
