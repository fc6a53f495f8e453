package flashkw

// CleanName is the payload carried by an accepting trie node: either a
// single clean name, or an ordered list of clean names for a multi-label
// keyword. Exactly one of the two forms is ever populated at a time; use
// Names to read either uniformly.
type CleanName struct {
	Single string
	Many   []string
	isMany bool
}

// NewCleanName builds a single-label payload.
func NewCleanName(name string) CleanName {
	return CleanName{Single: name}
}

// NewCleanNames builds a multi-label payload, preserving list order. A
// one-element list still reports IsMulti() == true, matching the source
// trie's isinstance(clean_name, list) distinction.
func NewCleanNames(names []string) CleanName {
	cp := make([]string, len(names))
	copy(cp, names)
	return CleanName{Many: cp, isMany: true}
}

// IsMulti reports whether this payload carries an ordered list rather than
// a bare string.
func (c CleanName) IsMulti() bool {
	return c.isMany
}

// Names returns every clean name carried by this payload, in order. For a
// single-label payload it returns a one-element slice.
func (c CleanName) Names() []string {
	if c.isMany {
		return c.Many
	}
	return []string{c.Single}
}

// First returns the payload's first (or only) clean name — the one
// ReplaceKeywords substitutes into the output.
func (c CleanName) First() string {
	if c.isMany {
		if len(c.Many) == 0 {
			return ""
		}
		return c.Many[0]
	}
	return c.Single
}

// Empty reports whether the payload carries no clean name at all. An add
// with both an empty keyword and an empty clean name is a no-op per
// spec's invalid-argument handling.
func (c CleanName) Empty() bool {
	if c.isMany {
		return len(c.Many) == 0
	}
	return c.Single == ""
}
