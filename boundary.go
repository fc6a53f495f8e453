package flashkw

// BoundarySet is the "inside-a-word" alphabet: a rune belongs to a word if
// and only if it is a member of this set. Its complement delimits words.
// A KeywordProcessor reads its BoundarySet fresh at the top of every scan,
// so mutating it takes effect on the next call and never mid-scan.
type BoundarySet struct {
	runes map[rune]struct{}
}

// NewBoundarySet returns the default boundary set: ASCII letters, digits,
// and underscore, matching spec's default non_word_boundaries.
func NewBoundarySet() *BoundarySet {
	b := &BoundarySet{runes: make(map[rune]struct{}, 64)}
	for c := 'a'; c <= 'z'; c++ {
		b.runes[c] = struct{}{}
	}
	for c := 'A'; c <= 'Z'; c++ {
		b.runes[c] = struct{}{}
	}
	for c := '0'; c <= '9'; c++ {
		b.runes[c] = struct{}{}
	}
	b.runes['_'] = struct{}{}
	return b
}

// Contains reports whether r continues a word (i.e. is "inside-word").
func (b *BoundarySet) Contains(r rune) bool {
	_, ok := b.runes[r]
	return ok
}

// Add makes r an inside-word character.
func (b *BoundarySet) Add(r rune) {
	b.runes[r] = struct{}{}
}

// Remove makes r a boundary character.
func (b *BoundarySet) Remove(r rune) {
	delete(b.runes, r)
}

// Reset replaces the set wholesale with the given runes.
func (b *BoundarySet) Reset(runes []rune) {
	b.runes = make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		b.runes[r] = struct{}{}
	}
}

// isBoundary reports whether position pos in runes is a word boundary:
// either pos is outside [0, len(runes)) — text start or end — or the rune
// sitting there is not inside-word. A match [i, j) is boundary-valid iff
// isBoundary(runes, i-1) && isBoundary(runes, j).
func (b *BoundarySet) isBoundary(runes []rune, pos int) bool {
	if pos < 0 || pos >= len(runes) {
		return true
	}
	return !b.Contains(runes[pos])
}
