package flashkw

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// foldPair returns the lower- and upper-case rune for r. For non-letters
// (and letters with no case distinction) both results equal r, which
// collapses the caller's two-edge bookkeeping into a single edge —
// exactly the "non-letters handled by a single edge" rule.
func foldPair(r rune) (lower, upper rune) {
	if !unicode.IsLetter(r) {
		return r, r
	}
	lower = firstRune(lowerCaser.String(string(r)), r)
	upper = firstRune(upperCaser.String(string(r)), r)
	return lower, upper
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// sibling returns the opposite-case rune for r (upper for lower, lower for
// upper), or r itself when r has no case counterpart. Used when pruning a
// deleted edge to also drop its shared-case alias.
func sibling(r rune) rune {
	lower, upper := foldPair(r)
	switch r {
	case lower:
		return upper
	case upper:
		return lower
	default:
		return r
	}
}

func nodeKeyCount(n *node) int {
	count := len(n.children)
	if n.accepting() {
		count++
	}
	return count
}

// trieAdd walks keyword from root, creating nodes as needed, and installs
// payload at the terminal node. It reports whether a new keyword was
// registered (as opposed to an existing one being overwritten).
func trieAdd(root *node, caseInsensitive bool, keyword []rune, payload CleanName) bool {
	cur := root
	for _, r := range keyword {
		if !caseInsensitive {
			child, ok := cur.children[r]
			if !ok {
				child = newNode()
				cur.children[r] = child
			}
			cur = child
			continue
		}
		lower, upper := foldPair(r)
		child, ok := cur.children[lower]
		if !ok {
			child, ok = cur.children[upper]
		}
		if !ok {
			child = newNode()
		}
		cur.children[lower] = child
		cur.children[upper] = child
		cur = child
	}
	isNew := !cur.accepting()
	p := payload
	cur.payload = &p
	return isNew
}

// trieRemove deletes keyword from the trie if present, pruning now-unused
// nodes along the path. It reports whether a keyword was actually removed.
func trieRemove(root *node, caseInsensitive bool, keyword []rune) bool {
	if len(keyword) == 0 {
		return false
	}
	type step struct {
		r      rune
		parent *node
	}
	path := make([]step, 0, len(keyword))
	cur := root
	for _, r := range keyword {
		child, ok := cur.children[r]
		if !ok {
			return false
		}
		path = append(path, step{r: r, parent: cur})
		cur = child
	}
	if !cur.accepting() {
		return false
	}
	cur.payload = nil

	// If the terminal node still has outgoing edges, some other (longer)
	// keyword depends on this subtree — stop, nothing more to prune.
	if len(cur.children) != 0 {
		return true
	}

	for i := len(path) - 1; i >= 0; i-- {
		s := path[i]
		if nodeKeyCount(s.parent) == 1 {
			delete(s.parent.children, s.r)
			continue
		}
		if caseInsensitive {
			if other := sibling(s.r); other != s.r {
				if sib, ok := s.parent.children[other]; ok && sib == s.parent.children[s.r] {
					delete(s.parent.children, other)
				}
			}
		}
		delete(s.parent.children, s.r)
		if nodeKeyCount(s.parent) == 0 {
			continue
		}
		break
	}
	return true
}

// trieGet looks up keyword by its literal rune sequence.
func trieGet(root *node, keyword []rune) (CleanName, bool) {
	cur := root
	for _, r := range keyword {
		child, ok := cur.children[r]
		if !ok {
			return CleanName{}, false
		}
		cur = child
	}
	if !cur.accepting() {
		return CleanName{}, false
	}
	return *cur.payload, true
}

// trieEnumerate performs a depth-first walk of the trie, deduplicating
// shared DAG children by identity, and returns every accepting node's
// reconstructed key and payload.
func trieEnumerate(root *node) map[string]CleanName {
	out := make(map[string]CleanName)
	var walk func(n *node, prefix []rune)
	walk = func(n *node, prefix []rune) {
		if n.accepting() {
			out[string(prefix)] = *n.payload
		}
		for _, rn := range n.distinctChildren() {
			next := make([]rune, len(prefix)+1)
			copy(next, prefix)
			next[len(prefix)] = rn.r
			walk(rn.n, next)
		}
	}
	walk(root, nil)
	return out
}
