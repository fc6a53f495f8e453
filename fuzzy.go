package flashkw

// FuzzyHit is one result of Levenshtein: a trie node reachable within a
// bounded edit distance of a query word.
type FuzzyHit struct {
	Key       string
	Clean     CleanName
	Accepting bool
	Cost      int
	Depth     int
}

// Levenshtein enumerates every trie path within edit distance at most
// maxCost of word that ends at a node which is either accepting or has an
// outgoing edge on a boundary character (a word-end inside the trie), per
// spec §4.5(a). In case-insensitive mode both case edges of a letter are
// followed, so one node can be reported once per spelling within maxCost.
// The Wagner-Fischer DP rows are carried down each trie edge, pruning a
// branch as soon as its row's minimum exceeds maxCost — grounded directly
// on the teacher's Trie.collect/collectMeta recursion and cross-checked
// against original_source/flashtext/utils.py's _levenshtein_rec, which
// this is a faithful port of.
func (kp *KeywordProcessor) Levenshtein(word string, maxCost int) []FuzzyHit {
	kp.mu.RLock()
	defer kp.mu.RUnlock()
	return kp.levenshteinNodes([]rune(word), maxCost)
}

// levenshteinNodes is Levenshtein's lock-free core, reused by the
// fuzzy-extract scanner, which already holds kp.mu.
func (kp *KeywordProcessor) levenshteinNodes(word []rune, maxCost int) []FuzzyHit {
	firstRow := make([]int, len(word)+1)
	for i := range firstRow {
		firstRow[i] = i
	}
	var hits []FuzzyHit
	for _, r := range edgeRunes(kp.root) {
		levenshteinRec(r, kp.root.children[r], word, firstRow, maxCost, 1, []rune{r}, kp.boundary, &hits)
	}
	return hits
}

// edgeRunes returns every outgoing edge rune of n in sorted order. Unlike
// distinctChildren it keeps both case edges of a shared DAG child, so the
// DP compares the query against each spelling the trie accepts.
func edgeRunes(n *node) []rune {
	rs := make([]rune, 0, len(n.children))
	for r := range n.children {
		rs = append(rs, r)
	}
	sortRunes(rs)
	return rs
}

func levenshteinRec(c rune, n *node, word []rune, prevRow []int, maxCost, depth int, path []rune, boundary *BoundarySet, out *[]FuzzyHit) {
	cols := len(word) + 1
	newRow := make([]int, cols)
	newRow[0] = prevRow[0] + 1
	for col := 1; col < cols; col++ {
		insertCost := newRow[col-1] + 1
		deleteCost := prevRow[col] + 1
		subCost := prevRow[col-1]
		if word[col-1] != c {
			subCost++
		}
		newRow[col] = min3(insertCost, deleteCost, subCost)
	}

	finalCost := newRow[cols-1]
	// A node stops a fuzzy match either because it is itself accepting,
	// or because the trie branches on a boundary character there (a
	// word-end in the trie) — the source's stop_crit. This deliberately
	// allows a fuzzy match to end mid-word when the trie happens to
	// branch on a boundary character at that point, per spec's Open
	// Question on the matter.
	if finalCost <= maxCost && (n.accepting() || hasBoundaryChildEdge(n, boundary)) {
		hit := FuzzyHit{Key: string(path), Cost: finalCost, Depth: depth, Accepting: n.accepting()}
		if n.accepting() {
			hit.Clean = *n.payload
		}
		*out = append(*out, hit)
	}

	if minRow(newRow) > maxCost {
		return
	}
	for _, r := range edgeRunes(n) {
		nextPath := make([]rune, len(path)+1)
		copy(nextPath, path)
		nextPath[len(path)] = r
		levenshteinRec(r, n.children[r], word, newRow, maxCost, depth+1, nextPath, boundary, out)
	}
}

func hasBoundaryChildEdge(n *node, boundary *BoundarySet) bool {
	for r := range n.children {
		if !boundary.Contains(r) {
			return true
		}
	}
	return false
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func minRow(row []int) int {
	m := row[0]
	for _, v := range row[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// extractFuzzy is the fuzzy-extract variant of the scanner: at every
// position that could start a word, it looks for the longest-consuming
// accepting trie path within maxCost of the upcoming text, letting edit
// cost accumulate across internal word boundaries of a
// multi-word keyword exactly as a single DP traversal would (a deletion
// in one word of the keyword and an insertion in the next together still
// cost 2 against the shared budget). On no acceptable match it falls back
// to advancing one rune at a time, exactly like the exact scanner's
// dead-end handling.
func (kp *KeywordProcessor) extractFuzzy(runes []rune, maxCost int, spanInfo bool) []Match {
	var matches []Match
	n := len(runes)
	boundary := kp.boundary

	emit := func(payload CleanName, start, end int) {
		for _, name := range payload.Names() {
			m := Match{Clean: name}
			if spanInfo {
				m.Start = start
				m.End = end
			}
			matches = append(matches, m)
		}
	}

	i := 0
	for i < n {
		if !boundary.isBoundary(runes, i-1) {
			i++
			continue
		}
		if best, ok := kp.bestFuzzyMatch(runes, i, maxCost); ok {
			emit(best.payload, i, i+best.consumed)
			i += best.consumed
			continue
		}
		i++
	}
	return matches
}

type fuzzyWindowHit struct {
	payload  CleanName
	consumed int
	cost     int
}

// bestFuzzyMatch tries successive lengths of upcoming text against the
// whole trie, reusing the strict Levenshtein DP for each length, and
// keeps the longest accepting hit within maxCost whose end sits at a word
// boundary — cost only gates which hits are even reachable (levenshteinNodes
// already discards anything over maxCost); among hits of equal length the
// lower-cost one wins. Reusing the single well-grounded DP routine per
// candidate length, instead of threading a second "open-ended" DP variant
// through the scanner, is the simplicity/performance trade this module
// makes for spec §4.5's otherwise underspecified consumed-length choice
// (see DESIGN.md). The window cap is the longest inserted keyword plus
// maxCost runes: a fuzzy match can stray from its start by at most maxCost
// edits, so it can never run longer than the deepest trie path plus that
// budget.
func (kp *KeywordProcessor) bestFuzzyMatch(runes []rune, start, maxCost int) (fuzzyWindowHit, bool) {
	maxWindow := len(runes) - start
	if cap := kp.maxKeywordRunes + maxCost; cap > 0 && maxWindow > cap {
		maxWindow = cap
	}
	var best fuzzyWindowHit
	found := false
	for length := 1; length <= maxWindow; length++ {
		end := start + length
		if !kp.boundary.isBoundary(runes, end) {
			continue
		}
		word := runes[start:end]
		for _, h := range kp.levenshteinNodes(word, maxCost) {
			if !h.Accepting {
				continue
			}
			if !found || length > best.consumed || (length == best.consumed && h.Cost < best.cost) {
				best = fuzzyWindowHit{payload: h.Clean, consumed: length, cost: h.Cost}
				found = true
			}
		}
	}
	return best, found
}
