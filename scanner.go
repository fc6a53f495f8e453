package flashkw

// Match is a single keyword occurrence found by ExtractKeywords. Start and
// End are rune offsets into the scanned text (not byte offsets), following
// the source algorithm's character-indexed semantics; they are populated
// only when WithSpans() was requested.
type Match struct {
	Clean string
	Start int
	End   int
}

type extractConfig struct {
	spanInfo bool
	maxCost  int
}

// ExtractOption configures a single ExtractKeywords call.
type ExtractOption func(*extractConfig)

// WithSpans requests that each Match carry its [Start, End) span.
func WithSpans() ExtractOption {
	return func(c *extractConfig) { c.spanInfo = true }
}

// WithMaxCost enables the bounded edit-distance ("fuzzy") scanner variant,
// allowing matches within the given Levenshtein distance of a stored
// keyword. A cost of 0 (the default) uses the exact scanner.
func WithMaxCost(maxCost int) ExtractOption {
	return func(c *extractConfig) { c.maxCost = maxCost }
}

// ExtractKeywords scans text once, left to right, and returns every
// keyword occurrence that sits at a word boundary. Matches are
// non-overlapping; at any starting position the longest accepting trie
// path wins, and the leftmost start wins among overlapping candidates.
func (kp *KeywordProcessor) ExtractKeywords(text string, opts ...ExtractOption) []Match {
	cfg := extractConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	kp.mu.RLock()
	defer kp.mu.RUnlock()
	runes := []rune(text)
	if cfg.maxCost > 0 {
		return kp.extractFuzzy(runes, cfg.maxCost, cfg.spanInfo)
	}
	return kp.extractExact(runes, cfg.spanInfo)
}

// extractExact is the single-pass, two-cursor longest-match engine of
// spec §4.3. The walk follows a trie edge for *any* character — separator
// or not — since a keyword may itself contain boundary characters (a
// space in "Test Case", or a CJK character that is, by default, its own
// one-rune word). What distinguishes a separator from an inside-word
// character is only the boundary-validity check applied at a match's
// start and end, never whether the cursor is allowed to step through it.
func (kp *KeywordProcessor) extractExact(runes []rune, spanInfo bool) []Match {
	var matches []Match
	n := len(runes)
	root := kp.root
	boundary := kp.boundary

	cursor := root
	sequenceStart := 0
	var lastAccept *node
	lastAcceptEnd := -1

	emit := func(nd *node, start, end int) {
		for _, name := range nd.payload.Names() {
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
		c := runes[i]

		if cursor == root {
			if !boundary.isBoundary(runes, i-1) {
				i++
				continue
			}
			child, ok := cursor.children[c]
			if !ok {
				i++
				continue
			}
			sequenceStart = i
			cursor = child
			i++
			if cursor.accepting() {
				lastAccept, lastAcceptEnd = cursor, i
			}
			continue
		}

		child, ok := cursor.children[c]
		if ok {
			cursor = child
			i++
			if cursor.accepting() {
				lastAccept, lastAcceptEnd = cursor, i
			}
			continue
		}

		if lastAccept != nil && boundary.isBoundary(runes, lastAcceptEnd) {
			emit(lastAccept, sequenceStart, lastAcceptEnd)
			cursor = root
			i = lastAcceptEnd
			lastAccept = nil
			continue
		}
		cursor = root
		lastAccept = nil
		// Do not advance i: the next pass re-examines this position from
		// root, which may itself be a valid new match start.
	}

	if lastAccept != nil && boundary.isBoundary(runes, lastAcceptEnd) {
		emit(lastAccept, sequenceStart, lastAcceptEnd)
	}
	return matches
}
