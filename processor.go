package flashkw

import "sync"

// KeywordProcessor is a case-(in)sensitive trie of keywords, each mapped to
// one or more clean names, supporting single-pass extraction and
// replacement over arbitrary text. The zero value is not usable; construct
// one with New.
//
// KeywordProcessor is a single-threaded, non-suspending data structure: Add,
// Remove, Set, and Delete are exclusive writers; Extract, Replace, Get,
// Contains, Len, and GetAllKeywords are readers. mu enforces that no reader
// observes a mutation in progress, while leaving concurrent readers free to
// proceed — the same discipline the teacher trie applies with its own
// sync.RWMutex.
type KeywordProcessor struct {
	mu              sync.RWMutex
	caseSensitive   bool
	boundary        *BoundarySet
	root            *node
	size            int
	maxKeywordRunes int
}

// New constructs an empty KeywordProcessor. caseSensitive, once set, is
// immutable for the object's lifetime.
func New(caseSensitive bool) *KeywordProcessor {
	return &KeywordProcessor{
		caseSensitive: caseSensitive,
		boundary:      NewBoundarySet(),
		root:          newNode(),
	}
}

// CaseSensitive reports whether this processor was constructed with exact
// case matching.
func (kp *KeywordProcessor) CaseSensitive() bool {
	return kp.caseSensitive
}

// Boundary returns the processor's mutable boundary-character set. Changes
// made through the returned handle take effect on the next Extract,
// Replace, or Levenshtein call, never mid-call.
func (kp *KeywordProcessor) Boundary() *BoundarySet {
	return kp.boundary
}

// AddKeyword inserts or overwrites keyword, mapped to clean (zero or more
// clean names). With no clean name given, keyword is used as its own clean
// name. An empty keyword is a no-op, whatever clean name is given. Returns whether a
// new term was registered (false if keyword already existed and was only
// overwritten).
func (kp *KeywordProcessor) AddKeyword(keyword string, clean ...string) bool {
	return kp.addKeyword(keyword, cleanNameFromArgs(keyword, clean))
}

// SetClean inserts or overwrites keyword with an explicit CleanName,
// supporting the multi-label form directly.
func (kp *KeywordProcessor) SetClean(keyword string, clean CleanName) bool {
	return kp.addKeyword(keyword, clean)
}

func cleanNameFromArgs(keyword string, clean []string) CleanName {
	switch len(clean) {
	case 0:
		return NewCleanName(keyword)
	case 1:
		if clean[0] == "" {
			return NewCleanName(keyword)
		}
		return NewCleanName(clean[0])
	default:
		return NewCleanNames(clean)
	}
}

func (kp *KeywordProcessor) addKeyword(keyword string, clean CleanName) bool {
	// original_source/src/flashtext/trie_dict.py's add_keyword_to_trie gates
	// the whole insert on `if keyword and clean_name:` — an empty keyword is
	// unconditionally rejected, regardless of clean. Without this, an empty
	// keyword would walk zero trie edges and mark the root itself accepting.
	if keyword == "" {
		return false
	}
	runes := []rune(keyword)
	kp.mu.Lock()
	defer kp.mu.Unlock()
	wasNew := trieAdd(kp.root, !kp.caseSensitive, runes, clean)
	if wasNew {
		kp.size++
	}
	if len(runes) > kp.maxKeywordRunes {
		kp.maxKeywordRunes = len(runes)
	}
	return wasNew
}

// AddKeywordsFromList bulk-inserts bare keywords, each mapped to itself.
func (kp *KeywordProcessor) AddKeywordsFromList(keywords []string) {
	for _, k := range keywords {
		kp.AddKeyword(k)
	}
}

// RemoveKeyword deletes keyword and prunes now-unused trie nodes. Reports
// whether a keyword was actually removed.
func (kp *KeywordProcessor) RemoveKeyword(keyword string) bool {
	kp.mu.Lock()
	defer kp.mu.Unlock()
	removed := trieRemove(kp.root, !kp.caseSensitive, []rune(keyword))
	if removed {
		kp.size--
	}
	return removed
}

// GetKeyword looks up keyword's clean name, literally (no case folding
// beyond what was shared at insertion time).
func (kp *KeywordProcessor) GetKeyword(keyword string) (CleanName, bool) {
	kp.mu.RLock()
	defer kp.mu.RUnlock()
	return trieGet(kp.root, []rune(keyword))
}

// Contains reports whether keyword is present.
func (kp *KeywordProcessor) Contains(keyword string) bool {
	_, ok := kp.GetKeyword(keyword)
	return ok
}

// GetAllKeywords enumerates every accepting node, returning one spelling
// per DAG path (representative runes for shared case edges). The
// representative is the lowest rune of a shared edge pair, so in
// case-insensitive mode an ASCII keyword is reported upper-cased.
func (kp *KeywordProcessor) GetAllKeywords() map[string]CleanName {
	kp.mu.RLock()
	defer kp.mu.RUnlock()
	return trieEnumerate(kp.root)
}

// Len returns the number of distinct keywords inserted.
func (kp *KeywordProcessor) Len() int {
	kp.mu.RLock()
	defer kp.mu.RUnlock()
	return kp.size
}

// Set is mapping-style sugar for AddKeyword/SetClean.
func (kp *KeywordProcessor) Set(keyword string, clean CleanName) bool {
	return kp.SetClean(keyword, clean)
}

// Delete is mapping-style sugar for RemoveKeyword.
func (kp *KeywordProcessor) Delete(keyword string) bool {
	return kp.RemoveKeyword(keyword)
}

// Iter is deliberately unsupported: enumeration order over a DAG is
// ambiguous under case-insensitive sharing. Callers must use
// GetAllKeywords instead.
func (kp *KeywordProcessor) Iter() (<-chan string, error) {
	return nil, ErrIterUnsupported
}
