/*
Package flashkw implements a high-throughput multi-keyword extractor and
replacer over arbitrary text.

Given a dictionary of keywords mapped to one or more clean names, a
KeywordProcessor scans text in a single left-to-right pass and reports every
keyword occurrence that sits at a word boundary, or rewrites the text with
the mapped replacements. It is built around a trie (optionally a DAG, when
case-insensitive matching shares upper/lower edges of the same node) rather
than a compiled alternation regex, which is what lets it stay fast as the
keyword dictionary grows into the tens of thousands of entries.
*/
package flashkw
