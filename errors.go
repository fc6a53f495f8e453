package flashkw

import "errors"

// ErrIterUnsupported is returned by Iter, whose enumeration order over a
// DAG is ambiguous when case-insensitive sharing is in play. Callers must
// request GetAllKeywords explicitly instead.
var ErrIterUnsupported = errors.New("flashkw: iteration over a KeywordProcessor is not supported; call GetAllKeywords instead")
