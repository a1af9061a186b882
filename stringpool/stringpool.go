// Package stringpool interns identifier, type, and file-name strings for a
// single compilation unit so that later stages can compare names by handle
// equality instead of string comparison.
package stringpool

// Handle is an interned string reference. Two handles compare equal if and
// only if the strings they were interned from are equal, which lets scope
// lookup, function matching, and field lookup use integer comparison.
type Handle int32

// Invalid is the zero-value-free sentinel for "no string".
const Invalid Handle = -1

// Pool owns the set of unique strings for one compilation unit.
type Pool struct {
	index   map[string]Handle
	strings []string
}

// New creates an empty pool sized for a few hundred identifiers, which is
// enough to avoid rehashing for most single-file shaders while staying cheap
// for trivial ones.
func New() *Pool {
	return &Pool{
		index:   make(map[string]Handle, 256),
		strings: make([]string, 0, 256),
	}
}

// Intern returns the handle for s, allocating a new one if s has not been
// seen before in this pool.
func (p *Pool) Intern(s string) Handle {
	if h, ok := p.index[s]; ok {
		return h
	}
	h := Handle(len(p.strings))
	p.strings = append(p.strings, s)
	p.index[s] = h
	return h
}

// Contains reports whether s has already been interned. Emitters use this to
// fabricate fresh identifier names that cannot collide with anything in the
// source.
func (p *Pool) Contains(s string) bool {
	_, ok := p.index[s]
	return ok
}

// String returns the string that h was interned from. It panics if h is not
// a handle previously returned by Intern on this pool — that would indicate
// a compiler bug, not a user-facing error.
func (p *Pool) String(h Handle) string {
	return p.strings[h]
}

// Len returns the number of distinct strings interned so far.
func (p *Pool) Len() int {
	return len(p.strings)
}
