// Package patch computes JSON Patch documents between snapshots of an
// entity's sub-resources. Most collections diff structurally; the
// statements collection is reconciled by statement ID instead, since
// statement identity is never positional.
package patch

// Op is a JSON Patch operation kind.
type Op string

const (
	OpAdd     Op = "add"
	OpReplace Op = "replace"
	OpRemove  Op = "remove"
)

// Entry is a single JSON Patch operation addressed by a JSON Pointer
// path. Entries are never mutated after construction.
type Entry struct {
	Op    Op     `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

func NewEntry(op Op, path string, value any) Entry {
	return Entry{Op: op, Path: path, Value: value}
}

// entryList is the ordered list of operations shared by all patch
// kinds.
type entryList struct {
	entries []Entry
}

// Add appends an add operation at the given path.
func (l *entryList) Add(path string, value any) {
	l.entries = append(l.entries, NewEntry(OpAdd, path, value))
}

// Replace appends a replace operation at the given path.
func (l *entryList) Replace(path string, value any) {
	l.entries = append(l.entries, NewEntry(OpReplace, path, value))
}

// Remove appends a remove operation at the given path.
func (l *entryList) Remove(path string) {
	l.entries = append(l.entries, NewEntry(OpRemove, path, nil))
}

// Entries returns the operations in application order.
func (l *entryList) Entries() []Entry {
	return l.entries
}

func (l *entryList) IsEmpty() bool {
	return len(l.entries) == 0
}

func (l *entryList) extend(entries []Entry) {
	l.entries = append(l.entries, entries...)
}
