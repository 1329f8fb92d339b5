// Package collatex provides Polish case-insensitive string comparison
// matching a MongoDB collation of {locale: "pl", strength: 2}. Stores that
// have no native collation persist Key values under a unique index.
package collatex

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// folder produces collation keys. It is safe for concurrent use.
type folder struct {
	mu  sync.Mutex
	col *collate.Collator
	buf collate.Buffer
}

func newFolder(tag language.Tag) *folder {
	return &folder{col: collate.New(tag, collate.IgnoreCase)}
}

func (f *folder) key(s string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := f.col.KeyFromString(&f.buf, s)
	out := make([]byte, len(k))
	copy(out, k)
	f.buf.Reset()
	return out
}

var polish = newFolder(language.Polish)

// Key returns the Polish case-insensitive collation key of s. Two strings
// collate equal iff their keys are byte-equal. Case is ignored, diacritics
// are not.
func Key(s string) []byte { return polish.key(s) }
