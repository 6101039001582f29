package engine

import "github.com/lixenwraith/gravity-sandbox/component"

// Batch collects registry mutations during a scan
// Removals are keyed by stable ID; additions carry IDs assigned at queue time
// World.Commit applies both after the scan; the live registry is never mutated mid-scan
type Batch struct {
	removed   map[component.BodyID]struct{}
	additions []*component.Body
}

func newBatch() Batch {
	return Batch{removed: make(map[component.BodyID]struct{})}
}

// MarkRemoved flags id for removal, returns false if already marked
func (b *Batch) MarkRemoved(id component.BodyID) bool {
	if _, ok := b.removed[id]; ok {
		return false
	}
	b.removed[id] = struct{}{}
	return true
}

// IsMarked reports whether id is pending removal
func (b *Batch) IsMarked(id component.BodyID) bool {
	_, ok := b.removed[id]
	return ok
}

// Removals returns the number of pending removals
func (b *Batch) Removals() int { return len(b.removed) }

// Additions returns pending additions, read-only
func (b *Batch) Additions() []*component.Body { return b.additions }

// Empty reports whether nothing is pending
func (b *Batch) Empty() bool { return len(b.removed) == 0 && len(b.additions) == 0 }

func (b *Batch) reset() {
	clear(b.removed)
	b.additions = b.additions[:0]
}
