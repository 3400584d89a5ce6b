package game

// World owns the dynamic entity collections. Iteration order is insertion
// order; removal keeps the relative order of the survivors.
type World struct {
	Enemies  []*Enemy
	Bullets  []*Bullet
	Medikits []*Medikit
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		Enemies:  make([]*Enemy, 0, 64),
		Bullets:  make([]*Bullet, 0, 64),
		Medikits: make([]*Medikit, 0, 8),
	}
}

// Clear drops every entity
func (w *World) Clear() {
	clear(w.Enemies)
	clear(w.Bullets)
	clear(w.Medikits)
	w.Enemies = w.Enemies[:0]
	w.Bullets = w.Bullets[:0]
	w.Medikits = w.Medikits[:0]
}

// removalSet marks indices of a collection scanned in one pass. Marked
// entries are skipped by later checks in the same pass and compacted away
// when the pass ends.
type removalSet []bool

func newRemovalSet(n int) removalSet {
	return make(removalSet, n)
}

func (r removalSet) mark(i int) {
	r[i] = true
}

func (r removalSet) marked(i int) bool {
	return r[i]
}

// compact removes every marked index from items in place, preserving order
func compact[T any](items []*T, removed removalSet) []*T {
	n := 0
	for i, item := range items {
		if removed.marked(i) {
			continue
		}
		items[n] = item
		n++
	}
	clear(items[n:])
	return items[:n]
}
