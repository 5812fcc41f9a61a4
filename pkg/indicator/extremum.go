package indicator

import "github.com/c9s/streamta/pkg/num"

type slot[T any] struct {
	v  T
	ok bool
}

// extremum tracks the rolling extreme of a ring buffer. The cached index
// always points at a buffered value; the ring is rescanned only when the
// cached slot is overwritten by a value that does not beat it.
type extremum[T any] struct {
	ar num.Arithmetic[T]

	// want is the Compare result of a value that beats the cached one.
	want int

	ring   []slot[T]
	index  int
	cursor int
}

func newExtremum[T any](ar num.Arithmetic[T], window, want int) extremum[T] {
	return extremum[T]{
		ar:   ar,
		want: want,
		ring: make([]slot[T], window),
	}
}

func (e *extremum[T]) update(in T) T {
	e.cursor = (e.cursor + 1) % len(e.ring)

	cached := e.ring[e.index]
	evicted := e.cursor == e.index
	e.ring[e.cursor] = slot[T]{v: in, ok: true}

	switch {
	case !cached.ok:
		e.index = e.cursor
	case e.ar.Compare(in, cached.v) == e.want:
		e.index = e.cursor
	case evicted:
		e.rescan()
	}

	return e.ring[e.index].v
}

func (e *extremum[T]) rescan() {
	found := false
	for i, s := range e.ring {
		if !s.ok {
			continue
		}

		if !found || e.ar.Compare(s.v, e.ring[e.index].v) == e.want {
			e.index = i
			found = true
		}
	}
}

func (e *extremum[T]) reset() {
	clear(e.ring)
	e.index = 0
	e.cursor = 0
}
