package tabs

// observers keeps callbacks in registration order and hands back a cancel
// func per registration.
type observers[F any] struct {
	next    int
	entries []observerEntry[F]
}

type observerEntry[F any] struct {
	id int
	fn F
}

func (o *observers[F]) add(fn F) func() {
	o.next++
	id := o.next
	o.entries = append(o.entries, observerEntry[F]{id: id, fn: fn})
	return func() { o.remove(id) }
}

func (o *observers[F]) remove(id int) {
	for i, e := range o.entries {
		if e.id == id {
			o.entries = append(o.entries[:i:i], o.entries[i+1:]...)
			return
		}
	}
}

// snapshot lets callbacks deregister while the caller iterates.
func (o *observers[F]) snapshot() []F {
	out := make([]F, 0, len(o.entries))
	for _, e := range o.entries {
		out = append(out, e.fn)
	}
	return out
}

func (o *observers[F]) len() int { return len(o.entries) }

func (o *observers[F]) clear() { o.entries = nil }
