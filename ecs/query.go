package ecs

import "github.com/milk9111/spaceranger/ecs/component"

// KindID is satisfied by every component.ComponentKind.
type KindID interface {
	ID() component.ComponentID
}

// Query returns the live entities that carry every listed component kind.
// The result is a snapshot; callers may add, remove or destroy while ranging.
func (w *World) Query(kinds ...KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	var out []Entity
	for _, id := range sets[smallest].ids() {
		matched := true
		for i, s := range sets {
			if i != smallest && !s.Has(id) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns one entity carrying the given kind. Used for singletons.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	return w.First(kind)
}

// First returns one entity carrying every listed kind.
func (w *World) First(kinds ...KindID) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// ForEach calls fn for every entity carrying kind a.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	for _, e := range w.Query(a) {
		av, ok := Get(w, e, a)
		if !ok {
			continue
		}
		fn(e, av)
	}
}

// ForEach2 calls fn for every entity carrying both kinds.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(a, b) {
		av, ok := Get(w, e, a)
		if !ok {
			continue
		}
		bv, ok := Get(w, e, b)
		if !ok {
			continue
		}
		fn(e, av, bv)
	}
}

// ForEach3 calls fn for every entity carrying all three kinds.
func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(a, b, c) {
		av, ok := Get(w, e, a)
		if !ok {
			continue
		}
		bv, ok := Get(w, e, b)
		if !ok {
			continue
		}
		cv, ok := Get(w, e, c)
		if !ok {
			continue
		}
		fn(e, av, bv, cv)
	}
}

// ForEach4 calls fn for every entity carrying all four kinds.
func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	for _, e := range w.Query(a, b, c, d) {
		av, ok := Get(w, e, a)
		if !ok {
			continue
		}
		bv, ok := Get(w, e, b)
		if !ok {
			continue
		}
		cv, ok := Get(w, e, c)
		if !ok {
			continue
		}
		dv, ok := Get(w, e, d)
		if !ok {
			continue
		}
		fn(e, av, bv, cv, dv)
	}
}

// DespawnAll destroys every entity carrying kind.
func DespawnAll[T any](w *World, kind component.ComponentKind[T]) int {
	n := 0
	for _, e := range w.Query(kind) {
		if DestroyEntity(w, e) {
			n++
		}
	}
	return n
}
