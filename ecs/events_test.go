package ecs

import "testing"

const (
	kindHit   EventKind = "hit"
	kindScore EventKind = "score"
)

func TestDrainAsKeepsOtherKinds(t *testing.T) {
	w := NewWorld()
	Emit(w, kindHit, 1)
	Emit(w, kindScore, "ignored")
	Emit(w, kindHit, 2)
	Emit(w, kindHit, "wrong type")

	hits := DrainAs[int](w, kindHit)
	if len(hits) != 2 || hits[0] != 1 || hits[1] != 2 {
		t.Fatalf("expected [1 2] in emit order, got %v", hits)
	}
	if again := DrainAs[int](w, kindHit); len(again) != 0 {
		t.Fatalf("drained kind should be empty, got %v", again)
	}
	if got := w.Events().Len(); got != 1 {
		t.Fatalf("expected the score event to remain, got %d events", got)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	w := NewWorld()
	Emit(w, kindHit, 7)

	if got := w.Events().Peek(kindHit); len(got) != 1 || got[0].Data != 7 {
		t.Fatalf("unexpected peek result %v", got)
	}
	if got := DrainAs[int](w, kindHit); len(got) != 1 {
		t.Fatalf("peeked event should still drain, got %v", got)
	}
}

type emitter struct{ kind EventKind }

func (e emitter) Update(w *World) { Emit(w, e.kind, struct{}{}) }

type counter struct {
	kind EventKind
	seen *int
}

func (c counter) Update(w *World) { *c.seen += len(w.Events().Drain(c.kind)) }

func TestTickFlushesUnreadEvents(t *testing.T) {
	w := NewWorld()
	seen := 0
	s := NewScheduler(emitter{kindHit}, counter{kindHit, &seen}, emitter{kindScore})

	w.Tick(s)
	if seen != 1 {
		t.Fatalf("expected reader after writer to see 1 event, got %d", seen)
	}
	if got := w.Events().Len(); got != 0 {
		t.Fatalf("unread events should be flushed at end of tick, got %d", got)
	}

	Emit(w, kindScore, 1)
	w.Events().Clear()
	if got := w.Events().Len(); got != 0 {
		t.Fatalf("Clear left %d events", got)
	}
}
