package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/spaceranger/ecs/component"
)

type position struct{ X, Y float64 }

type speed struct{ Y float64 }

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := CreateEntity(w)
				if !e.Valid() {
					t.Fatalf("entity %d is not valid", i)
				}
				ents = append(ents, e)
			}
			if got := len(Entities(w)); got != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, got)
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("destroying twice should return false")
			}
			if got := len(Entities(w)); got != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, got)
			}
		})
	}
}

func TestRecycledSlotRejectsStaleHandle(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[position]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, &position{X: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh == old {
		t.Fatalf("recycled slot reused the same handle %s", fresh)
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle %s reported alive", old)
	}
	if _, ok := Get(w, fresh, kind); ok {
		t.Fatalf("recycled entity inherited a component")
	}
	if err := Add(w, old, kind, &position{}); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive adding to stale handle, got %v", err)
	}
}

func TestComponentAddGetRemove(t *testing.T) {
	w := NewWorld()
	posKind := component.NewComponentKind[position]()
	speedKind := component.NewComponentKind[speed]()
	e := CreateEntity(w)

	tests := []struct {
		name  string
		run   func() error
		check func(t *testing.T)
	}{
		{
			name: "add_position",
			run:  func() error { return Add(w, e, posKind, &position{X: 3, Y: 4}) },
			check: func(t *testing.T) {
				p, ok := Get(w, e, posKind)
				if !ok || p.X != 3 || p.Y != 4 {
					t.Fatalf("expected {3 4}, got %v ok=%v", p, ok)
				}
			},
		},
		{
			name: "replace_position",
			run:  func() error { return Add(w, e, posKind, &position{X: 5}) },
			check: func(t *testing.T) {
				p, _ := Get(w, e, posKind)
				if p.X != 5 {
					t.Fatalf("expected X=5 after replace, got %v", p.X)
				}
			},
		},
		{
			name: "missing_kind",
			run:  func() error { return nil },
			check: func(t *testing.T) {
				if Has(w, e, speedKind) {
					t.Fatalf("speed should not be present")
				}
			},
		},
		{
			name: "remove_position",
			run: func() error {
				if !Remove(w, e, posKind) {
					return errors.New("remove reported false")
				}
				return nil
			},
			check: func(t *testing.T) {
				if Has(w, e, posKind) {
					t.Fatalf("position should be gone")
				}
				if Remove(w, e, posKind) {
					t.Fatalf("second remove should report false")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); err != nil {
				t.Fatalf("run failed: %v", err)
			}
			tc.check(t)
		})
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if err := Add(w, e, component.NewComponentKind[position](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentKind[position]
	if err := Add(w, e, zero, &position{}); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestQueryAndFirst(t *testing.T) {
	w := NewWorld()
	posKind := component.NewComponentKind[position]()
	speedKind := component.NewComponentKind[speed]()

	both := CreateEntity(w)
	onlyPos := CreateEntity(w)
	_ = Add(w, both, posKind, &position{})
	_ = Add(w, both, speedKind, &speed{})
	_ = Add(w, onlyPos, posKind, &position{})

	if got := len(w.Query(posKind)); got != 2 {
		t.Fatalf("expected 2 entities with position, got %d", got)
	}
	matched := w.Query(posKind, speedKind)
	if len(matched) != 1 || matched[0] != both {
		t.Fatalf("expected only %s to match both kinds, got %v", both, matched)
	}
	if e, ok := w.First(posKind, speedKind); !ok || e != both {
		t.Fatalf("First: expected %s, got %s ok=%v", both, e, ok)
	}
	if _, ok := First(w, component.NewComponentKind[int]()); ok {
		t.Fatalf("First on an unused kind should find nothing")
	}
}

func TestQueryIsSnapshot(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[position]()
	for i := 0; i < 4; i++ {
		_ = Add(w, CreateEntity(w), kind, &position{X: float64(i)})
	}

	visited := 0
	ForEach(w, kind, func(e Entity, _ *position) {
		visited++
		DestroyEntity(w, e)
		_ = Add(w, CreateEntity(w), kind, &position{})
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits over the snapshot, got %d", visited)
	}
	if got := len(w.Query(kind)); got != 4 {
		t.Fatalf("expected the 4 replacements to remain, got %d", got)
	}
}

func TestForEachVariants(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	full := CreateEntity(w)
	for i, k := range []component.ComponentKind[int]{ka, kb, kc, kd} {
		v := i + 1
		_ = Add(w, full, k, &v)
	}
	partial := CreateEntity(w)
	one, two := 10, 20
	_ = Add(w, partial, ka, &one)
	_ = Add(w, partial, kb, &two)

	tests := []struct {
		name string
		run  func() (count, sum int)
		want [2]int
	}{
		{
			name: "foreach",
			run: func() (count, sum int) {
				ForEach(w, ka, func(_ Entity, a *int) { count++; sum += *a })
				return
			},
			want: [2]int{2, 11},
		},
		{
			name: "foreach2",
			run: func() (count, sum int) {
				ForEach2(w, ka, kb, func(_ Entity, a, b *int) { count++; sum += *a + *b })
				return
			},
			want: [2]int{2, 33},
		},
		{
			name: "foreach3",
			run: func() (count, sum int) {
				ForEach3(w, ka, kb, kc, func(_ Entity, a, b, c *int) { count++; sum += *a + *b + *c })
				return
			},
			want: [2]int{1, 6},
		},
		{
			name: "foreach4",
			run: func() (count, sum int) {
				ForEach4(w, ka, kb, kc, kd, func(_ Entity, a, b, c, d *int) { count++; sum += *a + *b + *c + *d })
				return
			},
			want: [2]int{1, 10},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			count, sum := tc.run()
			if count != tc.want[0] || sum != tc.want[1] {
				t.Fatalf("expected count=%d sum=%d, got count=%d sum=%d", tc.want[0], tc.want[1], count, sum)
			}
		})
	}
}

func TestForEachMutatesInPlace(t *testing.T) {
	w := NewWorld()
	posKind := component.NewComponentKind[position]()
	speedKind := component.NewComponentKind[speed]()
	e := CreateEntity(w)
	_ = Add(w, e, posKind, &position{Y: 10})
	_ = Add(w, e, speedKind, &speed{Y: -2})

	ForEach2(w, posKind, speedKind, func(_ Entity, p *position, s *speed) {
		p.Y += s.Y
	})

	p, _ := Get(w, e, posKind)
	if p.Y != 8 {
		t.Fatalf("expected Y=8, got %v", p.Y)
	}
}

func TestDespawnAll(t *testing.T) {
	w := NewWorld()
	enemy := component.NewComponentKind[struct{}]()
	keep := CreateEntity(w)
	for i := 0; i < 3; i++ {
		_ = Add(w, CreateEntity(w), enemy, &struct{}{})
	}

	if n := DespawnAll(w, enemy); n != 3 {
		t.Fatalf("expected 3 despawned, got %d", n)
	}
	if !IsAlive(w, keep) {
		t.Fatalf("entity without the kind should survive")
	}
	if n := DespawnAll(w, enemy); n != 0 {
		t.Fatalf("second DespawnAll should find nothing, got %d", n)
	}
}

type recordingSystem struct {
	name string
	log  *[]string
}

func (r recordingSystem) Update(*World) {
	*r.log = append(*r.log, r.name)
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	s := NewScheduler(
		recordingSystem{"input", &order},
		nil,
		recordingSystem{"stage", &order},
	)
	s.Add(recordingSystem{"audio", &order})

	NewWorld().Tick(s)

	want := []string{"input", "stage", "audio"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if got := len(s.Systems()); got != 3 {
		t.Fatalf("nil system should be skipped, got %d systems", got)
	}
}
