package zone

import (
	"errors"
	"testing"

	"github.com/shopsim/floornav/pkg/geom"
)

func TestConnectSymmetry(t *testing.T) {
	b := NewBuilder()
	a := b.Add("a", geom.NewRect(0, 0, 2, 2))
	c := b.Add("c", geom.NewRect(2, 0, 2, 2))

	boundary := geom.VSeam(2, 0, 2)
	if err := b.Connect(boundary, a, c); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	g := b.Freeze()

	ab, ok := g.Boundary(a, c)
	if !ok {
		t.Fatal("a→c boundary missing")
	}
	ba, ok := g.Boundary(c, a)
	if !ok {
		t.Fatal("c→a boundary missing")
	}
	if ab != ba || ab != boundary {
		t.Errorf("boundaries differ: a→c %+v, c→a %+v, want %+v", ab, ba, boundary)
	}
}

func TestConnectErrors(t *testing.T) {
	b := NewBuilder()
	a := b.Add("a", geom.Rect{})
	c := b.Add("c", geom.Rect{})
	if err := b.Connect(geom.Rect{}, a, c); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	tests := []struct {
		name string
		from ID
		to   ID
		want error
	}{
		{"SelfEdge", a, a, ErrSelfEdge},
		{"UnknownTarget", a, ID(99), ErrUnknownZone},
		{"NegativeSource", ID(-1), c, ErrUnknownZone},
		{"Duplicate", a, c, ErrDuplicateEdge},
		{"DuplicateReversed", c, a, ErrDuplicateEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.Connect(geom.Rect{}, tt.from, tt.to); !errors.Is(err, tt.want) {
				t.Errorf("Connect(%d, %d) = %v, want %v", tt.from, tt.to, err, tt.want)
			}
		})
	}
}

func TestNoSelfAdjacency(t *testing.T) {
	b := NewBuilder()
	ids := make([]ID, 4)
	for i := range ids {
		ids[i] = b.Add("z", geom.Rect{})
	}
	for i := 1; i < len(ids); i++ {
		if err := b.Connect(geom.Rect{}, ids[0], ids[i]); err != nil {
			t.Fatalf("Connect: %v", err)
		}
	}

	g := b.Freeze()
	for _, id := range ids {
		for _, n := range g.Neighbors(id) {
			if n.ID == id {
				t.Errorf("zone %d appears in its own adjacency", id)
			}
		}
	}
}

func TestFreezeSealsBuilder(t *testing.T) {
	b := NewBuilder()
	a := b.Add("a", geom.Rect{})
	c := b.Add("c", geom.Rect{})
	b.Freeze()

	if err := b.Connect(geom.Rect{}, a, c); !errors.Is(err, ErrFrozen) {
		t.Errorf("Connect after Freeze = %v, want ErrFrozen", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Add after Freeze did not panic")
		}
	}()
	b.Add("late", geom.Rect{})
}

func TestNeighborsSorted(t *testing.T) {
	b := NewBuilder()
	hub := b.Add("hub", geom.Rect{})
	var spokes []ID
	for range 5 {
		spokes = append(spokes, b.Add("spoke", geom.Rect{}))
	}
	// Connect in reverse to make insertion order differ from ID order.
	for i := len(spokes) - 1; i >= 0; i-- {
		if err := b.Connect(geom.Rect{}, hub, spokes[i]); err != nil {
			t.Fatalf("Connect: %v", err)
		}
	}

	g := b.Freeze()
	ns := g.Neighbors(hub)
	if len(ns) != len(spokes) {
		t.Fatalf("neighbors = %d, want %d", len(ns), len(spokes))
	}
	for i := 1; i < len(ns); i++ {
		if ns[i-1].ID >= ns[i].ID {
			t.Errorf("neighbors not sorted: %v before %v", ns[i-1].ID, ns[i].ID)
		}
	}
}

func TestReachable(t *testing.T) {
	// Path a-b-c plus isolated d.
	b := NewBuilder()
	za := b.Add("a", geom.Rect{})
	zb := b.Add("b", geom.Rect{})
	zc := b.Add("c", geom.Rect{})
	zd := b.Add("d", geom.Rect{})
	if err := b.Connect(geom.Rect{}, za, zb); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := b.Connect(geom.Rect{}, zb, zc); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	g := b.Freeze()

	got := g.Reachable(za)
	if len(got) != 3 {
		t.Fatalf("Reachable(a) = %v, want 3 zones", got)
	}
	for _, id := range got {
		if id == zd {
			t.Error("isolated zone reported reachable")
		}
	}

	if got := g.Reachable(zd); len(got) != 1 || got[0] != zd {
		t.Errorf("Reachable(d) = %v, want [d]", got)
	}
	if got := g.Reachable(ID(42)); got != nil {
		t.Errorf("Reachable(unknown) = %v, want nil", got)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Any(); ok {
		t.Error("Any on empty registry reported a zone")
	}

	r.Add(ID(3))
	r.Add(ID(1))
	r.Add(ID(3)) // duplicate

	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
	if !r.Contains(ID(1)) || !r.Contains(ID(3)) {
		t.Error("registered zones missing")
	}
	if r.Contains(ID(2)) {
		t.Error("unregistered zone reported present")
	}
	if got := r.IDs(); len(got) != 2 || got[0] != ID(3) || got[1] != ID(1) {
		t.Errorf("IDs = %v, want creation order [3 1]", got)
	}
	if id, ok := r.Any(); !ok || id != ID(3) {
		t.Errorf("Any = %v/%v, want 3/true", id, ok)
	}
}
