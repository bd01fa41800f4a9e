package edgetable

import (
	"sort"
	"testing"
)

func TestLookupKnownEdges(t *testing.T) {
	tab := Default()

	cases := []struct {
		z    int
		edge string
		want float64
	}{
		{1, "K", 13.6},
		{26, "K", 7112.0}, // Fe
		{29, "K", 8979.0}, // Cu
		{78, "L3", 11564.0},
		{92, "K", 115606.0}, // U
	}

	for _, tc := range cases {
		got, ok := tab.Lookup(tc.z, tc.edge)
		if !ok {
			t.Fatalf("Lookup(%d, %q) not found", tc.z, tc.edge)
		}

		if got != tc.want {
			t.Fatalf("Lookup(%d, %q) = %v, want %v", tc.z, tc.edge, got, tc.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	tab := Default()

	if _, ok := tab.Lookup(1, "L3"); ok {
		t.Fatal("hydrogen has no L3 edge")
	}

	if _, ok := tab.Lookup(0, "K"); ok {
		t.Fatal("Z=0 should not resolve")
	}

	if _, ok := tab.Lookup(200, "K"); ok {
		t.Fatal("Z beyond the table should not resolve")
	}
}

func TestSymbolRoundTrip(t *testing.T) {
	tab := Default()

	for z := 1; z <= tab.MaxZ(); z++ {
		sym, ok := tab.Symbol(z)
		if !ok || sym == "" {
			t.Fatalf("Symbol(%d) missing", z)
		}

		back, ok := tab.AtomicNumber(sym)
		if !ok || back != z {
			t.Fatalf("AtomicNumber(%q) = %d, want %d", sym, back, z)
		}
	}

	if _, ok := tab.AtomicNumber("Xx"); ok {
		t.Fatal("unknown symbol should not resolve")
	}
}

func TestEdgesSorted(t *testing.T) {
	tab := Default()

	edges := tab.Edges(26)
	if len(edges) == 0 {
		t.Fatal("Fe should list edges")
	}

	if !sort.StringsAreSorted(edges) {
		t.Fatalf("edges not sorted: %v", edges)
	}

	found := false
	for _, e := range edges {
		if e == "K" {
			found = true
		}
	}

	if !found {
		t.Fatalf("Fe edges missing K: %v", edges)
	}

	if tab.Edges(0) != nil {
		t.Fatal("Z=0 should yield nil edges")
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default should return the same table value")
	}

	if Default().MaxZ() != 98 {
		t.Fatalf("MaxZ = %d, want 98", Default().MaxZ())
	}
}
