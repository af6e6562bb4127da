package indexset

import "testing"

func TestSetAppendContains(t *testing.T) {
	s := New(2)
	s.Append(3)
	s.Append(1)
	s.Append(3)

	if s.Len() != 3 {
		t.Errorf("expected 3 items (duplicates kept), got %d", s.Len())
	}

	tests := []struct {
		idx  int
		want bool
	}{
		{3, true},
		{1, true},
		{0, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := s.Contains(tt.idx); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.idx, got, tt.want)
		}
	}
}

func TestSetGrowsPastCapacity(t *testing.T) {
	s := New(1)
	for i := 0; i < 100; i++ {
		s.Append(i)
	}
	if s.Len() != 100 {
		t.Fatalf("expected 100 items, got %d", s.Len())
	}
	for i := 0; i < 100; i++ {
		if s.At(i) != i {
			t.Errorf("At(%d) = %d", i, s.At(i))
		}
	}
}

func TestSetClearKeepsStorage(t *testing.T) {
	s := New(4)
	for i := 0; i < 10; i++ {
		s.Append(i)
	}
	capBefore := s.Cap()

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected empty set after Clear, got %d", s.Len())
	}
	if s.Contains(5) {
		t.Error("cleared set still reports membership")
	}
	if s.Cap() != capBefore {
		t.Errorf("Clear released storage: cap %d -> %d", capBefore, s.Cap())
	}
}

func TestSetItemsIsCopy(t *testing.T) {
	s := New(0)
	s.Append(7)
	items := s.Items()
	items[0] = 99
	if s.At(0) != 7 {
		t.Error("Items did not return an independent copy")
	}
}

func TestSetFirst(t *testing.T) {
	s := New(4)
	for _, v := range []int{4, 2, 8, 6} {
		s.Append(v)
	}

	got, ok := s.First(func(i int) bool { return i < 5 })
	if !ok || got != 4 {
		t.Errorf("First(<5) = %d, %v; want 4, true", got, ok)
	}

	got, ok = s.First(func(i int) bool { return i > 7 })
	if !ok || got != 8 {
		t.Errorf("First(>7) = %d, %v; want 8, true", got, ok)
	}

	if _, ok := s.First(func(i int) bool { return i > 100 }); ok {
		t.Error("expected no match")
	}
}
