package dropdown

import "testing"

func specimenSelect() *Select {
	return NewSelect(
		Opt("", ""),
		Opt("3", "An Option"),
		Opt("4", "Another Option"),
		GroupOf("G",
			Opt("5", "Grouped A"),
			Opt("6", "Grouped B"),
		),
		Opt("2", "Last Option"),
	)
}

func TestBuildModelFlattening(t *testing.T) {
	m := BuildModel(specimenSelect())

	wantFlat := []string{"", "3", "4", "5", "6", "2"}
	if len(m.Flat) != len(wantFlat) {
		t.Fatalf("flat length = %d, want %d", len(m.Flat), len(wantFlat))
	}
	for i, want := range wantFlat {
		if m.Flat[i].Value != want {
			t.Errorf("flat[%d] = %q, want %q", i, m.Flat[i].Value, want)
		}
		if m.Flat[i].Index != i {
			t.Errorf("flat[%d].Index = %d, want %d", i, m.Flat[i].Index, i)
		}
	}

	// Rows: 6 options + 1 group header.
	if len(m.Rows) != 7 {
		t.Fatalf("rows length = %d, want 7", len(m.Rows))
	}
	if !m.Rows[3].Header || m.Rows[3].Label != "G" {
		t.Errorf("rows[3] should be the G header, got %+v", m.Rows[3])
	}

	if len(m.Groups) != 1 || len(m.Groups[0].Options) != 2 {
		t.Fatalf("groups = %+v, want one group of two", m.Groups)
	}
	if m.Groups[0].Options[0].Group != m.Groups[0] {
		t.Error("grouped option should reference its group")
	}
	if m.Flat[1].Group != nil {
		t.Error("top-level option should have nil group")
	}
}

func TestBuildModelEmpty(t *testing.T) {
	m := BuildModel(NewSelect())

	if m.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", m.Len())
	}
	if m.First() != nil || m.Last() != nil {
		t.Error("First/Last on empty model should be nil")
	}
	if m.Next(nil) != nil || m.Prev(nil) != nil {
		t.Error("Next/Prev on empty model should be nil")
	}
}

func TestNavigationCrossesGroupBoundaries(t *testing.T) {
	m := BuildModel(specimenSelect())

	// "4" is the last top-level option before the group; its successor is
	// the group's first option.
	four, _ := m.Find("4")
	if got := m.Next(four); got.Value != "5" {
		t.Errorf("Next(4) = %q, want 5", got.Value)
	}

	// "6" is the last grouped option; its successor is the trailing
	// top-level option.
	six, _ := m.Find("6")
	if got := m.Next(six); got.Value != "2" {
		t.Errorf("Next(6) = %q, want 2", got.Value)
	}
	if got := m.Prev(m.Flat[3]); got.Value != "4" {
		t.Errorf("Prev(5) = %q, want 4", got.Value)
	}
}

func TestNavigationClampsAtEnds(t *testing.T) {
	m := BuildModel(specimenSelect())

	last := m.Last()
	if got := m.Next(last); got != last {
		t.Errorf("Next at end = %q, want stay", got.Value)
	}
	first := m.First()
	if got := m.Prev(first); got != first {
		t.Errorf("Prev at start = %q, want stay", got.Value)
	}
}

func TestFindDuplicateKeepsFirst(t *testing.T) {
	m := BuildModel(NewSelect(
		Opt("x", "first"),
		Opt("x", "second"),
	))
	o, ok := m.Find("x")
	if !ok || o.DisplayText != "first" {
		t.Fatalf("Find(x) = %+v, want first occurrence", o)
	}
}

func TestNewSelectInitialValue(t *testing.T) {
	if v := specimenSelect().Value(); v != "" {
		t.Errorf("initial value = %q, want empty placeholder", v)
	}
	grouped := NewSelect(GroupOf("G", Opt("a", "A")))
	if v := grouped.Value(); v != "a" {
		t.Errorf("initial value with leading group = %q, want a", v)
	}
}
