package compare

import (
	"reflect"
	"testing"
)

func TestCompareBasic(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"b", "c", "d"}
	result := Compare(a, b, DefaultOptions())

	if !reflect.DeepEqual(result.OnlyA, []string{"a"}) {
		t.Errorf("Expected OnlyA [a], got %v", result.OnlyA)
	}
	if !reflect.DeepEqual(result.OnlyB, []string{"d"}) {
		t.Errorf("Expected OnlyB [d], got %v", result.OnlyB)
	}
	if !reflect.DeepEqual(result.Intersection, []string{"b", "c"}) {
		t.Errorf("Expected Intersection [b c], got %v", result.Intersection)
	}
	if !reflect.DeepEqual(result.Union, []string{"a", "b", "c", "d"}) {
		t.Errorf("Expected Union [a b c d], got %v", result.Union)
	}
}

func TestCompareCaseInsensitive(t *testing.T) {
	a := []string{"A", "b"}
	b := []string{"a", "B"}
	result := Compare(a, b, Options{CaseSensitive: false, Trim: false})

	if len(result.OnlyA) != 0 {
		t.Errorf("Expected no OnlyA items, got %v", result.OnlyA)
	}
	if len(result.OnlyB) != 0 {
		t.Errorf("Expected no OnlyB items, got %v", result.OnlyB)
	}
	// List 1's text is the representative for shared keys.
	if !reflect.DeepEqual(result.Intersection, []string{"A", "b"}) {
		t.Errorf("Expected Intersection [A b], got %v", result.Intersection)
	}
}

func TestCompareCaseSensitive(t *testing.T) {
	a := []string{"A", "b"}
	b := []string{"a", "B"}
	result := Compare(a, b, Options{CaseSensitive: true, Trim: false})

	if len(result.OnlyA) != 2 {
		t.Errorf("Expected 2 OnlyA items, got %v", result.OnlyA)
	}
	if len(result.OnlyB) != 2 {
		t.Errorf("Expected 2 OnlyB items, got %v", result.OnlyB)
	}
	if len(result.Intersection) != 0 {
		t.Errorf("Expected empty intersection, got %v", result.Intersection)
	}
}

func TestCompareTrim(t *testing.T) {
	a := []string{"  a  ", "b"}
	b := []string{"a", "  b  "}
	result := Compare(a, b, Options{CaseSensitive: false, Trim: true})

	if len(result.OnlyA) != 0 || len(result.OnlyB) != 0 {
		t.Errorf("Expected everything shared, got OnlyA %v OnlyB %v", result.OnlyA, result.OnlyB)
	}
	if len(result.Intersection) != 2 {
		t.Errorf("Expected 2 intersection items, got %v", result.Intersection)
	}
}

func TestCompareStoresOriginalText(t *testing.T) {
	a := []string{"  Apple  "}
	b := []string{"apple"}
	result := Compare(a, b, DefaultOptions())

	// The stored text is the untouched first occurrence, not the key.
	if !reflect.DeepEqual(result.Intersection, []string{"  Apple  "}) {
		t.Errorf("Expected original text preserved, got %v", result.Intersection)
	}
}

func TestCompareDeduplicatesByKey(t *testing.T) {
	a := []string{"x", "X", "x", "y"}
	b := []string{"y"}
	result := Compare(a, b, DefaultOptions())

	if !reflect.DeepEqual(result.OnlyA, []string{"x"}) {
		t.Errorf("Expected OnlyA [x], got %v", result.OnlyA)
	}
	if !reflect.DeepEqual(result.Union, []string{"x", "y"}) {
		t.Errorf("Expected Union [x y], got %v", result.Union)
	}
}

func TestComparePreservesSourceOrder(t *testing.T) {
	a := []string{"z", "m", "a"}
	b := []string{"q", "z", "b"}
	result := Compare(a, b, DefaultOptions())

	if !reflect.DeepEqual(result.OnlyA, []string{"m", "a"}) {
		t.Errorf("Expected OnlyA in source order [m a], got %v", result.OnlyA)
	}
	if !reflect.DeepEqual(result.OnlyB, []string{"q", "b"}) {
		t.Errorf("Expected OnlyB in source order [q b], got %v", result.OnlyB)
	}
	if !reflect.DeepEqual(result.Union, []string{"z", "m", "a", "q", "b"}) {
		t.Errorf("Expected union [z m a q b], got %v", result.Union)
	}
}

func TestCompareSetAlgebraInvariants(t *testing.T) {
	a := []string{"1", "2", "2", "3", "apple", "  apple "}
	b := []string{"3", "4", "APPLE", "4"}

	for _, opts := range []Options{
		{CaseSensitive: false, Trim: true},
		{CaseSensitive: true, Trim: false},
		{CaseSensitive: true, Trim: true},
		{CaseSensitive: false, Trim: false},
	} {
		result := Compare(a, b, opts)

		onlyA := make(map[string]bool)
		for _, item := range result.OnlyA {
			onlyA[opts.Key(item)] = true
		}
		for _, item := range result.OnlyB {
			if onlyA[opts.Key(item)] {
				t.Errorf("opts %+v: OnlyA and OnlyB share key %q", opts, opts.Key(item))
			}
		}

		union := make(map[string]bool)
		for _, item := range result.Union {
			union[opts.Key(item)] = true
		}
		for _, item := range result.Intersection {
			if !union[opts.Key(item)] {
				t.Errorf("opts %+v: intersection item %q missing from union", opts, item)
			}
		}

		want := len(result.OnlyA) + len(result.OnlyB) + len(result.Intersection)
		if len(result.Union) != want {
			t.Errorf("opts %+v: |union| = %d, want %d", opts, len(result.Union), want)
		}
	}
}

func TestCompareEmptyLists(t *testing.T) {
	result := Compare(nil, []string{"a"}, DefaultOptions())
	if !reflect.DeepEqual(result.OnlyB, []string{"a"}) {
		t.Errorf("Expected OnlyB [a], got %v", result.OnlyB)
	}
	if len(result.OnlyA) != 0 || len(result.Intersection) != 0 {
		t.Errorf("Expected empty OnlyA and Intersection")
	}

	result = Compare(nil, nil, DefaultOptions())
	if len(result.Union) != 0 {
		t.Errorf("Expected empty union for empty inputs, got %v", result.Union)
	}
}

func TestSummary(t *testing.T) {
	result := Compare([]string{"a", "b"}, []string{"b", "c"}, DefaultOptions())
	want := "Only L1: 1 | Only L2: 1 | Inter: 1 | Union: 3"
	if result.Summary() != want {
		t.Errorf("Expected %q, got %q", want, result.Summary())
	}
}
