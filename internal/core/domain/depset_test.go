package domain_test

import (
	"slices"
	"testing"

	"github.com/pavetool/pave/internal/core/domain"
)

func TestNormalize_FoldsAndDeduplicates(t *testing.T) {
	set := domain.Normalize([]string{"Flask", "requests", "flask", "Requests", "numpy"})

	want := domain.DependencySet{"flask", "requests", "numpy"}
	if !slices.Equal(set, want) {
		t.Errorf("expected %v, got %v", want, set)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := domain.Normalize([]string{"B", "a", "b", "C"})
	twice := domain.Normalize(once)

	if !slices.Equal(once, twice) {
		t.Errorf("normalize is not idempotent: %v != %v", once, twice)
	}
}

func TestNormalize_Empty(t *testing.T) {
	if set := domain.Normalize(nil); len(set) != 0 {
		t.Errorf("expected empty set, got %v", set)
	}
}

func TestDependencySet_Add(t *testing.T) {
	set := domain.Normalize([]string{"flask"})
	set = set.Add("Requests", "flask", "numpy")

	want := domain.DependencySet{"flask", "requests", "numpy"}
	if !slices.Equal(set, want) {
		t.Errorf("expected %v, got %v", want, set)
	}
}

func TestDependencySet_AddThenRemoveRestores(t *testing.T) {
	orig := domain.Normalize([]string{"flask", "numpy"})
	got := orig.Add("requests", "pandas").Remove("Requests", "PANDAS")

	if !slices.Equal(orig, got) {
		t.Errorf("add then remove did not restore the set: %v != %v", orig, got)
	}
}

func TestDependencySet_RemovePreservesSurvivorOrder(t *testing.T) {
	set := domain.Normalize([]string{"a", "b", "c", "d"})
	got := set.Remove("B", "d")

	want := domain.DependencySet{"a", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDependencySet_Missing(t *testing.T) {
	set := domain.Normalize([]string{"flask", "requests", "numpy"})

	missing := set.Missing([]string{"Requests", "pip"})
	want := []string{"flask", "numpy"}
	if !slices.Equal(missing, want) {
		t.Errorf("expected %v, got %v", want, missing)
	}

	if missing := set.Missing([]string{"flask", "requests", "numpy"}); missing != nil {
		t.Errorf("expected no missing packages, got %v", missing)
	}
}

func TestDependencySet_Extra(t *testing.T) {
	set := domain.Normalize([]string{"flask"})

	// Extra preserves the order the environment reported.
	extra := set.Extra([]string{"Werkzeug", "flask", "jinja2"})
	want := []string{"werkzeug", "jinja2"}
	if !slices.Equal(extra, want) {
		t.Errorf("expected %v, got %v", want, extra)
	}
}

func TestDependencySet_Contains(t *testing.T) {
	set := domain.Normalize([]string{"flask"})

	if !set.Contains("Flask") {
		t.Error("expected folded lookup to match")
	}
	if set.Contains("requests") {
		t.Error("did not expect undeclared package to match")
	}
}
