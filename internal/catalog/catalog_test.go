package catalog_test

import (
	"testing"

	"reelsort/internal/catalog"
)

func TestCatalogMembership(t *testing.T) {
	cat := catalog.New([]string{"Horror", "Drama", "Sci-Fi"})
	if !cat.Contains("Horror") {
		t.Fatal("expected Horror to be a member")
	}
	if cat.Contains("horror") {
		t.Fatal("membership should be case sensitive")
	}
	if cat.Contains("Western") {
		t.Fatal("unexpected member Western")
	}
}

func TestCatalogDropsBlankAndDuplicateLabels(t *testing.T) {
	cat := catalog.New([]string{"Drama", "", "Drama", "Comedy"})
	if got := cat.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	labels := cat.Labels()
	if labels[0] != "Drama" || labels[1] != "Comedy" {
		t.Fatalf("unexpected label order: %v", labels)
	}
}

func TestCatalogLabelsReturnsCopy(t *testing.T) {
	cat := catalog.New([]string{"Drama", "Comedy"})
	labels := cat.Labels()
	labels[0] = "Mutated"
	if !cat.Contains("Drama") || cat.Labels()[0] != "Drama" {
		t.Fatal("mutating the returned slice must not change the catalog")
	}
}

func TestDefaultCatalogIncludesCombinedGenres(t *testing.T) {
	cat := catalog.Default()
	for _, label := range []string{"Horror", "Sci-Fi-Thriller", "Film-Noir", "Zombie"} {
		if !cat.Contains(label) {
			t.Fatalf("default catalog missing %q", label)
		}
	}
}
