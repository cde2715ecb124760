// ABOUTME: Tests for autocomplete ranking
// ABOUTME: Validates tiered scoring, tie-breaks, exact re-surfacing, truncation
package match

import (
	"reflect"
	"testing"
)

func TestRankSubstringBeatsUnrelated(t *testing.T) {
	got := Rank("garcia", []string{"María García", "Juan Pérez"}, 10)
	if got[0] != "María García" {
		t.Errorf("expected María García first, got %v", got)
	}
}

func TestRankEmptyQueryIsNoFilter(t *testing.T) {
	names := []string{"B", "A", "C"}
	got := Rank("", names, 2)
	if !reflect.DeepEqual(got, names) {
		t.Errorf("empty query should return input unchanged, got %v", got)
	}
}

func TestRankPrefixBeatsContains(t *testing.T) {
	got := Rank("gar", []string{"Edgar Sosa", "García Hnos"}, 10)
	if got[0] != "García Hnos" {
		t.Errorf("expected prefix match first, got %v", got)
	}
}

func TestRankExactSurfacesFirst(t *testing.T) {
	got := Rank("juan perez", []string{"Juan Pérez López", "Juan Pérez"}, 10)
	if got[0] != "Juan Pérez" {
		t.Errorf("expected exact match re-surfaced first, got %v", got)
	}
}

func TestRankShorterNameWinsTies(t *testing.T) {
	// Both contain the query; equal 0.90 scores break by length.
	got := Rank("lopez", []string{"Ana López Martínez", "Ana López"}, 10)
	if got[0] != "Ana López" {
		t.Errorf("expected shorter candidate first, got %v", got)
	}
}

func TestRankTruncatesToTopN(t *testing.T) {
	names := []string{"García Uno", "García Dos", "García Tres", "García Cuatro"}
	got := Rank("garcia", names, 2)
	if len(got) != 2 {
		t.Errorf("expected 2 results, got %d", len(got))
	}
}
