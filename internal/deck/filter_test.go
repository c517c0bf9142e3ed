package deck

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testCatalogCards() []Card {
	return []Card{
		{ID: "hearts-queen", Name: "Queen of Hearts", Suit: SuitHearts, Punchline: "Love that forgets itself", Keywords: []string{"love", "boundaries"}},
		{ID: "spades-queen", Name: "Queen of Spades", Suit: SuitSpades, Punchline: "Truth cuts cleanest", Keywords: []string{"truth", "clarity"}},
		{ID: "diamonds-king", Name: "King of Diamonds", Suit: SuitDiamonds, Punchline: "Generosity that keeps score", Keywords: []string{"generosity"}},
		{ID: "clubs-ace", Name: "Ace of Clubs", Suit: SuitClubs, Punchline: "The first spark", Keywords: []string{"beginnings", "energy"}},
	}
}

func TestFilterEmptyCriteriaIsIdentity(t *testing.T) {
	cards := testCatalogCards()
	got := Filter(cards, Criteria{})
	if diff := cmp.Diff(cards, got); diff != "" {
		t.Fatalf("empty criteria should return the full catalog (-want +got):\n%s", diff)
	}
}

func TestFilterIsOrderedSubset(t *testing.T) {
	cards := testCatalogCards()
	got := Filter(cards, Criteria{Search: "queen"})

	if len(got) != 2 {
		t.Fatalf("got %d cards, want 2", len(got))
	}
	// Relative catalog order is preserved, never re-sorted.
	if got[0].ID != "hearts-queen" || got[1].ID != "spades-queen" {
		t.Fatalf("order not preserved: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFilterSearchFields(t *testing.T) {
	cards := testCatalogCards()

	// Case-insensitive, matches punchline.
	got := Filter(cards, Criteria{Search: "TRUTH CUTS"})
	if len(got) != 1 || got[0].ID != "spades-queen" {
		t.Fatalf("punchline search: got %v", ids(got))
	}

	// Matches a keyword.
	got = Filter(cards, Criteria{Search: "energy"})
	if len(got) != 1 || got[0].ID != "clubs-ace" {
		t.Fatalf("keyword search: got %v", ids(got))
	}

	// No match.
	got = Filter(cards, Criteria{Search: "zzz"})
	if len(got) != 0 {
		t.Fatalf("no-match search: got %v", ids(got))
	}
}

func TestFilterSuitFacet(t *testing.T) {
	cards := testCatalogCards()
	got := Filter(cards, Criteria{Suits: []Suit{SuitHearts, SuitClubs}})
	want := []string{"hearts-queen", "clubs-ace"}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Fatalf("suit facet (-want +got):\n%s", diff)
	}
}

func TestFilterKeywordFacetOrWithin(t *testing.T) {
	cards := testCatalogCards()
	// OR within the keyword facet: either keyword qualifies a card.
	got := Filter(cards, Criteria{Keywords: []string{"love", "generosity"}})
	want := []string{"hearts-queen", "diamonds-king"}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Fatalf("keyword facet (-want +got):\n%s", diff)
	}
}

func TestFilterFacetsCombineWithAnd(t *testing.T) {
	cards := testCatalogCards()
	// "queen" matches two cards; the suit facet narrows to one.
	got := Filter(cards, Criteria{Search: "queen", Suits: []Suit{SuitSpades}})
	if len(got) != 1 || got[0].ID != "spades-queen" {
		t.Fatalf("AND across facets: got %v", ids(got))
	}
}

func TestKeywords(t *testing.T) {
	got := Keywords(testCatalogCards())
	want := []string{"beginnings", "boundaries", "clarity", "energy", "generosity", "love", "truth"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Keywords (-want +got):\n%s", diff)
	}
}

func ids(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}
