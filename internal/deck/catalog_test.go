package deck

import (
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog embedded deck: %v", err)
	}
	if len(cat.Cards) == 0 {
		t.Fatal("embedded deck has no cards")
	}
	if len(cat.Questions) != 8 {
		t.Fatalf("embedded deck has %d questions, want 8", len(cat.Questions))
	}

	card, ok := cat.Card("hearts-queen")
	if !ok {
		t.Fatal("hearts-queen missing from embedded deck")
	}
	if card.MirrorQuestion == "" {
		t.Fatal("hearts-queen has no mirror question")
	}

	if _, ok := cat.Archetype("tender"); !ok {
		t.Fatal("tender archetype missing from embedded deck")
	}
	if _, ok := cat.Archetype("nope"); ok {
		t.Fatal("unknown archetype lookup should fail")
	}
}

func TestParseCatalogDuplicateCardID(t *testing.T) {
	deck := `
cards:
  - {id: c1, name: One, suit: hearts}
  - {id: c1, name: Two, suit: spades}
`
	if _, err := ParseCatalog([]byte(deck)); err == nil || !strings.Contains(err.Error(), "duplicate card id") {
		t.Fatalf("got %v, want duplicate card id error", err)
	}
}

func TestParseCatalogUnknownSuit(t *testing.T) {
	deck := `
cards:
  - {id: c1, name: One, suit: cups}
`
	if _, err := ParseCatalog([]byte(deck)); err == nil || !strings.Contains(err.Error(), "unknown suit") {
		t.Fatalf("got %v, want unknown suit error", err)
	}
}

func TestParseCatalogUnknownArchetype(t *testing.T) {
	deck := `
cards:
  - {id: c1, name: One, suit: hearts}
archetypes:
  - {id: tender, name: Tender}
questions:
  - id: q1
    prompt: "?"
    options:
      - {id: a, text: A, archetype: tender}
      - {id: b, text: B, archetype: ghost}
`
	if _, err := ParseCatalog([]byte(deck)); err == nil || !strings.Contains(err.Error(), "unknown archetype") {
		t.Fatalf("got %v, want unknown archetype error", err)
	}
}

func TestParseCatalogNotYAML(t *testing.T) {
	if _, err := ParseCatalog([]byte("{{nope")); err == nil {
		t.Fatal("invalid YAML should fail to parse")
	}
}
