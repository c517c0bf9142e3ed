// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package deck

import (
	"sort"
	"strings"
)

// Criteria is a transient query over the catalog. An empty field applies no
// constraint; facets combine with AND, keywords match with OR within the
// facet.
type Criteria struct {
	Search   string
	Suits    []Suit
	Keywords []string
}

// Empty reports whether the criteria constrain nothing.
func (c Criteria) Empty() bool {
	return c.Search == "" && len(c.Suits) == 0 && len(c.Keywords) == 0
}

// Filter returns the cards matching the criteria, preserving catalog order.
// The scan is linear: catalogs are tens of cards, an index would be noise.
func Filter(cards []Card, c Criteria) []Card {
	if c.Empty() {
		out := make([]Card, len(cards))
		copy(out, cards)
		return out
	}

	out := make([]Card, 0, len(cards))
	for _, card := range cards {
		if c.Search != "" && !matchesSearch(card, c.Search) {
			continue
		}
		if len(c.Suits) > 0 && !containsSuit(c.Suits, card.Suit) {
			continue
		}
		if len(c.Keywords) > 0 && !matchesAnyKeyword(card.Keywords, c.Keywords) {
			continue
		}
		out = append(out, card)
	}
	return out
}

// matchesSearch does a case-insensitive substring match against the card
// name, punchline, or any keyword.
func matchesSearch(card Card, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(card.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(card.Punchline), q) {
		return true
	}
	for _, k := range card.Keywords {
		if strings.Contains(strings.ToLower(k), q) {
			return true
		}
	}
	return false
}

func containsSuit(suits []Suit, s Suit) bool {
	for _, suit := range suits {
		if suit == s {
			return true
		}
	}
	return false
}

func matchesAnyKeyword(cardKeywords, selected []string) bool {
	for _, k := range cardKeywords {
		for _, sel := range selected {
			if strings.EqualFold(k, sel) {
				return true
			}
		}
	}
	return false
}

// Keywords returns the sorted distinct keywords across the catalog, the
// vocabulary offered to the keyword facet.
func Keywords(cards []Card) []string {
	seen := make(map[string]bool)
	var out []string
	for _, card := range cards {
		for _, k := range card.Keywords {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	sort.Strings(out)
	return out
}
