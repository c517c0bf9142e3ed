// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package deck

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed deck.yaml
var defaultDeck []byte

// Catalog holds the read-only deck data: cards, quiz questions, and the
// archetypes the quiz resolves to. Loaded once, never mutated at runtime.
type Catalog struct {
	Cards      []Card         `yaml:"cards"`
	Questions  []QuizQuestion `yaml:"questions"`
	Archetypes []Archetype    `yaml:"archetypes"`
}

// LoadCatalog reads a deck file at path, or the embedded default deck when
// path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog(defaultDeck)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("deck file %s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalog decodes and validates a YAML deck.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks referential integrity of the deck.
func (c *Catalog) Validate() error {
	if len(c.Cards) == 0 {
		return fmt.Errorf("deck has no cards")
	}

	cardIDs := make(map[string]bool, len(c.Cards))
	for _, card := range c.Cards {
		if card.ID == "" {
			return fmt.Errorf("card %q has no id", card.Name)
		}
		if cardIDs[card.ID] {
			return fmt.Errorf("duplicate card id %q", card.ID)
		}
		cardIDs[card.ID] = true
		switch card.Suit {
		case SuitHearts, SuitSpades, SuitDiamonds, SuitClubs:
		default:
			return fmt.Errorf("card %q: unknown suit %q", card.ID, card.Suit)
		}
	}

	archetypes := make(map[string]bool, len(c.Archetypes))
	for _, a := range c.Archetypes {
		if a.ID == "" {
			return fmt.Errorf("archetype %q has no id", a.Name)
		}
		if archetypes[a.ID] {
			return fmt.Errorf("duplicate archetype id %q", a.ID)
		}
		archetypes[a.ID] = true
	}

	questionIDs := make(map[string]bool, len(c.Questions))
	for _, q := range c.Questions {
		if questionIDs[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		questionIDs[q.ID] = true
		if len(q.Options) == 0 {
			return fmt.Errorf("question %q has no options", q.ID)
		}
		for _, opt := range q.Options {
			if !archetypes[opt.Archetype] {
				return fmt.Errorf("question %q option %q references unknown archetype %q", q.ID, opt.ID, opt.Archetype)
			}
		}
	}

	return nil
}

// Card looks up a card by id.
func (c *Catalog) Card(id string) (Card, bool) {
	for _, card := range c.Cards {
		if card.ID == id {
			return card, true
		}
	}
	return Card{}, false
}

// Archetype looks up an archetype by id.
func (c *Catalog) Archetype(id string) (Archetype, bool) {
	for _, a := range c.Archetypes {
		if a.ID == id {
			return a, true
		}
	}
	return Archetype{}, false
}
