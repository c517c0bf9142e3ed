// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package deck

// Suit groups cards into the four families of the deck.
type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitSpades   Suit = "spades"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
)

// Suits lists all suits in display order.
func Suits() []Suit {
	return []Suit{SuitHearts, SuitSpades, SuitDiamonds, SuitClubs}
}

// Card is a catalog entry the user can reveal. Catalog data is immutable at
// runtime; everything user-specific lives in ProgressState.
type Card struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Suit           Suit     `json:"suit" yaml:"suit"`
	Rank           string   `json:"rank" yaml:"rank"`
	Punchline      string   `json:"punchline" yaml:"punchline"`
	MirrorQuestion string   `json:"mirror_question" yaml:"mirror_question"`
	Keywords       []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// JournalEntry is a reflection captured from a card. The card name and
// question are denormalized copies so the entry stays meaningful if the
// catalog changes later. Entries are never mutated after creation.
type JournalEntry struct {
	ID        string `json:"id"`
	CardID    string `json:"cardId"`
	CardName  string `json:"cardName"`
	Question  string `json:"question"`
	Timestamp int64  `json:"timestamp"` // epoch millis
}

// ProgressState is the persisted shape of a user's progress: which cards
// have been revealed (a grow-only set, serialized in reveal order) and the
// journal in insertion order.
type ProgressState struct {
	RevealedIDs    []string       `json:"revealedIds"`
	JournalEntries []JournalEntry `json:"journalEntries"`
}

// ProgressStats summarizes progress against a catalog.
type ProgressStats struct {
	Revealed       int     `json:"revealed"`
	Total          int     `json:"total"`
	Percentage     float64 `json:"percentage"`
	NextMilestone  int     `json:"next_milestone,omitempty"`
	JournalEntries int     `json:"journal_entries"`
}

// QuizOption is one answer to a quiz question, tagged with the archetype it
// contributes toward.
type QuizOption struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Archetype string `json:"archetype" yaml:"archetype"`
}

// QuizQuestion is a single-choice question in the archetype quiz.
type QuizQuestion struct {
	ID      string       `json:"id" yaml:"id"`
	Prompt  string       `json:"prompt" yaml:"prompt"`
	Options []QuizOption `json:"options" yaml:"options"`
}

// Archetype is a quiz outcome.
type Archetype struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Portrait    string `json:"portrait" yaml:"portrait"`
	Description string `json:"description" yaml:"description"`
}
