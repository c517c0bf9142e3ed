// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package deck

import "errors"

// ErrQuizIncomplete is returned by Resolve before every question is answered.
var ErrQuizIncomplete = errors.New("quiz is not complete")

// Quiz drives a fixed sequence of single-choice questions to one resolved
// archetype. State lives in memory only; the quiz is not persisted across
// sessions.
type Quiz struct {
	questions []QuizQuestion
	index     int
	answers   map[int]string // question index -> archetype id
	complete  bool
}

// NewQuiz starts a quiz at the first question with no answers recorded.
func NewQuiz(questions []QuizQuestion) *Quiz {
	return &Quiz{
		questions: questions,
		answers:   make(map[int]string),
	}
}

// Question returns the current question, or false once the quiz is complete.
func (q *Quiz) Question() (QuizQuestion, bool) {
	if q.complete || q.index >= len(q.questions) {
		return QuizQuestion{}, false
	}
	return q.questions[q.index], true
}

// Index returns the current question index.
func (q *Quiz) Index() int { return q.index }

// Len returns the number of questions.
func (q *Quiz) Len() int { return len(q.questions) }

// Complete reports whether the last question has been answered.
func (q *Quiz) Complete() bool { return q.complete }

// Answer returns the archetype recorded for a question index, if any.
func (q *Quiz) Answer(index int) (string, bool) {
	a, ok := q.answers[index]
	return a, ok
}

// SelectAndAdvance records the chosen archetype for the current question and
// moves on. Answering the same question again before advancing overwrites
// only that question's choice; a call on a complete quiz is a no-op.
func (q *Quiz) SelectAndAdvance(archetype string) {
	if q.complete {
		return
	}
	q.answers[q.index] = archetype
	if q.index+1 < len(q.questions) {
		q.index++
	} else {
		q.complete = true
	}
}

// Back moves to the previous question and returns the choice recorded there,
// so callers can restore the highlighted option. The answer of the question
// being left stays recorded. At the first question, or once the quiz is
// complete, Back is a no-op.
func (q *Quiz) Back() (string, bool) {
	if q.complete || q.index == 0 {
		return "", false
	}
	q.index--
	a, ok := q.answers[q.index]
	return a, ok
}

// Restart discards all recorded choices and returns to the first question.
func (q *Quiz) Restart() {
	q.index = 0
	q.answers = make(map[int]string)
	q.complete = false
}

// Resolve tallies archetypes across the answers and returns the one with the
// strictly highest count. Ties break deterministically: scanning answers in
// question order, the first archetype to reach the maximum count wins.
func (q *Quiz) Resolve() (string, error) {
	if !q.complete {
		return "", ErrQuizIncomplete
	}
	return resolveAnswers(q.answers, len(q.questions)), nil
}

func resolveAnswers(answers map[int]string, n int) string {
	counts := make(map[string]int, n)
	winner := ""
	best := 0
	for i := 0; i < n; i++ {
		a, ok := answers[i]
		if !ok {
			continue
		}
		counts[a]++
		if counts[a] > best {
			best = counts[a]
			winner = a
		}
	}
	return winner
}
