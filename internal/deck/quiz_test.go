package deck

import (
	"errors"
	"testing"
)

func testQuestions(n int) []QuizQuestion {
	qs := make([]QuizQuestion, n)
	for i := range qs {
		qs[i] = QuizQuestion{
			ID:     string(rune('a' + i)),
			Prompt: "?",
			Options: []QuizOption{
				{ID: "a", Archetype: "tender"},
				{ID: "b", Archetype: "sage"},
			},
		}
	}
	return qs
}

func TestQuizAdvanceAndComplete(t *testing.T) {
	q := NewQuiz(testQuestions(3))
	if q.Complete() {
		t.Fatal("new quiz should not be complete")
	}

	q.SelectAndAdvance("tender")
	if q.Index() != 1 {
		t.Fatalf("index = %d, want 1", q.Index())
	}
	q.SelectAndAdvance("sage")
	q.SelectAndAdvance("tender")

	if !q.Complete() {
		t.Fatal("quiz should be complete after the last answer")
	}
	// Selecting on a complete quiz is a no-op.
	q.SelectAndAdvance("sage")
	got, err := q.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "tender" {
		t.Fatalf("Resolve = %q, want %q", got, "tender")
	}
}

func TestQuizResolveMajority(t *testing.T) {
	// Spec example: answers [A, B, A, A] resolve to A.
	q := NewQuiz(testQuestions(4))
	q.SelectAndAdvance("A")
	q.SelectAndAdvance("B")
	q.SelectAndAdvance("A")
	q.SelectAndAdvance("A")

	got, err := q.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "A" {
		t.Fatalf("Resolve = %q, want A (3 vs 1)", got)
	}
}

func TestQuizTieBreakFirstToMaximum(t *testing.T) {
	// Documented rule: scanning answers in question order, the first
	// archetype to reach the maximum count wins a tie.
	q := NewQuiz(testQuestions(2))
	q.SelectAndAdvance("B")
	q.SelectAndAdvance("A")

	got, err := q.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "B" {
		t.Fatalf("tie resolved to %q, want B (answered first)", got)
	}

	// Four-way variant: [A, B, B, A] ties 2-2; B reaches 2 first (index 2).
	q = NewQuiz(testQuestions(4))
	for _, a := range []string{"A", "B", "B", "A"} {
		q.SelectAndAdvance(a)
	}
	got, _ = q.Resolve()
	if got != "B" {
		t.Fatalf("tie resolved to %q, want B (first to reach max)", got)
	}
}

func TestQuizResolveIncomplete(t *testing.T) {
	q := NewQuiz(testQuestions(2))
	q.SelectAndAdvance("A")
	if _, err := q.Resolve(); !errors.Is(err, ErrQuizIncomplete) {
		t.Fatalf("Resolve on incomplete quiz: got %v, want ErrQuizIncomplete", err)
	}
}

func TestQuizBack(t *testing.T) {
	q := NewQuiz(testQuestions(3))

	// Back at the first question is a no-op.
	if _, ok := q.Back(); ok {
		t.Fatal("Back at index 0 should report no recorded choice")
	}
	if q.Index() != 0 {
		t.Fatalf("index = %d, want 0", q.Index())
	}

	q.SelectAndAdvance("tender")
	q.SelectAndAdvance("sage")

	// Back restores the previous question's recorded choice and keeps the
	// answer of the question being left.
	prev, ok := q.Back()
	if !ok || prev != "sage" {
		t.Fatalf("Back = (%q, %v), want (sage, true)", prev, ok)
	}
	if q.Index() != 1 {
		t.Fatalf("index = %d, want 1", q.Index())
	}
	if _, ok := q.Answer(2); ok {
		t.Fatal("unanswered question gained an answer")
	}
	if a, _ := q.Answer(0); a != "tender" {
		t.Fatalf("earlier answer lost: %q", a)
	}

	// Re-answering overwrites only the current question.
	q.SelectAndAdvance("tender")
	if a, _ := q.Answer(1); a != "tender" {
		t.Fatalf("overwrite failed: answer(1) = %q", a)
	}
}

func TestQuizBackAfterCompleteIsNoop(t *testing.T) {
	q := NewQuiz(testQuestions(2))
	q.SelectAndAdvance("A")
	q.SelectAndAdvance("B")
	if !q.Complete() {
		t.Fatal("quiz should be complete")
	}
	if _, ok := q.Back(); ok {
		t.Fatal("Back on a complete quiz should be a no-op")
	}
	if !q.Complete() {
		t.Fatal("Back must not reopen a complete quiz")
	}
}

func TestQuizRestart(t *testing.T) {
	q := NewQuiz(testQuestions(2))
	q.SelectAndAdvance("A")
	q.SelectAndAdvance("B")
	q.Restart()

	if q.Index() != 0 || q.Complete() {
		t.Fatal("Restart should return to the initial state")
	}
	if _, ok := q.Answer(0); ok {
		t.Fatal("Restart should discard recorded answers")
	}
}
