// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvictoire/couronne/internal/deck"
	"github.com/mvictoire/couronne/internal/output"
)

func newQuizCmd(cat *deck.Catalog) *cobra.Command {
	var (
		answers string
		out     output.Options
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take the archetype quiz",
		Long: `Answer the quiz one question at a time and discover your archetype.

Type an option letter to answer, "b" to go back a question, or "q" to quit.
Quiz progress lives only for the run; there is nothing to resume.

For scripting, pass all answers up front:
  couronne quiz --answers a,c,a,d,a,b,c,a`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.Resolve(); err != nil {
				return err
			}

			if len(cat.Questions) == 0 {
				return fmt.Errorf("this deck has no quiz questions")
			}

			quiz := deck.NewQuiz(cat.Questions)

			if answers != "" {
				if err := answerAll(quiz, cat.Questions, answers); err != nil {
					return err
				}
			} else if err := runQuizLoop(cmd, quiz); err != nil {
				return err
			}

			if !quiz.Complete() {
				fmt.Println(output.Muted.Render("Quiz abandoned."))
				return nil
			}

			winner, err := quiz.Resolve()
			if err != nil {
				return err
			}
			archetype, ok := cat.Archetype(winner)
			if !ok {
				return fmt.Errorf("deck has no archetype %q", winner)
			}

			if out.Is(output.FormatJSON) {
				return output.JSON(archetype)
			}

			fmt.Println()
			fmt.Println(output.Gold.Render(archetype.Portrait + "  " + archetype.Name))
			fmt.Println(archetype.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&answers, "answers", "", "Comma-separated option ids, one per question")
	out.AddFlags(cmd, output.FormatTable)
	return cmd
}

// runQuizLoop prompts on stdin until the quiz completes or the user quits.
func runQuizLoop(cmd *cobra.Command, quiz *deck.Quiz) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	highlighted := ""

	for {
		question, ok := quiz.Question()
		if !ok {
			return nil
		}

		fmt.Printf("\n%s %s\n", output.Header.Render(fmt.Sprintf("[%d/%d]", quiz.Index()+1, quiz.Len())), question.Prompt)
		for _, opt := range question.Options {
			marker := "  "
			if highlighted != "" && opt.Archetype == highlighted {
				marker = output.Good.Render("> ")
			}
			fmt.Printf("%s%s) %s\n", marker, opt.ID, opt.Text)
		}
		fmt.Print(output.Muted.Render("answer (b=back, q=quit): "))

		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		highlighted = ""

		switch input {
		case "q":
			return nil
		case "b":
			prev, _ := quiz.Back()
			highlighted = prev
		default:
			opt, ok := findOption(question, input)
			if !ok {
				fmt.Println(output.Warn.Render("Pick one of the listed options."))
				continue
			}
			quiz.SelectAndAdvance(opt.Archetype)
			if quiz.Complete() {
				return nil
			}
		}
	}
}

// answerAll replays a comma-separated answer list through the state machine.
func answerAll(quiz *deck.Quiz, questions []deck.QuizQuestion, answers string) error {
	parts := strings.Split(answers, ",")
	if len(parts) != len(questions) {
		return fmt.Errorf("got %d answers, quiz has %d questions", len(parts), len(questions))
	}
	for i, p := range parts {
		opt, ok := findOption(questions[i], strings.ToLower(strings.TrimSpace(p)))
		if !ok {
			return fmt.Errorf("question %d has no option %q", i+1, strings.TrimSpace(p))
		}
		quiz.SelectAndAdvance(opt.Archetype)
	}
	return nil
}

func findOption(q deck.QuizQuestion, id string) (deck.QuizOption, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return deck.QuizOption{}, false
}
