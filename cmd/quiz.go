package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <module-id>",
	Short: "Generate (or show) the quiz for a quiz module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		module, err := a.Store.Courses().ModuleByID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("look up module: %w", err)
		}
		course, err := a.Store.Courses().ByID(ctx, module.CourseID)
		if err != nil {
			return fmt.Errorf("look up course: %w", err)
		}

		quiz, err := a.Quizzes.GenerateQuiz(ctx, module, course)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n%s\n\n", quiz.Title, quiz.Description)
		for _, q := range quiz.Questions {
			fmt.Printf("  Q%d. %s\n", q.Order+1, q.Text)
			for i, o := range q.Options {
				marker := " "
				if o == q.CorrectAnswer {
					marker = "*"
				}
				fmt.Printf("    %s %c) %s\n", marker, 'a'+rune(i), o)
			}
			fmt.Printf("    %s\n\n", q.Explanation)
		}
		return nil
	},
}
