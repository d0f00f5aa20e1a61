package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List a user's recommended courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			return fmt.Errorf("--email is required")
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		user, err := a.Store.Users().GetOrCreate(ctx, email)
		if err != nil {
			return fmt.Errorf("look up user: %w", err)
		}

		courses, err := a.Store.Courses().ByUser(ctx, user.ID)
		if err != nil {
			return err
		}
		if len(courses) == 0 {
			fmt.Println("No courses yet. Run `skillpath path` first.")
			return nil
		}

		printCourses(courses)
		return nil
	},
}

func init() {
	coursesCmd.Flags().String("email", "", "Account email (required)")
}
