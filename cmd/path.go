package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillpath/internal/store"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Generate a personalized learning path",
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

		profile, err := a.Store.Profiles().ByUser(ctx, user.ID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("load profile: %w", err)
		}

		res, err := a.Paths.GenerateLearningPath(ctx, user.ID, profile)
		if err != nil {
			return err
		}

		if res.Origin == store.OriginFallback {
			fmt.Println("Generation unavailable; showing the curated path.")
		}
		fmt.Printf("Learning path for %s (%d courses):\n\n", email, len(res.Courses))
		printCourses(res.Courses)
		return nil
	},
}

func printCourses(courses []*store.Course) {
	for _, c := range courses {
		fmt.Printf("  %s\n", c.Title)
		fmt.Printf("    %s\n", c.Description)
		fmt.Printf("    %s · %s · %s · %.1f★ · %d enrolled\n",
			c.Category, c.Level, c.Duration, c.Rating, c.EnrolledCount)
		fmt.Printf("    id: %s\n\n", c.ID)
	}
}

func init() {
	pathCmd.Flags().String("email", "", "Account email (required)")
}
