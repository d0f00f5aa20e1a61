package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillpath/internal/store"
)

var contentCmd = &cobra.Command{
	Use:   "content <course-id>",
	Short: "Generate (or show) a course's curriculum",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		course, err := a.Store.Courses().ByID(ctx, args[0])
		if err != nil {
			return fmt.Errorf("look up course: %w", err)
		}

		profile, err := a.Store.Profiles().ByUser(ctx, course.UserID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("load profile: %w", err)
		}

		modules, err := a.Content.GenerateCourseContent(ctx, course, profile)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%d modules):\n\n", course.Title, len(modules))
		for _, m := range modules {
			fmt.Printf("  %d. %s [%s, %s]\n", m.Order+1, m.Title, m.Type, m.Duration)
			fmt.Printf("     %s\n", m.Description)
			if m.Type == store.ModuleVideo {
				fmt.Printf("     %s\n", m.Content)
			}
			fmt.Printf("     id: %s\n\n", m.ID)
		}
		return nil
	},
}
