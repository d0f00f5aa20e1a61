package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillpath/internal/store"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll <course-id>",
	Short: "Enroll in a course",
	Args:  cobra.ExactArgs(1),
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

		e, err := a.Enroll.Enroll(ctx, user.ID, args[0])
		if errors.Is(err, store.ErrAlreadyExists) {
			fmt.Println("Already enrolled in this course.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Enrolled. Enrollment id: %s\n", e.ID)
		return nil
	},
}

var enrollListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your enrollments",
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

		enrollments, err := a.Enroll.List(ctx, user.ID)
		if err != nil {
			return err
		}
		if len(enrollments) == 0 {
			fmt.Println("No enrollments yet.")
			return nil
		}

		for _, e := range enrollments {
			course, err := a.Store.Courses().ByID(ctx, e.CourseID)
			title := e.CourseID
			if err == nil {
				title = course.Title
			}
			fmt.Printf("  %s: %d%% (%s)\n", title, e.Progress, e.Status)
			fmt.Printf("    enrollment id: %s\n", e.ID)
		}
		return nil
	},
}

var enrollProgressCmd = &cobra.Command{
	Use:   "progress <enrollment-id> <percent>",
	Short: "Record progress for an enrollment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		progress, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid percent %q: %w", args[1], err)
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Enroll.RecordProgress(cmd.Context(), args[0], progress); err != nil {
			return err
		}
		fmt.Println("Progress recorded.")
		return nil
	},
}

func init() {
	enrollCmd.Flags().String("email", "", "Account email (required)")
	enrollListCmd.Flags().String("email", "", "Account email (required)")

	enrollCmd.AddCommand(enrollListCmd)
	enrollCmd.AddCommand(enrollProgressCmd)
}
