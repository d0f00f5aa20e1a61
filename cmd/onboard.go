package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/datatypes"

	"github.com/abhisek/skillpath/internal/store"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Create a user account and onboarding profile",
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
			return fmt.Errorf("create user: %w", err)
		}

		name, _ := cmd.Flags().GetString("name")
		education, _ := cmd.Flags().GetString("education")
		major, _ := cmd.Flags().GetString("major")
		goal, _ := cmd.Flags().GetString("goal")
		state, _ := cmd.Flags().GetString("state")
		district, _ := cmd.Flags().GetString("district")
		skills, _ := cmd.Flags().GetStringSlice("skills")
		roles, _ := cmd.Flags().GetStringSlice("roles")

		profile := &store.Profile{
			ID:                uuid.NewString(),
			UserID:            user.ID,
			FullName:          name,
			EducationLevel:    education,
			Major:             major,
			CareerGoal:        goal,
			State:             state,
			District:          district,
			Skills:            datatypes.NewJSONSlice(skills),
			PreferredJobRoles: datatypes.NewJSONSlice(roles),
		}
		if err := a.Store.Profiles().Create(ctx, profile); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				fmt.Printf("User %s is already onboarded.\n", email)
				return nil
			}
			return fmt.Errorf("create profile: %w", err)
		}

		fmt.Printf("Onboarded %s (user %s).\n", email, user.ID)
		return nil
	},
}

func init() {
	onboardCmd.Flags().String("email", "", "Account email (required)")
	onboardCmd.Flags().String("name", "", "Full name")
	onboardCmd.Flags().String("education", "", "Education level, e.g. 'B.Tech', '12th Pass'")
	onboardCmd.Flags().String("major", "", "Field of study")
	onboardCmd.Flags().String("goal", "", "Career goal, e.g. 'Software Engineer'")
	onboardCmd.Flags().String("state", "", "State of residence")
	onboardCmd.Flags().String("district", "", "District of residence")
	onboardCmd.Flags().StringSlice("skills", nil, "Comma-separated skills")
	onboardCmd.Flags().StringSlice("roles", nil, "Comma-separated preferred job roles")
}
