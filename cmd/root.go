package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/skillpath/internal/app"
	"github.com/abhisek/skillpath/internal/config"
	"github.com/abhisek/skillpath/internal/logger"
	"github.com/abhisek/skillpath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skillpath",
	Short: "AI-generated vocational learning paths",
	Long:  "SkillPath — generates personalized vocational learning paths, course curricula and quizzes, aligned to NSQF skill levels.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLPATH_DB env var)")
	rootCmd.PersistentFlags().String("config", ".", "Directory containing config.yaml")

	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(enrollCmd)
	rootCmd.AddCommand(llmCmd)
}

// newApp assembles the application for a command invocation.
// Callers must Close the returned app.
func newApp(cmd *cobra.Command) (*app.App, error) {
	configDir, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Log.Mode, cfg.Log.File)

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, err
	}

	return app.New(cmd.Context(), cfg, log, dbPath)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config/env value, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return cfg.DBPath()
}
