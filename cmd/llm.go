package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillpath/internal/config"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect generation provider configuration",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active provider and credential state",
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configDir)
		if err != nil {
			return err
		}

		lc := cfg.LLMConfig()

		fmt.Printf("Provider:  %s\n", lc.Provider)
		switch lc.Provider {
		case "gemini":
			fmt.Printf("Model:     %s\n", lc.Gemini.Model)
			fmt.Printf("API key:   %s\n", keyState(lc.Gemini.APIKey))
		case "openai":
			fmt.Printf("Model:     %s\n", lc.OpenAI.Model)
			fmt.Printf("API key:   %s\n", keyState(lc.OpenAI.APIKey))
			if lc.OpenAI.BaseURL != "" {
				fmt.Printf("Base URL:  %s\n", lc.OpenAI.BaseURL)
			}
		case "anthropic":
			fmt.Printf("Model:     %s\n", lc.Anthropic.Model)
			fmt.Printf("API key:   %s\n", keyState(lc.Anthropic.APIKey))
		}
		fmt.Printf("Timeout:   %s\n", lc.Timeout)

		if err := lc.Validate(); err != nil {
			fmt.Printf("\nNot ready: %v\n", err)
			fmt.Println("Generation will degrade to curated fallback content.")
		} else {
			fmt.Println("\nReady.")
		}
		return nil
	},
}

func keyState(key string) string {
	if key == "" {
		return "(not set)"
	}
	return "set"
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
}
