package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rooftop",
		Short:         "Rooftop gardening assistant for the terminal",
		Long:          "rooftop is a community gardening assistant: plant care reminders, a shared discussion board, a prompt library, and a Gemini-backed gardening chatbot.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp(context.Background())
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runTUI(cmd.Context(), app)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newKeyCmd(app),
		newPromptsCmd(),
	)

	return rootCmd
}
