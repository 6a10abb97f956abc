package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/rooftop/internal/adapters/gateway/gemini"
)

func newKeyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the Gemini API key",
	}

	cmd.AddCommand(newKeySetCmd(app), newKeyShowCmd(app), newKeyUnsetCmd(app))

	return cmd
}

func newKeySetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <api-key>",
		Short: "Store the Gemini API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.secretStore.Put(cmd.Context(), gemini.APIKeySecret, args[0]); err != nil {
				return fmt.Errorf("store api key: %w", err)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Gemini API key stored.")
			return err
		},
	}
}

func newKeyShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored Gemini API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := app.secretStore.Get(cmd.Context(), gemini.APIKeySecret)
			if err != nil {
				return fmt.Errorf("read api key: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func newKeyUnsetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unset",
		Short: "Remove the stored Gemini API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secretStore.Delete(cmd.Context(), gemini.APIKeySecret); err != nil {
				return fmt.Errorf("remove api key: %w", err)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Gemini API key removed.")
			return err
		},
	}
}
