package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	promptsrender "github.com/bnema/rooftop/internal/adapters/render/prompts"
	"github.com/bnema/rooftop/internal/tui/content"
)

func newPromptsCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Print the gardening prompt library",
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := promptsrender.Render(content.Prompts, promptsrender.RenderOptions{Width: width})
			if err != nil {
				return fmt.Errorf("render prompts: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered output")

	return cmd
}
