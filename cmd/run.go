package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bnema/rooftop/internal/tui"
)

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Launch the gardening assistant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), app)
		},
	}
}

func runTUI(ctx context.Context, app *app) error {
	defer func() {
		_ = app.logger.Sync()
	}()

	return tui.Run(tui.Options{
		Context:     ctx,
		Session:     app.session,
		Auth:        app.auth,
		Forum:       app.forum,
		Reminders:   app.reminders,
		Chat:        app.chat,
		ChatInitErr: app.chatInitErr,
		Logger:      app.logger,
		Prefs:       app.userPrefs,
		PrefsPath:   app.prefsPath,
	})
}
