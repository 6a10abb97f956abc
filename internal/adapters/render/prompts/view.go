package prompts

import "github.com/charmbracelet/glamour"

const defaultWidth = 80

type RenderOptions struct {
	Width int
}

func renderView(source string, opts RenderOptions) string {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return source
	}

	output, err := renderer.Render(source)
	if err != nil {
		return source
	}

	return output
}
