// Package content embeds the static markdown pages.
package content

import _ "embed"

//go:embed home.md
var Home string

//go:embed prompts.md
var Prompts string
