// Package prompts embeds the assistant's prompt files.
package prompts

import (
	_ "embed"
	"strings"
)

//go:embed system.txt
var system string

//go:embed generate.txt
var generate string

// System returns the tool-dispatch system prompt for the named event.
func System(event string) string {
	return strings.ReplaceAll(system, "{{event}}", event)
}

// Generate returns the plain generation prompt used when no tool applies.
func Generate() string { return generate }
