package routing

import "strings"

// Mode governs whether the LLM, the knowledge base, or tool-augmented LLM
// dispatch handles a request.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeLLM      Mode = "llm"
	ModeSnippets Mode = "snippets"

	// ModeNone means no routing tag was present in the message.
	ModeNone Mode = ""
)

// DefaultLLMTags and DefaultSnippetTags are the prefix markers recognized
// when no override is configured.
var (
	DefaultLLMTags     = []string{"ai:", "llm:", "ask:"}
	DefaultSnippetTags = []string{"snippet:", "code:", "snip:"}
)

// TagDetector recognizes explicit mode-override prefixes at the start of a
// message. Tag lists are checked in configured order; the LLM list has
// priority over the snippet list.
type TagDetector struct {
	llmTags     []string
	snippetTags []string
}

func NewTagDetector(llmTags, snippetTags []string) *TagDetector {
	if len(llmTags) == 0 {
		llmTags = DefaultLLMTags
	}
	if len(snippetTags) == 0 {
		snippetTags = DefaultSnippetTags
	}
	return &TagDetector{llmTags: llmTags, snippetTags: snippetTags}
}

// Detect inspects the message prefix for a mode-override tag. On a match it
// returns the forced mode and the message with the tag stripped; otherwise
// ModeNone and the message unmodified. Never fails.
func (d *TagDetector) Detect(raw string) (Mode, string) {
	trimmed := strings.TrimSpace(raw)
	lowered := strings.ToLower(trimmed)

	for _, tag := range d.llmTags {
		if strings.HasPrefix(lowered, strings.ToLower(tag)) {
			return ModeLLM, strings.TrimSpace(trimmed[len(tag):])
		}
	}
	for _, tag := range d.snippetTags {
		if strings.HasPrefix(lowered, strings.ToLower(tag)) {
			return ModeSnippets, strings.TrimSpace(trimmed[len(tag):])
		}
	}
	return ModeNone, raw
}

// LLMTags returns the configured LLM-override prefixes.
func (d *TagDetector) LLMTags() []string { return d.llmTags }

// SnippetTags returns the configured snippet-override prefixes.
func (d *TagDetector) SnippetTags() []string { return d.snippetTags }
