package assistant

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	apperrors "hackmate/errors"
	"hackmate/knowledge"
	"hackmate/routing"
)

// Source tags the provenance of a reply.
type Source string

const (
	SourceSnippet     Source = "snippet"     // verbatim knowledge base snippet
	SourceSuggestions Source = "suggestions" // near-miss candidate list
	SourceTool        Source = "tool"        // tool output with no KB link
	SourceGenerated   Source = "generated"   // free-form model text
	SourceNone        Source = "none"        // lookup miss, caller must fall back
	SourceError       Source = "error"       // tool name outside the catalog
)

// ToolResult is the outcome of one tool execution. An empty Text with
// Source == SourceNone signals the orchestrator to fall back to free
// generation; it is a normal outcome, not an error.
type ToolResult struct {
	Text        string
	Source      Source
	SnippetID   string
	Confidence  int
	Suggestions []string
}

// Executor runs the local action behind each tool in the catalog.
type Executor struct {
	store  *knowledge.Store
	scorer *routing.Scorer
	logger *zap.Logger
}

func NewExecutor(store *knowledge.Store, scorer *routing.Scorer, logger *zap.Logger) *Executor {
	return &Executor{store: store, scorer: scorer, logger: logger}
}

type createProjectArgs struct {
	Type string `json:"type"`
}

type deployAppArgs struct {
	Name string `json:"name"`
}

type getCodeSnippetArgs struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

type getHackathonInfoArgs struct {
	Category string `json:"category"`
}

type troubleshootArgs struct {
	ErrorDescription string `json:"error_description"`
}

// Execute dispatches one tool call. Argument parse failures return
// ErrMalformedToolArgs; an unknown tool name yields an error-source result
// rather than a failure since the catalog is closed.
func (e *Executor) Execute(name ToolName, rawArgs []byte) (ToolResult, error) {
	switch name {
	case ToolCreateProject:
		var args createProjectArgs
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return ToolResult{}, apperrors.WrapErrorf(apperrors.ErrMalformedToolArgs, "%s: %v", name, err)
		}
		return e.createProject(args), nil
	case ToolDeployApp:
		var args deployAppArgs
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return ToolResult{}, apperrors.WrapErrorf(apperrors.ErrMalformedToolArgs, "%s: %v", name, err)
		}
		return e.deployApp(args), nil
	case ToolGetCodeSnippet:
		var args getCodeSnippetArgs
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return ToolResult{}, apperrors.WrapErrorf(apperrors.ErrMalformedToolArgs, "%s: %v", name, err)
		}
		return e.getCodeSnippet(args), nil
	case ToolGetHackathonInfo:
		var args getHackathonInfoArgs
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return ToolResult{}, apperrors.WrapErrorf(apperrors.ErrMalformedToolArgs, "%s: %v", name, err)
		}
		return e.hackathonInfo(args), nil
	case ToolTroubleshoot:
		var args troubleshootArgs
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return ToolResult{}, apperrors.WrapErrorf(apperrors.ErrMalformedToolArgs, "%s: %v", name, err)
		}
		return e.troubleshoot(args), nil
	default:
		e.logger.Warn("Unknown tool requested", zap.String("tool", string(name)))
		return ToolResult{Text: "Unknown tool", Source: SourceError}, nil
	}
}

func (e *Executor) createProject(args createProjectArgs) ToolResult {
	sn, _, ok := e.scorer.FindBestSnippet(args.Type, "", routing.ThresholdScaffold)
	if !ok {
		return ToolResult{
			Text:   fmt.Sprintf("✅ Created %s project with basic structure", args.Type),
			Source: SourceTool,
		}
	}
	return ToolResult{
		Text: fmt.Sprintf("✅ Created %s project!\n\n**%s**\n```\n%s\n```",
			args.Type, sn.Name, sn.Code),
		Source:    SourceSnippet,
		SnippetID: sn.ID,
	}
}

func (e *Executor) deployApp(args deployAppArgs) ToolResult {
	// Simulated deployment: pure formatting, no network call.
	slug := strings.Join(strings.Fields(strings.ToLower(args.Name)), "-")
	return ToolResult{
		Text:   fmt.Sprintf("🚀 %s deployed at https://%s.demo-app.com", args.Name, slug),
		Source: SourceTool,
	}
}

func (e *Executor) getCodeSnippet(args getCodeSnippetArgs) ToolResult {
	lang := routing.NormalizeLanguage(args.Language)

	sn, score, ok := e.scorer.FindBestSnippet(args.Query, lang, routing.ThresholdDirectLookup)
	if ok {
		return ToolResult{
			Text:       FormatSnippet(sn),
			Source:     SourceSnippet,
			SnippetID:  sn.ID,
			Confidence: score,
		}
	}

	// Near misses with the filter kept: ranked suggestions instead of a
	// wrong answer.
	if ranked := e.scorer.TopSnippets(args.Query, lang, 3); len(ranked) > 0 {
		names := snippetNames(ranked)
		return ToolResult{
			Text: fmt.Sprintf("🤔 No exact match for %q. Did you mean:\n%s",
				args.Query, bulleted(names)),
			Source:      SourceSuggestions,
			Suggestions: names,
		}
	}

	// The language filter may be what excluded everything.
	if lang != "" {
		if ranked := e.scorer.TopSnippets(args.Query, "", 3); len(ranked) > 0 {
			names := snippetNames(ranked)
			return ToolResult{
				Text: fmt.Sprintf("😕 %q isn't available in %s, but is available in:\n%s",
					args.Query, lang, bulleted(names)),
				Source:      SourceSuggestions,
				Suggestions: names,
			}
		}
	}

	return ToolResult{Source: SourceNone}
}

func (e *Executor) hackathonInfo(args getHackathonInfoArgs) ToolResult {
	res := e.store.Resources()
	var text string

	switch args.Category {
	case "all":
		var b strings.Builder
		fmt.Fprintf(&b, "📋 **%s**\n\n", res.Hackathon.Name)
		fmt.Fprintf(&b, "**Theme:** %s\n", res.Hackathon.Theme)
		fmt.Fprintf(&b, "**Duration:** %s\n\n", res.Hackathon.Duration)
		b.WriteString("**Rules:**\n")
		for _, r := range res.Rules {
			fmt.Fprintf(&b, "• %s\n", r)
		}
		b.WriteString("\n**Timeline:**\n")
		for _, t := range res.Timeline {
			fmt.Fprintf(&b, "• %s: %s\n", t.Time, t.Event)
		}
		text = strings.TrimRight(b.String(), "\n")
	case "rules":
		var b strings.Builder
		b.WriteString("📜 **Hackathon Rules**\n\n")
		for i, r := range res.Rules {
			fmt.Fprintf(&b, "%d. %s\n", i+1, r)
		}
		text = strings.TrimRight(b.String(), "\n")
	case "timeline":
		var b strings.Builder
		b.WriteString("⏰ **Timeline**\n\n")
		for _, t := range res.Timeline {
			fmt.Fprintf(&b, "**%s** - %s\n", t.Time, t.Event)
		}
		text = strings.TrimRight(b.String(), "\n")
	case "apis":
		keys := make([]string, 0, len(res.APIs))
		for k := range res.APIs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			api := res.APIs[k]
			parts = append(parts, fmt.Sprintf("**%s**\n• URL: %s\n• Docs: %s\n• %s",
				api.Name, api.URL, api.Docs, api.Description))
		}
		text = "🔌 **Available APIs**\n\n" + strings.Join(parts, "\n\n")
	case "judging":
		parts := make([]string, 0, len(res.JudgingCriteria))
		for _, c := range res.JudgingCriteria {
			parts = append(parts, fmt.Sprintf("**%s** (%s)\n%s", c.Criteria, c.Weight, c.Description))
		}
		text = "⚖️ **Judging Criteria**\n\n" + strings.Join(parts, "\n\n")
	case "prizes":
		var b strings.Builder
		b.WriteString("🏆 **Prizes**\n\n")
		for _, p := range res.Prizes {
			fmt.Fprintf(&b, "**%s:** %s\n", p.Place, p.Prize)
		}
		text = strings.TrimRight(b.String(), "\n")
	case "contacts":
		text = fmt.Sprintf("📞 **Contacts**\n\n• Organizers: %s\n• Tech Support: %s\n• Slack: %s",
			res.Contacts.Organizers, res.Contacts.TechnicalSupport, res.Contacts.SlackChannel)
	default:
		// The schema enum constrains this value; models still get it wrong.
		text = "Invalid category"
	}

	return ToolResult{Text: text, Source: SourceTool}
}

func (e *Executor) troubleshoot(args troubleshootArgs) ToolResult {
	faq, ok := e.scorer.FindBestFAQ(args.ErrorDescription, routing.ThresholdFAQ)
	if !ok {
		return ToolResult{Source: SourceNone}
	}
	return ToolResult{
		Text:   fmt.Sprintf("🔧 **Problem:** %s\n\n**Solution:**\n%s", faq.Problem, faq.Solution),
		Source: SourceTool,
	}
}

// FormatSnippet renders a snippet with its tags and code fence.
func FormatSnippet(sn knowledge.Snippet) string {
	return fmt.Sprintf("📝 **%s**\n\nTags: %s\n\n```\n%s\n```",
		sn.Name, strings.Join(sn.Tags, ", "), sn.Code)
}

func snippetNames(ranked []routing.ScoredSnippet) []string {
	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Snippet.Name
	}
	return names
}

func bulleted(items []string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = "• " + item
	}
	return strings.Join(parts, "\n")
}
