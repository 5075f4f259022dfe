package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hackmate/assistant/prompts"
	"hackmate/config"
	"hackmate/knowledge"
	"hackmate/llmclient"
	"hackmate/routing"
)

// LLM is the chat-completion capability the orchestrator consumes.
type LLM interface {
	Chat(ctx context.Context, messages []llmclient.Message, tools []llmclient.Tool, temperature *float64) (*llmclient.ChatResult, error)
}

// Reply is the terminal output of the conversation state machine. Every
// path produces a non-empty Text.
type Reply struct {
	Text      string
	Mode      routing.Mode
	Source    Source
	SnippetID string
}

// Assistant resolves the effective mode for a message and routes it through
// the knowledge base, the LLM, or tool-augmented LLM dispatch.
type Assistant struct {
	llm      LLM
	store    *knowledge.Store
	scorer   *routing.Scorer
	tags     *routing.TagDetector
	executor *Executor
	logger   *zap.Logger
}

func New(cfg *config.Config, llm LLM, store *knowledge.Store, logger *zap.Logger) *Assistant {
	scorer := routing.NewScorer(store)
	return &Assistant{
		llm:      llm,
		store:    store,
		scorer:   scorer,
		tags:     routing.NewTagDetector(cfg.RoutingLLMTags, cfg.RoutingSnippetTags),
		executor: NewExecutor(store, scorer, logger),
		logger:   logger,
	}
}

// TagDetector exposes the routing configuration for the transport layer.
func (a *Assistant) TagDetector() *routing.TagDetector { return a.tags }

// Respond runs one message through the state machine. An explicit routing
// tag overrides the caller-requested mode; otherwise the requested mode
// applies, defaulting to auto. Only LLM transport errors propagate.
func (a *Assistant) Respond(ctx context.Context, message string, requested routing.Mode) (*Reply, error) {
	mode, clean := a.tags.Detect(message)
	if mode == routing.ModeNone {
		switch requested {
		case routing.ModeLLM, routing.ModeSnippets:
			mode = requested
		default:
			mode = routing.ModeAuto
		}
		clean = strings.TrimSpace(message)
	}

	a.logger.Debug("Mode resolved",
		zap.String("mode", string(mode)),
		zap.String("message", clean))

	switch mode {
	case routing.ModeSnippets:
		return a.respondFromSnippets(clean), nil
	case routing.ModeLLM:
		return a.respondFromLLM(ctx, clean)
	default:
		return a.respondAuto(ctx, clean)
	}
}

// respondFromSnippets answers from the knowledge base alone; this path
// never calls the LLM.
func (a *Assistant) respondFromSnippets(message string) *Reply {
	lang := routing.DetectLanguage(message)

	if sn, _, ok := a.scorer.FindBestSnippet(message, lang, routing.ThresholdSnippetMode); ok {
		return &Reply{
			Text:      FormatSnippet(sn),
			Mode:      routing.ModeSnippets,
			Source:    SourceSnippet,
			SnippetID: sn.ID,
		}
	}

	if ranked := a.scorer.TopSnippets(message, lang, 5); len(ranked) > 0 {
		return &Reply{
			Text: fmt.Sprintf("🤔 No exact match. Closest snippets:\n%s",
				bulleted(snippetNames(ranked))),
			Mode:   routing.ModeSnippets,
			Source: SourceSuggestions,
		}
	}

	if lang != "" {
		if ranked := a.scorer.TopSnippets(message, "", 5); len(ranked) > 0 {
			return &Reply{
				Text: fmt.Sprintf("😕 Nothing matched for %s. Snippets in other languages:\n%s",
					lang, bulleted(snippetNames(ranked))),
				Mode:   routing.ModeSnippets,
				Source: SourceSuggestions,
			}
		}
	}

	return &Reply{
		Text: "😕 No matching snippet found. Try keywords like \"react\", \"fastapi\", " +
			"\"jwt\" or \"docker\", or ask without the snippet tag to use the assistant.",
		Mode:   routing.ModeSnippets,
		Source: SourceNone,
	}
}

// respondFromLLM forwards the message verbatim with a minimal instruction
// and no tool catalog.
func (a *Assistant) respondFromLLM(ctx context.Context, message string) (*Reply, error) {
	result, err := a.llm.Chat(ctx, []llmclient.Message{
		{Role: "system", Content: prompts.Generate()},
		{Role: "user", Content: message},
	}, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Reply{
		Text:   nonEmpty(result.Content),
		Mode:   routing.ModeLLM,
		Source: SourceGenerated,
	}, nil
}

// respondAuto offers the full tool catalog and lets the model decide. When
// the chosen tool reports a lookup miss, one follow-up call generates the
// content directly.
func (a *Assistant) respondAuto(ctx context.Context, message string) (*Reply, error) {
	event := a.store.Resources().Hackathon.Name
	result, err := a.llm.Chat(ctx, []llmclient.Message{
		{Role: "system", Content: prompts.System(event)},
		{Role: "user", Content: message},
	}, Catalog(), nil)
	if err != nil {
		return nil, err
	}

	if len(result.ToolCalls) == 0 {
		return &Reply{
			Text:   nonEmpty(result.Content),
			Mode:   routing.ModeAuto,
			Source: SourceGenerated,
		}, nil
	}

	// Known limitation: only the first tool call is honored. Extras are
	// logged so the dropped intent is at least observable.
	call := result.ToolCalls[0]
	if len(result.ToolCalls) > 1 {
		a.logger.Debug("Ignoring additional tool calls",
			zap.Int("ignored", len(result.ToolCalls)-1),
			zap.String("executed", call.Function.Name))
	}

	toolResult, err := a.executor.Execute(ToolName(call.Function.Name), []byte(call.Function.Arguments))
	if err != nil {
		return nil, err
	}

	if toolResult.Text != "" {
		return &Reply{
			Text:      toolResult.Text,
			Mode:      routing.ModeAuto,
			Source:    toolResult.Source,
			SnippetID: toolResult.SnippetID,
		}, nil
	}

	// Lookup miss: generate the requested content instead.
	a.logger.Debug("Tool yielded no answer, generating directly",
		zap.String("tool", call.Function.Name))
	generated, err := a.llm.Chat(ctx, []llmclient.Message{
		{Role: "system", Content: prompts.Generate()},
		{Role: "user", Content: message},
	}, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Reply{
		Text:   nonEmpty(generated.Content),
		Mode:   routing.ModeAuto,
		Source: SourceGenerated,
	}, nil
}

// nonEmpty guards the promise that every branch returns a visible reply.
func nonEmpty(text string) string {
	if strings.TrimSpace(text) == "" {
		return "🤖 I couldn't come up with an answer for that. Try rephrasing your question."
	}
	return text
}
