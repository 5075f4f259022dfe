package assistant

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	apperrors "hackmate/errors"
	"hackmate/knowledge"
	"hackmate/routing"
)

func newTestExecutor(t *testing.T) *Executor {
	t.Helper()
	store := knowledge.NewDefaultStore("", "", "")
	return NewExecutor(store, routing.NewScorer(store), zap.NewNop())
}

func TestCreateProject(t *testing.T) {
	exec := newTestExecutor(t)

	t.Run("known_type_embeds_snippet", func(t *testing.T) {
		result, err := exec.Execute(ToolCreateProject, []byte(`{"type":"fastapi"}`))
		if err != nil {
			t.Fatal(err)
		}
		if result.Source != SourceSnippet {
			t.Errorf("source = %q, want snippet", result.Source)
		}
		if result.SnippetID != "fastapi" {
			t.Errorf("snippetId = %q, want fastapi", result.SnippetID)
		}
		if !strings.Contains(result.Text, "FastAPI") {
			t.Errorf("text missing snippet name: %q", result.Text)
		}
	})

	t.Run("unknown_type_generic_ack", func(t *testing.T) {
		result, err := exec.Execute(ToolCreateProject, []byte(`{"type":"brainfuck"}`))
		if err != nil {
			t.Fatal(err)
		}
		if result.Source != SourceTool {
			t.Errorf("source = %q, want tool", result.Source)
		}
		if !strings.Contains(result.Text, "brainfuck") {
			t.Errorf("text = %q, want echo of the type", result.Text)
		}
	})
}

func TestDeployApp(t *testing.T) {
	exec := newTestExecutor(t)

	result, err := exec.Execute(ToolDeployApp, []byte(`{"name":"My Cool App"}`))
	if err != nil {
		t.Fatal(err)
	}
	if result.Source != SourceTool {
		t.Errorf("source = %q, want tool", result.Source)
	}
	if !strings.Contains(result.Text, "https://my-cool-app.demo-app.com") {
		t.Errorf("text = %q, want slugified url", result.Text)
	}
}

func TestGetCodeSnippet(t *testing.T) {
	exec := newTestExecutor(t)

	t.Run("jwt_auth_direct_hit", func(t *testing.T) {
		result, err := exec.Execute(ToolGetCodeSnippet, []byte(`{"query":"jwt auth"}`))
		if err != nil {
			t.Fatal(err)
		}
		if result.Source != SourceSnippet {
			t.Fatalf("source = %q, want snippet", result.Source)
		}
		if result.SnippetID != "jwt-auth" {
			t.Errorf("snippetId = %q, want jwt-auth", result.SnippetID)
		}
		if result.Confidence < routing.ThresholdDirectLookup {
			t.Errorf("confidence = %d, want >= %d", result.Confidence, routing.ThresholdDirectLookup)
		}
		if !strings.Contains(strings.ToLower(result.Text), "jwt") {
			t.Errorf("text does not mention jwt: %q", result.Text)
		}
	})

	t.Run("language_filter_dominates", func(t *testing.T) {
		result, err := exec.Execute(ToolGetCodeSnippet, []byte(`{"query":"file upload","language":"python"}`))
		if err != nil {
			t.Fatal(err)
		}
		if result.Source != SourceSnippet {
			t.Fatalf("source = %q, want snippet", result.Source)
		}
		if result.SnippetID != "flask-upload" {
			t.Errorf("snippetId = %q, want the python upload snippet", result.SnippetID)
		}
	})

	t.Run("near_miss_suggestions", func(t *testing.T) {
		result, err := exec.Execute(ToolGetCodeSnippet, []byte(`{"query":"uploads"}`))
		if err != nil {
			t.Fatal(err)
		}
		if result.Source != SourceSuggestions {
			t.Fatalf("source = %q, want suggestions", result.Source)
		}
		if len(result.Suggestions) == 0 {
			t.Error("expected at least one suggestion")
		}
		if !strings.Contains(result.Text, "Did you mean") {
			t.Errorf("text = %q, want a did-you-mean list", result.Text)
		}
	})

	t.Run("language_fallback_lists_other_languages", func(t *testing.T) {
		result, err := exec.Execute(ToolGetCodeSnippet, []byte(`{"query":"websocket","language":"rust"}`))
		if err != nil {
			t.Fatal(err)
		}
		if result.Source != SourceSuggestions {
			t.Fatalf("source = %q, want suggestions", result.Source)
		}
		if !strings.Contains(result.Text, "rust") {
			t.Errorf("text = %q, want mention of the missing language", result.Text)
		}
		found := false
		for _, name := range result.Suggestions {
			if strings.Contains(name, "WebSocket") {
				found = true
			}
		}
		if !found {
			t.Errorf("suggestions = %v, want the websocket snippet", result.Suggestions)
		}
	})

	t.Run("total_miss_signals_none", func(t *testing.T) {
		result, err := exec.Execute(ToolGetCodeSnippet, []byte(`{"query":"xyzzy"}`))
		if err != nil {
			t.Fatal(err)
		}
		if result.Source != SourceNone {
			t.Errorf("source = %q, want none", result.Source)
		}
		if result.Text != "" {
			t.Errorf("text = %q, want absent", result.Text)
		}
	})
}

func TestGetHackathonInfo(t *testing.T) {
	exec := newTestExecutor(t)
	store := knowledge.NewDefaultStore("", "", "")

	t.Run("prizes_complete_and_ordered", func(t *testing.T) {
		result, err := exec.Execute(ToolGetHackathonInfo, []byte(`{"category":"prizes"}`))
		if err != nil {
			t.Fatal(err)
		}
		lastIdx := -1
		for _, prize := range store.Resources().Prizes {
			idx := strings.Index(result.Text, prize.Place)
			if idx == -1 {
				t.Fatalf("prize %q missing from %q", prize.Place, result.Text)
			}
			if idx < lastIdx {
				t.Errorf("prize %q out of declared order", prize.Place)
			}
			lastIdx = idx
		}
	})

	t.Run("all_includes_theme_and_rules", func(t *testing.T) {
		result, err := exec.Execute(ToolGetHackathonInfo, []byte(`{"category":"all"}`))
		if err != nil {
			t.Fatal(err)
		}
		res := store.Resources()
		for _, want := range []string{res.Hackathon.Name, res.Hackathon.Theme, res.Rules[0], res.Timeline[0].Event} {
			if !strings.Contains(result.Text, want) {
				t.Errorf("text missing %q", want)
			}
		}
	})

	t.Run("each_category_nonempty", func(t *testing.T) {
		for _, category := range []string{"rules", "timeline", "apis", "judging", "prizes", "contacts"} {
			result, err := exec.Execute(ToolGetHackathonInfo, []byte(`{"category":"`+category+`"}`))
			if err != nil {
				t.Fatal(err)
			}
			if result.Text == "" || result.Source != SourceTool {
				t.Errorf("category %q: text=%q source=%q", category, result.Text, result.Source)
			}
		}
	})

	t.Run("unknown_category", func(t *testing.T) {
		result, err := exec.Execute(ToolGetHackathonInfo, []byte(`{"category":"swag"}`))
		if err != nil {
			t.Fatal(err)
		}
		if result.Text != "Invalid category" {
			t.Errorf("text = %q, want Invalid category", result.Text)
		}
	})
}

func TestTroubleshoot(t *testing.T) {
	exec := newTestExecutor(t)

	t.Run("cors_error", func(t *testing.T) {
		result, err := exec.Execute(ToolTroubleshoot, []byte(`{"error_description":"CORS error on port 3000"}`))
		if err != nil {
			t.Fatal(err)
		}
		if result.Source != SourceTool {
			t.Fatalf("source = %q, want tool", result.Source)
		}
		if !strings.Contains(strings.ToLower(result.Text), "cors") {
			t.Errorf("text = %q, want the CORS faq", result.Text)
		}
	})

	t.Run("no_match_signals_none", func(t *testing.T) {
		result, err := exec.Execute(ToolTroubleshoot, []byte(`{"error_description":"quantum flux capacitor"}`))
		if err != nil {
			t.Fatal(err)
		}
		if result.Source != SourceNone || result.Text != "" {
			t.Errorf("result = %+v, want empty none", result)
		}
	})
}

func TestExecuteMalformedArguments(t *testing.T) {
	exec := newTestExecutor(t)

	_, err := exec.Execute(ToolGetCodeSnippet, []byte(`{"query":`))
	if err == nil {
		t.Fatal("expected error for malformed arguments")
	}
	if !apperrors.IsMalformedToolArgs(err) {
		t.Errorf("error = %v, want ErrMalformedToolArgs", err)
	}
}

func TestExecuteUnknownTool(t *testing.T) {
	exec := newTestExecutor(t)

	result, err := exec.Execute(ToolName("launch_rocket"), []byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if result.Source != SourceError {
		t.Errorf("source = %q, want error", result.Source)
	}
}
