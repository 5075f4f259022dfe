package routing

import "testing"

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"exact_word", "python file upload", "python"},
		{"uppercase", "I love Python", "python"},
		{"alias_ts", "ts generics example", "typescript"},
		{"alias_js", "js fetch wrapper", "javascript"},
		{"alias_py", "py requests", "python"},
		{"alias_node", "node http server", "nodejs"},
		{"alias_golang", "golang channels", "go"},
		{"compound_alias", "reactjs file upload", "react"},
		{"substring_fallback", "use fastapi, please", "fastapi"},
		{"framework", "fastapi websocket endpoint", "fastapi"},
		{"no_language", "hello world", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.query); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestDetectLanguageWordBeatsSubstring(t *testing.T) {
	// "js" appears inside "jsonify", but the exact-word pass must pick the
	// whole-word "python" first.
	if got := DetectLanguage("python jsonify helper"); got != "python" {
		t.Errorf("DetectLanguage() = %q, want %q", got, "python")
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"ts", "typescript"},
		{"TSX", "typescript"},
		{"jsx", "javascript"},
		{"node.js", "nodejs"},
		{"python", "python"},
		{"elixir", "elixir"},
	}
	for _, tt := range tests {
		if got := NormalizeLanguage(tt.token); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}
