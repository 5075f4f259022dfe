package routing

import (
	"testing"

	"hackmate/knowledge"
)

func testStore() *knowledge.Store {
	snippets := []knowledge.Snippet{
		{ID: "py-widget", Name: "Python Widget", Tags: []string{"python", "widget"}, Code: "w = 1"},
		{ID: "js-widget", Name: "JS Widget", Tags: []string{"javascript", "widget"}, Code: "let w = 1"},
		{ID: "first", Name: "Same Thing", Tags: []string{"gadget"}, Code: "a"},
		{ID: "second", Name: "Same Thing", Tags: []string{"gadget"}, Code: "b"},
	}
	faqs := []knowledge.FAQ{
		{ID: "cors", Problem: "CORS error", Solution: "enable cors", Keywords: []string{"cors", "origin"}},
		{ID: "port", Problem: "Port in use", Solution: "kill it", Keywords: []string{"port", "eaddrinuse"}},
	}
	return knowledge.NewStore(snippets, faqs, knowledge.Resources{}, nil)
}

func TestScoreSnippetWeights(t *testing.T) {
	scorer := NewScorer(testStore())
	sn := knowledge.Snippet{ID: "py-widget", Name: "Python Widget", Tags: []string{"python", "widget"}}

	tests := []struct {
		name  string
		words []string
		lang  string
		want  int
	}{
		// "widget": key contains (10) + name contains (8) + tag exact (15)
		{"tag_and_name_and_key", []string{"widget"}, "", 33},
		// "python": name contains (8) + tag exact (15)
		{"tag_exact", []string{"python"}, "", 23},
		// "widg": key contains (10) + name contains (8) + tag substring (5)
		{"tag_substring", []string{"widg"}, "", 23},
		// "widgetfactory": key no, name no, word contains tag len>=4 (3)
		{"word_contains_tag", []string{"widgetfactory"}, "", 3},
		// single-char words are skipped
		{"short_word_skipped", []string{"w"}, "", 0},
		// language bonus added once before accumulation
		{"language_bonus", []string{"widget"}, "python", 83},
		// unmatched filter disqualifies regardless of keyword overlap
		{"language_disqualifies", []string{"widget"}, "ruby", -1},
		{"no_overlap", []string{"zzz"}, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.ScoreSnippet(sn, tt.words, tt.lang); got != tt.want {
				t.Errorf("ScoreSnippet(%v, %q) = %d, want %d", tt.words, tt.lang, got, tt.want)
			}
		})
	}
}

func TestScoreSnippetMonotonicInTagOverlap(t *testing.T) {
	scorer := NewScorer(testStore())
	sn := knowledge.Snippet{ID: "py-widget", Name: "Python Widget", Tags: []string{"python", "widget"}}

	// "gadget" matches nothing; adding a word that exactly equals a tag and
	// appears nowhere else must add exactly the tag-exact weight... except
	// "python" also appears in the name, so use a tag-only word.
	sn2 := knowledge.Snippet{ID: "entry", Name: "Entry", Tags: []string{"special"}}
	without := scorer.ScoreSnippet(sn2, []string{"gadget"}, "")
	with := scorer.ScoreSnippet(sn2, []string{"gadget", "special"}, "")
	if with-without != 15 {
		t.Errorf("adding exact-tag word changed score by %d, want 15", with-without)
	}

	if scorer.ScoreSnippet(sn, []string{"widget"}, "") <= scorer.ScoreSnippet(sn, nil, "") {
		t.Error("keyword overlap did not increase score")
	}
}

func TestFindBestSnippet(t *testing.T) {
	scorer := NewScorer(testStore())

	t.Run("respects_threshold", func(t *testing.T) {
		if _, _, ok := scorer.FindBestSnippet("widget", "", 100); ok {
			t.Error("FindBestSnippet() returned a candidate below the threshold")
		}
	})

	t.Run("reported_score_meets_threshold", func(t *testing.T) {
		_, score, ok := scorer.FindBestSnippet("widget", "", 10)
		if !ok {
			t.Fatal("expected a match")
		}
		if score < 10 {
			t.Errorf("score = %d, want >= 10", score)
		}
	})

	t.Run("tie_breaks_to_table_order", func(t *testing.T) {
		sn, _, ok := scorer.FindBestSnippet("thing", "", 5)
		if !ok {
			t.Fatal("expected a match")
		}
		if sn.ID != "first" {
			t.Errorf("tie went to %q, want %q", sn.ID, "first")
		}
	})

	t.Run("empty_query_no_match", func(t *testing.T) {
		if _, _, ok := scorer.FindBestSnippet("   ", "", 5); ok {
			t.Error("whitespace query produced a match")
		}
	})

	t.Run("cached_result_stable", func(t *testing.T) {
		a, scoreA, _ := scorer.FindBestSnippet("widget", "python", 10)
		b, scoreB, _ := scorer.FindBestSnippet("widget", "python", 10)
		if a.ID != b.ID || scoreA != scoreB {
			t.Errorf("cache returned different result: %q/%d vs %q/%d", a.ID, scoreA, b.ID, scoreB)
		}
	})
}

func TestLanguageFilterIsStrictPartition(t *testing.T) {
	scorer := NewScorer(testStore())

	ranked := scorer.TopSnippets("widget", "python", 10)
	if len(ranked) == 0 {
		t.Fatal("expected python candidates")
	}
	for _, r := range ranked {
		if !languageMatches(r.Snippet.Tags, "python") {
			t.Errorf("candidate %q leaked through the python filter", r.Snippet.ID)
		}
	}

	sn, _, ok := scorer.FindBestSnippet("widget", "javascript", 10)
	if !ok || sn.ID != "js-widget" {
		t.Errorf("FindBestSnippet(javascript) = %q, want js-widget", sn.ID)
	}
}

func TestTopSnippets(t *testing.T) {
	scorer := NewScorer(testStore())

	ranked := scorer.TopSnippets("widget", "", 10)
	if len(ranked) != 2 {
		t.Fatalf("len = %d, want 2", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Error("TopSnippets not sorted descending")
		}
	}

	if got := scorer.TopSnippets("widget", "", 1); len(got) != 1 {
		t.Errorf("limit not applied, len = %d", len(got))
	}

	if got := scorer.TopSnippets("zzz", "", 5); len(got) != 0 {
		t.Errorf("zero-score candidates included, len = %d", len(got))
	}
}

func TestScoreFAQ(t *testing.T) {
	scorer := NewScorer(testStore())
	cors := knowledge.FAQ{ID: "cors", Problem: "CORS error", Keywords: []string{"cors", "origin"}}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		// key containment (20) + keyword in query (10) + word/keyword pair (3)
		{"key_and_keyword", "cors", 33},
		{"keyword_in_sentence", "getting a cors error on port 3000", 33},
		{"no_overlap", "disk is full", 0},
		{"empty", "   ", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.ScoreFAQ(cors, tt.query); got != tt.want {
				t.Errorf("ScoreFAQ(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestFindBestFAQ(t *testing.T) {
	scorer := NewScorer(testStore())

	faq, ok := scorer.FindBestFAQ("CORS error on port 3000", ThresholdFAQ)
	if !ok {
		t.Fatal("expected a FAQ match")
	}
	if faq.ID != "cors" {
		t.Errorf("FindBestFAQ() = %q, want cors", faq.ID)
	}

	if _, ok := scorer.FindBestFAQ("quantum flux capacitor", ThresholdFAQ); ok {
		t.Error("expected no match for unrelated query")
	}
}
