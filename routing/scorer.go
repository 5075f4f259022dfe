package routing

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"hackmate/knowledge"
)

// Snippet scoring weights. The heuristic is kept as a data artifact so it
// can be tuned and tested independently of the matching loop. All weights
// accumulate per query word of length >= 2.
const (
	weightKeyContains  = 10 // entry id contains the word
	weightNameContains = 8  // display name contains the word
	weightTagExact     = 15 // a tag equals the word
	weightTagContains  = 5  // a tag contains the word as substring
	weightWordContains = 3  // the word contains a tag of length >= 4

	// languageMatchBonus is added once, before per-word accumulation, when
	// a language filter is supplied and satisfied. It dominates keyword
	// overlap so language-matching candidates outrank non-matching ones.
	languageMatchBonus = 50

	// scoreDisqualified marks candidates excluded by the language filter.
	scoreDisqualified = -1
)

// FAQ scoring weights.
const (
	faqWeightKeyContainment = 20 // id/query containment in either direction
	faqWeightKeywordInQuery = 10 // per keyword contained in the query
	faqWeightWordOverlap    = 3  // per (word len > 2, keyword) substring pairing
)

// Minimum acceptable scores per call-site. Lower thresholds favor recall
// where a near-miss is still useful; higher ones where a wrong answer is
// worse than none.
const (
	ThresholdDirectLookup = 10
	ThresholdScaffold     = 8
	ThresholdSnippetMode  = 5
	ThresholdFAQ          = 5
)

// ScoredSnippet pairs a snippet with its relevance score for ranked output.
type ScoredSnippet struct {
	Snippet knowledge.Snippet
	Score   int
}

type cachedBest struct {
	id    string
	score int
	ok    bool
}

// Scorer ranks knowledge base entries by weighted lexical overlap with a
// query. The store is immutable, so best-match results are memoized in an
// LRU cache and never invalidated.
type Scorer struct {
	store *knowledge.Store
	cache *lru.Cache
}

func NewScorer(store *knowledge.Store) *Scorer {
	cache, _ := lru.New(256)
	return &Scorer{store: store, cache: cache}
}

// queryWords lowercases and whitespace-splits a query. The scoring contract
// is defined over these tokens; no smarter tokenization belongs here.
func queryWords(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// languageMatches reports whether any tag matches the normalized language
// filter by equality or substring containment in either direction.
func languageMatches(tags []string, lang string) bool {
	for _, tag := range tags {
		tag = strings.ToLower(tag)
		if tag == lang || strings.Contains(tag, lang) || strings.Contains(lang, tag) {
			return true
		}
	}
	return false
}

// ScoreSnippet computes the relevance score of one snippet for the given
// query words. A non-empty lang is a hard filter: unmatched candidates are
// disqualified, not merely demoted.
func (s *Scorer) ScoreSnippet(sn knowledge.Snippet, words []string, lang string) int {
	score := 0
	if lang != "" {
		if !languageMatches(sn.Tags, lang) {
			return scoreDisqualified
		}
		score += languageMatchBonus
	}

	key := strings.ToLower(sn.ID)
	name := strings.ToLower(sn.Name)
	for _, word := range words {
		if len(word) < 2 {
			continue
		}
		if strings.Contains(key, word) {
			score += weightKeyContains
		}
		if strings.Contains(name, word) {
			score += weightNameContains
		}
		for _, tag := range sn.Tags {
			tag = strings.ToLower(tag)
			switch {
			case tag == word:
				score += weightTagExact
			case strings.Contains(tag, word):
				score += weightTagContains
			case len(tag) >= 4 && strings.Contains(word, tag):
				score += weightWordContains
			}
		}
	}
	return score
}

// FindBestSnippet returns the highest-scoring snippet at or above minScore.
// Ties break toward table order via strict greater-than scanning. The third
// return reports whether any candidate cleared the threshold.
func (s *Scorer) FindBestSnippet(query, lang string, minScore int) (knowledge.Snippet, int, bool) {
	lang = NormalizeLanguage(lang)
	cacheKey := fmt.Sprintf("%s|%s|%d", strings.Join(queryWords(query), " "), lang, minScore)
	if v, ok := s.cache.Get(cacheKey); ok {
		hit := v.(cachedBest)
		if !hit.ok {
			return knowledge.Snippet{}, 0, false
		}
		sn, err := s.store.Snippet(hit.id)
		if err == nil {
			return sn, hit.score, true
		}
	}

	words := queryWords(query)
	var best knowledge.Snippet
	bestScore := 0
	found := false
	for _, sn := range s.store.Snippets() {
		score := s.ScoreSnippet(sn, words, lang)
		if score > bestScore {
			best = sn
			bestScore = score
			found = true
		}
	}
	if !found || bestScore < minScore {
		s.cache.Add(cacheKey, cachedBest{})
		return knowledge.Snippet{}, 0, false
	}
	s.cache.Add(cacheKey, cachedBest{id: best.ID, score: bestScore, ok: true})
	return best, bestScore, true
}

// TopSnippets returns up to limit snippets with positive scores, highest
// first. Equal scores keep table order (stable sort).
func (s *Scorer) TopSnippets(query, lang string, limit int) []ScoredSnippet {
	lang = NormalizeLanguage(lang)
	words := queryWords(query)

	var ranked []ScoredSnippet
	for _, sn := range s.store.Snippets() {
		if score := s.ScoreSnippet(sn, words, lang); score > 0 {
			ranked = append(ranked, ScoredSnippet{Snippet: sn, Score: score})
		}
	}
	// Insertion sort keeps equal-score entries in table order.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Score > ranked[j-1].Score; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ScoreFAQ computes the relevance of one FAQ entry for a raw query.
func (s *Scorer) ScoreFAQ(f knowledge.FAQ, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	key := strings.ToLower(f.ID)
	score := 0
	if strings.Contains(key, q) || strings.Contains(q, key) {
		score += faqWeightKeyContainment
	}
	for _, kw := range f.Keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(q, kw) {
			score += faqWeightKeywordInQuery
		}
	}
	for _, word := range strings.Fields(q) {
		if len(word) <= 2 {
			continue
		}
		for _, kw := range f.Keywords {
			kw = strings.ToLower(kw)
			if strings.Contains(kw, word) || strings.Contains(word, kw) {
				score += faqWeightWordOverlap
			}
		}
	}
	return score
}

// FindBestFAQ returns the highest-scoring FAQ at or above minScore, ties
// breaking toward table order.
func (s *Scorer) FindBestFAQ(query string, minScore int) (knowledge.FAQ, bool) {
	var best knowledge.FAQ
	bestScore := 0
	found := false
	for _, f := range s.store.FAQs() {
		if score := s.ScoreFAQ(f, query); score > bestScore {
			best = f
			bestScore = score
			found = true
		}
	}
	if !found || bestScore < minScore {
		return knowledge.FAQ{}, false
	}
	return best, true
}
