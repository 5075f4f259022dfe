package knowledge

import (
	apperrors "hackmate/errors"
)

// Snippet is a named, tagged block of reference code served verbatim.
type Snippet struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
	Code string   `json:"code"`
}

// FAQ is a problem/solution pair indexed by free-text keywords.
type FAQ struct {
	ID       string   `json:"id"`
	Problem  string   `json:"problem"`
	Solution string   `json:"solution"`
	Keywords []string `json:"keywords"`
}

// Hackathon holds the event metadata shown in the resource bundle.
type Hackathon struct {
	Name     string `json:"name"`
	Theme    string `json:"theme"`
	Duration string `json:"duration"`
}

type TimelineEntry struct {
	Time  string `json:"time"`
	Event string `json:"event"`
}

type API struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Docs        string `json:"docs"`
	Description string `json:"description"`
}

type JudgingCriterion struct {
	Criteria    string `json:"criteria"`
	Weight      string `json:"weight"`
	Description string `json:"description"`
}

type Prize struct {
	Place string `json:"place"`
	Prize string `json:"prize"`
}

type Contacts struct {
	Organizers       string `json:"organizers"`
	TechnicalSupport string `json:"technical_support"`
	SlackChannel     string `json:"slack_channel"`
}

// Resources is the fixed structured event document.
type Resources struct {
	Hackathon       Hackathon          `json:"hackathon"`
	Rules           []string           `json:"rules"`
	Timeline        []TimelineEntry    `json:"timeline"`
	APIs            map[string]API     `json:"apis"`
	JudgingCriteria []JudgingCriterion `json:"judging_criteria"`
	Prizes          []Prize            `json:"prizes"`
	Contacts        Contacts           `json:"contacts"`
}

// QuickAction is a UI shortcut that resolves to either a snippet id or a
// resource category. Category is "snippets" or "resources"; Target names
// the snippet id or resource category.
type QuickAction struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
	Target   string `json:"type,omitempty"`
}

// Store holds the immutable knowledge tables. It is built once at startup
// and injected into every consumer; nothing mutates it afterwards, so it is
// safe to share across in-flight requests without locking.
type Store struct {
	snippets   []Snippet
	snippetIdx map[string]int
	faqs       []FAQ
	faqIdx     map[string]int
	resources  Resources
	actions    []QuickAction
}

// NewStore builds a store from explicit tables. Table order is preserved;
// the relevance scorer's tie-breaking depends on it.
func NewStore(snippets []Snippet, faqs []FAQ, resources Resources, actions []QuickAction) *Store {
	s := &Store{
		snippets:   snippets,
		snippetIdx: make(map[string]int, len(snippets)),
		faqs:       faqs,
		faqIdx:     make(map[string]int, len(faqs)),
		resources:  resources,
		actions:    actions,
	}
	for i, sn := range snippets {
		s.snippetIdx[sn.ID] = i
	}
	for i, f := range faqs {
		s.faqIdx[f.ID] = i
	}
	return s
}

// NewDefaultStore builds the store from the built-in tables. Non-empty
// name/theme/duration override the event metadata in the resource bundle.
func NewDefaultStore(name, theme, duration string) *Store {
	resources := defaultResources
	if name != "" {
		resources.Hackathon.Name = name
	}
	if theme != "" {
		resources.Hackathon.Theme = theme
	}
	if duration != "" {
		resources.Hackathon.Duration = duration
	}
	return NewStore(defaultSnippets, defaultFAQs, resources, defaultQuickActions)
}

// Snippet returns the snippet with the given id.
func (s *Store) Snippet(id string) (Snippet, error) {
	i, ok := s.snippetIdx[id]
	if !ok {
		return Snippet{}, apperrors.WrapErrorf(apperrors.ErrNotFound, "snippet %q", id)
	}
	return s.snippets[i], nil
}

// Snippets returns all snippets in declared table order.
func (s *Store) Snippets() []Snippet {
	return s.snippets
}

// FAQs returns all FAQ entries in declared table order.
func (s *Store) FAQs() []FAQ {
	return s.faqs
}

// Resources returns the event resource bundle.
func (s *Store) Resources() Resources {
	return s.resources
}

// QuickActions returns the fixed shortcut catalog.
func (s *Store) QuickActions() []QuickAction {
	return s.actions
}
