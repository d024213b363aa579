package model

// Article is one discovered work. Immutable once produced by a discovery call.
// Field names follow the JSON shape the discovery instruction requests from
// the model.
type Article struct {
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Journal string `json:"journal,omitempty"`
	// PublicationDate is a year or year-month-day and may be imprecise
	PublicationDate string `json:"publication_date"`
	AISummary       string `json:"ai_summary"`
	Significance    string `json:"significance"`
	URL             string `json:"url,omitempty"`
}

// DiscoveryResult is the structured output of the discovery stage.
// Articles keep the order chosen by the model and are never re-sorted.
type DiscoveryResult struct {
	Topic                 string    `json:"topic"`
	Summary               string    `json:"summary"`
	SuggestedVisualPrompt string    `json:"suggestedVisualPrompt"`
	Articles              []Article `json:"articles"`
}
