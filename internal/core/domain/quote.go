package domain

// Quote is a single quotation fetched for a request.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// DefaultQuote is shown when no quote provider answered.
var DefaultQuote = Quote{
	Text:   "Every moment is a fresh beginning.",
	Author: "T.S. Eliot",
}
