package models

type TranslateRequest struct {
	Text    string `json:"text" validate:"required"`
	Context string `json:"context" validate:"required"`
}

// TranslateResult is the shape the model is asked to produce. Explanation is
// null unless the source text is long enough to warrant one; at most two
// alternative phrasings are accepted.
type TranslateResult struct {
	Translation  string   `json:"translation" validate:"required"`
	Explanation  *string  `json:"explanation"`
	Alternatives []string `json:"alternatives" validate:"max=2,dive,required"`
}

// TranslateFallback wraps the raw model text when its reply could not be
// decoded, so the client still gets a usable translation field.
func TranslateFallback(raw string) TranslateResult {
	return TranslateResult{
		Translation:  raw,
		Explanation:  nil,
		Alternatives: []string{},
	}
}
