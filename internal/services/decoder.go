package services

import (
	"encoding/json"
	"strings"

	"github.com/quochoi227/ai-english-app/internal/config"
	"github.com/quochoi227/ai-english-app/utils"
)

// CleanModelOutput strips surrounding code-fence markers (with an optional
// language tag) and whitespace so the remainder can be parsed as JSON.
func CleanModelOutput(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = s[3:]
		i := 0
		for i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
			i++
		}
		s = s[i:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Decode parses raw model output into T and checks it against T's validation
// tags. Anything that fails, fails into the caller's fallback; a malformed
// model answer never reaches the client as an error.
func Decode[T any](raw string, fallback T) T {
	cleaned := CleanModelOutput(raw)

	var value T
	if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
		config.Logger.WithError(err).WithField("raw", preview(raw)).
			Warn("model output is not valid JSON, substituting fallback")
		return fallback
	}

	if err := utils.Validate.Struct(value); err != nil {
		config.Logger.WithError(err).WithField("raw", preview(raw)).
			Warn("model output failed validation, substituting fallback")
		return fallback
	}

	return value
}

func preview(s string) string {
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
