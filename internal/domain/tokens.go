package domain

import (
	"math"
	"strings"
)

// MaxEstimatedTokens is the hard ceiling enforced before any network call
const MaxEstimatedTokens = 16000

// EstimateTokens approximates the token count of text from its word count
func EstimateTokens(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) * 1.33 * 1.20))
}

// ValidatePromptLength rejects text estimated above MaxEstimatedTokens
func ValidatePromptLength(text string) error {
	estimated := EstimateTokens(text)
	if estimated > MaxEstimatedTokens {
		return &PromptTooLongError{Estimated: estimated, Limit: MaxEstimatedTokens}
	}
	return nil
}
