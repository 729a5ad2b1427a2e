package domain

import (
	"regexp"
	"sort"
)

var (
	placeholderPattern = regexp.MustCompile(`\{([\w.-]+)\}`)
	optionKeyPattern   = regexp.MustCompile(`^[\w.-]+$`)
)

// ValidOptionKey reports whether key can appear as a {key} placeholder:
// letters, digits, underscores, dots and dashes only
func ValidOptionKey(key string) bool {
	return optionKeyPattern.MatchString(key)
}

// Placeholders returns the distinct placeholder keys of a template, sorted
func Placeholders(template string) []string {
	seen := map[string]struct{}{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		seen[m[1]] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SubstitutePlaceholders replaces every {key} with options[key] in a single
// pass. Placeholders without a value are left as they are.
func SubstitutePlaceholders(template string, options map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		if v, ok := options[key]; ok {
			return v
		}
		return match
	})
}

// BuildUserPrompt appends the selected text to the prompt when there is any
func BuildUserPrompt(prompt string, selectedText *string) string {
	if selectedText == nil || *selectedText == "" {
		return prompt
	}
	return prompt + "\n\nText to process:\n" + *selectedText
}
