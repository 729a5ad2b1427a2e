package domain

import (
	"regexp"
	"strings"
)

var (
	thinkBlockPattern  = regexp.MustCompile(`(?is)<think>.*?</think>`)
	displayMathPattern = regexp.MustCompile(`\\\[([\s\S]*?)\\\]`)
	inlineMathPattern  = regexp.MustCompile(`\\\(([\s\S]*?)\\\)`)
	inlineSpacePattern = regexp.MustCompile(`[^\S\n]+`)
	blankLinesPattern  = regexp.MustCompile(`\n{3,}`)
	anySpacePattern    = regexp.MustCompile(`\s+`)
	punctuationPattern = regexp.MustCompile(`([.,:;!?])\s*`)
)

// ProcessResponse cleans model output: reasoning blocks are removed, LaTeX
// delimiters become dollar delimiters and whitespace is collapsed.
func ProcessResponse(text string) string {
	out := processOnce(text)
	// Removing a block can join the halves of an outer tag; repeat until stable.
	for i := 0; i < maxProcessPasses; i++ {
		next := processOnce(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

const maxProcessPasses = 8

func processOnce(text string) string {
	out := thinkBlockPattern.ReplaceAllString(text, "")
	out = displayMathPattern.ReplaceAllString(out, "$$$$${1}$$$$")
	out = inlineMathPattern.ReplaceAllString(out, "$$${1}$$")
	out = inlineSpacePattern.ReplaceAllString(out, " ")
	out = blankLinesPattern.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// NormalizeTranscription flattens a transcript to one line with a single
// space after each punctuation mark
func NormalizeTranscription(text string) string {
	out := anySpacePattern.ReplaceAllString(text, " ")
	out = punctuationPattern.ReplaceAllString(out, "${1} ")
	return strings.TrimSpace(out)
}

// ExtractDimensions keeps the WxH part of a size label such as "512x768 (2:3 Portrait)"
func ExtractDimensions(label string) string {
	if i := strings.IndexByte(label, ' '); i >= 0 {
		return label[:i]
	}
	return label
}
