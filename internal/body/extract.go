package body

import "regexp"

// Fallback annotation extraction over decoded plain text. These are the
// only signal for stores that predate the structured annotation side
// tables, and for categories the side tables missed. Intentionally
// simple and case-preserving: matching is case-insensitive at the query
// layer, not here.
var (
	hashtagPattern = regexp.MustCompile(`#(\w+)`)
	mentionPattern = regexp.MustCompile(`@(\w+)`)
	// A maximal run of non-whitespace, non-bracket, non-quote characters
	// after the scheme, with trailing sentence punctuation excluded from
	// the final character.
	linkPattern = regexp.MustCompile("https?://[^\\s<>\"{}|\\\\^`\\[\\]]+[^\\s<>\"{}|\\\\^`\\[\\].,!?;:)]")
)

// Hashtags returns the deduplicated hashtag tokens in text, without the
// leading sigil.
func Hashtags(text string) []string {
	return captures(hashtagPattern, text)
}

// Mentions returns the deduplicated mention tokens in text, without the
// leading sigil.
func Mentions(text string) []string {
	return captures(mentionPattern, text)
}

// Links returns the deduplicated http/https URLs in text.
func Links(text string) []string {
	if text == "" {
		return nil
	}
	return dedupe(linkPattern.FindAllString(text, -1))
}

func captures(pattern *regexp.Regexp, text string) []string {
	if text == "" {
		return nil
	}
	matches := pattern.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return nil
	}
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return dedupe(tokens)
}

// dedupe removes exact duplicates, keeping first-seen order.
func dedupe(values []string) []string {
	if len(values) < 2 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
