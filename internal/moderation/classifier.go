package moderation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinTopicLength and MaxTopicLength bound the trimmed topic, in runes.
	MinTopicLength = 2
	MaxTopicLength = 120

	// spamRunLength is the shortest run of one repeated character treated as spam.
	spamRunLength = 11
)

var (
	urlPattern     = regexp.MustCompile(`\bhttps?://`)
	harmfulPattern = regexp.MustCompile(`\bhow to (kill|hurt|harm|die|suicide)\b`)
	crisisPattern  = regexp.MustCompile(`\bi want to (die|kill myself|end it all)\b`)
)

// rule is a single check of the chain. match receives the normalized topic.
type rule struct {
	name   string
	reason string
	match  func(normalized string) bool
}

// rules are evaluated in order; the first match wins. The order decides which
// reason is reported when a topic violates several rules.
var rules = []rule{
	{name: "too_short", reason: ReasonTooShort, match: func(s string) bool {
		return utf8.RuneCountInString(s) < MinTopicLength
	}},
	{name: "too_long", reason: ReasonTooLong, match: func(s string) bool {
		return utf8.RuneCountInString(s) > MaxTopicLength
	}},
	{name: "url", reason: ReasonURL, match: urlPattern.MatchString},
	{name: "unsafe_markup", reason: ReasonUnsafeMarkup, match: func(s string) bool {
		return strings.ContainsAny(s, "<>")
	}},
	{name: "blocklist", reason: ReasonBlocklisted, match: containsBlocklisted},
	{name: "harmful", reason: ReasonHarmful, match: harmfulPattern.MatchString},
	{name: "crisis", reason: ReasonCrisis, match: crisisPattern.MatchString},
	{name: "spam", reason: ReasonSpam, match: hasRepeatedRun},
}

// Classify decides whether a raw topic may be sent to the fact oracle.
func Classify(raw string) Verdict {
	normalized := Normalize(raw)
	for _, r := range rules {
		if r.match(normalized) {
			return Deny(r.name, r.reason)
		}
	}
	return Allow()
}

// Normalize returns the form of a topic the rules are evaluated against:
// surrounding whitespace removed and lower-cased.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func containsBlocklisted(s string) bool {
	for _, term := range blocklist {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether s contains spamRunLength or more consecutive
// copies of the same character. Line breaks interrupt a run.
func hasRepeatedRun(s string) bool {
	var (
		prev rune
		run  int
	)
	for _, r := range s {
		if r == '\n' || r == '\r' {
			run = 0
			continue
		}
		if run > 0 && r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= spamRunLength {
			return true
		}
	}
	return false
}
