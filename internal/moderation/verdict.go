// Package moderation implements the rule-based topic classifier that gates
// every call to the fact oracle.
//
// The classifier is a fixed, ordered list of rules evaluated against a
// normalized copy of the input. The first rule that matches denies the topic
// and its reason is reported; if no rule matches the topic is allowed.
// Classification is pure: no I/O, no state, same input gives the same verdict.
package moderation

// Denial reasons. These strings are user-facing and are persisted verbatim
// as the warning reason of a request log entry.
const (
	ReasonTooShort     = "Topic too short."
	ReasonTooLong      = "Topic too long."
	ReasonURL          = "URLs are not allowed."
	ReasonUnsafeMarkup = "Potentially unsafe input."
	ReasonBlocklisted  = "Inappropriate content detected."
	ReasonHarmful      = "Harmful content not allowed."
	ReasonCrisis       = "Crisis content detected. Please seek help."
	ReasonSpam         = "Invalid input format."
)

// Verdict is the outcome of classifying a topic.
//
// Exactly one of two shapes is valid: Allowed with empty Reason and Rule,
// or denied with a non-empty Reason and the name of the rule that fired.
// Use Allow and Deny to build one.
type Verdict struct {
	Allowed bool
	Reason  string
	Rule    string
}

// Allow returns the allowed verdict.
func Allow() Verdict {
	return Verdict{Allowed: true}
}

// Deny returns a denied verdict for the given rule and reason.
func Deny(rule, reason string) Verdict {
	return Verdict{Reason: reason, Rule: rule}
}

// IsCrisis reports whether the topic was denied as a crisis phrase.
// Callers may use it to surface a help resource next to the warning.
func (v Verdict) IsCrisis() bool {
	return !v.Allowed && v.Reason == ReasonCrisis
}
