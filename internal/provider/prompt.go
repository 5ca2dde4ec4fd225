// Package provider holds what the fact oracle adapters share.
package provider

import "strings"

// FactPrompt builds the instruction sent to a text-generation model for topic.
// The model is asked for a single short fact so the response can be shown as is.
func FactPrompt(topic string) string {
	return strings.Join([]string{
		"You are a precise fact generator.",
		"Return exactly ONE interesting, non-obvious, factual tidbit about the given topic.",
		"Constraints:",
		"- <= 40 words",
		"- no opinions, no lists, no sources/links",
		"- avoid trivia everyone knows",
		`Topic: "` + topic + `"`,
	}, "\n")
}
