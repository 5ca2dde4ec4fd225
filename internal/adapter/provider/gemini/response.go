package gemini

import "fmt"

// generateRequest is the body of a generateContent call.
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int64 `json:"maxOutputTokens,omitempty"`
}

// generateResponse is the subset of the generateContent response we read.
type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

// errorResponse is returned by the API on non-2xx statuses.
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// text joins the parts of the first candidate.
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b []byte
	for _, p := range r.Candidates[0].Content.Parts {
		b = append(b, p.Text...)
	}
	return string(b)
}

// Finish reasons that mean the candidate was withheld by the API.
var blockingFinishReasons = map[string]bool{
	"SAFETY":     true,
	"RECITATION": true,
	"LANGUAGE":   true,
}

// blocked reports a response the API refused to answer: prompt feedback
// with no candidates, or a first candidate stopped by a blocking reason.
func (r *generateResponse) blocked() error {
	if len(r.Candidates) == 0 {
		if r.PromptFeedback == nil {
			return nil
		}
		reason := r.PromptFeedback.BlockReason
		if reason == "" {
			reason = "no candidates"
		}
		return fmt.Errorf("gemini: prompt blocked: %s", reason)
	}
	if reason := r.Candidates[0].FinishReason; blockingFinishReasons[reason] {
		return fmt.Errorf("gemini: response blocked: %s", reason)
	}
	return nil
}
