package gemini

import "github.com/leofalp/aitext/providers/ai"

// Supported model identifiers, ordered from the fastest tier to the most
// capable one. The set is closed; add a constant here to support a new model.
const (
	Model20FlashLite ai.Model = "gemini-2.0-flash-lite"
	Model20Flash     ai.Model = "gemini-2.0-flash"
	Model25Flash     ai.Model = "gemini-2.5-flash"
	Model25Pro       ai.Model = "gemini-2.5-pro"
)

// DefaultModel is used when a request does not name a model.
const DefaultModel = Model20FlashLite

var models = []ai.Model{Model20FlashLite, Model20Flash, Model25Flash, Model25Pro}

// Models returns the supported identifiers, fastest first.
func Models() []ai.Model {
	return append([]ai.Model(nil), models...)
}

// IsKnown reports whether m is one of the supported identifiers. The provider
// does not reject unknown models; they are forwarded to the API as-is.
func IsKnown(m ai.Model) bool {
	for _, known := range models {
		if m == known {
			return true
		}
	}
	return false
}

/*
	GEMINI API - REQUEST TYPES
*/

// generateContentRequest is the body of a generateContent call.
type generateContentRequest struct {
	Contents          []content          `json:"contents"`
	SystemInstruction *systemInstruction `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig  `json:"generationConfig,omitempty"`
}

type systemInstruction struct {
	Parts []part `json:"parts"`
}

// content is a role-tagged list of parts. Role is "user" or "model".
type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text    string `json:"text,omitempty"`
	Thought bool   `json:"thought,omitempty"` // true for thinking summaries, which are not part of the answer
}

type generationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	TopP             *float64 `json:"topP,omitempty"`
	MaxOutputTokens  *int     `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
}

/*
	GEMINI API - RESPONSE TYPES
*/

type generateContentResponse struct {
	Candidates     []candidate     `json:"candidates,omitempty"`
	PromptFeedback *promptFeedback `json:"promptFeedback,omitempty"`
	UsageMetadata  *usageMetadata  `json:"usageMetadata,omitempty"`
	ModelVersion   string          `json:"modelVersion,omitempty"`
	ResponseID     string          `json:"responseId,omitempty"`
}

type candidate struct {
	Content      *content `json:"content,omitempty"`
	FinishReason string   `json:"finishReason,omitempty"`
	Index        int      `json:"index,omitempty"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

type usageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount,omitempty"`
	CandidatesTokenCount int `json:"candidatesTokenCount,omitempty"`
	TotalTokenCount      int `json:"totalTokenCount,omitempty"`
	ThoughtsTokenCount   int `json:"thoughtsTokenCount,omitempty"`
}
