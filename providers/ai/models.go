package ai

/*
	##### PROVIDER INPUT #####
*/

// Model identifies a model offered by a provider. Providers declare their
// supported identifiers as typed constants; the zero value selects the
// provider's default.
type Model string

// ChatRequest represents a single generation request
type ChatRequest struct {
	Model            Model             `json:"model,omitempty"`             // Empty selects the provider default
	Messages         []Message         `json:"messages"`                    // Conversation, excluding the system prompt
	SystemPrompt     string            `json:"system_prompt,omitempty"`     // Optional system prompt
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional sampling configuration

	// APIKey is the per-request credential. It overrides the key configured on
	// the provider and is never serialized.
	APIKey string `json:"-"`
}

// Message represents a single message in a conversation
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`
}

type GenerationConfig struct {
	Temperature     float32 `json:"temperature,omitempty"`       // Sampling temperature [0..2]
	TopP            float32 `json:"top_p,omitempty"`             // Nucleus sampling [0..1]
	MaxOutputTokens int     `json:"max_output_tokens,omitempty"` // Upper bound on generated tokens
	JSONOutput      bool    `json:"json_output,omitempty"`       // Ask the provider for application/json output when supported
}

/*
	##### PROVIDER OUTPUT #####
*/

type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
	ReasoningTokens  int `json:"reasoning_tokens,omitempty"`
}

// ChatResponse represents the provider's answer to a ChatRequest
type ChatResponse struct {
	Id           string `json:"id"`
	Model        string `json:"model"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason,omitempty"`
	Usage        *Usage `json:"usage,omitempty"`
	Refusal      string `json:"refusal,omitempty"` // Block reason when the prompt was filtered
}

/*
	##### ENUMS #####
*/

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Finish reasons shared across providers.
const (
	FinishReasonStop          = "stop"
	FinishReasonLength        = "length"
	FinishReasonContentFilter = "content_filter"
	FinishReasonError         = "error"
)
