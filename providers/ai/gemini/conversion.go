package gemini

import (
	"fmt"
	"strings"
	"time"

	"github.com/leofalp/aitext/providers/ai"
)

// requestToGemini converts an ai.ChatRequest to a generateContentRequest.
func requestToGemini(request ai.ChatRequest) generateContentRequest {
	req := generateContentRequest{
		Contents:         buildContents(request.Messages),
		GenerationConfig: buildGenerationConfig(request.GenerationConfig),
	}

	if request.SystemPrompt != "" {
		req.SystemInstruction = &systemInstruction{
			Parts: []part{{Text: request.SystemPrompt}},
		}
	}

	return req
}

// buildContents maps roles: user -> user, assistant -> model. System messages
// found in the conversation are sent as user turns since Gemini only accepts
// them through systemInstruction.
func buildContents(messages []ai.Message) []content {
	contents := make([]content, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleAssistant:
			if msg.Content == "" {
				continue
			}
			contents = append(contents, content{Role: "model", Parts: []part{{Text: msg.Content}}})
		default:
			contents = append(contents, content{Role: "user", Parts: []part{{Text: msg.Content}}})
		}
	}

	return contents
}

func buildGenerationConfig(cfg *ai.GenerationConfig) *generationConfig {
	if cfg == nil {
		return nil
	}

	gc := &generationConfig{}

	if cfg.Temperature > 0 {
		t := float64(cfg.Temperature)
		gc.Temperature = &t
	}

	if cfg.TopP > 0 {
		p := float64(cfg.TopP)
		gc.TopP = &p
	}

	if cfg.MaxOutputTokens > 0 {
		maxTokens := cfg.MaxOutputTokens
		gc.MaxOutputTokens = &maxTokens
	}

	if cfg.JSONOutput {
		gc.ResponseMimeType = "application/json"
	}

	return gc
}

// geminiToGeneric converts a generateContentResponse to ai.ChatResponse.
// Only the first candidate is used; thought parts are dropped.
func geminiToGeneric(resp generateContentResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:    resp.ResponseID,
		Model: resp.ModelVersion,
	}
	if result.Id == "" {
		result.Id = fmt.Sprintf("gemini-%d", time.Now().UnixNano())
	}

	if resp.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
			ReasoningTokens:  resp.UsageMetadata.ThoughtsTokenCount,
		}
	}

	if len(resp.Candidates) == 0 {
		result.FinishReason = ai.FinishReasonError
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			result.FinishReason = ai.FinishReasonContentFilter
			result.Refusal = resp.PromptFeedback.BlockReason
		}
		return result
	}

	first := resp.Candidates[0]
	result.FinishReason = mapFinishReason(first.FinishReason)

	if first.Content != nil {
		var textParts []string
		for _, p := range first.Content.Parts {
			if p.Text != "" && !p.Thought {
				textParts = append(textParts, p.Text)
			}
		}
		result.Content = strings.Join(textParts, "")
	}

	return result
}

func mapFinishReason(geminiReason string) string {
	switch geminiReason {
	case "MAX_TOKENS":
		return ai.FinishReasonLength
	case "SAFETY", "RECITATION", "BLOCKLIST", "PROHIBITED_CONTENT", "SPII":
		return ai.FinishReasonContentFilter
	default:
		return ai.FinishReasonStop
	}
}
