// Package gemini implements [ai.Provider] for Google's Gemini generative
// language API (the generateContent endpoint).
//
// [New] reads GEMINI_API_KEY and GEMINI_API_BASE_URL from the environment;
// [GeminiProvider.WithAPIKey], [GeminiProvider.WithBaseURL] and
// [GeminiProvider.WithHttpClient] override them. A credential set on
// [ai.ChatRequest.APIKey] wins over the provider default, which lets one
// provider serve callers holding different keys concurrently.
//
// The supported models form a closed set ([Model20FlashLite], [Model20Flash],
// [Model25Flash], [Model25Pro]); [DefaultModel] is the fastest tier.
package gemini
