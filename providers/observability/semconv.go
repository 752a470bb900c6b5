package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- LLM Provider Attributes ---

const (
	// AttrLLMProvider is the name of the LLM provider (e.g., "gemini")
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMResponseID is the unique response identifier
	AttrLLMResponseID = "llm.response.id"

	// AttrLLMFinishReason is the reason the generation finished
	AttrLLMFinishReason = "llm.finish_reason"

	// AttrLLMTokensTotal is the total number of tokens
	AttrLLMTokensTotal = "llm.tokens.total" // #nosec G101 -- Not a credential, token refers to LLM tokens
)

// --- Generation Attributes ---

const (
	// AttrPromptLength is the prompt length in bytes, after augmentation
	AttrPromptLength = "generation.prompt.length"

	// AttrResponseLength is the trimmed response length in bytes
	AttrResponseLength = "generation.response.length"

	// AttrCandidateLength is the length of the extracted JSON candidate
	AttrCandidateLength = "parse.candidate.length"

	// AttrCandidateForm is which bracket pair produced the candidate ("object", "array", "none")
	AttrCandidateForm = "parse.candidate.form"

	// AttrRepairEnabled reports whether the jsonrepair fallback was allowed
	AttrRepairEnabled = "parse.repair.enabled"

	// AttrRepairSucceeded reports whether the repaired candidate decoded
	AttrRepairSucceeded = "parse.repair.succeeded"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- General Attributes ---

const (
	AttrError             = "error"
	AttrDuration          = "duration"
	AttrStatus            = "status"
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanGenerateText wraps a single text generation call
	SpanGenerateText = "aitext.generate_text"

	// SpanGenerateJSON wraps augmentation, generation, extraction and decoding
	SpanGenerateJSON = "aitext.generate_json"
)

// --- Event Names ---

const (
	EventLLMRequestStart  = "llm.request.start"
	EventLLMRequestEnd    = "llm.request.end"
	EventTokensReceived   = "llm.tokens.received" // #nosec G101 -- Not a credential, token refers to LLM tokens
	EventCandidateChosen  = "parse.candidate.chosen"
	EventRepairAttempted  = "parse.repair.attempted"
	EventHTTPRequestReady = "http.request.prepared"
	EventHTTPRequestError = "http.request.error"
	EventHTTPResponse     = "http.response.received"
)

// --- Metric Names ---

const (
	// MetricGenerations counts generation calls that reached the provider
	MetricGenerations = "aitext.generations"

	// MetricGenerationErrors counts GenerateText failures of any kind
	MetricGenerationErrors = "aitext.generation.errors"

	// MetricParseFailures counts GenerateJSON calls whose text could not be decoded
	MetricParseFailures = "aitext.parse.failures"

	// MetricGenerationDuration is the histogram of provider round-trip time in milliseconds
	MetricGenerationDuration = "aitext.generation.duration_ms"
)
