package embedder

type Provider = string

const (
	ProviderOpenAI Provider = "OpenAI"
	ProviderGemini Provider = "Gemini"
)
