package providers

import (
	"github.com/aviary-ai/aviary/components/embedder/providers/gemini"
	"github.com/aviary-ai/aviary/components/embedder/providers/openai"
)

var (
	FromOpenAI = openai.New
	FromGemini = gemini.New
)
