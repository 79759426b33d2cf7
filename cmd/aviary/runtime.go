package main

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/philippgille/chromem-go"
	"google.golang.org/api/option"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/agents/opsdata"
	"github.com/aviary-ai/aviary/agents/realtime"
	"github.com/aviary-ai/aviary/components/embedder"
	"github.com/aviary-ai/aviary/components/embedder/providers"
	"github.com/aviary-ai/aviary/components/systemprompt/simple"
	"github.com/aviary-ai/aviary/components/vectordb"
	"github.com/aviary-ai/aviary/components/vectordb/engines"
	"github.com/aviary-ai/aviary/config"
	"github.com/aviary-ai/aviary/orchestrator"
	"github.com/aviary-ai/aviary/schema"
	"github.com/aviary-ai/aviary/tools"
	"github.com/aviary-ai/aviary/tools/agenttool"
	"github.com/aviary-ai/aviary/tools/calculator"
	"github.com/aviary-ai/aviary/tools/clock"
	"github.com/aviary-ai/aviary/tools/filesearch"
	"github.com/aviary-ai/aviary/tools/weather"
	"github.com/aviary-ai/aviary/tools/webscraper"
	"github.com/aviary-ai/aviary/tools/websearch"
)

const storePath = ".aviary/store"

const selectorPrompt = "You coordinate a set of tools for an airline operations assistant. " +
	"Decide which of the available tools the request needs and with what argument. " +
	"Select no tools when none of them can help with the request."

const translatorPrompt = "You translate airline operations questions into governed data queries. " +
	"Pick the subject the question concerns, restate the question as a focused data query " +
	"and extract any filters and time range it states. " +
	"Mark the request unanswerable, with a reason, when it does not concern the operational data."

// buildOrchestrator wires the configured capability agents behind tool
// adapters and an LLM selector.
func buildOrchestrator(cfg *config.Config) (*orchestrator.Orchestrator, error) {
	clt, err := cfg.LLM.Client()
	if err != nil {
		return nil, err
	}

	selectorAgent := agents.NewAgent[schema.Request, orchestrator.Plan](
		agents.WithClient(clt),
		agents.WithModel(cfg.LLM.Model),
		agents.WithSystemPromptGenerator(simple.New(selectorPrompt)),
		agents.WithName("selector"),
	)

	adapters := make([]*agenttool.Tool, 0, len(cfg.Agents))
	for i := range cfg.Agents {
		agentCfg := &cfg.Agents[i]
		capability, err := buildCapability(cfg, agentCfg)
		if err != nil {
			return nil, fmt.Errorf("build agent %q: %w", agentCfg.Name, err)
		}
		adapters = append(adapters, agenttool.New(capability, toolLogging(agentCfg.Name)...))
	}

	return orchestrator.New(
		orchestrator.WithSelector(orchestrator.NewLLMSelector(selectorAgent)),
		orchestrator.WithTools(adapters...),
	)
}

func buildCapability(cfg *config.Config, agentCfg *config.Agent) (agents.Capability, error) {
	desc := agents.Descriptor{
		Name:           agentCfg.Name,
		Description:    agentCfg.Description,
		ArgName:        "query",
		ArgDescription: "The natural language request for this agent.",
	}
	if agentCfg.Data != nil {
		return buildDataAgent(cfg, agentCfg, desc)
	}
	return buildRealtimeAgent(cfg, agentCfg, desc)
}

func buildDataAgent(cfg *config.Config, agentCfg *config.Agent, desc agents.Descriptor) (agents.Capability, error) {
	opts := []opsdata.ClientOption{opsdata.WithBaseURL(agentCfg.Data.Endpoint)}
	if token := agentCfg.Data.Token; token != "" {
		opts = append(opts, opsdata.WithToken(func(ctx context.Context) (string, error) {
			return token, nil
		}))
	}
	clt, err := opsdata.NewClient(opts...)
	if err != nil {
		return nil, err
	}

	llmCfg := agentCfg.LLM
	if llmCfg == nil {
		llmCfg = &cfg.LLM
	}
	llmClt, err := llmCfg.Client()
	if err != nil {
		return nil, err
	}
	translatorAgent := agents.NewAgent[schema.Request, opsdata.OpsQuery](
		agents.WithClient(llmClt),
		agents.WithModel(llmCfg.Model),
		agents.WithSystemPromptGenerator(simple.New(translatorPrompt)),
		agents.WithName(agentCfg.Name+"_translator"),
	)

	agent, err := opsdata.New(
		opsdata.WithClient(clt),
		opsdata.WithDescriptor(desc),
		opsdata.WithTranslator(opsdata.NewLLMTranslator(translatorAgent)),
		opsdata.WithInstructions(agentCfg.Instructions),
		opsdata.WithModel(agentCfg.Data.Model),
	)
	if err != nil {
		return nil, err
	}
	return agent, nil
}

func buildRealtimeAgent(cfg *config.Config, agentCfg *config.Agent, desc agents.Descriptor) (agents.Capability, error) {
	llmCfg := agentCfg.LLM
	if llmCfg == nil {
		llmCfg = &cfg.LLM
	}
	clt, err := llmCfg.Client()
	if err != nil {
		return nil, err
	}

	functions := []realtime.Function{
		realtime.ClockFunction(clock.New()),
		realtime.CalculatorFunction(calculator.New()),
		realtime.WeatherFunction(weather.New()),
	}
	if agentCfg.Features.WebSearch {
		functions = append(functions,
			realtime.SearchFunction(websearch.New(websearch.WithBaseURL(agentCfg.Features.SearxngURL))),
			realtime.ScraperFunction(webscraper.New()),
		)
	}
	if agentCfg.Features.FileSearch {
		fileSearch, err := buildFileSearch(cfg, agentCfg.Features.Collection)
		if err != nil {
			return nil, err
		}
		functions = append(functions, realtime.FileSearchFunction(fileSearch))
	}

	instructions := agentCfg.Instructions
	if instructions == "" {
		instructions = "You route live information requests to the function that answers them."
	}
	dispatchAgent := agents.NewAgent[schema.Request, realtime.Dispatch](
		agents.WithClient(clt),
		agents.WithModel(llmCfg.Model),
		agents.WithSystemPromptGenerator(simple.New(instructions)),
		agents.WithName(agentCfg.Name+"_dispatcher"),
	)

	agent, err := realtime.New(
		realtime.WithDescriptor(desc),
		realtime.WithDispatcher(realtime.NewLLMDispatcher(dispatchAgent)),
		realtime.WithFunctions(functions...),
	)
	if err != nil {
		return nil, err
	}
	return agent, nil
}

func buildFileSearch(cfg *config.Config, collection string) (*filesearch.Tool, error) {
	emb, err := buildEmbedder(cfg)
	if err != nil {
		return nil, err
	}
	engine, err := buildEngine()
	if err != nil {
		return nil, err
	}
	opts := []filesearch.Option{
		filesearch.WithEmbedder(emb),
		filesearch.WithEngine(engine),
	}
	if collection != "" {
		opts = append(opts, filesearch.WithCollection(collection))
	}
	return filesearch.New(opts...)
}

func buildEmbedder(cfg *config.Config) (embedder.Embedder, error) {
	llmCfg := cfg.Embedder
	if llmCfg == nil {
		return nil, fmt.Errorf("no embedder configured")
	}
	switch llmCfg.Provider {
	case "openai":
		return providers.FromOpenAI(llmCfg.OpenAIClient(), embedder.WithModel(llmCfg.Model)), nil
	case "gemini":
		clt, err := genai.NewClient(context.Background(), option.WithAPIKey(llmCfg.APIKey))
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return providers.FromGemini(clt, embedder.WithModel(llmCfg.Model)), nil
	}
	return nil, agents.NewConfigError("embedder", fmt.Sprintf("provider %q has no embeddings API", llmCfg.Provider))
}

func buildEngine() (vectordb.Engine, error) {
	db, err := chromem.NewPersistentDB(storePath, false)
	if err != nil {
		return nil, fmt.Errorf("open vector store: %w", err)
	}
	return engines.FromChromem(db), nil
}

// toolLogging attaches hooks so every tool call and outcome is visible at
// debug level.
func toolLogging(name string) []tools.Option {
	return []tools.Option{
		tools.WithStartHook(func(ctx context.Context, tool tools.AnonymousTool, input any) {
			logger.Debugw("tool call", "tool", name, "input", input)
		}),
		tools.WithEndHook(func(ctx context.Context, tool tools.AnonymousTool, input, output any) {
			logger.Debugw("tool done", "tool", name)
		}),
		tools.WithErrorHook(func(ctx context.Context, tool tools.AnonymousTool, input any, err error) {
			logger.Warnw("tool failed", "tool", name, "error", err)
		}),
	}
}
