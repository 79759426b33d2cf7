package realtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/aviary-ai/aviary/schema"
	"github.com/aviary-ai/aviary/tools/calculator"
	"github.com/aviary-ai/aviary/tools/clock"
	"github.com/aviary-ai/aviary/tools/filesearch"
	"github.com/aviary-ai/aviary/tools/weather"
	"github.com/aviary-ai/aviary/tools/webscraper"
	"github.com/aviary-ai/aviary/tools/websearch"
)

// ClockFunction reports the current time. The argument is an IANA timezone
// name, empty for UTC.
func ClockFunction(t *clock.Tool) Function {
	return Function{
		Name:           "clock",
		Description:    "Reports the current time.",
		ArgDescription: "IANA timezone name, empty for UTC.",
		Call: func(ctx context.Context, argument string) (string, []schema.Citation, error) {
			out, err := t.Run(ctx, clock.NewInput(strings.TrimSpace(argument)))
			if err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("The current time in %s is %s.", out.Timezone, out.Time), nil, nil
		},
	}
}

// WeatherFunction fetches current conditions for a place name.
func WeatherFunction(t *weather.Tool) Function {
	return Function{
		Name:           "weather",
		Description:    "Fetches current weather conditions for a location.",
		ArgDescription: "City or place name.",
		Call: func(ctx context.Context, argument string) (string, []schema.Citation, error) {
			out, err := t.Run(ctx, weather.NewInput(strings.TrimSpace(argument)))
			if err != nil {
				return "", nil, err
			}
			content := fmt.Sprintf("Current weather in %s: %s, %.1f°C, wind %.1f km/h.",
				out.Location, out.Condition, out.TemperatureC, out.WindSpeedKmh)
			return content, nil, nil
		},
	}
}

// CalculatorFunction evaluates a mathematical expression.
func CalculatorFunction(t *calculator.Tool) Function {
	return Function{
		Name:           "calculator",
		Description:    "Evaluates mathematical expressions.",
		ArgDescription: "The expression to evaluate, e.g. '2 + 2'.",
		Call: func(ctx context.Context, argument string) (string, []schema.Citation, error) {
			out, err := t.Run(ctx, calculator.NewInput(argument, nil))
			if err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("%s = %v", argument, out.Result), nil, nil
		},
	}
}

// SearchFunction runs a web search and summarizes the hits, citing their
// URLs.
func SearchFunction(t *websearch.Tool) Function {
	return Function{
		Name:           "web_search",
		Description:    "Searches the web for information, news and references.",
		ArgDescription: "The search query.",
		Call: func(ctx context.Context, argument string) (string, []schema.Citation, error) {
			out, err := t.Run(ctx, websearch.NewInput(websearch.GeneralCategory, []string{argument}))
			if err != nil {
				return "", nil, err
			}
			if len(out.Results) == 0 {
				return "No search results found.", nil, nil
			}
			var (
				b         strings.Builder
				citations []schema.Citation
			)
			for _, item := range out.Results {
				fmt.Fprintf(&b, "- %s: %s\n", item.Title, item.Content)
				citations = append(citations, schema.Citation{
					Source:  item.URL,
					Title:   item.Title,
					Snippet: item.Content,
				})
			}
			return b.String(), citations, nil
		},
	}
}

// ScraperFunction fetches a page and returns its readable content as
// markdown.
func ScraperFunction(t *webscraper.Tool) Function {
	return Function{
		Name:           "web_scraper",
		Description:    "Fetches a web page and extracts its readable content.",
		ArgDescription: "The URL to fetch.",
		Call: func(ctx context.Context, argument string) (string, []schema.Citation, error) {
			link := strings.TrimSpace(argument)
			out, err := t.Run(ctx, webscraper.NewInput(link, false))
			if err != nil {
				return "", nil, err
			}
			citation := schema.Citation{Source: link}
			if out.Metadata != nil {
				citation.Title = out.Metadata.Title
			}
			return out.Content, []schema.Citation{citation}, nil
		},
	}
}

// FileSearchFunction searches the ingested document store by meaning and
// cites the source documents of the matches.
func FileSearchFunction(t *filesearch.Tool) Function {
	return Function{
		Name:           "file_search",
		Description:    "Searches ingested documents such as policies and manuals.",
		ArgDescription: "The question to search the documents with.",
		Call: func(ctx context.Context, argument string) (string, []schema.Citation, error) {
			out, err := t.Run(ctx, filesearch.NewInput(argument))
			if err != nil {
				return "", nil, err
			}
			if len(out.Matches) == 0 {
				return "No matching documents found.", nil, nil
			}
			var (
				b         strings.Builder
				citations []schema.Citation
			)
			for _, match := range out.Matches {
				fmt.Fprintf(&b, "%s\n\n", match.Content)
				source := match.Meta["filename"]
				if source == "" {
					source = match.Meta["source"]
				}
				if source != "" {
					citations = append(citations, schema.Citation{
						Source:  source,
						Snippet: match.Content,
					})
				}
			}
			return strings.TrimSpace(b.String()), citations, nil
		},
	}
}
