// Package advisor wraps the generative-AI collaborator used to enrich item
// entry: drafting advertisement copy and suggesting a fair sale price.
//
// Both calls are optional enrichments. Every failure, including a
// malformed model response, comes back as a *ServiceError so that callers
// can log it and move on; no ledger operation ever depends on the advisor.
package advisor

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/brickmgr/brick"
)

// DefaultModel is the model queried when BKM_ADVISOR_MODEL is not set.
const DefaultModel = "gemini-2.5-flash"

// EnvModel overrides the model name.
const EnvModel = "BKM_ADVISOR_MODEL"

// ServiceError reports a failed or unusable advisory call.
type ServiceError struct {
	Op  string // "generate listing" or "suggest price"
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("advisory service: could not %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Suggestion is the structured price advice for an item.
type Suggestion struct {
	Price     brick.Money // the suggested asking price
	MinPrice  brick.Money
	MaxPrice  brick.Money
	Reasoning string
}

// Advisor issues one-shot generation calls. Create it with New.
type Advisor struct {
	client *genai.Client
	model  string
}

// New creates an Advisor. The genai client reads its API key from the
// environment (GEMINI_API_KEY).
func New(ctx context.Context) (*Advisor, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, &ServiceError{Op: "initialize client", Err: err}
	}
	model := os.Getenv(EnvModel)
	if model == "" {
		model = DefaultModel
	}
	return &Advisor{client: client, model: model}, nil
}

// GenerateListing drafts advertisement copy for a second-hand item: a
// catchy title, a benefit-focused description and hashtag suggestions, in
// a friendly but professional tone.
func (a *Advisor) GenerateListing(ctx context.Context, name string, condition brick.Condition, category brick.Category) (string, error) {
	prompt := fmt.Sprintf(`Write a persuasive, professional for-sale listing for the following second-hand item:
Name: %s
Condition: %s
Category: %s

The listing must include:
1. A catchy title.
2. A detailed description highlighting benefits.
3. Suggested hashtags.
4. A friendly but professional tone.`, name, condition, category)

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &ServiceError{Op: "generate listing", Err: err}
	}
	text := resp.Text()
	if text == "" {
		return "", &ServiceError{Op: "generate listing", Err: fmt.Errorf("empty response")}
	}
	return text, nil
}

// suggestionSchema constrains the model to the structured price advice.
var suggestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"suggestedPrice": {Type: genai.TypeNumber},
		"reasoning":      {Type: genai.TypeString},
		"minPrice":       {Type: genai.TypeNumber},
		"maxPrice":       {Type: genai.TypeNumber},
	},
	Required: []string{"suggestedPrice", "reasoning", "minPrice", "maxPrice"},
}

// SuggestPrice asks for a fair asking price for an item given its name and
// condition.
func (a *Advisor) SuggestPrice(ctx context.Context, name string, condition brick.Condition) (Suggestion, error) {
	prompt := fmt.Sprintf(`Act as a second-hand market pricing expert. Suggest a fair sale price in %s for:
Item: %s
Condition: %s

Answer in JSON.`, brick.Currency, name, condition)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   suggestionSchema,
	}
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), config)
	if err != nil {
		return Suggestion{}, &ServiceError{Op: "suggest price", Err: err}
	}
	suggestion, err := parseSuggestion(resp.Text())
	if err != nil {
		return Suggestion{}, &ServiceError{Op: "suggest price", Err: err}
	}
	return suggestion, nil
}
