package problemgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mathtutor/internal/llm"
)

// Generator produces word problems using the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// problemOutput is the raw LLM payload before validation.
type problemOutput struct {
	ProblemText string  `json:"problem_text"`
	FinalAnswer float64 `json:"final_answer"`
}

// Generate produces a single word problem. The model is asked for a JSON
// object but may wrap it in prose; the first balanced object is extracted
// and validated. A response with no usable object fails with *ParseError.
func (g *Generator) Generate(ctx context.Context) (*Problem, error) {
	ctx = llm.WithPurpose(ctx, "problem-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userPrompt},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	obj, err := ExtractObject(resp.Text)
	if err != nil {
		return nil, &ParseError{Raw: resp.Text, Err: err}
	}

	if err := validateProblem(obj); err != nil {
		return nil, &ParseError{Raw: resp.Text, Err: err}
	}

	var raw problemOutput
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return nil, &ParseError{Raw: resp.Text, Err: err}
	}

	return &Problem{
		Text:   raw.ProblemText,
		Answer: raw.FinalAnswer,
	}, nil
}
