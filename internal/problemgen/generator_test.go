package problemgen

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/mathtutor/internal/llm"
)

func TestGenerate_BareJSON(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: `{"problem_text":"Ali buys 3 pens at $1.20 each. How much does he pay?","final_answer":3.6}`},
	)
	g := New(mock, DefaultConfig())

	p, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Answer != 3.6 {
		t.Errorf("answer = %v, want 3.6", p.Answer)
	}
	if p.Text == "" {
		t.Error("expected non-empty problem text")
	}
}

func TestGenerate_ProseWrappedJSON(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Here is a problem for you:\n\n{\"problem_text\":\"A tank holds 240 litres. 3/8 is drained. How many litres remain?\",\"final_answer\":150}\n\nGood luck!"},
	)
	g := New(mock, DefaultConfig())

	p, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Answer != 150 {
		t.Errorf("answer = %v, want 150", p.Answer)
	}
}

func TestGenerate_NoJSONObject(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Sorry, I cannot help with that."},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background())
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if pe.Raw == "" {
		t.Error("expected ParseError to carry raw output")
	}
}

func TestGenerate_SchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"answer as string", `{"problem_text":"x","final_answer":"forty-two"}`},
		{"missing answer", `{"problem_text":"x"}`},
		{"empty problem text", `{"problem_text":"","final_answer":1}`},
		{"malformed json", `{"problem_text": oops}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Text: tt.text})
			g := New(mock, DefaultConfig())

			_, err := g.Generate(context.Background())
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestGenerate_ProviderErrorPassesThrough(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T: %v", err, err)
	}
}

func TestGenerate_SendsSyllabusPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: `{"problem_text":"x","final_answer":1}`},
	)
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System == "" {
		t.Error("expected a system prompt")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
}
