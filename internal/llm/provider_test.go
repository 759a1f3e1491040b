package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first answer", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "second answer"},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "first answer" {
		t.Fatalf("expected %q, got %q", "first answer", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "second answer" {
		t.Fatalf("expected %q, got %q", "second answer", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "ok"},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"gemini missing key", Config{Provider: "gemini"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"openai missing key", Config{Provider: "openai"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"unknown provider", Config{Provider: "llama-at-home"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MATHTUTOR_LLM_PROVIDER", "openai")
	t.Setenv("MATHTUTOR_OPENAI_API_KEY", "sk-test")
	t.Setenv("MATHTUTOR_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q, want sk-test", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.5-flash" {
		t.Errorf("friendly name = %q, want gemini-2.5-flash", got)
	}
	if got := resolveModel("gemini-exp-1234", geminiModels); got != "gemini-exp-1234" {
		t.Errorf("direct ID = %q, want pass-through", got)
	}
}
