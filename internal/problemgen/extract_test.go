package problemgen

import "testing"

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"problem_text":"x","final_answer":1}`,
			want: `{"problem_text":"x","final_answer":1}`,
		},
		{
			name: "prose wrapped",
			in:   "Sure! Here is your problem:\n{\"problem_text\":\"x\",\"final_answer\":1}\nHope it helps!",
			want: `{"problem_text":"x","final_answer":1}`,
		},
		{
			name: "markdown fenced",
			in:   "```json\n{\"problem_text\":\"x\",\"final_answer\":1}\n```",
			want: `{"problem_text":"x","final_answer":1}`,
		},
		{
			name: "multiple objects takes first",
			in:   `{"a":1} and also {"b":2}`,
			want: `{"a":1}`,
		},
		{
			name: "nested object",
			in:   `result: {"outer":{"inner":1},"final_answer":2}`,
			want: `{"outer":{"inner":1},"final_answer":2}`,
		},
		{
			name: "brace inside string",
			in:   `{"problem_text":"use {x} as a placeholder","final_answer":1}`,
			want: `{"problem_text":"use {x} as a placeholder","final_answer":1}`,
		},
		{
			name: "escaped quote inside string",
			in:   `{"problem_text":"she said \"}\" loudly","final_answer":1}`,
			want: `{"problem_text":"she said \"}\" loudly","final_answer":1}`,
		},
		{
			name:    "no object at all",
			in:      "I could not generate a problem this time.",
			wantErr: true,
		},
		{
			name:    "empty input",
			in:      "",
			wantErr: true,
		},
		{
			name:    "unbalanced braces",
			in:      `{"problem_text":"x","final_answer":1`,
			wantErr: true,
		},
		{
			name:    "open brace only",
			in:      "here you go: {",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractObject(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
