package llm

import "testing"

func TestExtractLastPercent(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{
			name:  "single value",
			input: "Probability: 73%",
			want:  73,
		},
		{
			name:  "last occurrence wins",
			input: "The base rate is around 30%, but recent news pushes this higher.\nProbability: 73%",
			want:  73,
		},
		{
			name:  "decimal value",
			input: "Probability: 2.5%",
			want:  2.5,
		},
		{
			name:  "space before percent sign",
			input: "I estimate 60 % odds.",
			want:  60,
		},
		{
			name:  "boundary values",
			input: "Could be 0% or 100%. Probability: 100%",
			want:  100,
		},
		{
			name:    "no percentage",
			input:   "I cannot estimate this.",
			wantErr: true,
		},
		{
			name:    "out of range",
			input:   "Probability: 250%",
			wantErr: true,
		},
		{
			name:    "empty response",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractLastPercent(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
