package advisor

import (
	"testing"

	"github.com/brickmgr/brick"
)

func TestParseSuggestion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Suggestion
		err   bool
	}{
		{
			name:  "flat object",
			input: `{"suggestedPrice": 150.0, "minPrice": 120.0, "maxPrice": 180.0, "reasoning": "fair market"}`,
			want:  Suggestion{Price: brick.M(150.0), MinPrice: brick.M(120.0), MaxPrice: brick.M(180.0), Reasoning: "fair market"},
		},
		{
			// models occasionally wrap the schema in an extra object
			name:  "wrapped object",
			input: `{"result": {"suggestedPrice": 99.9, "minPrice": 80, "maxPrice": 120, "reasoning": "ok"}}`,
			want:  Suggestion{Price: brick.M(99.9), MinPrice: brick.M(80.0), MaxPrice: brick.M(120.0), Reasoning: "ok"},
		},
		{
			name:  "missing field",
			input: `{"suggestedPrice": 150.0, "reasoning": "fair market"}`,
			err:   true,
		},
		{
			name:  "wrong type",
			input: `{"suggestedPrice": "150", "minPrice": 120, "maxPrice": 180, "reasoning": "x"}`,
			err:   true,
		},
		{
			name:  "not json",
			input: `I think R$150 is fair.`,
			err:   true,
		},
		{
			name:  "empty",
			input: "",
			err:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSuggestion(tt.input)
			if tt.err {
				if err == nil {
					t.Fatalf("parseSuggestion(%q) = %+v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSuggestion(%q): %v", tt.input, err)
			}
			if !got.Price.Equal(tt.want.Price) || !got.MinPrice.Equal(tt.want.MinPrice) ||
				!got.MaxPrice.Equal(tt.want.MaxPrice) || got.Reasoning != tt.want.Reasoning {
				t.Errorf("parseSuggestion = %+v, want %+v", got, tt.want)
			}
		})
	}
}
