package advisor

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"

	"github.com/brickmgr/brick"
)

// parseSuggestion extracts the structured price advice from the model's
// JSON text. The schema constrains the output, but models occasionally
// wrap the object in an extra layer, so the fields are located with a
// recursive-descent jsonpath rather than a fixed struct shape.
func parseSuggestion(text string) (Suggestion, error) {
	if text == "" {
		return Suggestion{}, fmt.Errorf("empty response")
	}
	var jobj any
	if err := json.Unmarshal([]byte(text), &jobj); err != nil {
		return Suggestion{}, fmt.Errorf("response is not JSON: %w", err)
	}

	price, err := number(jobj, "suggestedPrice")
	if err != nil {
		return Suggestion{}, err
	}
	low, err := number(jobj, "minPrice")
	if err != nil {
		return Suggestion{}, err
	}
	high, err := number(jobj, "maxPrice")
	if err != nil {
		return Suggestion{}, err
	}
	reasoning, err := str(jobj, "reasoning")
	if err != nil {
		return Suggestion{}, err
	}
	return Suggestion{
		Price:     brick.M(price),
		MinPrice:  brick.M(low),
		MaxPrice:  brick.M(high),
		Reasoning: reasoning,
	}, nil
}

func lookup(jobj any, field string) (any, error) {
	path := "$.." + field
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("missing field %q: %w", field, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, fmt.Errorf("missing field %q", field)
		}
		jval = jlist[0]
	}
	return jval, nil
}

func number(jobj any, field string) (float64, error) {
	jval, err := lookup(jobj, field)
	if err != nil {
		return 0, err
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("field %q: not a number: %v", field, jval)
	}
	return val, nil
}

func str(jobj any, field string) (string, error) {
	jval, err := lookup(jobj, field)
	if err != nil {
		return "", err
	}
	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("field %q: not a string: %v", field, jval)
	}
	return val, nil
}
