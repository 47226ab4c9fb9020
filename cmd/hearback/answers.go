package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// loadAnswers reads a JSON object file mapping question keys to answers.
// An empty path yields an empty map. Non-string values are kept in their
// JSON text form.
func loadAnswers(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("answers file must contain a JSON object mapping keys to answers: %w", err)
	}

	answers := make(map[string]string, len(raw))
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			answers[key] = s
			continue
		}
		answers[key] = string(value)
	}
	return answers, nil
}
