package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeAnswersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAnswersEmptyPath(t *testing.T) {
	answers, err := loadAnswers("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(answers) != 0 {
		t.Errorf("expected empty map, got %v", answers)
	}
}

func TestLoadAnswersObject(t *testing.T) {
	path := writeAnswersFile(t, `{"error_message": "HTTP 500", "impact": "low"}`)

	answers, err := loadAnswers(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answers["error_message"] != "HTTP 500" {
		t.Errorf("error_message = %q", answers["error_message"])
	}
	if answers["impact"] != "low" {
		t.Errorf("impact = %q", answers["impact"])
	}
}

// TestLoadAnswersCoercesValues verifies non-string JSON values keep their
// JSON text form instead of failing.
func TestLoadAnswersCoercesValues(t *testing.T) {
	path := writeAnswersFile(t, `{"frequency": 3, "impact": true}`)

	answers, err := loadAnswers(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answers["frequency"] != "3" {
		t.Errorf("frequency = %q, want %q", answers["frequency"], "3")
	}
	if answers["impact"] != "true" {
		t.Errorf("impact = %q, want %q", answers["impact"], "true")
	}
}

func TestLoadAnswersRejectsNonObject(t *testing.T) {
	path := writeAnswersFile(t, `["not", "an", "object"]`)

	_, err := loadAnswers(path)
	if err == nil {
		t.Fatal("expected error for non-object JSON, got nil")
	}
	if !strings.Contains(err.Error(), "JSON object") {
		t.Errorf("error = %q, want mention of JSON object", err)
	}
}

func TestLoadAnswersRejectsMalformedJSON(t *testing.T) {
	path := writeAnswersFile(t, `{broken`)

	if _, err := loadAnswers(path); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestLoadAnswersMissingFile(t *testing.T) {
	if _, err := loadAnswers(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
