package interview

import "testing"

func TestDefaultQuestionsKeys(t *testing.T) {
	want := []string{
		"error_message",
		"expected",
		"steps",
		"frequency",
		"environment",
		"impact",
		"workarounds",
		"artifacts",
	}

	questions := DefaultQuestions()
	if len(questions) != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), len(questions))
	}
	for i, q := range questions {
		if q.Key != want[i] {
			t.Errorf("question %d: key = %q, want %q", i, q.Key, want[i])
		}
		if q.Prompt == "" {
			t.Errorf("question %q has empty prompt", q.Key)
		}
		if q.Detail == "" {
			t.Errorf("question %q has empty detail", q.Key)
		}
	}
}

// TestDefaultQuestionsCopy verifies callers cannot corrupt the canonical
// catalog through the returned slice.
func TestDefaultQuestionsCopy(t *testing.T) {
	first := DefaultQuestions()
	first[0].Key = "mutated"
	first[0].Prompt = "mutated"

	second := DefaultQuestions()
	if second[0].Key != "error_message" {
		t.Errorf("canonical catalog corrupted: key = %q", second[0].Key)
	}
}
