package interview

import (
	"errors"
	"strings"
	"testing"
)

// fullAnswers is a complete answer set with every rule satisfied.
var fullAnswers = map[string]string{
	"error_message": "HTTP 500",
	"expected":      "HTTP 200",
	"steps":         "open page -> click save",
	"frequency":     "always",
	"environment":   "macOS+Chrome",
	"impact":        "blocking",
	"workarounds":   "none",
	"artifacts":     "req-id=abc-123",
}

func mapProvider(t *testing.T, answers map[string]string) AnswerFunc {
	t.Helper()
	return func(q Question) (string, error) {
		return answers[q.Key], nil
	}
}

func newAgent(t *testing.T, questions []Question) *Agent {
	t.Helper()
	agent, err := New(questions)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return agent
}

func TestNewRejectsDuplicateKeys(t *testing.T) {
	questions := []Question{
		{Key: "steps", Prompt: "a"},
		{Key: "steps", Prompt: "b"},
	}
	if _, err := New(questions); err == nil {
		t.Fatal("expected error for duplicate keys, got nil")
	}
}

func TestNewCopiesCatalog(t *testing.T) {
	questions := []Question{{Key: "one", Prompt: "first"}}
	agent := newAgent(t, questions)

	questions[0].Prompt = "mutated"
	if got := agent.Questions()[0].Prompt; got != "first" {
		t.Errorf("agent catalog mutated through caller slice: prompt = %q", got)
	}
}

func TestConductPreservesOrder(t *testing.T) {
	agent := newAgent(t, nil)
	responses, err := agent.Conduct(mapProvider(t, fullAnswers))
	if err != nil {
		t.Fatalf("Conduct: %v", err)
	}

	catalog := agent.Questions()
	if len(responses) != len(catalog) {
		t.Fatalf("expected %d responses, got %d", len(catalog), len(responses))
	}
	for i, r := range responses {
		if r.Key != catalog[i].Key {
			t.Errorf("response %d: key = %q, want %q", i, r.Key, catalog[i].Key)
		}
		if r.Question != catalog[i] {
			t.Errorf("response %d: question does not match catalog entry", i)
		}
	}
}

func TestConductTrimsAnswers(t *testing.T) {
	agent := newAgent(t, []Question{{Key: "one", Prompt: "p"}})
	responses, err := agent.Conduct(func(Question) (string, error) {
		return "  padded answer \n", nil
	})
	if err != nil {
		t.Fatalf("Conduct: %v", err)
	}
	if responses[0].Answer != "padded answer" {
		t.Errorf("answer = %q, want %q", responses[0].Answer, "padded answer")
	}
}

func TestConductPropagatesProviderError(t *testing.T) {
	agent := newAgent(t, nil)
	wantErr := errors.New("input stream closed")

	_, err := agent.Conduct(func(q Question) (string, error) {
		if q.Key == "steps" {
			return "", wantErr
		}
		return "ok", nil
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected provider error to propagate, got %v", err)
	}
}

func TestToDictProjection(t *testing.T) {
	agent := newAgent(t, nil)
	responses, err := agent.Conduct(mapProvider(t, fullAnswers))
	if err != nil {
		t.Fatalf("Conduct: %v", err)
	}

	dict := agent.ToDict(responses)
	if len(dict) != len(agent.Questions()) {
		t.Fatalf("expected %d entries, got %d", len(agent.Questions()), len(dict))
	}
	for _, q := range agent.Questions() {
		if dict[q.Key] != fullAnswers[q.Key] {
			t.Errorf("dict[%q] = %q, want %q", q.Key, dict[q.Key], fullAnswers[q.Key])
		}
	}
}

func TestToDictLastWriteWins(t *testing.T) {
	agent := newAgent(t, nil)
	responses := []Response{
		{Key: "impact", Answer: "first"},
		{Key: "impact", Answer: "second"},
	}
	if got := agent.ToDict(responses)["impact"]; got != "second" {
		t.Errorf("dict[impact] = %q, want %q", got, "second")
	}
}

func TestRecommendationsArtifacts(t *testing.T) {
	agent := newAgent(t, nil)

	answers := copyAnswers(fullAnswers)
	answers["artifacts"] = ""
	responses, err := agent.Conduct(mapProvider(t, answers))
	if err != nil {
		t.Fatalf("Conduct: %v", err)
	}
	recs := agent.Recommendations(responses)
	if !containsSubstring(recs, "附上日志") {
		t.Errorf("expected attach-logs suggestion, got %v", recs)
	}

	answers["artifacts"] = "req-123"
	responses, err = agent.Conduct(mapProvider(t, answers))
	if err != nil {
		t.Fatalf("Conduct: %v", err)
	}
	if recs := agent.Recommendations(responses); containsSubstring(recs, "附上日志") {
		t.Errorf("unexpected attach-logs suggestion with artifacts present: %v", recs)
	}
}

func TestRecommendationsAbsentKeysCountAsEmpty(t *testing.T) {
	agent := newAgent(t, nil)

	recs := agent.Recommendations(nil)
	// artifacts, steps, environment and impact rules all fire.
	if len(recs) != 4 {
		t.Fatalf("expected all 4 rules to fire on empty response set, got %d: %v", len(recs), recs)
	}
}

func TestRecommendationsImpactCaseInsensitive(t *testing.T) {
	agent := newAgent(t, nil)

	answers := copyAnswers(fullAnswers)
	answers["impact"] = "Low"
	responses, err := agent.Conduct(mapProvider(t, answers))
	if err != nil {
		t.Fatalf("Conduct: %v", err)
	}
	if recs := agent.Recommendations(responses); !containsSubstring(recs, "优先级") {
		t.Errorf("expected priority suggestion for impact=Low, got %v", recs)
	}

	answers["impact"] = "severe outage"
	responses, err = agent.Conduct(mapProvider(t, answers))
	if err != nil {
		t.Fatalf("Conduct: %v", err)
	}
	if recs := agent.Recommendations(responses); containsSubstring(recs, "优先级") {
		t.Errorf("unexpected priority suggestion for severe impact: %v", recs)
	}
}

func TestSummarizeFullInterview(t *testing.T) {
	agent := newAgent(t, nil)
	responses, err := agent.Conduct(mapProvider(t, fullAnswers))
	if err != nil {
		t.Fatalf("Conduct: %v", err)
	}

	summary := agent.Summarize(responses)
	if !strings.Contains(summary, "HTTP 500") {
		t.Errorf("summary missing error message:\n%s", summary)
	}
	if !strings.Contains(summary, "req-id=abc-123") {
		t.Errorf("summary missing artifacts:\n%s", summary)
	}
	// All rules satisfied, so no next-steps section.
	if strings.Contains(summary, "后续建议") {
		t.Errorf("unexpected next-steps section:\n%s", summary)
	}
}

func TestSummarizeMissingStepsRecommendation(t *testing.T) {
	agent := newAgent(t, DefaultQuestions()[:3])
	responses, err := agent.Conduct(func(q Question) (string, error) {
		if q.Key == "steps" {
			return "", nil
		}
		return "some", nil
	})
	if err != nil {
		t.Fatalf("Conduct: %v", err)
	}

	summary := agent.Summarize(responses)
	if !strings.Contains(summary, "最小可复现步骤") {
		t.Errorf("summary missing repro-steps suggestion:\n%s", summary)
	}
	if !strings.Contains(summary, NotProvided) {
		t.Errorf("summary missing placeholder for empty answer:\n%s", summary)
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	agent := newAgent(t, nil)
	responses, err := agent.Conduct(mapProvider(t, fullAnswers))
	if err != nil {
		t.Fatalf("Conduct: %v", err)
	}

	first := agent.Summarize(responses)
	for i := 0; i < 10; i++ {
		if got := agent.Summarize(responses); got != first {
			t.Fatalf("summary differs on call %d:\n%s\nvs\n%s", i+2, first, got)
		}
	}
}

func copyAnswers(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func containsSubstring(items []string, substr string) bool {
	for _, item := range items {
		if strings.Contains(item, substr) {
			return true
		}
	}
	return false
}
