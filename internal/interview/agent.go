package interview

import (
	"fmt"
	"strings"
)

// NotProvided is the placeholder rendered in summaries for answers that
// are empty after trimming.
const NotProvided = "<未提供 / not provided>"

const summaryTitle = "Hearback errors 访谈纪要 (Interview Summary)"

// Suggestion texts, one per recommendation rule, appended to summaries in
// rule order.
const (
	suggestAttachArtifacts = "附上日志、请求 ID 或截图，帮助快速定位。(Attach logs, a request ID, or a screenshot to speed up triage.)"
	suggestReproSteps      = "补充最小可复现步骤，便于工程师复现问题。(Add minimal reproduction steps so engineers can replay the issue.)"
	suggestEnvironment     = "说明操作系统、浏览器或客户端版本，避免环境差异。(Specify the OS, browser, or client version to rule out environment drift.)"
	suggestPriority        = "如果影响扩大，请更新优先级和受影响范围。(If the impact grows, revisit the priority and affected scope.)"
)

// AnswerFunc supplies the answer for one question. It may block, for
// example while waiting on interactive input; the engine imposes no
// timeout. A returned error aborts the interview and propagates out of
// Conduct.
type AnswerFunc func(Question) (string, error)

// Response pairs a question with its whitespace-trimmed answer.
type Response struct {
	Key      string
	Question Question
	Answer   string
}

// Agent runs a structured interview for error/incident reports.
type Agent struct {
	questions []Question
}

// New creates an Agent over the given catalog, or over the default
// error-report catalog when questions is nil. Duplicate keys are
// rejected: an answer provider keyed by question key would silently
// collide on them.
func New(questions []Question) (*Agent, error) {
	if questions == nil {
		questions = DefaultQuestions()
	}
	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if _, ok := seen[q.Key]; ok {
			return nil, fmt.Errorf("duplicate question key %q", q.Key)
		}
		seen[q.Key] = struct{}{}
	}
	catalog := make([]Question, len(questions))
	copy(catalog, questions)
	return &Agent{questions: catalog}, nil
}

// Questions returns a copy of the agent's catalog in prompting order.
func (a *Agent) Questions() []Question {
	out := make([]Question, len(a.questions))
	copy(out, a.questions)
	return out
}

// Conduct asks every catalog question in order and collects the trimmed
// answers, one Response per question. A provider error aborts the run;
// nothing is retried.
func (a *Agent) Conduct(provider AnswerFunc) ([]Response, error) {
	responses := make([]Response, 0, len(a.questions))
	for _, q := range a.questions {
		answer, err := provider(q)
		if err != nil {
			return nil, fmt.Errorf("answering %q: %w", q.Key, err)
		}
		responses = append(responses, Response{
			Key:      q.Key,
			Question: q,
			Answer:   strings.TrimSpace(answer),
		})
	}
	return responses, nil
}

// Summarize renders a human-readable report over the responses, in the
// order given. Callers are expected to pass catalog order. The output is
// deterministic for identical input.
func (a *Agent) Summarize(responses []Response) string {
	lines := []string{summaryTitle, ""}
	for _, r := range responses {
		prompt := "- " + r.Question.Prompt
		if r.Question.Detail != "" {
			prompt += "（" + r.Question.Detail + "）"
		}
		answer := r.Answer
		if answer == "" {
			answer = NotProvided
		}
		lines = append(lines, prompt+"\n  回复: "+answer)
	}
	if recs := a.Recommendations(responses); len(recs) > 0 {
		lines = append(lines, "", "后续建议 / Next steps:")
		for _, rec := range recs {
			lines = append(lines, "- "+rec)
		}
	}
	return strings.Join(lines, "\n")
}

// ToDict projects responses to a flat key→answer map. On duplicate keys,
// possible only with hand-built response slices, the last answer wins.
func (a *Agent) ToDict(responses []Response) map[string]string {
	out := make(map[string]string, len(responses))
	for _, r := range responses {
		out[r.Key] = r.Answer
	}
	return out
}

// Recommendations evaluates the fixed rule set over the responses. The
// rules are independent: any subset may fire, always in rule order. A key
// absent from the responses counts as an empty answer.
func (a *Agent) Recommendations(responses []Response) []string {
	answers := make(map[string]string, len(responses))
	for _, r := range responses {
		answers[r.Key] = strings.TrimSpace(r.Answer)
	}

	var suggestions []string
	if answers["artifacts"] == "" {
		suggestions = append(suggestions, suggestAttachArtifacts)
	}
	if answers["steps"] == "" {
		suggestions = append(suggestions, suggestReproSteps)
	}
	if answers["environment"] == "" {
		suggestions = append(suggestions, suggestEnvironment)
	}
	switch strings.ToLower(answers["impact"]) {
	case "", "low", "minor":
		suggestions = append(suggestions, suggestPriority)
	}
	return suggestions
}
