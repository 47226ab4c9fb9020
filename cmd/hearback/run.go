package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kalambet/hearback/internal/interview"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Conduct an error-report interview and print the summary",
	Long: `Conduct an error-report interview and print the summary.

Questions without an entry in the answers file are asked interactively
on the terminal.

Examples:
  hearback run
  hearback run --answers answers.json
  hearback run --answers answers.json --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		answersPath, _ := cmd.Flags().GetString("answers")
		format, _ := cmd.Flags().GetString("format")
		if format != "text" && format != "json" {
			return fmt.Errorf("invalid --format %q: must be text or json", format)
		}

		answers, err := loadAnswers(answersPath)
		if err != nil {
			return err
		}

		agent, err := interview.New(nil)
		if err != nil {
			return err
		}

		provider := promptProvider(answers, cmd.InOrStdin(), cmd.OutOrStdout())
		responses, err := agent.Conduct(provider)
		if err != nil {
			return err
		}

		summary := agent.Summarize(responses)
		out := cmd.OutOrStdout()

		if format == "json" {
			payload := struct {
				Responses map[string]string `json:"responses"`
				Summary   string            `json:"summary"`
			}{
				Responses: agent.ToDict(responses),
				Summary:   summary,
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(payload)
		}

		fmt.Fprintln(out, summary)
		return nil
	},
}

func init() {
	runCmd.Flags().String("answers", "", "JSON file mapping question keys to answers")
	runCmd.Flags().String("format", "text", "output format: text or json")
}

// promptProvider answers from the pre-supplied map when possible and
// falls back to prompting on the terminal. A read failure aborts the
// interview.
func promptProvider(answers map[string]string, in io.Reader, out io.Writer) interview.AnswerFunc {
	reader := bufio.NewReader(in)
	return func(q interview.Question) (string, error) {
		if answer, ok := answers[q.Key]; ok {
			return answer, nil
		}

		fmt.Fprintln(out, q.Prompt)
		if q.Detail != "" {
			fmt.Fprintf(out, "提示: %s\n", q.Detail)
		}
		fmt.Fprint(out, "> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF && line != "" {
				return line, nil
			}
			return "", err
		}
		return line, nil
	}
}
