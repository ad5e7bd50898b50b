package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/raysh454/aria/internal/model"
)

const systemPrompt = "You are a web accessibility expert. Give one short, " +
	"actionable remediation suggestion in plain text. No markdown, no preamble."

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// chatResponse tolerates both the chat-completion shape and the legacy
// text-completion shape, so provider differences collapse into one decode.
type chatResponse struct {
	Choices []struct {
		Message *struct {
			Content string `json:"content"`
		} `json:"message"`
		Text string `json:"text"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// callUpstream performs one provider request and normalizes its payload into
// suggestion text. Anything it cannot recognize becomes an error, which the
// gateway turns into a fallback suggestion.
func (g *Gateway) callUpstream(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := strings.TrimRight(g.cfg.BaseURL, "/") + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call provider: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	return normalize(payload)
}

// normalize extracts suggestion text from a provider payload. It checks the
// chat shape first, then the legacy completion shape.
func normalize(payload []byte) (string, error) {
	var decoded chatResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if decoded.Error != nil {
		return "", fmt.Errorf("provider error: %s", decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("provider returned no choices")
	}

	choice := decoded.Choices[0]
	text := ""
	if choice.Message != nil {
		text = choice.Message.Content
	}
	if text == "" {
		text = choice.Text
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("provider returned empty suggestion")
	}
	return text, nil
}

func issuePrompt(issue model.Issue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Accessibility issue %q (%s): %s.", issue.Rule, issue.Severity, issue.Message)
	if issue.Element != "" {
		fmt.Fprintf(&b, " Offending markup: %s.", issue.Element)
	}
	if issue.WCAG != nil {
		fmt.Fprintf(&b, " WCAG %s (%s): %s.", issue.WCAG.Guideline, issue.WCAG.Level, issue.WCAG.Description)
	}
	b.WriteString(" How should a developer fix this?")
	return b.String()
}

func overallPrompt(report *model.AnalysisReport) string {
	s := report.Summary
	return fmt.Sprintf(
		"An accessibility scan of %s found %d issues (%d critical, %d warnings) "+
			"with an overall score of %d/100. Summarize, in two sentences, how the "+
			"developer should prioritize remediation.",
		report.PageInfo.URL, s.TotalIssues, s.CriticalIssues, s.WarningIssues, s.OverallScore)
}
