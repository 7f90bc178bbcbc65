package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ResponseExtractor recovers a JSON document from a model's raw text reply.
// The default implementation scrapes best-effort; swapping in a strict
// structured-output mode only means replacing this.
type ResponseExtractor interface {
	Extract(raw string) ([]byte, error)
}

// MarkdownJSONExtractor strips markdown code fences and cuts the outermost
// JSON object out of the remaining text.
type MarkdownJSONExtractor struct{}

func (MarkdownJSONExtractor) Extract(raw string) ([]byte, error) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		lines := strings.Split(text, "\n")
		lines = lines[1:] // drop ```json or ```
		if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
			lines = lines[:len(lines)-1]
		}
		text = strings.TrimSpace(strings.Join(lines, "\n"))
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	doc := []byte(text[start : end+1])
	if !json.Valid(doc) {
		return nil, fmt.Errorf("model response is not valid JSON")
	}
	return doc, nil
}
