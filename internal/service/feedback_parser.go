package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/noah-isme/interview-practice-api/internal/dto"
)

const feedbackSchemaJSON = `{
  "type": "object",
  "required": ["score", "strengths", "improvements", "sampleAnswer"],
  "properties": {
    "score": {"type": "number"},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "improvements": {"type": "array", "items": {"type": "string"}},
    "sampleAnswer": {"type": "string"}
  }
}`

var (
	feedbackSchema = jsonschema.MustCompileString("feedback.schema.json", feedbackSchemaJSON)

	jsonFence  = regexp.MustCompile("```json\\n?")
	plainFence = regexp.MustCompile("```\\n?")
)

// stripCodeFences removes markdown fences models like to wrap JSON in.
func stripCodeFences(content string) string {
	cleaned := jsonFence.ReplaceAllString(content, "")
	cleaned = plainFence.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// parseFeedback decodes the model output into Feedback, rejecting anything that does not match the schema.
func parseFeedback(content string) (dto.Feedback, error) {
	cleaned := stripCodeFences(content)
	if cleaned == "" {
		return dto.Feedback{}, fmt.Errorf("parse feedback: empty content")
	}

	var document interface{}
	decoder := json.NewDecoder(bytes.NewReader([]byte(cleaned)))
	decoder.UseNumber()
	if err := decoder.Decode(&document); err != nil {
		return dto.Feedback{}, fmt.Errorf("parse feedback json: %w", err)
	}
	if decoder.More() {
		return dto.Feedback{}, fmt.Errorf("parse feedback json: trailing content")
	}

	if err := feedbackSchema.Validate(document); err != nil {
		return dto.Feedback{}, fmt.Errorf("validate feedback: %w", err)
	}

	var payload struct {
		Score        float64  `json:"score"`
		Strengths    []string `json:"strengths"`
		Improvements []string `json:"improvements"`
		SampleAnswer string   `json:"sampleAnswer"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return dto.Feedback{}, fmt.Errorf("decode feedback: %w", err)
	}

	score := int(math.Round(payload.Score))
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}

	return dto.Feedback{
		Score:        score,
		Strengths:    nonNil(payload.Strengths),
		Improvements: nonNil(payload.Improvements),
		SampleAnswer: payload.SampleAnswer,
	}, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
