package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/interview-practice-api/internal/dto"
)

const validFeedbackJSON = `{"score":7,"strengths":["clear"],"improvements":["add metrics"],"sampleAnswer":"I would measure latency first."}`

var validFeedback = dto.Feedback{
	Score:        7,
	Strengths:    []string{"clear"},
	Improvements: []string{"add metrics"},
	SampleAnswer: "I would measure latency first.",
}

func TestParseFeedbackAcceptsPlainJSON(t *testing.T) {
	feedback, err := parseFeedback(validFeedbackJSON)
	require.NoError(t, err)
	require.Equal(t, validFeedback, feedback)
}

func TestParseFeedbackStripsCodeFences(t *testing.T) {
	cases := map[string]string{
		"json fence":     "```json\n" + validFeedbackJSON + "\n```",
		"bare fence":     "```\n" + validFeedbackJSON + "\n```",
		"padded":         "  \n```json" + validFeedbackJSON + "```  \n",
		"no newline end": "```json\n" + validFeedbackJSON + "```",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			feedback, err := parseFeedback(content)
			require.NoError(t, err)
			require.Equal(t, validFeedback, feedback)
		})
	}
}

func TestParseFeedbackRejectsMalformedContent(t *testing.T) {
	cases := map[string]string{
		"empty":             "",
		"prose":             "Great answer! I'd give it a 7.",
		"truncated":         `{"score":7,"strengths":["clear"]`,
		"missing field":     `{"score":7,"strengths":["clear"],"improvements":[]}`,
		"wrong type":        `{"score":"seven","strengths":["clear"],"improvements":[],"sampleAnswer":""}`,
		"non string items":  `{"score":7,"strengths":[1,2],"improvements":[],"sampleAnswer":""}`,
		"array document":    `[1,2,3]`,
		"trailing document": validFeedbackJSON + ` {"extra":true}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseFeedback(content)
			require.Error(t, err)
		})
	}
}

func TestParseFeedbackNormalizesScore(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{raw: "0", want: 1},
		{raw: "-3", want: 1},
		{raw: "11", want: 10},
		{raw: "7.6", want: 8},
		{raw: "10", want: 10},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			content := `{"score":` + tc.raw + `,"strengths":[],"improvements":[],"sampleAnswer":"x"}`
			feedback, err := parseFeedback(content)
			require.NoError(t, err)
			require.Equal(t, tc.want, feedback.Score)
			require.NotNil(t, feedback.Strengths)
			require.NotNil(t, feedback.Improvements)
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	require.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	require.Equal(t, "plain", stripCodeFences("  plain  "))
}
