package dto

import "strings"

const (
	// KindQuestion asks the relay for a new interview question.
	KindQuestion = "question"
	// KindEvaluate asks the relay to score a candidate answer.
	KindEvaluate = "evaluate"
)

// InterviewRequest is the body accepted by the relay endpoint. The web client
// sends the kind under "type"; both names are accepted.
type InterviewRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=question evaluate"`
	Type     string `json:"type,omitempty" validate:"-"`
	Role     string `json:"role" validate:"required"`
	Question string `json:"question,omitempty" validate:"required_if=Kind evaluate"`
	Answer   string `json:"answer,omitempty" validate:"required_if=Kind evaluate"`
}

// Normalize folds the legacy "type" field into Kind and trims the role.
func (r *InterviewRequest) Normalize() {
	if strings.TrimSpace(r.Kind) == "" {
		r.Kind = r.Type
	}
	r.Kind = strings.ToLower(strings.TrimSpace(r.Kind))
	r.Role = strings.TrimSpace(r.Role)
}

// QuestionResponse is returned for kind=question.
type QuestionResponse struct {
	Question string `json:"question"`
}

// Feedback is the structured evaluation returned for kind=evaluate.
type Feedback struct {
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	SampleAnswer string   `json:"sampleAnswer"`
}

// FallbackFeedback is served whenever the upstream evaluation cannot be parsed.
func FallbackFeedback() Feedback {
	return Feedback{
		Score:        5,
		Strengths:    []string{"You provided an answer to the question"},
		Improvements: []string{"Try to be more specific with examples", "Structure your answer more clearly"},
		SampleAnswer: "Unable to generate sample answer at this time. Please try again.",
	}
}

// RoleResponse describes a selectable job role.
type RoleResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
