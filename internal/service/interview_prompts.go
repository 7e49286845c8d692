package service

import (
	"fmt"
	"strings"

	"github.com/noah-isme/interview-practice-api/pkg/ai"
)

func questionPrompt(role string) ai.Prompt {
	system := fmt.Sprintf(`You are an expert technical interviewer. Generate one interview question for a %s position.
The question should be:
- Practical and commonly asked in real interviews
- Clear and specific
- Appropriate for entry to mid-level candidates

Return ONLY the question text, nothing else. No numbering, no prefixes.`, role)

	return ai.Prompt{
		System: system,
		User:   fmt.Sprintf("Generate one interview question for a %s role.", role),
	}
}

const evaluationSystemPrompt = `You are an expert technical interviewer evaluating a candidate's answer.
Provide constructive, educational feedback that helps students improve.
Be encouraging but honest. Focus on practical improvements.

Your response MUST be valid JSON with this exact structure:
{
  "score": <number from 1-10>,
  "strengths": ["<strength 1>", "<strength 2>"],
  "improvements": ["<improvement 1>", "<improvement 2>"],
  "sampleAnswer": "<a better answer showing what an ideal response would look like>"
}

Return ONLY the JSON object, no markdown, no code blocks, no additional text.`

func evaluationPrompt(role, question, answer string) ai.Prompt {
	builder := strings.Builder{}
	builder.WriteString("Role: ")
	builder.WriteString(role)
	builder.WriteString("\nQuestion: ")
	builder.WriteString(question)
	builder.WriteString("\nCandidate's Answer: ")
	builder.WriteString(answer)
	builder.WriteString("\n\nEvaluate this answer and provide feedback.")

	return ai.Prompt{
		System: evaluationSystemPrompt,
		User:   builder.String(),
	}
}
