package evaluator

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a technical interviewer evaluating a candidate's answer.

Judge whether the answer demonstrates basic understanding of the concept, relevant technical knowledge, and clear communication.

Respond with exactly two lines:
EVALUATION: <ADEQUATE|NEEDS_CLARIFICATION|IRRELEVANT>
FEEDBACK: <one or two short sentences for the candidate>

ADEQUATE means the answer shows reasonable understanding. NEEDS_CLARIFICATION means it is vague, incomplete, or shows gaps. IRRELEVANT means it does not address the question.`

// buildUserMessage constructs the evaluation request for one answer.
func buildUserMessage(question, answer, techStack, language string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", question)
	fmt.Fprintf(&b, "Answer: %s\n", answer)
	fmt.Fprintf(&b, "Candidate's tech stack: %s\n", techStack)
	if language != "" && language != "en" {
		fmt.Fprintf(&b, "Write the feedback in language code %q.\n", language)
	}

	return b.String()
}
