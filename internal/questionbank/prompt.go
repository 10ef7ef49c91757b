package questionbank

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an experienced technical interviewer preparing questions for a screening interview.

Rules:
- Generate exactly 4 technical questions for the candidate's declared tech stack and experience.
- The difficulty order is fixed: Easy, Easy, Medium, Hard.
- The two Easy questions cover fundamental concepts. The Medium question covers practical application. The Hard question covers advanced concepts or problem-solving.
- Make questions specific to the tech stack and appropriate for the experience level. Focus on practical knowledge and real-world scenarios.
- Output nothing but repeated two-line pairs in exactly this format:
DIFFICULTY: <Easy|Medium|Hard>
QUESTION: <the question text on a single line>`

// buildUserMessage constructs the generation request for one candidate.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tech stack: %s\n", input.TechStack)
	fmt.Fprintf(&b, "Experience: %s years\n", input.ExperienceYears)
	if input.Language != "" && input.Language != "en" {
		fmt.Fprintf(&b, "Write the questions in language code %q.\n", input.Language)
	}
	b.WriteString("\nGenerate the 4 questions now.")

	return b.String()
}
