package questionbank

import (
	"fmt"
	"strings"
)

// genericTech is used when the tech stack string is empty.
const genericTech = "programming"

// PrimaryTech extracts the candidate's lead technology: the text before
// the first comma of the tech-stack string.
func PrimaryTech(techStack string) string {
	tech := techStack
	if i := strings.Index(techStack, ","); i >= 0 {
		tech = techStack[:i]
	}
	tech = strings.TrimSpace(tech)
	if tech == "" {
		return genericTech
	}
	return tech
}

// Fallback synthesizes the four-question set locally, one template per
// required difficulty slot, parameterized by the primary technology.
// It is deterministic for a given tech stack.
func Fallback(techStack string) []Question {
	tech := PrimaryTech(techStack)
	return []Question{
		{
			Difficulty: DifficultyEasy,
			Text:       fmt.Sprintf("Explain the basic concepts and principles of %s. What are its main features and use cases?", tech),
		},
		{
			Difficulty: DifficultyEasy,
			Text:       fmt.Sprintf("What are the key differences between %s and similar technologies? When would you choose %s over alternatives?", tech, tech),
		},
		{
			Difficulty: DifficultyMedium,
			Text:       fmt.Sprintf("Describe a real-world scenario where you would use %s. How would you implement it and what challenges might you face?", tech),
		},
		{
			Difficulty: DifficultyHard,
			Text:       fmt.Sprintf("Explain how you would optimize a %s application for performance and scalability. What best practices would you follow?", tech),
		},
	}
}
