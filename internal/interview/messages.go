package interview

import "fmt"

// Canned assistant messages. Wording mirrors what candidates see; the
// state machine only cares that each transition emits exactly one.
const (
	msgConsentAccepted = "Thank you for your consent! Let's start by collecting some basic information about you."

	msgConsentDeclined = "We respect your decision. Thank you for your time!"

	msgCompleted = "Thank you for completing the technical interview! Your responses have been recorded. " +
		"Our technical team will review your answers and someone will contact you within 3-5 business days."

	msgEndedEarly = "Thank you for your time! The interview has been ended at your request. " +
		"Someone from our team will contact you regarding the next steps."

	msgForceAdvance = "Thanks for giving it a try - let's move on to the next question."
)

func greetingMessage(name, techStack string) string {
	return fmt.Sprintf("Hello %s! Thank you for providing your information. "+
		"I've prepared %d technical questions based on your tech stack: %s. "+
		"Let's begin the technical interview!", name, QuestionCount, techStack)
}
