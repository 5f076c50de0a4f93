package application

import (
	"fmt"

	"github.com/funnelbot/leadintake/internal/domain/session"
)

// Default prompt copy. The transport layer may render its own text; these
// keep the services usable on their own.
var stepPrompts = map[session.Step]string{
	session.StepName:        "What is your name?",
	session.StepCountry:     "Which country are you in?",
	session.StepPhone:       "Share your phone number (or type it like +1234567890).",
	session.StepContactTime: "When is a good time to call? (morning, afternoon, evening, anytime)",
}

const completedPrompt = "All done! Our manager will contact you at the chosen time."

// PromptFor returns the question the user should see at a step.
func PromptFor(step session.Step) string {
	return stepPrompts[step]
}

func resumePrompt(sess *session.FormSession) string {
	prompt := stepPrompts[sess.CurrentStep]
	if name := sess.Field("name"); name != "" {
		return fmt.Sprintf("Welcome back, %s! Let's pick up where you left off. %s", name, prompt)
	}
	return "Welcome back! Let's pick up where you left off. " + prompt
}

// NudgeFor builds the step-aware reminder sent to stale sessions.
func NudgeFor(step session.Step, fields map[string]string) string {
	name := fields["name"]
	switch step {
	case session.StepName:
		return "You started an application but never told us your name. It only takes a minute to finish!"
	case session.StepCountry:
		if name != "" {
			return fmt.Sprintf("%s, you're almost there! Just your country and two quick steps left.", name)
		}
		return "You're almost there! Just your country and two quick steps left."
	case session.StepPhone:
		if name != "" {
			return fmt.Sprintf("%s, only your phone number is missing. Finish your application now!", name)
		}
		return "Only your phone number is missing. Finish your application now!"
	case session.StepContactTime:
		if name != "" {
			return fmt.Sprintf("%s, one last step: pick a time for our call.", name)
		}
		return "One last step: pick a time for our call."
	default:
		return "You have an unfinished application. Complete it now!"
	}
}
