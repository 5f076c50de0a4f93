package session

import (
	"fmt"
	"regexp"
	"strings"
)

// Step identifies a position in the intake flow. The set is closed:
// transitions only ever move forward through the table below.
type Step string

const (
	StepName        Step = "name"
	StepCountry     Step = "country"
	StepPhone       Step = "phone"
	StepContactTime Step = "contact_time"
)

// Input is a single user reply. ContactPhone carries the phone number of
// a structured contact share; for every other step only Text is set.
type Input struct {
	Text         string
	ContactPhone string
}

// ValidationError reports a rejected reply. The session is left untouched
// and the same step is prompted again.
type ValidationError struct {
	Step   Step
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Step, e.Reason)
}

// ContactTimes is the fixed set of accepted contact-time slots.
var ContactTimes = []string{"morning", "afternoon", "evening", "anytime"}

var (
	nameRe    = regexp.MustCompile(`^[\p{L}\s]+$`)
	countryRe = regexp.MustCompile(`^[\p{L}\s\-]+$`)
	phoneRe   = regexp.MustCompile(`^\+\d{10,15}$`)
)

type stepSpec struct {
	field    string
	next     Step
	validate func(Input) (string, error)
}

// transitions is the full forward table: step -> validator -> next step.
// An empty next marks the final step.
var transitions = map[Step]stepSpec{
	StepName: {
		field: "name",
		next:  StepCountry,
		validate: func(in Input) (string, error) {
			name := strings.TrimSpace(in.Text)
			if name == "" || !nameRe.MatchString(name) {
				return "", &ValidationError{Step: StepName, Reason: "letters and spaces only"}
			}
			return name, nil
		},
	},
	StepCountry: {
		field: "country",
		next:  StepPhone,
		validate: func(in Input) (string, error) {
			country := strings.TrimSpace(in.Text)
			if len([]rune(country)) < 2 || !countryRe.MatchString(country) {
				return "", &ValidationError{Step: StepCountry, Reason: "letters, spaces and hyphens only, at least 2 characters"}
			}
			return country, nil
		},
	},
	StepPhone: {
		field: "phone",
		next:  StepContactTime,
		validate: func(in Input) (string, error) {
			if in.ContactPhone != "" {
				phone := in.ContactPhone
				if !strings.HasPrefix(phone, "+") {
					phone = "+" + phone
				}
				return phone, nil
			}
			phone := strings.TrimSpace(in.Text)
			if !phoneRe.MatchString(phone) {
				return "", &ValidationError{Step: StepPhone, Reason: "expected international format like +1234567890"}
			}
			return phone, nil
		},
	},
	StepContactTime: {
		field: "contact_time",
		validate: func(in Input) (string, error) {
			slot := strings.TrimSpace(in.Text)
			for _, t := range ContactTimes {
				if slot == t {
					return slot, nil
				}
			}
			return "", &ValidationError{Step: StepContactTime, Reason: "unknown time slot"}
		},
	},
}

// Validate checks a reply against the step's rule and returns the
// normalized field value.
func (s Step) Validate(in Input) (string, error) {
	spec, ok := transitions[s]
	if !ok {
		return "", fmt.Errorf("unknown step %q", s)
	}
	return spec.validate(in)
}

// FieldKey returns the collected-fields key the step writes.
func (s Step) FieldKey() string {
	return transitions[s].field
}

// Next returns the following step; ok is false on the final step.
func (s Step) Next() (Step, bool) {
	spec, exists := transitions[s]
	if !exists || spec.next == "" {
		return "", false
	}
	return spec.next, true
}

// Valid reports whether s is a member of the closed step set.
func (s Step) Valid() bool {
	_, ok := transitions[s]
	return ok
}
