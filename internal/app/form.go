package app

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/talentscout/internal/interview"
)

// Form field order. Experience is a bucket selector, not a text input;
// it still occupies a focus slot so tab order matches the visual order.
const (
	fieldFullName = iota
	fieldEmail
	fieldPhone
	fieldExperience
	fieldPosition
	fieldLocation
	fieldTechStack
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Full Name",
	"Email Address",
	"Phone Number",
	"Years of Experience",
	"Desired Position",
	"Current Location",
	"Tech Stack",
}

// jsonFieldNames maps form slots to the field names validation reports.
var jsonFieldNames = [fieldCount]string{
	"full_name", "email", "phone", "experience", "position", "location", "tech_stack",
}

// profileForm is the profile collection component. One text input per
// field plus an arrow-cycled experience bucket.
type profileForm struct {
	inputs     [fieldCount]textinput.Model
	focus      int
	experience int
	errors     map[string]string
}

func newProfileForm() profileForm {
	f := profileForm{errors: map[string]string{}}

	placeholders := [fieldCount]string{
		"Jane Doe",
		"jane@example.com",
		"+1 415 555 0100",
		"",
		"Backend Engineer",
		"Berlin, Germany",
		"Python, Django, PostgreSQL",
	}
	for i := range f.inputs {
		if i == fieldExperience {
			continue
		}
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 120
		f.inputs[i] = ti
	}
	f.inputs[fieldFullName].Focus()
	return f
}

func (f profileForm) Update(msg tea.Msg) (profileForm, tea.Cmd) {
	if f.focus == fieldExperience {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "left":
				f.experience = (f.experience + len(interview.ExperienceBuckets) - 1) % len(interview.ExperienceBuckets)
			case "right", " ":
				f.experience = (f.experience + 1) % len(interview.ExperienceBuckets)
			}
		}
		return f, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *profileForm) NextField() { f.setFocus((f.focus + 1) % fieldCount) }

func (f *profileForm) PrevField() { f.setFocus((f.focus + fieldCount - 1) % fieldCount) }

func (f *profileForm) OnLastField() bool { return f.focus == fieldCount-1 }

// FocusedValue returns the raw text of the focused field, or "" for
// the experience selector.
func (f *profileForm) FocusedValue() string {
	if f.focus == fieldExperience {
		return ""
	}
	return f.inputs[f.focus].Value()
}

func (f *profileForm) setFocus(i int) {
	if f.focus != fieldExperience {
		f.inputs[f.focus].Blur()
	}
	f.focus = i
	if i != fieldExperience {
		f.inputs[i].Focus()
	}
}

// Profile assembles the candidate profile from the current field values.
func (f *profileForm) Profile() interview.CandidateProfile {
	return interview.CandidateProfile{
		FullName:   f.inputs[fieldFullName].Value(),
		Email:      f.inputs[fieldEmail].Value(),
		Phone:      f.inputs[fieldPhone].Value(),
		Experience: interview.ExperienceBuckets[f.experience],
		Position:   f.inputs[fieldPosition].Value(),
		Location:   f.inputs[fieldLocation].Value(),
		TechStack:  f.inputs[fieldTechStack].Value(),
	}
}

// SetErrors records field-level validation errors for rendering.
func (f *profileForm) SetErrors(errs []interview.FieldError) {
	f.errors = make(map[string]string, len(errs))
	for _, e := range errs {
		f.errors[e.Field] = e.Message
	}
}

func (f *profileForm) ClearErrors() {
	f.errors = map[string]string{}
}

// chatInput is the single-line answer box for the interview stage.
type chatInput struct {
	input textinput.Model
}

func newChatInput() chatInput {
	ti := textinput.New()
	ti.Placeholder = "Type your answer (or 'end' to finish)..."
	ti.CharLimit = 2000
	ti.Focus()
	return chatInput{input: ti}
}

func (c chatInput) Update(msg tea.Msg) (chatInput, tea.Cmd) {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *chatInput) Value() string { return c.input.Value() }

func (c *chatInput) Reset() { c.input.SetValue("") }

func (c *chatInput) Focus() tea.Cmd { return c.input.Focus() }

func (c chatInput) View() string { return c.input.View() }
