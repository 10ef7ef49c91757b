package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/talentscout/internal/interview"
)

// turnDoneMsg carries the result of a controller turn back into the
// update loop. Turns run as commands so classification and generation
// calls never block rendering.
type turnDoneMsg struct {
	turn *interview.Turn
	err  error
}

// Model is the root Bubble Tea model. The interview is a linear flow,
// so one flat model switching on the session stage is enough; there is
// no screen stack.
type Model struct {
	ctrl    *interview.Controller
	session *interview.Session

	form   profileForm
	chat   chatInput
	width  int
	height int

	// busy is set while a turn command is in flight. At most one turn
	// runs at a time; input is ignored until it lands.
	busy bool

	// warn holds a persistence warning from the last terminal turn.
	warn string

	// recordPath is where the transcript landed, shown on the final screen.
	recordPath string

	errMsg string
}

// New creates the root model for a fresh session.
func New(ctrl *interview.Controller, language string) Model {
	return Model{
		ctrl:    ctrl,
		session: interview.NewSession(language),
		form:    newProfileForm(),
		chat:    newChatInput(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case turnDoneMsg:
		return m.handleTurnDone(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		return m.handleKey(msg)
	}

	if m.busy {
		return m, nil
	}

	// Everything else (cursor blinks, paste) goes to the focused input.
	switch m.session.Stage {
	case interview.StageProfileForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case interview.StageInterview:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.session.Stage {
	case interview.StageConsent:
		switch msg.String() {
		case "y", "Y":
			return m.runTurn(interview.Input{Kind: interview.InputConsent, Accepted: true})
		case "n", "N":
			return m.runTurn(interview.Input{Kind: interview.InputConsent, Accepted: false})
		case "q", "esc":
			return m, tea.Quit
		}
		return m, nil

	case interview.StageProfileForm:
		if submit, text, ok := m.formKey(msg); ok {
			if text != "" {
				return m.runTurn(interview.Input{Kind: interview.InputAnswer, Text: text})
			}
			if submit {
				profile := m.form.Profile()
				return m.runTurn(interview.Input{Kind: interview.InputProfile, Profile: &profile})
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case interview.StageInterview:
		if msg.String() == "enter" {
			text := m.chat.Value()
			if text == "" {
				return m, nil
			}
			m.chat.Reset()
			return m.runTurn(interview.Input{Kind: interview.InputAnswer, Text: text})
		}
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	default: // Completed, Ended
		switch msg.String() {
		case "q", "esc", "enter":
			return m, tea.Quit
		case "r":
			return m.restart()
		}
		return m, nil
	}
}

// formKey interprets form-level keys. It reports whether the form
// submitted, and returns non-empty text when the candidate typed an
// exit command into a field instead of filling it in.
func (m *Model) formKey(msg tea.KeyMsg) (submit bool, exitText string, handled bool) {
	switch msg.String() {
	case "enter":
		if m.form.OnLastField() {
			if text := m.form.FocusedValue(); interview.IsExitCommand(text, m.session.Language) {
				return false, text, true
			}
			return true, "", true
		}
		m.form.NextField()
		return false, "", true
	case "tab", "down":
		m.form.NextField()
		return false, "", true
	case "shift+tab", "up":
		m.form.PrevField()
		return false, "", true
	}
	return false, "", false
}

// runTurn dispatches one input to the controller as a command.
func (m Model) runTurn(in interview.Input) (tea.Model, tea.Cmd) {
	m.busy = true
	ctrl, session := m.ctrl, m.session
	return m, func() tea.Msg {
		turn, err := ctrl.HandleTurn(context.Background(), session, in)
		return turnDoneMsg{turn: turn, err: err}
	}
}

func (m Model) handleTurnDone(msg turnDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		return m, nil
	}
	m.errMsg = ""

	turn := msg.turn
	if len(turn.FieldErrors) > 0 {
		m.form.SetErrors(turn.FieldErrors)
		return m, nil
	}
	m.form.ClearErrors()

	if turn.RecordPath != "" {
		m.recordPath = turn.RecordPath
	}
	if turn.RecordErr != nil {
		m.warn = fmt.Sprintf("transcript not fully saved: %v", turn.RecordErr)
	}

	if m.session.Stage == interview.StageInterview {
		return m, m.chat.Focus()
	}
	return m, nil
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	if _, err := m.ctrl.HandleTurn(context.Background(), m.session, interview.Input{Kind: interview.InputRestart}); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.form = newProfileForm()
	m.chat = newChatInput()
	m.warn = ""
	m.recordPath = ""
	m.errMsg = ""
	return m, nil
}

// Run starts the Bubble Tea program for one interview session.
func Run(ctrl *interview.Controller, language string) error {
	p := tea.NewProgram(New(ctrl, language))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
