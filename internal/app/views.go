package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/talentscout/internal/interview"
	"github.com/abhisek/talentscout/internal/ui/theme"
)

const appTitle = "TalentScout Hiring Assistant"

// maxChatMessages limits how much of the conversation log is rendered
// so the current question always stays on screen.
const maxChatMessages = 8

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var body string
	switch m.session.Stage {
	case interview.StageConsent:
		body = m.consentView()
	case interview.StageProfileForm:
		body = m.formView()
	case interview.StageInterview:
		body = m.interviewView()
	default:
		body = m.finalView()
	}

	header := theme.Title.Render(appTitle)
	sections := []string{header, "", body}
	if m.errMsg != "" {
		sections = append(sections, "", theme.Err.Render(m.errMsg))
	}

	v.SetContent(lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...)))
	return v
}

func (m Model) consentView() string {
	notice := strings.Join([]string{
		theme.Subtitle.Render("Data Consent & Privacy Notice"),
		"",
		theme.Body.Render("Welcome to TalentScout's Hiring Assistant! Before we begin, please note that:"),
		"",
		theme.Body.Render("  • All your data will be stored locally and securely"),
		theme.Body.Render("  • We comply with GDPR and data privacy standards"),
		theme.Body.Render("  • Your information will only be used for recruitment purposes"),
		theme.Body.Render("  • You can end the interview at any time by typing 'end', 'quit', or 'stop'"),
		theme.Body.Render("  • We use sentiment analysis to ensure a positive interview experience"),
		"",
		theme.Hint.Render("By proceeding, you consent to the collection and processing of your data for recruitment purposes."),
	}, "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Card.Render(notice),
		"",
		hints("Y consent and continue", "N decline", "Ctrl+C quit"),
	)
}

func (m Model) formView() string {
	var rows []string
	rows = append(rows, theme.Subtitle.Render("Candidate Information"), "")

	for i := 0; i < fieldCount; i++ {
		label := fieldLabels[i]
		if i == m.form.focus {
			label = theme.Label.Render("> " + label)
		} else {
			label = theme.Subtitle.Render("  " + label)
		}
		rows = append(rows, label)

		if i == fieldExperience {
			bucket := interview.ExperienceBuckets[m.form.experience]
			sel := fmt.Sprintf("  < %s > years", bucket)
			if i == m.form.focus {
				sel = theme.Body.Render(sel) + theme.Hint.Render("  (←/→ to change)")
			} else {
				sel = theme.Subtitle.Render(sel)
			}
			rows = append(rows, sel)
		} else {
			rows = append(rows, "  "+m.form.inputs[i].View())
		}

		if msg, ok := m.form.errors[jsonFieldNames[i]]; ok {
			rows = append(rows, "  "+theme.Err.Render(msg))
		}
		rows = append(rows, "")
	}

	rows = append(rows, hints("Tab/Enter next field", "Enter on last field submit", "Ctrl+C quit"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) interviewView() string {
	var rows []string

	rows = append(rows, m.renderChat()...)
	rows = append(rows, "", m.renderQuestionCard(), "")

	if m.busy {
		rows = append(rows, theme.Hint.Render("Evaluating your answer..."))
	} else {
		rows = append(rows, m.chat.View())
	}

	progress := fmt.Sprintf("Progress: %d/%d questions", m.session.AnsweredCount(), interview.QuestionCount)
	rows = append(rows, "", theme.Subtitle.Render(progress))
	rows = append(rows, hints("Enter submit", "type 'end' to finish", "Ctrl+C quit"))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderChat() []string {
	msgs := m.session.Messages
	if len(msgs) > maxChatMessages {
		msgs = msgs[len(msgs)-maxChatMessages:]
	}

	width := m.width - 8
	if width < 20 {
		width = 20
	}

	var rows []string
	for _, msg := range msgs {
		text := lipgloss.NewStyle().Width(width).Render(msg.Text)
		if msg.Role == interview.RoleUser {
			rows = append(rows, theme.UserBubble.Render("You: "+text))
		} else {
			rows = append(rows, theme.BotBubble.Render(text))
		}
		rows = append(rows, "")
	}
	return rows
}

func (m Model) renderQuestionCard() string {
	q := m.session.CurrentQuestionRef()
	if q == nil {
		return ""
	}

	difficulty := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.DifficultyColor(string(q.Difficulty))).
		Render(fmt.Sprintf("[%s]", q.Difficulty))

	title := theme.Label.Render(fmt.Sprintf("Question %d/%d ", m.session.CurrentQuestion+1, interview.QuestionCount)) + difficulty

	width := m.width - 10
	if width < 20 {
		width = 20
	}
	body := lipgloss.NewStyle().Width(width).Render(q.Text)

	return theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", theme.Body.Render(body)))
}

func (m Model) finalView() string {
	var rows []string

	// The closing assistant messages carry the outcome wording.
	start := len(m.session.Messages) - 2
	if start < 0 {
		start = 0
	}
	for _, msg := range m.session.Messages[start:] {
		if msg.Role == interview.RoleAssistant {
			width := m.width - 8
			if width < 20 {
				width = 20
			}
			rows = append(rows, lipgloss.NewStyle().Width(width).Render(theme.Body.Render(msg.Text)), "")
		}
	}

	if p := m.session.Profile; p != nil {
		summary := lipgloss.JoinVertical(lipgloss.Left,
			theme.Label.Render("Candidate"),
			theme.Body.Render(p.FullName),
			theme.Subtitle.Render(fmt.Sprintf("%s  •  %s years  •  %s", p.Position, p.Experience, p.Location)),
			theme.Subtitle.Render(fmt.Sprintf("Questions answered: %d/%d", m.session.AnsweredCount(), interview.QuestionCount)),
		)
		rows = append(rows, theme.Card.Render(summary), "")
	}

	if m.recordPath != "" {
		rows = append(rows, theme.Hint.Render("Transcript saved to "+m.recordPath), "")
	}
	if m.warn != "" {
		rows = append(rows, theme.Warn.Render(m.warn), "")
	}

	rows = append(rows, hints("R start a new interview", "Q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func hints(items ...string) string {
	return theme.Hint.Render(strings.Join(items, "  •  "))
}
