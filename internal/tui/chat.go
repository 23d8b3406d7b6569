// Package tui implements the interactive assistant chat.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/u-share/sortflow/internal/api"
	"github.com/u-share/sortflow/internal/assistant"
)

var (
	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1D3"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

type chatLine struct {
	speaker string
	text    string
	isError bool
}

type answerMsg struct {
	answer assistant.Answer
}

type answerErrMsg struct {
	err error
}

// Model is the bubbletea model for the assistant chat. One conversation id is
// minted at start and reused for every question.
type Model struct {
	client         *assistant.Client
	ctx            context.Context
	conversationID string
	lines          []chatLine
	input          textinput.Model
	spin           spinner.Model
	waiting        bool
	quitting       bool
}

// NewModel creates a chat model over the assistant client.
func NewModel(ctx context.Context, client *assistant.Client) Model {
	ti := textinput.New()
	ti.Placeholder = "问我任何垃圾分类问题..."
	ti.CharLimit = assistant.MaxQuestionLength
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client:         client,
		ctx:            ctx,
		conversationID: assistant.NewConversationID(),
		input:          ti,
		spin:           sp,
	}
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input and assistant responses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			question := strings.TrimSpace(m.input.Value())
			if question == "" {
				return m, nil
			}
			m.lines = append(m.lines, chatLine{speaker: "你", text: question})
			m.input.Reset()
			m.waiting = true
			return m, tea.Batch(m.spin.Tick, m.ask(question))
		}

	case answerMsg:
		m.waiting = false
		m.lines = append(m.lines, chatLine{speaker: "助手", text: msg.answer.Text})
		return m, nil

	case answerErrMsg:
		m.waiting = false
		m.lines = append(m.lines, chatLine{text: errorText(msg.err), isError: true})
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the scrollback, the spinner while waiting, and the input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(hintStyle.Render("垃圾分类 AI 助手 (esc 退出)"))
	b.WriteString("\n\n")

	for _, line := range m.lines {
		switch {
		case line.isError:
			b.WriteString(errorStyle.Render(line.text))
		case line.speaker == "你":
			b.WriteString(userStyle.Render(line.speaker+": ") + line.text)
		default:
			b.WriteString(assistantStyle.Render(line.speaker+": ") + line.text)
		}
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(m.spin.View() + " 思考中...\n")
	}

	b.WriteString("\n" + m.input.View())
	return b.String()
}

func (m Model) ask(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := m.client.Ask(m.ctx, question, m.conversationID)
		if err != nil {
			return answerErrMsg{err: err}
		}
		return answerMsg{answer: answer}
	}
}

func errorText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// Run starts the chat program and blocks until the user quits.
func Run(ctx context.Context, client *assistant.Client) error {
	_, err := tea.NewProgram(NewModel(ctx, client), tea.WithContext(ctx)).Run()
	return err
}
