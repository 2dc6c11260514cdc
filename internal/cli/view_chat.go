package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/fitai/internal/cli/formatter"
	"github.com/alexanderramin/fitai/internal/domain"
)

type chatReplyMsg struct {
	reply string
	err   error
}

// chatView is a multi-turn chat session. Each question is answered by the
// coach service; generation problems already resolve to fallback text.
type chatView struct {
	ctx     context.Context
	app     *App
	profile *domain.Profile

	input   textinput.Model
	spinner spinner.Model

	messages []string
	pending  bool
	first    string
}

func newChatView(ctx context.Context, app *App, p *domain.Profile, first string) *chatView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Placeholder = "Tanya seputar latihan, nutrisi atau tidur"

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	v := &chatView{
		ctx:     ctx,
		app:     app,
		profile: p,
		input:   ti,
		spinner: sp,
		first:   strings.TrimSpace(first),
	}
	v.messages = append(v.messages, formatter.Dim("Ketik pertanyaan lalu Enter. /quit atau Esc untuk keluar."))
	return v
}

func (v *chatView) Init() tea.Cmd {
	if v.first != "" {
		return tea.Batch(textinput.Blink, v.submit(v.first))
	}
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return v, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(v.input.Value())
			v.input.Reset()
			if input == "" || v.pending {
				return v, nil
			}
			switch strings.ToLower(input) {
			case "/quit", "/exit", "/q":
				return v, tea.Quit
			}
			return v, v.submit(input)
		}

	case chatReplyMsg:
		v.pending = false
		if msg.err != nil {
			v.messages = append(v.messages, formatter.StyleRed.Render("Error: ")+msg.err.Error())
		} else {
			v.messages = append(v.messages, formatter.FormatChatReply(msg.reply))
		}
		return v, nil

	case spinner.TickMsg:
		if !v.pending {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) View() string {
	var b strings.Builder
	for _, m := range v.messages {
		b.WriteString(m)
		b.WriteString("\n")
	}
	if v.pending {
		b.WriteString(v.spinner.View() + formatter.Dim(" Berpikir..."))
		return b.String()
	}
	b.WriteString(formatter.StylePurple.Render("kamu") + formatter.Dim("> "))
	b.WriteString(v.input.View())
	return b.String()
}

// submit records the question and starts answering it.
func (v *chatView) submit(question string) tea.Cmd {
	v.messages = append(v.messages, formatter.Dim("Kamu: ")+question)
	v.pending = true
	return tea.Batch(v.ask(question), v.spinner.Tick)
}

func (v *chatView) ask(question string) tea.Cmd {
	return func() tea.Msg {
		reply, err := v.app.Coach.Chat(v.ctx, question, v.profile)
		return chatReplyMsg{reply: reply, err: err}
	}
}
