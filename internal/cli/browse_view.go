package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/contract"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// questionsLoadedMsg signals that the active question list has been loaded.
type questionsLoadedMsg struct {
	resp *contract.ActiveQuestionsResponse
	err  error
}

// browseKeyMap holds the key bindings of the question browser.
type browseKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Detail  key.Binding
	Mode    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Detail:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
		Mode:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "quick/full")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseModel is a read-only browser over the active question list.
// Answering happens through the wizard or `intake answer`; the browser is
// for seeing what the engine currently asks and why.
type browseModel struct {
	app        *App
	businessID string
	mode       domain.Mode
	lang       string

	keys       browseKeyMap
	resp       *contract.ActiveQuestionsResponse
	cursor     int
	showDetail bool
	loading    bool
	err        error
}

func newBrowseModel(app *App, businessID string, mode domain.Mode, lang string) *browseModel {
	return &browseModel{
		app:        app,
		businessID: businessID,
		mode:       mode,
		lang:       lang,
		keys:       newBrowseKeyMap(),
		loading:    true,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.load()
}

func (m *browseModel) load() tea.Cmd {
	app, id, mode, lang := m.app, m.businessID, m.mode, m.lang
	return func() tea.Msg {
		req := contract.NewActiveQuestionsRequest(id)
		req.Mode = mode
		if lang != "" {
			req.Lang = lang
		}
		resp, err := app.Onboarding.ActiveQuestions(context.Background(), req)
		return questionsLoadedMsg{resp: resp, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.resp = msg.resp
			if m.cursor >= len(m.resp.Questions) {
				m.cursor = len(m.resp.Questions) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.showDetail {
				m.showDetail = false
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.resp != nil && m.cursor < len(m.resp.Questions)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Detail):
			m.showDetail = !m.showDetail
		case key.Matches(msg, m.keys.Mode):
			if m.mode == domain.ModeFull {
				m.mode = domain.ModeQuick
			} else {
				m.mode = domain.ModeFull
			}
			m.loading = true
			return m, m.load()
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m *browseModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading questions...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.resp == nil || len(m.resp.Questions) == 0 {
		return "\n  " + formatter.Dim("Nothing to ask right now.") + "\n"
	}

	if m.showDetail {
		return formatter.FormatQuestionDetail(m.resp.Questions[m.cursor]) + "\n" + m.helpLine()
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.ModeBadge(m.resp.Mode) + "\n")
	pct := 0.0
	if m.resp.Total > 0 {
		pct = float64(m.resp.Answered) / float64(m.resp.Total)
	}
	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		formatter.RenderProgress(pct, 20),
		formatter.Dim(fmt.Sprintf("%d of %d answered", m.resp.Answered, m.resp.Total))))

	for i, q := range m.resp.Questions {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("  %s%s %s %s\n",
			cursor,
			formatter.AnsweredPill(q.Answered),
			formatter.Bold(q.Title),
			formatter.Dim("("+q.ID+")")))
	}

	b.WriteString("\n" + m.helpLine())
	return b.String()
}

func (m *browseModel) helpLine() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Detail, m.keys.Mode, m.keys.Refresh, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s",
			formatter.StyleFg.Render(b.Help().Key),
			formatter.Dim(b.Help().Desc)))
	}
	return "  " + strings.Join(parts, formatter.Dim("  ·  "))
}

func newBrowseCmd(app *App) *cobra.Command {
	var mode, lang string

	cmd := &cobra.Command{
		Use:   "browse BUSINESS",
		Short: "Browse the active questions interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("browse needs an interactive terminal; use `intake questions` instead")
			}
			ctx := context.Background()
			id, err := resolveBusinessID(ctx, app, args[0])
			if err != nil {
				return err
			}
			model := newBrowseModel(app, id, domain.Mode(mode), lang)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	addOnboardingFlags(cmd.Flags(), &mode, &lang)

	return cmd
}
