package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/pulse/internal/cli/formatter"
	"github.com/alexanderramin/pulse/internal/contract"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── tabs ─────────────────────────────────────────────────────────────────────

type dashboardTab int

const (
	tabScore dashboardTab = iota
	tabVelocity
	tabBottlenecks
	tabWorkload
	tabCount
)

var dashboardTabLabels = [tabCount]string{
	tabScore:       "Score",
	tabVelocity:    "Velocity",
	tabBottlenecks: "Bottlenecks",
	tabWorkload:    "Workload",
}

// ── data ─────────────────────────────────────────────────────────────────────

// dashData holds the loaded analytics for all four tabs.
type dashData struct {
	score       *contract.ExecutionScore
	velocity    *contract.VelocityMetrics
	bottlenecks []contract.Bottleneck
	workload    *contract.TeamWorkload
}

// dashLoadedMsg signals that the analytics queries finished.
type dashLoadedMsg struct {
	data dashData
	err  error
}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel is a tabbed TUI over the four analytics views for one user.
type dashboardModel struct {
	analytics analyticsPort
	userID    string
	teamID    string

	tab     dashboardTab
	data    *dashData
	loading bool
	err     error

	width, height int
	vp            viewport.Model
	quitting      bool
}

// analyticsPort is the read side of the analytics service the dashboard needs.
type analyticsPort interface {
	ExecutionScore(ctx context.Context, req contract.ScoreRequest) (*contract.ExecutionScore, error)
	Velocity(ctx context.Context, req contract.VelocityRequest) (*contract.VelocityMetrics, error)
	Bottlenecks(ctx context.Context, req contract.BottleneckRequest) ([]contract.Bottleneck, error)
	Workload(ctx context.Context, req contract.WorkloadRequest) (*contract.TeamWorkload, error)
}

func newDashboardModel(analytics analyticsPort, userID, teamID string) dashboardModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = dashboardViewportKeyMap()

	return dashboardModel{
		analytics: analytics,
		userID:    userID,
		teamID:    teamID,
		loading:   true,
		vp:        vp,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadData()
}

// loadData runs the four analytics queries off the update loop.
func (m dashboardModel) loadData() tea.Cmd {
	analytics, userID, teamID := m.analytics, m.userID, m.teamID
	return func() tea.Msg {
		ctx := context.Background()
		var data dashData

		score, err := analytics.ExecutionScore(ctx, contract.NewScoreRequest(userID))
		if err != nil {
			return dashLoadedMsg{err: err}
		}
		data.score = score

		velocity, err := analytics.Velocity(ctx, contract.NewVelocityRequest(userID))
		if err != nil {
			return dashLoadedMsg{err: err}
		}
		data.velocity = velocity

		found, err := analytics.Bottlenecks(ctx, contract.NewBottleneckRequest(userID))
		if err != nil {
			return dashLoadedMsg{err: err}
		}
		data.bottlenecks = found

		// Workload is team-scoped. Users without a team skip the tab content.
		if teamID != "" {
			workload, err := analytics.Workload(ctx, contract.NewWorkloadRequest(teamID))
			if err != nil {
				return dashLoadedMsg{err: err}
			}
			data.workload = workload
		}

		return dashLoadedMsg{data: data}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = m.contentHeight()
		m.syncContent()
		return m, nil

	case dashLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.data = &msg.data
		}
		m.syncContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
			m.syncContent()
			return m, nil

		case "shift+tab", "left", "h":
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.syncContent()
			return m, nil

		case "1", "2", "3", "4":
			m.tab = dashboardTab(msg.String()[0] - '1')
			m.syncContent()
			return m, nil

		case "r":
			m.loading = true
			m.err = nil
			return m, m.loadData()
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// syncContent re-renders the active tab into the viewport.
func (m *dashboardModel) syncContent() {
	m.vp.Height = m.contentHeight()
	m.vp.SetContent(m.renderContent())
	m.vp.GotoTop()
}

// contentHeight leaves room for the tab bar and the status line.
func (m *dashboardModel) contentHeight() int {
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	return h
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderTabBar())

	if m.height > 0 {
		sections = append(sections, m.vp.View())
	} else {
		sections = append(sections, m.renderContent())
	}

	sections = append(sections, m.renderStatusBar())

	return strings.Join(sections, "\n")
}

func (m dashboardModel) renderTabBar() string {
	var parts []string
	for i, label := range dashboardTabLabels {
		if dashboardTab(i) == m.tab {
			parts = append(parts, formatter.StyleHeader.Render("["+label+"]"))
		} else {
			parts = append(parts, formatter.Dim(" "+label+" "))
		}
	}

	bar := formatter.StylePurple.Render("pulse") + "  " + strings.Join(parts, " ")
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return bar + "\n" + sep
}

func (m dashboardModel) renderContent() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}
	if m.data == nil {
		return ""
	}

	switch m.tab {
	case tabScore:
		return formatter.FormatScore(m.data.score)
	case tabVelocity:
		return formatter.FormatVelocity(m.data.velocity)
	case tabBottlenecks:
		return formatter.FormatBottlenecks(m.data.bottlenecks)
	case tabWorkload:
		if m.data.workload == nil {
			return "\n  " + formatter.Dim("No team set for this user.")
		}
		return formatter.FormatWorkload(m.data.workload)
	}
	return ""
}

func (m dashboardModel) renderStatusBar() string {
	hints := []string{
		formatter.Dim("tab/←→: switch"),
		formatter.Dim("r: refresh"),
		formatter.Dim("q: quit"),
	}
	if m.vp.TotalLineCount() > m.vp.Height {
		hints = append([]string{formatter.Dim("↑↓: scroll")}, hints...)
	}

	sep := lipgloss.NewStyle().
		Foreground(formatter.ColorDim).
		Render(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// dashboardViewportKeyMap keeps letter keys free for tab switching.
func dashboardViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
