package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	stateLogin state = iota
	stateDashboard
	stateDetail
)

// RootModel drives the console: login form, agent list, agent detail.
type RootModel struct {
	session   *Session
	state     state
	login     LoginModel
	dashboard DashboardModel
	detail    DetailModel
	width     int
	height    int
}

func NewRootModel(defaultURL string) RootModel {
	s := NewSession()
	return RootModel{
		session: s,
		state:   stateLogin,
		login:   NewLoginModel(s, defaultURL),
		width:   100,
		height:  30,
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case loginDoneMsg:
		m.state = stateDashboard
		m.dashboard = NewDashboardModel(m.session, m.width, m.height)
		return m, m.dashboard.Init()

	case AgentSelectedMsg:
		m.state = stateDetail
		m.detail = NewDetailModel(m.session, msg.AgentID)
		return m, m.detail.Init()

	case BackMsg, AgentDeletedMsg:
		m.state = stateDashboard
		return m, m.dashboard.refreshCmd
	}

	var cmd tea.Cmd
	switch m.state {
	case stateLogin:
		m.login, cmd = m.login.Update(msg)
	case stateDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case stateDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	var view string
	switch m.state {
	case stateLogin:
		view = m.login.View()
	case stateDashboard:
		view = m.dashboard.View()
	case stateDetail:
		view = m.detail.View()
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(view)
}
