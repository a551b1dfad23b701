package ui

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type DashboardModel struct {
	Session *Session
	Table   table.Model
	Err     error
}

type agentRow struct {
	ID       string
	Status   string
	Domain   string
	LastSeen string
}

type agentsLoadedMsg struct {
	Rows []agentRow
}

type AgentSelectedMsg struct {
	AgentID string
}

func NewDashboardModel(s *Session, width, height int) DashboardModel {
	columns := []table.Column{
		{Title: "Agent ID", Width: 38},
		{Title: "Status", Width: 8},
		{Title: "Domain", Width: 28},
		{Title: "Last Seen", Width: 20},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height-10),
	)
	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return DashboardModel{Session: s, Table: t}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.refreshCmd
}

func (m DashboardModel) refreshCmd() tea.Msg {
	agents, err := m.Session.Agents()
	if err != nil {
		return errMsg(err)
	}
	rows := make([]agentRow, 0, len(agents.Active)+len(agents.Dormant))
	for id, e := range agents.Active {
		rows = append(rows, agentRow{
			ID:       id,
			Status:   "active",
			LastSeen: time.Unix(e.LastSeen, 0).Format("2006-01-02 15:04:05"),
		})
	}
	for id, fields := range agents.Dormant {
		domain, _ := fields["domain"].(string)
		rows = append(rows, agentRow{ID: id, Status: "dormant", Domain: domain})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Status != rows[j].Status {
			return rows[i].Status == "active"
		}
		return rows[i].ID < rows[j].ID
	})
	return agentsLoadedMsg{Rows: rows}
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.refreshCmd
		case "enter":
			selected := m.Table.SelectedRow()
			if len(selected) > 0 {
				id := selected[0]
				return m, func() tea.Msg { return AgentSelectedMsg{AgentID: id} }
			}
		case "q":
			return m, tea.Quit
		}

	case agentsLoadedMsg:
		m.Err = nil
		rows := make([]table.Row, 0, len(msg.Rows))
		for _, r := range msg.Rows {
			rows = append(rows, table.Row{r.ID, r.Status, r.Domain, r.LastSeen})
		}
		m.Table.SetRows(rows)

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Agents") + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("r refresh | enter detail | q quit"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
