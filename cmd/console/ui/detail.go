package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type detailMode int

const (
	modeView detailMode = iota
	modeQueueModule
	modeDomCommand
)

type DetailModel struct {
	Session *Session
	AgentID string
	Detail  map[string]any
	Modules []string
	Input   textinput.Model
	Mode    detailMode
	Status  string
	Err     error
}

type detailLoadedMsg struct {
	Detail  map[string]any
	Modules []string
}

type actionDoneMsg string

type BackMsg struct{}

type AgentDeletedMsg struct{}

func NewDetailModel(s *Session, agentID string) DetailModel {
	in := textinput.New()
	in.CharLimit = 512
	return DetailModel{Session: s, AgentID: agentID, Input: in}
}

func (m DetailModel) Init() tea.Cmd {
	return m.refreshCmd
}

func (m DetailModel) refreshCmd() tea.Msg {
	detail, err := m.Session.AgentDetail(m.AgentID)
	if err != nil {
		return errMsg(err)
	}
	mods, err := m.Session.Modules()
	if err != nil {
		return errMsg(err)
	}
	return detailLoadedMsg{Detail: detail, Modules: mods.Modules}
}

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Mode != modeView {
			switch msg.Type {
			case tea.KeyEsc:
				m.Mode = modeView
				m.Input.Blur()
				return m, nil
			case tea.KeyEnter:
				value := strings.TrimSpace(m.Input.Value())
				mode := m.Mode
				m.Mode = modeView
				m.Input.Blur()
				m.Input.SetValue("")
				if value == "" {
					return m, nil
				}
				return m, m.submitCmd(mode, value)
			}
			var cmd tea.Cmd
			m.Input, cmd = m.Input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return BackMsg{} }
		case "r":
			return m, m.refreshCmd
		case "m":
			m.Mode = modeQueueModule
			m.Input.Prompt = "Module name: "
			m.Input.Focus()
			return m, textinput.Blink
		case "d":
			m.Mode = modeDomCommand
			m.Input.Prompt = "DOM command: "
			m.Input.Focus()
			return m, textinput.Blink
		case "p":
			return m, func() tea.Msg {
				if err := m.Session.PushAgent(m.AgentID); err != nil {
					return errMsg(err)
				}
				return actionDoneMsg("push delivered")
			}
		case "x":
			return m, func() tea.Msg {
				if err := m.Session.DeleteAgent(m.AgentID); err != nil {
					return errMsg(err)
				}
				return AgentDeletedMsg{}
			}
		}

	case detailLoadedMsg:
		m.Detail = msg.Detail
		m.Modules = msg.Modules
		m.Err = nil

	case actionDoneMsg:
		m.Status = string(msg)
		m.Err = nil
		return m, m.refreshCmd

	case errMsg:
		m.Err = msg
	}
	return m, nil
}

func (m DetailModel) submitCmd(mode detailMode, value string) tea.Cmd {
	return func() tea.Msg {
		switch mode {
		case modeQueueModule:
			if err := m.Session.QueueModule(value, m.AgentID); err != nil {
				return errMsg(err)
			}
			return actionDoneMsg("module queued: " + value)
		case modeDomCommand:
			if err := m.Session.SendDomCommand(m.AgentID, value); err != nil {
				return errMsg(err)
			}
			return actionDoneMsg("command queued")
		}
		return nil
	}
}

func (m DetailModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Agent "+m.AgentID) + "\n\n")

	if m.Detail != nil {
		for _, key := range []string{"domain", "user_agent", "ip", "push", "active", "domActive"} {
			if v, ok := m.Detail[key]; ok {
				b.WriteString(fmt.Sprintf("%-12s %v\n", key, v))
			}
		}
		if mods, ok := m.Detail["modules"].(map[string]any); ok && len(mods) > 0 {
			b.WriteString("\nModule results:\n")
			for _, name := range sortedKeys(mods) {
				b.WriteString("  " + name + ": " + truncate(fmt.Sprintf("%v", mods[name]), 80) + "\n")
			}
		}
		if cmds, ok := m.Detail["dom_commands"].(map[string]any); ok && len(cmds) > 0 {
			b.WriteString("\nCommand results:\n")
			for _, cmd := range sortedKeys(cmds) {
				b.WriteString("  " + truncate(cmd, 40) + ": " + truncate(fmt.Sprintf("%v", cmds[cmd]), 60) + "\n")
			}
		}
	}

	if len(m.Modules) > 0 {
		b.WriteString("\nAvailable modules: " + strings.Join(m.Modules, ", ") + "\n")
	}

	b.WriteString("\n")
	if m.Mode != modeView {
		b.WriteString(m.Input.View() + "\n")
		b.WriteString(blurredStyle.Render("Enter to submit, Esc to cancel"))
	} else {
		b.WriteString(blurredStyle.Render("r refresh | m queue module | d dom command | p push | x delete | esc back"))
	}
	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}
