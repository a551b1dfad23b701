package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type errMsg error

type loginDoneMsg struct{}

type LoginModel struct {
	Session  *Session
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
}

const (
	inputURL = iota
	inputUsername
	inputPassword
)

func NewLoginModel(s *Session, defaultURL string) LoginModel {
	inputs := make([]textinput.Model, 3)

	inputs[inputURL] = textinput.New()
	inputs[inputURL].Placeholder = "http://127.0.0.1:9500"
	inputs[inputURL].Prompt = "Panel URL: "
	inputs[inputURL].SetValue(defaultURL)
	inputs[inputURL].Focus()

	inputs[inputUsername] = textinput.New()
	inputs[inputUsername].Placeholder = "admin"
	inputs[inputUsername].Prompt = "Username:  "

	inputs[inputPassword] = textinput.New()
	inputs[inputPassword].Placeholder = "password"
	inputs[inputPassword].EchoMode = textinput.EchoPassword
	inputs[inputPassword].Prompt = "Password:  "

	return LoginModel{Session: s, Inputs: inputs}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case errMsg:
		m.Err = msg
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.loginCmd
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		}
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *LoginModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *LoginModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m LoginModel) loginCmd() tea.Msg {
	err := m.Session.Login(
		m.Inputs[inputURL].Value(),
		m.Inputs[inputUsername].Value(),
		m.Inputs[inputPassword].Value(),
	)
	if err != nil {
		return errMsg(err)
	}
	return loginDoneMsg{}
}

func (m LoginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("beacon-guard console") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Tab to switch fields, Enter to submit"))
	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
