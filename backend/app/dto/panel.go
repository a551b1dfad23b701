package dto

import "beacon-guard/backend/app/presence"

// ModulesResponse lists what an operator may queue and what runs
// automatically on newly seen agents.
type ModulesResponse struct {
	Modules           []string `json:"modules"`
	AutoLoadedModules []string `json:"autoLoadedModules"`
}

// AgentsResponse is the active/dormant split for the agents list.
type AgentsResponse struct {
	Active  map[string]presence.Entry `json:"active"`
	Dormant map[string]map[string]any `json:"dormant"`
}

// DomCommandRequest carries the script for an agent's DOM channel.
type DomCommandRequest struct {
	JS string `json:"js"`
}

// DashboardRegistrationRequest is the operator console push subscription.
type DashboardRegistrationRequest struct {
	Endpoint   string `json:"endpoint"`
	Key        string `json:"key"`
	AuthSecret string `json:"authSecret"`
}
