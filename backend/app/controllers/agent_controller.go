package controllers

import (
	"encoding/json"
	"net/http"

	"beacon-guard/backend/app/dto"
	"beacon-guard/backend/app/services"
)

type AgentController struct{ Agents *services.AgentService }

func NewAgentController(agents *services.AgentService) *AgentController {
	return &AgentController{Agents: agents}
}

// List serves GET /agents: the live map plus everything known but quiet.
func (c *AgentController) List(w http.ResponseWriter, r *http.Request) {
	active := c.Agents.ActiveAgents()
	dormant, err := c.Agents.DormantAgents(active)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto.AgentsResponse{Active: active, Dormant: dormant})
}

// Get serves GET /agent/{id}.
func (c *AgentController) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := c.Agents.AgentDetail(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(detail)
}

// Delete serves DELETE /agent/{id}.
func (c *AgentController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Agents.DeleteAgent(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
}
