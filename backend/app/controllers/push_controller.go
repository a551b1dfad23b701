package controllers

import (
	"encoding/json"
	"net/http"

	"beacon-guard/backend/app/dto"
	"beacon-guard/backend/app/services"
)

type PushController struct{ Push *services.PushService }

func NewPushController(push *services.PushService) *PushController {
	return &PushController{Push: push}
}

// Notify serves POST /push/{agentID}: best-effort wakeup, no retry.
func (c *PushController) Notify(w http.ResponseWriter, r *http.Request) {
	if err := c.Push.PushToAgent(r.PathValue("agentID")); err != nil {
		writeServiceError(w, err)
	}
}

// Register serves POST /registration with the console's own subscription.
func (c *PushController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.DashboardRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err := c.Push.RegisterDashboard(req.Endpoint, req.Key, req.AuthSecret); err != nil {
		writeServiceError(w, err)
	}
}
