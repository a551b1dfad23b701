package services

import (
	"errors"
	"strconv"
	"time"

	"beacon-guard/backend/app/presence"
	"beacon-guard/backend/app/repo"

	"gorm.io/gorm"
)

// domCommandWindow is how many processed DOM commands the detail view
// surfaces.
const domCommandWindow = 3

// AgentService composes the volatile liveness view with the durable
// registry. Every known agent id lands in exactly one of the active and
// dormant sets, per channel.
type AgentService struct {
	tracker       *presence.Tracker
	agents        *repo.AgentRepository
	registrations *repo.RegistrationRepository
	modules       *repo.ModuleRepository
	domCommands   *repo.DomCommandRepository
	timeout       time.Duration
}

func NewAgentService(tracker *presence.Tracker, agents *repo.AgentRepository, registrations *repo.RegistrationRepository, modules *repo.ModuleRepository, domCommands *repo.DomCommandRepository, timeout time.Duration) *AgentService {
	return &AgentService{
		tracker:       tracker,
		agents:        agents,
		registrations: registrations,
		modules:       modules,
		domCommands:   domCommands,
		timeout:       timeout,
	}
}

// ActiveAgents sweeps both channels and returns the main-channel map.
// Sweeping here is what bounds staleness: there is no background reaper.
func (s *AgentService) ActiveAgents() map[string]presence.Entry {
	now := time.Now()
	s.tracker.Sweep(presence.Main, now, s.timeout)
	s.tracker.Sweep(presence.Dom, now, s.timeout)
	return s.tracker.Snapshot(presence.Main)
}

// DormantAgents returns every registered agent that is absent from the
// current main-channel active set, keyed by id.
func (s *AgentService) DormantAgents(active map[string]presence.Entry) (map[string]map[string]any, error) {
	ids := make([]string, 0, len(active))
	for id := range active {
		ids = append(ids, id)
	}
	agents, err := s.agents.FindNotIn(ids)
	if err != nil {
		return nil, err
	}
	out := make(map[string]map[string]any, len(agents))
	for i := range agents {
		a := &agents[i]
		entry := a.ToJSON()
		entry["push"] = strconv.FormatBool(len(a.Registrations) > 0)
		entry["active"] = "false"
		out[a.ID] = entry
	}
	return out, nil
}

// AgentDetail returns the full operator projection for one agent: the
// descriptive fields, push/liveness flags, processed module results, and
// the newest processed DOM commands keyed by command text. When the same
// command text occurs twice inside the window the older result wins; the
// collapse is deliberate and matches the operator view contract.
func (s *AgentService) AgentDetail(agentID string) (map[string]any, error) {
	a, err := s.agents.FindByID(agentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	s.tracker.Sweep(presence.Main, now, s.timeout)
	s.tracker.Sweep(presence.Dom, now, s.timeout)

	result := a.ToJSON()
	_, regErr := s.registrations.LatestByAgent(agentID)
	result["push"] = strconv.FormatBool(regErr == nil)
	result["active"] = strconv.FormatBool(s.tracker.IsActive(presence.Main, agentID))
	result["domActive"] = strconv.FormatBool(s.tracker.IsActive(presence.Dom, agentID))

	mods, err := s.modules.ProcessedByAgent(agentID)
	if err != nil {
		return nil, err
	}
	if len(mods) > 0 {
		results := make(map[string]string, len(mods))
		for _, m := range mods {
			results[m.Name] = m.Results
		}
		result["modules"] = results
	}

	cmds, err := s.domCommands.LatestProcessed(agentID, domCommandWindow)
	if err != nil {
		return nil, err
	}
	if len(cmds) > 0 {
		results := make(map[string]*string, len(cmds))
		for _, c := range cmds {
			results[c.Command] = c.Result
		}
		result["dom_commands"] = results
	}
	return result, nil
}

// DeleteAgent removes the agent and cascades to its queue rows. The
// liveness entry is left to expire on its own; a deleted id simply stops
// mattering.
func (s *AgentService) DeleteAgent(agentID string) error {
	if _, err := s.agents.FindByID(agentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.agents.Delete(agentID)
}
