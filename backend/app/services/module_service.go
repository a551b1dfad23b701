package services

import (
	"errors"
	"sync"
	"time"

	"beacon-guard/backend/app/catalog"
	"beacon-guard/backend/app/models"
	"beacon-guard/backend/app/repo"
	"beacon-guard/backend/global"

	"gorm.io/gorm"
)

// ModuleService owns the per-agent module work slots and the process-wide
// auto-execution set. The auto set is volatile: it resets on restart by
// design.
type ModuleService struct {
	catalog *catalog.Catalog
	modules *repo.ModuleRepository

	mu   sync.Mutex
	auto []string
}

func NewModuleService(cat *catalog.Catalog, modules *repo.ModuleRepository) *ModuleService {
	return &ModuleService{catalog: cat, modules: modules}
}

// Available returns the catalog names an operator may queue.
func (s *ModuleService) Available() []string { return s.catalog.Names() }

// CheckKnown rejects names outside the configured catalog before any
// queue operation touches storage.
func (s *ModuleService) CheckKnown(name string) error {
	if !s.catalog.Has(name) {
		return ErrUnknownModule
	}
	return nil
}

// Enqueue creates the work slot for (agentID, name). The existence check
// is only the fast path; the composite unique index is the real guard, so
// a concurrent duplicate surfaces as ErrAlreadyQueued rather than racing
// in a second row. An insert against a deleted agent trips the foreign
// key and surfaces as ErrNotFound.
func (s *ModuleService) Enqueue(agentID, name string) error {
	if err := s.CheckKnown(name); err != nil {
		return err
	}
	if _, err := s.modules.FindByAgentAndName(agentID, name); err == nil {
		return ErrAlreadyQueued
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	m := &models.Module{AgentID: agentID, Name: name, Results: "", Processed: false, CreatedAt: time.Now()}
	if err := s.modules.Create(m); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return ErrAlreadyQueued
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return ErrNotFound
		default:
			return err
		}
	}
	global.Logger.Info().Str("agent", agentID).Str("module", name).Msg("module queued")
	return nil
}

// Dequeue removes the slot for (agentID, name), whether or not it has
// been processed.
func (s *ModuleService) Dequeue(agentID, name string) error {
	if err := s.CheckKnown(name); err != nil {
		return err
	}
	m, err := s.modules.FindByAgentAndName(agentID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.modules.Delete(m)
}

// AutoEnabled returns the auto-execution set in enable order.
func (s *ModuleService) AutoEnabled() []string {
	s.mu.Lock()
	out := make([]string, len(s.auto))
	copy(out, s.auto)
	s.mu.Unlock()
	return out
}

// IsAutoEnabled is consulted by the dispatch path when a new agent is
// first seen.
func (s *ModuleService) IsAutoEnabled(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.auto {
		if n == name {
			return true
		}
	}
	return false
}

func (s *ModuleService) EnableAuto(name string) error {
	if err := s.CheckKnown(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.auto {
		if n == name {
			return ErrAlreadyEnabled
		}
	}
	s.auto = append(s.auto, name)
	return nil
}

func (s *ModuleService) DisableAuto(name string) error {
	if err := s.CheckKnown(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range s.auto {
		if n == name {
			s.auto = append(s.auto[:i], s.auto[i+1:]...)
			return nil
		}
	}
	return ErrNotEnabled
}
