package services

import (
	"errors"
	"time"

	"beacon-guard/backend/app/models"
	"beacon-guard/backend/app/repo"

	"gorm.io/gorm"
)

// DomService appends to the per-agent DOM command log. No dedup: every
// send is an independent row.
type DomService struct {
	domCommands *repo.DomCommandRepository
}

func NewDomService(domCommands *repo.DomCommandRepository) *DomService {
	return &DomService{domCommands: domCommands}
}

func (s *DomService) Enqueue(agentID, script string) error {
	if script == "" {
		return ErrInvalidInput
	}
	cmd := &models.DomCommand{AgentID: agentID, Command: script, Result: nil, Processed: false, CreatedAt: time.Now()}
	if err := s.domCommands.Create(cmd); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
