package services

import (
	"testing"

	"beacon-guard/backend/app/models"
	"beacon-guard/backend/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomEnqueue_EmptyScriptRejected(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewDomService(repo.NewDomCommandRepository(gdb))

	assert.ErrorIs(t, svc.Enqueue("agent-a", ""), ErrInvalidInput)
}

func TestDomEnqueue_RepeatedSendsAreIndependentRows(t *testing.T) {
	gdb := newTestDB(t)
	domRepo := repo.NewDomCommandRepository(gdb)
	svc := NewDomService(domRepo)
	createAgent(t, gdb, "agent-a")

	require.NoError(t, svc.Enqueue("agent-a", "document.title"))
	require.NoError(t, svc.Enqueue("agent-a", "document.title"))
	require.NoError(t, svc.Enqueue("agent-a", "document.cookie"))

	count, err := domRepo.CountByAgent("agent-a")
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	var cmd models.DomCommand
	require.NoError(t, gdb.First(&cmd).Error)
	assert.False(t, cmd.Processed)
	assert.Nil(t, cmd.Result)
}

func TestDomEnqueue_MissingAgentSurfacesNotFound(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewDomService(repo.NewDomCommandRepository(gdb))

	assert.ErrorIs(t, svc.Enqueue("ghost", "document.title"), ErrNotFound)
}
