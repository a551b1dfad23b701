package services

import (
	"sync"
	"testing"

	"beacon-guard/backend/app/models"
	"beacon-guard/backend/app/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newModuleService(t *testing.T) (*ModuleService, *repo.ModuleRepository, *gorm.DB, string) {
	t.Helper()
	gdb := newTestDB(t)
	cat := newTestCatalog(t, "screenshot", "cookies", "keylogger")
	modules := repo.NewModuleRepository(gdb)
	agentID := uuid.NewString()
	createAgent(t, gdb, agentID)
	return NewModuleService(cat, modules), modules, gdb, agentID
}

func TestEnqueue_CreatesPendingSlot(t *testing.T) {
	svc, modules, _, agentID := newModuleService(t)

	require.NoError(t, svc.Enqueue(agentID, "screenshot"))

	m, err := modules.FindByAgentAndName(agentID, "screenshot")
	require.NoError(t, err)
	assert.Equal(t, "", m.Results)
	assert.False(t, m.Processed)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestEnqueue_SecondCallIsAlreadyQueued(t *testing.T) {
	svc, modules, _, agentID := newModuleService(t)

	require.NoError(t, svc.Enqueue(agentID, "screenshot"))
	err := svc.Enqueue(agentID, "screenshot")
	assert.ErrorIs(t, err, ErrAlreadyQueued)

	count, err := modules.CountByAgent(agentID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestEnqueue_ProcessedSlotStillBlocks(t *testing.T) {
	svc, _, gdb, agentID := newModuleService(t)

	require.NoError(t, svc.Enqueue(agentID, "screenshot"))
	err := gdb.Model(&models.Module{}).
		Where("agent_id = ? AND name = ?", agentID, "screenshot").
		Updates(map[string]any{"processed": true, "results": "done"}).Error
	require.NoError(t, err)

	// Results landing does not free the slot; only an explicit dequeue does.
	assert.ErrorIs(t, svc.Enqueue(agentID, "screenshot"), ErrAlreadyQueued)
}

func TestEnqueue_UnknownModuleRejected(t *testing.T) {
	svc, _, _, agentID := newModuleService(t)
	assert.ErrorIs(t, svc.Enqueue(agentID, "ransomware"), ErrUnknownModule)
}

func TestEnqueue_MissingAgentSurfacesNotFound(t *testing.T) {
	svc, _, _, _ := newModuleService(t)
	assert.ErrorIs(t, svc.Enqueue("no-such-agent", "screenshot"), ErrNotFound)
}

func TestDequeue_FreesTheSlot(t *testing.T) {
	svc, _, _, agentID := newModuleService(t)

	require.NoError(t, svc.Enqueue(agentID, "screenshot"))
	require.NoError(t, svc.Dequeue(agentID, "screenshot"))

	// Slot is free again.
	assert.NoError(t, svc.Enqueue(agentID, "screenshot"))
}

func TestDequeue_MissingSlotIsNotFound(t *testing.T) {
	svc, _, _, agentID := newModuleService(t)
	assert.ErrorIs(t, svc.Dequeue(agentID, "screenshot"), ErrNotFound)
	assert.ErrorIs(t, svc.Dequeue(agentID, "bogus"), ErrUnknownModule)
}

func TestEnqueue_ConcurrentDuplicateOnlyOneWins(t *testing.T) {
	svc, modules, _, agentID := newModuleService(t)

	start := make(chan struct{})
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs <- svc.Enqueue(agentID, "keylogger")
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	var ok, conflict int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, ErrAlreadyQueued):
			conflict++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflict)

	count, err := modules.CountByAgent(agentID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAutoSet_EnableDisable(t *testing.T) {
	svc, _, _, _ := newModuleService(t)

	require.NoError(t, svc.EnableAuto("screenshot"))
	require.NoError(t, svc.EnableAuto("cookies"))
	assert.Equal(t, []string{"screenshot", "cookies"}, svc.AutoEnabled())
	assert.True(t, svc.IsAutoEnabled("screenshot"))

	assert.ErrorIs(t, svc.EnableAuto("screenshot"), ErrAlreadyEnabled)
	assert.ErrorIs(t, svc.EnableAuto("bogus"), ErrUnknownModule)
	assert.Equal(t, []string{"screenshot", "cookies"}, svc.AutoEnabled(),
		"failed enables must not mutate the set")

	require.NoError(t, svc.DisableAuto("screenshot"))
	assert.False(t, svc.IsAutoEnabled("screenshot"))
	assert.ErrorIs(t, svc.DisableAuto("screenshot"), ErrNotEnabled)
	assert.ErrorIs(t, svc.DisableAuto("bogus"), ErrUnknownModule)
}
