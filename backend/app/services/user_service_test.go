package services

import (
	"testing"

	"beacon-guard/backend/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureAdmin_IsIdempotent(t *testing.T) {
	gdb := newTestDB(t)
	users := repo.NewUserRepository(gdb)
	svc := NewUserService(users)

	require.NoError(t, svc.EnsureAdmin("admin", "hunter2"))
	require.NoError(t, svc.EnsureAdmin("admin", "other-password"))

	count, err := users.CountByUsername("admin")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// The first password stays valid.
	u, err := svc.ValidateCredentials("admin", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role)

	_, err = svc.ValidateCredentials("admin", "other-password")
	assert.Error(t, err)
	_, err = svc.ValidateCredentials("ghost", "hunter2")
	assert.Error(t, err)
}
