package services

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"beacon-guard/backend/app/models"
	"beacon-guard/backend/app/repo"
	"beacon-guard/backend/config"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPushService(t *testing.T) (*PushService, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	svc := NewPushService(
		repo.NewRegistrationRepository(gdb),
		repo.NewDashboardRegistrationRepository(gdb),
		config.Push{Subject: "mailto:operator@example.org", Timeout: time.Second},
	)
	return svc, gdb
}

func fakeResponse(status int) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(""))}
}

func TestRegisterDashboard_RejectsMissingFields(t *testing.T) {
	svc, _ := newPushService(t)

	assert.ErrorIs(t, svc.RegisterDashboard("", "k", "s"), ErrInvalidInput)
	assert.ErrorIs(t, svc.RegisterDashboard("https://e", "", "s"), ErrInvalidInput)
	assert.ErrorIs(t, svc.RegisterDashboard("https://e", "k", ""), ErrInvalidInput)
}

func TestRegisterDashboard_AppendOnlyLatestWins(t *testing.T) {
	svc, gdb := newPushService(t)

	require.NoError(t, svc.RegisterDashboard("https://push.example/1", "k1", "s1"))
	require.NoError(t, svc.RegisterDashboard("https://push.example/2", "k2", "s2"))

	latest, err := repo.NewDashboardRegistrationRepository(gdb).Latest()
	require.NoError(t, err)
	assert.Equal(t, "https://push.example/2", latest.Endpoint)

	var count int64
	require.NoError(t, gdb.Model(&models.DashboardRegistration{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestPushToAgent_NoRegistration(t *testing.T) {
	svc, gdb := newPushService(t)
	createAgent(t, gdb, "agent-a")

	assert.ErrorIs(t, svc.PushToAgent("agent-a"), ErrNotFound)
}

func TestPushToAgent_UsesLatestRegistration(t *testing.T) {
	svc, gdb := newPushService(t)
	createAgent(t, gdb, "agent-a")
	require.NoError(t, gdb.Create(&models.Registration{
		AgentID: "agent-a", Endpoint: "https://push.example/old", AuthKey: "k1", AuthSecret: "s1",
	}).Error)
	require.NoError(t, gdb.Create(&models.Registration{
		AgentID: "agent-a", Endpoint: "https://push.example/new", AuthKey: "k2", AuthSecret: "s2",
	}).Error)

	var gotEndpoint string
	svc.send = func(message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
		gotEndpoint = s.Endpoint
		assert.Equal(t, "k2", s.Keys.P256dh)
		assert.Equal(t, "s2", s.Keys.Auth)
		return fakeResponse(http.StatusCreated), nil
	}

	require.NoError(t, svc.PushToAgent("agent-a"))
	assert.Equal(t, "https://push.example/new", gotEndpoint)
}

func TestPushToAgent_DeliveryErrorIsSoft(t *testing.T) {
	svc, gdb := newPushService(t)
	createAgent(t, gdb, "agent-a")
	require.NoError(t, gdb.Create(&models.Registration{
		AgentID: "agent-a", Endpoint: "https://push.example/ep", AuthKey: "k", AuthSecret: "s",
	}).Error)

	svc.send = func(message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
		return nil, errors.New("endpoint unreachable")
	}
	assert.ErrorIs(t, svc.PushToAgent("agent-a"), ErrDeliveryFailed)

	svc.send = func(message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
		return fakeResponse(http.StatusGone), nil
	}
	assert.ErrorIs(t, svc.PushToAgent("agent-a"), ErrDeliveryFailed)
}
