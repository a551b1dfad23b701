package services

import (
	"errors"
	"net/http"
	"time"

	"beacon-guard/backend/app/models"
	"beacon-guard/backend/app/repo"
	"beacon-guard/backend/config"
	"beacon-guard/backend/global"

	webpush "github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"
)

type sendFunc func(message []byte, s *webpush.Subscription, options *webpush.Options) (*http.Response, error)

// PushService is the notification bridge: it records dashboard
// subscriptions and fires best-effort pushes at agents. Delivery failures
// are logged and reported as ErrDeliveryFailed, never retried.
type PushService struct {
	registrations *repo.RegistrationRepository
	dashboards    *repo.DashboardRegistrationRepository
	cfg           config.Push
	send          sendFunc
}

func NewPushService(registrations *repo.RegistrationRepository, dashboards *repo.DashboardRegistrationRepository, cfg config.Push) *PushService {
	return &PushService{
		registrations: registrations,
		dashboards:    dashboards,
		cfg:           cfg,
		send:          webpush.SendNotification,
	}
}

// RegisterDashboard persists the operator console's push subscription.
// Append-only; the newest row wins.
func (s *PushService) RegisterDashboard(endpoint, key, authSecret string) error {
	if endpoint == "" || key == "" || authSecret == "" {
		return ErrInvalidInput
	}
	return s.dashboards.Create(&models.DashboardRegistration{
		Endpoint:   endpoint,
		PushKey:    key,
		AuthSecret: authSecret,
		CreatedAt:  time.Now(),
	})
}

// PushToAgent wakes an agent through its latest push subscription. The
// delivery call runs with a bounded timeout and holds no locks.
func (s *PushService) PushToAgent(agentID string) error {
	reg, err := s.registrations.LatestByAgent(agentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	sub := &webpush.Subscription{
		Endpoint: reg.Endpoint,
		Keys: webpush.Keys{
			P256dh: reg.AuthKey,
			Auth:   reg.AuthSecret,
		},
	}
	resp, err := s.send([]byte(""), sub, &webpush.Options{
		Subscriber:      s.cfg.Subject,
		VAPIDPublicKey:  s.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: s.cfg.VAPIDPrivateKey,
		TTL:             30,
		HTTPClient:      &http.Client{Timeout: s.cfg.Timeout},
	})
	if err != nil {
		global.Logger.Warn().Err(err).Str("agent", agentID).Msg("push delivery failed")
		return ErrDeliveryFailed
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		global.Logger.Warn().Int("status", resp.StatusCode).Str("agent", agentID).Msg("push endpoint rejected delivery")
		return ErrDeliveryFailed
	}
	return nil
}
