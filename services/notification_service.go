package services

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/akaXala/ESCOMIDA/entity"
	"github.com/akaXala/ESCOMIDA/pkg/whatsapp"
)

// countryPrefix is prepended to the stored 10-digit local number.
const countryPrefix = "52"

// NotificationService sends the WhatsApp status template. Every failure is
// logged and swallowed: notification is best-effort and must never fail the
// state transition that triggered it.
type NotificationService struct {
	Client *whatsapp.Client
	Log    *zap.Logger
}

func NewNotificationService(client *whatsapp.Client, log *zap.Logger) *NotificationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationService{Client: client, Log: log}
}

func (s *NotificationService) NotifyStatus(ctx context.Context, order *entity.Order, newStatus string) {
	if s.Client == nil || !s.Client.Configured() {
		return
	}
	if order.User.Phone == "" {
		s.Log.Info("status notification skipped: user has no phone",
			zap.Uint("order_id", order.ID), zap.Uint("user_id", order.UserID))
		return
	}

	name := order.User.Name
	if name == "" {
		name = "Usuario"
	}
	params := [3]string{name, strconv.FormatUint(uint64(order.ID), 10), newStatus}
	to := countryPrefix + order.User.Phone

	if err := s.Client.SendStatusTemplate(ctx, to, params); err != nil {
		s.Log.Warn("status notification failed",
			zap.Uint("order_id", order.ID), zap.String("status", newStatus), zap.Error(err))
	}
}

// Send exposes the raw template call for the kitchen/admin endpoint.
func (s *NotificationService) Send(ctx context.Context, to string, params [3]string) error {
	if s.Client == nil {
		return ErrNotifierUnavailable
	}
	return s.Client.SendStatusTemplate(ctx, to, params)
}
