package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/akaXala/ESCOMIDA/entity"
)

// Transition moves an order to target, validating reachability against the
// one-directional graph and applying the change as a compare-and-swap so two
// concurrent kitchen clicks cannot both win. The WhatsApp notification is
// fired after commit and never affects the result.
func (s *OrderService) Transition(ctx context.Context, orderID uint, target string) (*entity.Order, error) {
	target, ok := entity.NormalizeStatus(target)
	if !ok {
		return nil, ErrInvalidStatus
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !entity.CanTransition(o.Status, target) {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Someone else moved the order between our read and the update.
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	o.Status = target

	s.notify(ctx, o, target)
	return o, nil
}

// Accept: En espera → Cocinando.
func (s *OrderService) Accept(ctx context.Context, orderID uint) (*entity.Order, error) {
	return s.Transition(ctx, orderID, entity.StatusCooking)
}

// Complete: Cocinando → Listo para entregar.
func (s *OrderService) Complete(ctx context.Context, orderID uint) (*entity.Order, error) {
	return s.Transition(ctx, orderID, entity.StatusReady)
}

// Deliver: Listo para entregar → Entregado. Delivery makes the order
// rating-eligible on the client.
func (s *OrderService) Deliver(ctx context.Context, orderID uint) (*entity.Order, error) {
	return s.Transition(ctx, orderID, entity.StatusDelivered)
}

// ChangeStatus backs the generic kitchen/admin endpoint. It accepts the
// legacy vocabulary but goes through the same reachability validation as the
// dedicated transition endpoints.
func (s *OrderService) ChangeStatus(ctx context.Context, orderID uint, newStatus string) (*entity.Order, error) {
	return s.Transition(ctx, orderID, newStatus)
}

// Cancel deletes the order and its lines. It is only allowed while the order
// is still waiting; an order that no longer exists is treated as success so
// a double cancel stays idempotent.
func (s *OrderService) Cancel(orderID uint) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if o.Status != entity.StatusWaiting {
		return ErrCancelNotAllowed
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		// Re-check under the transaction; the kitchen may have accepted the
		// order while the customer was looking at the cancel button.
		var current entity.Order
		if err := tx.First(&current, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if current.Status != entity.StatusWaiting {
			return ErrCancelNotAllowed
		}
		return s.Repo.DeleteOrderWithItems(tx, orderID)
	})
}

func (s *OrderService) notify(ctx context.Context, o *entity.Order, newStatus string) {
	if s.Notifier == nil {
		return
	}
	order, err := s.Repo.GetOrderWithUser(o.ID)
	if err != nil {
		order = o
	}
	s.Notifier.NotifyStatus(ctx, order, newStatus)
}
