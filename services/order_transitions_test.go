package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/akaXala/ESCOMIDA/entity"
	"github.com/akaXala/ESCOMIDA/pkg/whatsapp"
)

func placeOrder(t *testing.T, db *gorm.DB, userID uint) uint {
	t.Helper()
	taco, _ := seedCatalog(t, db)
	order := entity.Order{UserID: userID, Status: entity.StatusWaiting, Total: 55}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Create(&entity.OrderItem{
		OrderID: order.ID, FoodItemID: taco.ID, Name: "Taco de pastor", Quantity: 1, UnitPrice: 55, FinalPrice: 55,
	}).Error)
	return order.ID
}

func TestAcceptMovesWaitingToCooking(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")
	id := placeOrder(t, db, user.ID)

	notifier := &recordingNotifier{}
	svc := newOrderService(db, notifier)

	order, err := svc.Accept(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCooking, order.Status)

	persisted, err := svc.Repo.GetOrder(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCooking, persisted.Status)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, entity.StatusCooking, notifier.calls[0])
}

func TestDoubleAcceptRejected(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")
	id := placeOrder(t, db, user.ID)

	svc := newOrderService(db, nil)

	_, err := svc.Accept(context.Background(), id)
	require.NoError(t, err)

	_, err = svc.Accept(context.Background(), id)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionsAreOneDirectional(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")
	svc := newOrderService(db, nil)
	ctx := context.Background()

	id := placeOrder(t, db, user.ID)
	_, err := svc.Accept(ctx, id)
	require.NoError(t, err)

	// Backwards and skipping are both unreachable.
	_, err = svc.Transition(ctx, id, entity.StatusWaiting)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Transition(ctx, id, entity.StatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Complete(ctx, id)
	require.NoError(t, err)
	_, err = svc.Deliver(ctx, id)
	require.NoError(t, err)

	// Delivered is terminal.
	_, err = svc.Transition(ctx, id, entity.StatusCooking)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionUnknownOrder(t *testing.T) {
	db := testDB(t)
	svc := newOrderService(db, nil)

	_, err := svc.Accept(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestChangeStatusAcceptsLegacyVocabulary(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")
	id := placeOrder(t, db, user.ID)

	svc := newOrderService(db, nil)
	ctx := context.Background()

	order, err := svc.ChangeStatus(ctx, id, "Preparando")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCooking, order.Status)

	order, err = svc.ChangeStatus(ctx, id, "Listo para recoger")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, order.Status)

	// Only the canonical value is ever persisted.
	persisted, err := svc.Repo.GetOrder(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, persisted.Status)
}

func TestChangeStatusRejectsUnknownValue(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")
	id := placeOrder(t, db, user.ID)

	svc := newOrderService(db, nil)

	_, err := svc.ChangeStatus(context.Background(), id, "Volando")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	persisted, err := svc.Repo.GetOrder(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusWaiting, persisted.Status)
}

func TestCancelWaitingOrderCascades(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")
	id := placeOrder(t, db, user.ID)

	svc := newOrderService(db, nil)
	require.NoError(t, svc.Cancel(id))

	var orders, items int64
	require.NoError(t, db.Model(&entity.Order{}).Where("id = ?", id).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Where("order_id = ?", id).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestCancelIsIdempotent(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")
	id := placeOrder(t, db, user.ID)

	svc := newOrderService(db, nil)
	require.NoError(t, svc.Cancel(id))
	require.NoError(t, svc.Cancel(id))
	require.NoError(t, svc.Cancel(424242))
}

func TestCancelRejectedOnceCooking(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")
	id := placeOrder(t, db, user.ID)

	svc := newOrderService(db, nil)
	_, err := svc.Accept(context.Background(), id)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Cancel(id), ErrCancelNotAllowed)

	persisted, err := svc.Repo.GetOrder(id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCooking, persisted.Status)
}

func TestUnconfiguredNotifierNeverBlocksTransition(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")
	id := placeOrder(t, db, user.ID)

	notifier := NewNotificationService(whatsapp.NewClient("", "", ""), zap.NewNop())
	svc := newOrderService(db, notifier)

	order, err := svc.Accept(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCooking, order.Status)
}
