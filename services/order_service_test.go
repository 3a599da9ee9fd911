package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaXala/ESCOMIDA/entity"
)

func TestCheckoutMaterializesCart(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")
	taco, agua := seedCatalog(t, db)

	cartSvc := newCartService(db)
	addLine(t, cartSvc, user.ID, taco, 2)
	addLine(t, cartSvc, user.ID, agua, 1)

	orderSvc := newOrderService(db, nil)
	orderID, err := orderSvc.Checkout(user.ID)
	require.NoError(t, err)
	require.NotZero(t, orderID)

	order, err := orderSvc.Repo.GetOrder(orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusWaiting, order.Status)
	assert.Equal(t, int64(2*40+15), order.Total)

	items, err := orderSvc.Repo.GetOrderItems(orderID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, orderID, it.OrderID)
		assert.Equal(t, it.UnitPrice*int64(it.Quantity), it.FinalPrice)
	}

	// The cart survives the checkout but is empty.
	lines, err := cartSvc.ListItems(user.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")

	require.NoError(t, db.Create(&entity.Cart{UserID: user.ID}).Error)

	orderSvc := newOrderService(db, nil)
	_, err := orderSvc.Checkout(user.ID)
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckoutWithoutCart(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")

	orderSvc := newOrderService(db, nil)
	_, err := orderSvc.Checkout(user.ID)
	assert.ErrorIs(t, err, ErrNoCart)
}

func TestCheckoutFailureLeavesCartIntact(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "cliente@ipn.mx")
	taco, _ := seedCatalog(t, db)

	cartSvc := newCartService(db)
	addLine(t, cartSvc, user.ID, taco, 3)

	// Drop the order_items table so the copy step fails mid-transaction.
	require.NoError(t, db.Migrator().DropTable(&entity.OrderItem{}))

	orderSvc := newOrderService(db, nil)
	_, err := orderSvc.Checkout(user.ID)
	require.Error(t, err)

	var orders int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)

	lines, err := cartSvc.ListItems(user.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestListForUserOnlyOwnOrders(t *testing.T) {
	db := testDB(t)
	alice := seedUser(t, db, "alice@ipn.mx")
	bob := seedUser(t, db, "bob@ipn.mx")
	taco, _ := seedCatalog(t, db)

	cartSvc := newCartService(db)
	orderSvc := newOrderService(db, nil)

	addLine(t, cartSvc, alice.ID, taco, 1)
	_, err := orderSvc.Checkout(alice.ID)
	require.NoError(t, err)

	addLine(t, cartSvc, bob.ID, taco, 2)
	bobOrder, err := orderSvc.Checkout(bob.ID)
	require.NoError(t, err)

	mine, err := orderSvc.ListForUser(bob.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, bobOrder, mine[0].ID)
	assert.Equal(t, int64(80), mine[0].Total)

	// Line-level access is scoped the same way.
	items, err := orderSvc.ItemsForUser(alice.ID, bobOrder)
	require.NoError(t, err)
	assert.Empty(t, items)
}

type recordingNotifier struct {
	calls []string
}

func (n *recordingNotifier) NotifyStatus(_ context.Context, o *entity.Order, newStatus string) {
	n.calls = append(n.calls, newStatus)
}
