package store_test

import (
	"context"
	"testing"

	"github.com/ariefcatur/go-store-api.git/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderComputesTotalAndReservesStock(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "Ana", "ana@x.com")
	p := seedProduct(t, s, "Keyboard", 10.00, 5)

	o, err := s.CreateOrder(ctx, u.ID, []store.OrderItem{{ProductID: p.ID, Quantity: 3}})
	require.NoError(t, err)
	assert.Equal(t, 1, o.ID)
	assert.Equal(t, 30.00, o.Total)
	assert.Equal(t, store.StatusPending, o.Status)

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)
}

func TestCreateOrderRoundsTotalToTwoDecimals(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "Ana", "ana@x.com")
	p1 := seedProduct(t, s, "Sticker", 0.10, 100)
	p2 := seedProduct(t, s, "Cable", 3.33, 10)

	// 3*0.10 + 1*3.33 = 3.63, with float noise on the way
	o, err := s.CreateOrder(ctx, u.ID, []store.OrderItem{
		{ProductID: p1.ID, Quantity: 3},
		{ProductID: p2.ID, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 3.63, o.Total)
}

func TestCreateOrderValidation(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "Ana", "ana@x.com")
	p := seedProduct(t, s, "Keyboard", 10, 5)

	_, err := s.CreateOrder(ctx, 0, []store.OrderItem{{ProductID: p.ID, Quantity: 1}})
	assert.ErrorIs(t, err, store.ErrInvalidArgument)

	_, err = s.CreateOrder(ctx, u.ID, nil)
	assert.ErrorIs(t, err, store.ErrInvalidArgument)

	_, err = s.CreateOrder(ctx, 99, []store.OrderItem{{ProductID: p.ID, Quantity: 1}})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateOrderIsAllOrNothing(t *testing.T) {
	s, mem := newStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "Ana", "ana@x.com")
	p1 := seedProduct(t, s, "Keyboard", 10, 5)
	p2 := seedProduct(t, s, "Mouse", 5, 2)

	cases := []struct {
		name  string
		items []store.OrderItem
		want  error
	}{
		{"unknown product", []store.OrderItem{
			{ProductID: p1.ID, Quantity: 1}, {ProductID: 99, Quantity: 1},
		}, store.ErrNotFound},
		{"zero quantity", []store.OrderItem{
			{ProductID: p1.ID, Quantity: 1}, {ProductID: p2.ID, Quantity: 0},
		}, store.ErrInvalidArgument},
		{"insufficient stock", []store.OrderItem{
			{ProductID: p1.ID, Quantity: 1}, {ProductID: p2.ID, Quantity: 3},
		}, store.ErrInsufficientStock},
		{"duplicate items exceeding stock together", []store.OrderItem{
			{ProductID: p2.ID, Quantity: 2}, {ProductID: p2.ID, Quantity: 1},
		}, store.ErrInsufficientStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			saves := mem.Saves
			_, err := s.CreateOrder(ctx, u.ID, tc.items)
			require.ErrorIs(t, err, tc.want)

			// no product stock changed, no order stored, nothing saved
			assert.Equal(t, saves, mem.Saves)
			g1, _ := s.GetProduct(ctx, p1.ID)
			g2, _ := s.GetProduct(ctx, p2.ID)
			assert.Equal(t, 5, g1.Stock)
			assert.Equal(t, 2, g2.Stock)
			orders, err := s.ListOrders(ctx)
			require.NoError(t, err)
			assert.Empty(t, orders)
		})
	}
}

func TestOrderTotalFrozenAfterPriceChange(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "Ana", "ana@x.com")
	p := seedProduct(t, s, "Keyboard", 10.00, 5)

	o, err := s.CreateOrder(ctx, u.ID, []store.OrderItem{{ProductID: p.ID, Quantity: 2}})
	require.NoError(t, err)
	require.Equal(t, 20.00, o.Total)

	_, err = s.UpdateProduct(ctx, p.ID, store.ProductPatch{Price: floatptr(99.99)})
	require.NoError(t, err)

	detail, err := s.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.00, detail.Total, "total is evaluated at creation time only")
	require.NotNil(t, detail.Products[0].Product)
	assert.Equal(t, 99.99, detail.Products[0].Product.Price, "enrichment shows the live price")
}

func TestUpdateOrderStatus(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "Ana", "ana@x.com")
	p := seedProduct(t, s, "Keyboard", 10, 5)
	o, err := s.CreateOrder(ctx, u.ID, []store.OrderItem{{ProductID: p.ID, Quantity: 2}})
	require.NoError(t, err)

	_, err = s.UpdateOrderStatus(ctx, o.ID, "shipped")
	assert.ErrorIs(t, err, store.ErrInvalidArgument)

	_, err = s.UpdateOrderStatus(ctx, 99, store.StatusProcessing)
	assert.ErrorIs(t, err, store.ErrNotFound)

	got, err := s.UpdateOrderStatus(ctx, o.ID, store.StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, store.StatusProcessing, got.Status)

	// no stock side effect on any transition
	gp, _ := s.GetProduct(ctx, p.ID)
	assert.Equal(t, 3, gp.Stock)
}

func TestStatusTransitionsAreUnrestricted(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "Ana", "ana@x.com")
	p := seedProduct(t, s, "Keyboard", 10, 5)
	o, err := s.CreateOrder(ctx, u.ID, []store.OrderItem{{ProductID: p.ID, Quantity: 1}})
	require.NoError(t, err)

	// any of the four values may overwrite any prior value
	for _, st := range []store.Status{
		store.StatusCompleted, store.StatusPending, store.StatusCancelled, store.StatusProcessing,
	} {
		got, err := s.UpdateOrderStatus(ctx, o.ID, st)
		require.NoError(t, err)
		assert.Equal(t, st, got.Status)
	}
}

func TestCancelPendingOrderRestoresStock(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "Ana", "ana@x.com")
	p := seedProduct(t, s, "Keyboard", 10, 5)
	o, err := s.CreateOrder(ctx, u.ID, []store.OrderItem{{ProductID: p.ID, Quantity: 3}})
	require.NoError(t, err)

	removed, err := s.CancelOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, removed.ID)
	assert.Equal(t, store.StatusPending, removed.Status)

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)

	_, err = s.GetOrder(ctx, o.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.CancelOrder(ctx, o.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCancelNonPendingOrderLeavesStock(t *testing.T) {
	for _, st := range []store.Status{store.StatusProcessing, store.StatusCompleted, store.StatusCancelled} {
		t.Run(string(st), func(t *testing.T) {
			s, _ := newStore(t)
			ctx := context.Background()

			u := seedUser(t, s, "Ana", "ana@x.com")
			p := seedProduct(t, s, "Keyboard", 10, 5)
			o, err := s.CreateOrder(ctx, u.ID, []store.OrderItem{{ProductID: p.ID, Quantity: 3}})
			require.NoError(t, err)

			_, err = s.UpdateOrderStatus(ctx, o.ID, st)
			require.NoError(t, err)

			_, err = s.CancelOrder(ctx, o.ID)
			require.NoError(t, err)

			got, err := s.GetProduct(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, 2, got.Stock, "only a pending order holds a reservation")
		})
	}
}

func TestEnrichmentIsReadOnly(t *testing.T) {
	s, mem := newStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "Ana", "ana@x.com")
	p := seedProduct(t, s, "Keyboard", 10, 5)
	o, err := s.CreateOrder(ctx, u.ID, []store.OrderItem{{ProductID: p.ID, Quantity: 1}})
	require.NoError(t, err)

	saves := mem.Saves
	first, err := s.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	second, err := s.GetOrder(ctx, o.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated reads yield identical projections")
	assert.Equal(t, saves, mem.Saves, "reads never persist")

	require.NotNil(t, first.User)
	assert.Equal(t, "Ana", first.User.Name)
	require.Len(t, first.Products, 1)
	require.NotNil(t, first.Products[0].Product)
	assert.Equal(t, "Keyboard", first.Products[0].Product.Name)
}

func TestEnrichmentDegradesToNullOnMissingRefs(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "Ana", "ana@x.com")
	p := seedProduct(t, s, "Keyboard", 10, 5)
	o, err := s.CreateOrder(ctx, u.ID, []store.OrderItem{{ProductID: p.ID, Quantity: 1}})
	require.NoError(t, err)

	_, err = s.DeleteUser(ctx, u.ID)
	require.NoError(t, err)
	_, err = s.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)

	detail, err := s.GetOrder(ctx, o.ID)
	require.NoError(t, err, "missing references degrade, they do not fail the read")
	assert.Nil(t, detail.User)
	require.Len(t, detail.Products, 1)
	assert.Nil(t, detail.Products[0].Product)
	assert.Equal(t, p.ID, detail.Products[0].ProductID, "stored fields survive")

	list, err := s.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].User)
}
