package store

import (
	"context"
	"fmt"
	"math"
	"time"
)

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// CreateOrder validates the user and every line item, reserves stock
// all-or-nothing, and freezes the total at creation-time prices. On any
// failure the document is left exactly as loaded: nothing is saved until
// the whole mutation has succeeded.
func (s *Store) CreateOrder(ctx context.Context, userID int, items []OrderItem) (Order, error) {
	if userID <= 0 || len(items) == 0 {
		return Order{}, fmt.Errorf("%w: user_id and products are required", ErrInvalidArgument)
	}

	var created Order
	err := s.update(func(doc *Document) error {
		if userIndex(doc, userID) < 0 {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		// reserve cuma menyentuh stock; price masih utuh buat hitung total
		if err := reserveStock(doc, items); err != nil {
			return err
		}
		var total float64
		validated := make([]OrderItem, 0, len(items))
		for _, it := range items {
			p := doc.Products[productIndex(doc, it.ProductID)]
			total += p.Price * float64(it.Quantity)
			validated = append(validated, OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
		}
		created = Order{
			ID:        nextID(doc.Orders, func(o Order) int { return o.ID }),
			UserID:    userID,
			Items:     validated,
			Total:     round2(total),
			Status:    StatusPending,
			CreatedAt: time.Now().UTC(),
		}
		doc.Orders = append(doc.Orders, created)
		return nil
	})
	return created, err
}

// UpdateOrderStatus overwrites the status with any of the four defined
// values. No transition table on purpose, and no stock side effects on
// any transition; only deletion touches stock.
func (s *Store) UpdateOrderStatus(ctx context.Context, id int, status Status) (Order, error) {
	if !status.Valid() {
		return Order{}, fmt.Errorf("%w: invalid status %q", ErrInvalidArgument, status)
	}

	var updated Order
	err := s.update(func(doc *Document) error {
		i := orderIndex(doc, id)
		if i < 0 {
			return fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		doc.Orders[i].Status = status
		updated = doc.Orders[i]
		return nil
	})
	return updated, err
}

// CancelOrder removes the order. A pending order still holds its
// reservation, so its quantities go back to stock first; any other
// status leaves stock untouched.
func (s *Store) CancelOrder(ctx context.Context, id int) (Order, error) {
	var removed Order
	err := s.update(func(doc *Document) error {
		i := orderIndex(doc, id)
		if i < 0 {
			return fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		removed = doc.Orders[i]
		if removed.Status == StatusPending {
			restoreStock(doc, removed.Items)
		}
		doc.Orders = append(doc.Orders[:i], doc.Orders[i+1:]...)
		return nil
	})
	return removed, err
}

func (s *Store) GetOrder(ctx context.Context, id int) (OrderDetail, error) {
	var out OrderDetail
	err := s.view(func(doc Document) error {
		i := orderIndex(&doc, id)
		if i < 0 {
			return fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		out = enrichOrder(&doc, doc.Orders[i])
		return nil
	})
	return out, err
}

// ListOrders returns every order with its user summary attached.
// Filtering (status, user) stays at the HTTP layer.
func (s *Store) ListOrders(ctx context.Context) ([]OrderWithUser, error) {
	var out []OrderWithUser
	err := s.view(func(doc Document) error {
		out = make([]OrderWithUser, 0, len(doc.Orders))
		for _, o := range doc.Orders {
			out = append(out, withUser(&doc, o))
		}
		return nil
	})
	return out, err
}
