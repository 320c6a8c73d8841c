package store

import "fmt"

// reserveStock is the check-then-commit core of order creation: every
// line item is validated against the pre-mutation snapshot, and only if
// all of them pass are the decrements applied. A partially valid order
// must never partially reserve stock.
//
// Quantities are accumulated per product so an order listing the same
// product twice cannot pass each check individually and drive the stock
// negative on commit.
func reserveStock(doc *Document, items []OrderItem) error {
	need := make(map[int]int, len(items))
	for _, it := range items {
		i := productIndex(doc, it.ProductID)
		if i < 0 {
			return fmt.Errorf("%w: product %d", ErrNotFound, it.ProductID)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidArgument)
		}
		need[it.ProductID] += it.Quantity
		if doc.Products[i].Stock < need[it.ProductID] {
			return fmt.Errorf("%w: product %q", ErrInsufficientStock, doc.Products[i].Name)
		}
	}
	// semua lolos -> commit
	for _, it := range items {
		doc.Products[productIndex(doc, it.ProductID)].Stock -= it.Quantity
	}
	return nil
}

// restoreStock reverses a reservation. Unconditional increments; the
// caller decides when that is legal (only when cancelling a pending
// order). Products deleted since the order was placed are skipped.
func restoreStock(doc *Document, items []OrderItem) {
	for _, it := range items {
		if i := productIndex(doc, it.ProductID); i >= 0 {
			doc.Products[i].Stock += it.Quantity
		}
	}
}
