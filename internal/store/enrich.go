package store

// Read-time projections. Enrichment is built from the loaded snapshot and
// never written back: a missing reference degrades to null, it does not
// fail the read.

type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProductSummary struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// OrderWithUser is the list projection: the stored order plus the owning
// user's summary.
type OrderWithUser struct {
	Order
	User *UserSummary `json:"user"`
}

type EnrichedItem struct {
	OrderItem
	Product *ProductSummary `json:"product"`
}

// OrderDetail is the single-order projection: user summary plus a product
// summary per line item.
type OrderDetail struct {
	Order
	User     *UserSummary   `json:"user"`
	Products []EnrichedItem `json:"products"`
}

func summarizeUser(doc *Document, id int) *UserSummary {
	i := userIndex(doc, id)
	if i < 0 {
		return nil
	}
	return &UserSummary{Name: doc.Users[i].Name, Email: doc.Users[i].Email}
}

func withUser(doc *Document, o Order) OrderWithUser {
	return OrderWithUser{Order: o, User: summarizeUser(doc, o.UserID)}
}

func enrichOrder(doc *Document, o Order) OrderDetail {
	items := make([]EnrichedItem, 0, len(o.Items))
	for _, it := range o.Items {
		e := EnrichedItem{OrderItem: it}
		if i := productIndex(doc, it.ProductID); i >= 0 {
			p := doc.Products[i]
			e.Product = &ProductSummary{Name: p.Name, Price: p.Price, Category: p.Category}
		}
		items = append(items, e)
	}
	return OrderDetail{Order: o, User: summarizeUser(doc, o.UserID), Products: items}
}
