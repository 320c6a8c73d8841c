package store

import "time"

// Document adalah unit persistence: satu dokumen JSON berisi ketiga koleksi.
// Load/mutate/save selalu terhadap dokumen utuh, tidak pernah parsial.
type Document struct {
	Users    []User    `json:"users"`
	Products []Product `json:"products"`
	Orders   []Order   `json:"orders"`
}

// EmptyDocument returns a valid document with empty (non-nil) collections,
// so it marshals as [] instead of null.
func EmptyDocument() Document {
	return Document{Users: []User{}, Products: []Product{}, Orders: []Order{}}
}

// Clone copies the document deeply enough that mutating the copy never
// touches the original (order line items included).
func (d Document) Clone() Document {
	c := Document{
		Users:    append([]User(nil), d.Users...),
		Products: append([]Product(nil), d.Products...),
		Orders:   append([]Order(nil), d.Orders...),
	}
	for i := range c.Orders {
		c.Orders[i].Items = append([]OrderItem(nil), c.Orders[i].Items...)
	}
	return c
}

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age"`
	City      *string   `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

type Order struct {
	ID        int         `json:"id"`
	UserID    int         `json:"user_id"`
	Items     []OrderItem `json:"products"`
	Total     float64     `json:"total"`
	Status    Status      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type UserInput struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Age   *int    `json:"age"`
	City  *string `json:"city"`
}

type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// Patch structs: nil pointer = field tidak dikirim = tidak diubah.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Age   *int    `json:"age"`
	City  *string `json:"city"`
}

type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
}
