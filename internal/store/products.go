package store

import (
	"context"
	"fmt"
	"time"
)

func (s *Store) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	if in.Name == "" || in.Category == "" {
		return Product{}, fmt.Errorf("%w: name, price and category are required", ErrInvalidArgument)
	}
	if in.Price <= 0 {
		return Product{}, fmt.Errorf("%w: price must be greater than zero", ErrInvalidArgument)
	}
	if in.Stock < 0 {
		return Product{}, fmt.Errorf("%w: stock must not be negative", ErrInvalidArgument)
	}

	var created Product
	err := s.update(func(doc *Document) error {
		created = Product{
			ID:          nextID(doc.Products, func(p Product) int { return p.ID }),
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			Category:    in.Category,
			Stock:       in.Stock,
			CreatedAt:   time.Now().UTC(),
		}
		doc.Products = append(doc.Products, created)
		return nil
	})
	return created, err
}

func (s *Store) GetProduct(ctx context.Context, id int) (Product, error) {
	var out Product
	err := s.view(func(doc Document) error {
		i := productIndex(&doc, id)
		if i < 0 {
			return fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		out = doc.Products[i]
		return nil
	})
	return out, err
}

func (s *Store) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	err := s.view(func(doc Document) error {
		out = append([]Product{}, doc.Products...)
		return nil
	})
	return out, err
}

func (s *Store) UpdateProduct(ctx context.Context, id int, patch ProductPatch) (Product, error) {
	if patch.Price != nil && *patch.Price <= 0 {
		return Product{}, fmt.Errorf("%w: price must be greater than zero", ErrInvalidArgument)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return Product{}, fmt.Errorf("%w: stock must not be negative", ErrInvalidArgument)
	}

	var updated Product
	err := s.update(func(doc *Document) error {
		i := productIndex(doc, id)
		if i < 0 {
			return fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		p := &doc.Products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		updated = *p
		return nil
	})
	return updated, err
}

func (s *Store) DeleteProduct(ctx context.Context, id int) (Product, error) {
	var removed Product
	err := s.update(func(doc *Document) error {
		i := productIndex(doc, id)
		if i < 0 {
			return fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		removed = doc.Products[i]
		doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
		return nil
	})
	return removed, err
}
