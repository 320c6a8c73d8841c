package store

import (
	"context"
	"fmt"
	"time"
)

func (s *Store) CreateUser(ctx context.Context, in UserInput) (User, error) {
	if in.Name == "" || in.Email == "" {
		return User{}, fmt.Errorf("%w: name and email are required", ErrInvalidArgument)
	}

	var created User
	err := s.update(func(doc *Document) error {
		// cek email unik across all users
		for _, u := range doc.Users {
			if u.Email == in.Email {
				return fmt.Errorf("%w: email already registered", ErrConflict)
			}
		}
		created = User{
			ID:        nextID(doc.Users, func(u User) int { return u.ID }),
			Name:      in.Name,
			Email:     in.Email,
			Age:       in.Age,
			City:      in.City,
			CreatedAt: time.Now().UTC(),
		}
		doc.Users = append(doc.Users, created)
		return nil
	})
	return created, err
}

func (s *Store) GetUser(ctx context.Context, id int) (User, error) {
	var out User
	err := s.view(func(doc Document) error {
		i := userIndex(&doc, id)
		if i < 0 {
			return fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		out = doc.Users[i]
		return nil
	})
	return out, err
}

func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	err := s.view(func(doc Document) error {
		out = append([]User{}, doc.Users...)
		return nil
	})
	return out, err
}

func (s *Store) UpdateUser(ctx context.Context, id int, patch UserPatch) (User, error) {
	var updated User
	err := s.update(func(doc *Document) error {
		i := userIndex(doc, id)
		if i < 0 {
			return fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		if patch.Email != nil {
			for _, u := range doc.Users {
				if u.Email == *patch.Email && u.ID != id {
					return fmt.Errorf("%w: email already in use by another user", ErrConflict)
				}
			}
		}
		u := &doc.Users[i]
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Age != nil {
			u.Age = patch.Age
		}
		if patch.City != nil {
			u.City = patch.City
		}
		updated = *u
		return nil
	})
	return updated, err
}

func (s *Store) DeleteUser(ctx context.Context, id int) (User, error) {
	var removed User
	err := s.update(func(doc *Document) error {
		i := userIndex(doc, id)
		if i < 0 {
			return fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		removed = doc.Users[i]
		doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)
		return nil
	})
	return removed, err
}
