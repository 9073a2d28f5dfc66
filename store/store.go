// Package store defines the persistence boundary of the species catalog and
// an in-memory implementation of it.
//
// Nothing in the chart pipeline reads or writes the catalog. The package only
// describes the contract a species, comment or profile backend has to honour,
// and no command or route exposes it.
package store

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("entity not found")
	ErrConflict = errors.New("entity already exists")
	ErrInvalid  = errors.New("invalid entity")
)

// Entity is implemented by the values kept in a Store. WithKey returns a copy
// of the entity with its key set.
type Entity[T any] interface {
	Key() string
	WithKey(string) T
}

// Filter selects the entities returned by Read. A nil Filter selects all of
// them.
type Filter[T any] func(T) bool

type Store[T Entity[T]] interface {
	Create(context.Context, T) (T, error)
	Read(context.Context, Filter[T]) ([]T, error)
	Get(context.Context, string) (T, error)
	Update(context.Context, T) (T, error)
	Delete(context.Context, string) error
}

type Species struct {
	ID              string
	ScientificName  string
	CommonName      string
	Kingdom         string
	TotalPopulation *int
	Description     string
	Image           string
	Author          string
}

func (s Species) Key() string {
	return s.ID
}

func (s Species) WithKey(key string) Species {
	s.ID = key
	return s
}

// Match reports whether query appears, ignoring case, in the scientific
// name, the common name or the description of the species.
func (s Species) Match(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, str := range []string{s.ScientificName, s.CommonName, s.Description} {
		if strings.Contains(strings.ToLower(str), query) {
			return true
		}
	}
	return false
}

type Comment struct {
	ID        string
	SpeciesID string
	Author    string
	Content   string
	CreatedAt time.Time
}

func (c Comment) Key() string {
	return c.ID
}

func (c Comment) WithKey(key string) Comment {
	c.ID = key
	return c
}

type Profile struct {
	ID          string
	Email       string
	DisplayName string
	Biography   string
}

func (p Profile) Key() string {
	return p.ID
}

func (p Profile) WithKey(key string) Profile {
	p.ID = key
	return p
}

// Name returns the display name of the profile, its email when it has no
// display name or "Unknown".
func (p Profile) Name() string {
	switch {
	case p.DisplayName != "":
		return p.DisplayName
	case p.Email != "":
		return p.Email
	default:
		return "Unknown"
	}
}

// ForSpecies selects the comments attached to the given species.
func ForSpecies(id string) Filter[Comment] {
	return func(c Comment) bool {
		return c.SpeciesID == id
	}
}

// Matching selects the species matching query.
func Matching(query string) Filter[Species] {
	return func(s Species) bool {
		return s.Match(query)
	}
}
