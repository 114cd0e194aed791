package category

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/storage"
)

// CollectionName is the storage collection holding categories.
const CollectionName = "categories"

var (
	// ErrEmptyName is returned when a category name is empty after trimming.
	ErrEmptyName = errors.New("category name cannot be empty")

	// ErrDuplicateName is returned when a category with the name exists.
	ErrDuplicateName = errors.New("category name already exists")
)

// palette holds the colors assigned to categories created without an
// explicit color. Repeats across categories are fine; only names are
// unique.
var palette = [...]string{
	"#FF5733", "#33FF57", "#3357FF", "#FF33F5", "#F5FF33",
	"#33FFF5", "#FF8C33", "#8C33FF", "#33FF8C", "#FF338C",
}

// Service performs category operations against a storage.Store.
type Service struct {
	categories *storage.Collection[Category]
}

// NewService returns a service backed by the given store.
func NewService(store *storage.Store) *Service {
	return &Service{categories: storage.NewCollection[Category](store, CollectionName)}
}

// All returns every category in id order.
func (s *Service) All() ([]Category, error) {
	categories, err := s.categories.All()
	if err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}
	return categories, nil
}

// Create creates a new category. When color is empty, one is picked at
// random from the fixed palette.
func (s *Service) Create(name, color string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrEmptyName
	}

	existing, err := s.All()
	if err != nil {
		return Category{}, err
	}
	for _, c := range existing {
		if c.Name == name {
			return Category{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}

	if color == "" {
		color = palette[rand.Intn(len(palette))]
	}

	created, err := s.categories.Add(Category{
		Name:      name,
		Color:     color,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return Category{}, fmt.Errorf("write category: %w", err)
	}
	return created, nil
}

// Delete removes the category with the given id. Tasks referencing the
// category name keep their free-text label. Deleting an absent id is not
// an error.
func (s *Service) Delete(id int64) error {
	if err := s.categories.Delete(id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
