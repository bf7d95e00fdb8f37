package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Service represents a bookable salon service from the catalog
type Service struct {
	ID              int64
	Name            string
	Category        string
	Price           decimal.Decimal
	DurationMinutes int
	Active          bool
}

// CatalogSnapshot is an immutable view of the active service catalog,
// taken when the wizard starts. The cart is always validated against
// the snapshot it was built with.
type CatalogSnapshot struct {
	services map[int64]Service
}

// NewCatalogSnapshot builds a snapshot from a catalog response,
// keeping only active services
func NewCatalogSnapshot(services []Service) *CatalogSnapshot {
	byID := make(map[int64]Service, len(services))
	for _, s := range services {
		if !s.Active {
			continue
		}
		byID[s.ID] = s
	}
	return &CatalogSnapshot{services: byID}
}

// Lookup returns the service with the given id, if present in the snapshot
func (c *CatalogSnapshot) Lookup(id int64) (Service, bool) {
	s, ok := c.services[id]
	return s, ok
}

// Has returns true if the snapshot contains the given service id
func (c *CatalogSnapshot) Has(id int64) bool {
	_, ok := c.services[id]
	return ok
}

// Len returns the number of services in the snapshot
func (c *CatalogSnapshot) Len() int {
	return len(c.services)
}

// CategoryGroup services of one catalog category, for display
type CategoryGroup struct {
	Category string
	Services []Service
}

// GroupedByCategory returns the snapshot's services grouped by category.
// Categories and services within a category are sorted by name for stable output.
func (c *CatalogSnapshot) GroupedByCategory() []CategoryGroup {
	byCategory := make(map[string][]Service)
	for _, s := range c.services {
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	groups := make([]CategoryGroup, 0, len(categories))
	for _, category := range categories {
		services := byCategory[category]
		sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })
		groups = append(groups, CategoryGroup{Category: category, Services: services})
	}

	return groups
}
