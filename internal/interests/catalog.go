package interests

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Interest is a selectable interest tag shared across all profiles.
type Interest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IDProvider issues identifiers for interests created on the fly.
type IDProvider interface {
	NewID() (string, error)
}

// CatalogConfig describes the dependencies of the interest catalog.
type CatalogConfig struct {
	Seed       []Interest
	IDProvider IDProvider
	Logger     *zap.Logger
}

// Catalog is the global append-only set of interest tags. Entries are
// unique by id and by case-insensitive name; nothing is ever removed.
type Catalog struct {
	mu         sync.RWMutex
	ordered    []Interest
	byID       map[string]Interest
	byName     map[string]Interest
	idProvider IDProvider
	logger     *zap.Logger
}

// NewCatalog constructs a catalog pre-populated with the seed entries.
func NewCatalog(cfg CatalogConfig) *Catalog {
	idProvider := cfg.IDProvider
	if idProvider == nil {
		idProvider = NewUUIDProvider()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog := &Catalog{
		ordered:    make([]Interest, 0, len(cfg.Seed)),
		byID:       make(map[string]Interest),
		byName:     make(map[string]Interest),
		idProvider: idProvider,
		logger:     logger,
	}
	for _, interest := range cfg.Seed {
		catalog.insertLocked(interest)
	}
	return catalog
}

// List returns a snapshot of the catalog in insertion order.
func (c *Catalog) List() []Interest {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]Interest, len(c.ordered))
	copy(snapshot, c.ordered)
	return snapshot
}

// SelectByIDs returns the catalog entries whose ids appear in the given
// set, preserving catalog order. Unknown ids are skipped.
func (c *Catalog) SelectByIDs(ids []string) []Interest {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	selected := make([]Interest, 0, len(ids))
	for _, interest := range c.ordered {
		if _, ok := wanted[interest.ID]; ok {
			selected = append(selected, interest)
		}
	}
	return selected
}

// Resolve maps free-form interest names to catalog entries. Names are
// trimmed and empty ones discarded; a name matching an existing entry
// case-insensitively reuses it, otherwise a new entry is created and
// appended to the catalog.
func (c *Catalog) Resolve(names []string) ([]Interest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resolved := make([]Interest, 0, len(names))
	for _, rawName := range names {
		name := strings.TrimSpace(rawName)
		if name == "" {
			continue
		}
		if existing, ok := c.byName[strings.ToLower(name)]; ok {
			resolved = append(resolved, existing)
			continue
		}
		id, err := c.idProvider.NewID()
		if err != nil {
			return nil, err
		}
		created := Interest{ID: id, Name: name}
		c.insertLocked(created)
		c.logger.Debug("interest created",
			zap.String("interest_id", created.ID),
			zap.String("name", created.Name))
		resolved = append(resolved, created)
	}
	return resolved, nil
}

// insertLocked assumes the write lock (or construction-time exclusivity).
func (c *Catalog) insertLocked(interest Interest) {
	if _, ok := c.byID[interest.ID]; ok {
		return
	}
	c.ordered = append(c.ordered, interest)
	c.byID[interest.ID] = interest
	c.byName[strings.ToLower(interest.Name)] = interest
}
