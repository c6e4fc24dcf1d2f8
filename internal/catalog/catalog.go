// Package catalog holds the immutable set of recognized genre labels. The
// catalog is the sole authority for genre folder creation and routing: a
// record whose primary genre is not in the catalog lands in manual review.
package catalog

// Catalog is an immutable set of genre labels. Construct one at startup and
// inject it wherever routing or folder creation needs membership checks.
type Catalog struct {
	labels  []string
	members map[string]struct{}
}

// New builds a catalog from the provided labels. Blank and duplicate entries
// are dropped; iteration order follows first appearance.
func New(labels []string) *Catalog {
	c := &Catalog{members: make(map[string]struct{}, len(labels))}
	for _, label := range labels {
		if label == "" {
			continue
		}
		if _, ok := c.members[label]; ok {
			continue
		}
		c.members[label] = struct{}{}
		c.labels = append(c.labels, label)
	}
	return c
}

// Default returns a catalog seeded with the built-in genre labels.
func Default() *Catalog {
	return New(defaultGenres)
}

// Contains reports whether label is a recognized genre.
func (c *Catalog) Contains(label string) bool {
	_, ok := c.members[label]
	return ok
}

// Labels returns the genre labels in stable order. The slice is a copy;
// mutating it does not affect the catalog.
func (c *Catalog) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Len returns the number of labels in the catalog.
func (c *Catalog) Len() int { return len(c.labels) }
