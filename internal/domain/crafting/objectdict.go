package crafting

import "time"

// ObjectDictionary groups entity ids under category names without owning
// the entities. Used to cluster mined materials by type and to index
// recipes.
type ObjectDictionary struct {
	categories map[string][]string
}

func NewObjectDictionary() *ObjectDictionary {
	return &ObjectDictionary{categories: make(map[string][]string)}
}

func (d *ObjectDictionary) Add(category, entityID string) {
	for _, id := range d.categories[category] {
		if id == entityID {
			return
		}
	}
	d.categories[category] = append(d.categories[category], entityID)
}

func (d *ObjectDictionary) Remove(category, entityID string) bool {
	ids := d.categories[category]
	for i, id := range ids {
		if id == entityID {
			d.categories[category] = append(ids[:i], ids[i+1:]...)
			return true
		}
	}
	return false
}

func (d *ObjectDictionary) Category(category string) []string {
	return d.categories[category]
}

func (d *ObjectDictionary) Categories() map[string][]string {
	return d.categories
}

// ResourceCooldown records when a resource becomes usable again.
type ResourceCooldown struct {
	ResourceID      string
	CooldownEndTime time.Time
}

func (c ResourceCooldown) Over(now time.Time) bool {
	return !now.Before(c.CooldownEndTime)
}
