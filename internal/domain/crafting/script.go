package crafting

import (
	"time"

	"github.com/google/uuid"
)

// Script is a user-authored automation script. Execution happens outside
// the engine behind the script-runner port; the engine only stores the
// source and its timestamps.
type Script struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

func NewScript(name string, now time.Time) *Script {
	return &Script{
		ID:           uuid.NewString(),
		Name:         name,
		CreatedAt:    now,
		LastModified: now,
	}
}

// Update replaces the content and stamps the modification time.
func (s *Script) Update(content string, now time.Time) {
	s.Content = content
	s.LastModified = now
}
