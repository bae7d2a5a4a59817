package buffer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/semexe/backend/domain"
)

// Item is a feedback submission waiting to reach the store.
type Item struct {
	ID        string          `json:"id"`
	Feedback  domain.Feedback `json:"feedback"`
	Attempts  int             `json:"attempts"`
	Timestamp time.Time       `json:"timestamp"`

	bucketKey []byte
}

func (i *Item) normalize() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now()
	}
}

// buildKey orders items oldest-first so flushing preserves submission order.
func buildKey(item Item) string {
	return fmt.Sprintf("%020d:%s", item.Timestamp.UnixNano(), item.ID)
}
