package outbox

import (
	"time"
)

// OutboxMessage is a pending notification written in the same transaction
// as the data it describes. The worker publishes and deletes it after the
// transaction has committed.
type OutboxMessage struct {
	ID           int64
	ExchangeName string
	RoutingKey   string
	Payload      []byte
	ContentType  string
	RetryCount   int
	MaxRetries   int
	LastError    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	NextRetryAt  time.Time
}
