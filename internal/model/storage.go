package model

import (
	"context"
	"io"
)

// UnitOfWork exposes stores bound to one transaction.
type UnitOfWork interface {
	Consents() ConsentStore
	Anonymized() AnonymizedStore
}

// Transactor runs fn inside a transaction serialized per user: no two calls for
// the same user overlap, and fn's writes commit together or not at all.
type Transactor interface {
	WithUserLock(ctx context.Context, userID UserID, fn func(ctx context.Context, uow UnitOfWork) error) error
}

// Pinger reports whether the persistence layer is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ObjectStorage stores export artifacts.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Exists(ctx context.Context, key string) (bool, error)
}
