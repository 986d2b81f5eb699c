package repository

import "context"

// CacheRepository stores encoded plans by key. A miss is ("", false, nil).
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}
