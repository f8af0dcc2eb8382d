package pypi

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/oneup/internal/domain/entities"
	"github.com/rios0rios0/oneup/internal/domain/repositories"
)

const memoSize = 1024

// MemoizedIndexRepository remembers successful lookups for the lifetime of one run, so a
// dependency declared twice is fetched once. Failures are not remembered.
type MemoizedIndexRepository struct {
	next  repositories.PackageIndexRepository
	cache *lru.Cache[string, entities.ResolvedVersion]
}

// NewMemoizedIndexRepository wraps next with a per-run memo.
func NewMemoizedIndexRepository(next repositories.PackageIndexRepository) repositories.PackageIndexRepository {
	cache, err := lru.New[string, entities.ResolvedVersion](memoSize)
	if err != nil {
		logger.Warnf("[%s] Failed to create lookup memo: %v", next.Name(), err)
		return next
	}
	return &MemoizedIndexRepository{next: next, cache: cache}
}

func (r *MemoizedIndexRepository) Name() string { return r.next.Name() }

func (r *MemoizedIndexRepository) LatestVersion(ctx context.Context, name string) (entities.ResolvedVersion, error) {
	key := entities.NormalizeName(name)
	if cached, ok := r.cache.Get(key); ok {
		logger.Debugf("[%s] %s: reusing earlier lookup", r.next.Name(), key)
		cached.Name = name
		return cached, nil
	}

	resolved, err := r.next.LatestVersion(ctx, name)
	if err != nil {
		return resolved, err
	}
	r.cache.Add(key, resolved)
	return resolved, nil
}
