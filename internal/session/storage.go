package session

import (
	"context"
	"time"

	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	gocache "github.com/patrickmn/go-cache"
)

// Storage persists sessions for the lifetime of a conversation.
type Storage interface {
	Get(ctx context.Context, id string) (*Session, error)
	Set(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

const cleanupInterval = 10 * time.Minute

// CacheStorage keeps sessions in an in-process TTL cache. Sessions are
// conversation-scoped; nothing here survives a restart, which matches the
// system's no-persisted-state model.
type CacheStorage struct {
	cache *gocache.Cache
}

func NewCacheStorage(ttl time.Duration) *CacheStorage {
	return &CacheStorage{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

func (s *CacheStorage) Get(ctx context.Context, id string) (*Session, error) {
	value, found := s.cache.Get(id)
	if !found {
		return nil, entity.ErrSessionNotFound
	}

	session, ok := value.(*Session)
	if !ok {
		return nil, entity.ErrSessionNotFound
	}

	return session, nil
}

func (s *CacheStorage) Set(ctx context.Context, session *Session) error {
	s.cache.SetDefault(session.ID, session)
	return nil
}

func (s *CacheStorage) Delete(ctx context.Context, id string) error {
	s.cache.Delete(id)
	return nil
}
