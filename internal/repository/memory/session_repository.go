package memory

import (
	"ai-tutor-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Profiles live for the process lifetime, so no expiration and no janitor.
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(profile *store.StudentProfile) {
	r.cache.Set(profile.SessionID, profile, cache.NoExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.StudentProfile, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.StudentProfile), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
