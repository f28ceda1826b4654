package memory

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/sharan022005/medic-query-knowledge-assistant/pkg/fusion"
)

// Workspace is the per-session working context: the asset registry plus the
// fusion session bound to it.
type Workspace struct {
	Registry *fusion.Registry
	Session  *fusion.Session
}

// WorkspaceRepository keeps workspaces in an expiring in-memory cache. When
// a session expires or is deleted, its preview handles are released as part
// of eviction, so teardown happens on every removal path.
type WorkspaceRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewWorkspaceRepository(ttl time.Duration) *WorkspaceRepository {
	c := cache.New(ttl, 10*time.Minute)
	c.OnEvicted(func(_ string, value interface{}) {
		if ws, ok := value.(*Workspace); ok {
			ws.Session.ClearSelection()
			_ = ws.Registry.Clear()
		}
	})
	return &WorkspaceRepository{cache: c}
}

// GetOrCreate returns the session's workspace, creating it on first use.
// Access refreshes the expiration so active sessions stay alive.
func (r *WorkspaceRepository) GetOrCreate(sessionId string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(sessionId); found {
		ws := x.(*Workspace)
		r.cache.Set(sessionId, ws, cache.DefaultExpiration)
		return ws
	}

	ws := &Workspace{
		Registry: fusion.NewRegistry(),
		Session:  fusion.NewSession(),
	}
	r.cache.Set(sessionId, ws, cache.DefaultExpiration)
	return ws
}

// Delete tears the workspace down immediately (eviction hook runs).
func (r *WorkspaceRepository) Delete(sessionId string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Delete(sessionId)
}
