package guard

import (
	"oracle-dashboard/internal/metrics"
	"oracle-dashboard/internal/models"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultGrantTTL bounds how long a navigation grant stays redeemable. Grants
// exist to bridge the short window between writing a session and the next
// page load, they never persist.
const DefaultGrantTTL = 30 * time.Second

// GrantCookieName carries the grant id to the next navigation.
const GrantCookieName = "nav_grant"

type navGrant struct {
	state     models.NavigationState
	expiresAt time.Time
}

// NavRegistry issues single-use navigation grants. Each grant is consumed at
// most once, unredeemed grants are swept after their TTL.
type NavRegistry struct {
	mu     sync.Mutex
	grants map[string]navGrant
	ttl    time.Duration
}

func NewNavRegistry(ttl time.Duration) *NavRegistry {
	if ttl <= 0 {
		ttl = DefaultGrantTTL
	}

	return &NavRegistry{
		grants: make(map[string]navGrant),
		ttl:    ttl,
	}
}

// Grant registers a transient navigation state and returns its id.
func (n *NavRegistry) Grant(state models.NavigationState) string {
	id := uuid.New().String()

	n.mu.Lock()
	n.grants[id] = navGrant{state: state, expiresAt: time.Now().Add(n.ttl)}
	n.mu.Unlock()

	metrics.NavGrantsTotal.WithLabelValues(metrics.NavGrantEventIssued).Inc()

	return id
}

// Consume returns the state for id and forgets it either way. A grant past
// its TTL reads as absent.
func (n *NavRegistry) Consume(id string) (models.NavigationState, bool) {
	if id == "" {
		return models.NavigationState{}, false
	}

	n.mu.Lock()
	grant, ok := n.grants[id]
	if ok {
		delete(n.grants, id)
	}
	n.mu.Unlock()

	if !ok {
		return models.NavigationState{}, false
	}

	if time.Now().After(grant.expiresAt) {
		metrics.NavGrantsTotal.WithLabelValues(metrics.NavGrantEventExpired).Inc()
		return models.NavigationState{}, false
	}

	metrics.NavGrantsTotal.WithLabelValues(metrics.NavGrantEventConsumed).Inc()

	return grant.state, true
}

// Sweep drops grants that expired before now and reports how many went.
func (n *NavRegistry) Sweep(now time.Time) int {
	n.mu.Lock()
	removed := 0
	for id, grant := range n.grants {
		if now.After(grant.expiresAt) {
			delete(n.grants, id)
			removed++
		}
	}
	n.mu.Unlock()

	if removed > 0 {
		metrics.NavGrantsTotal.WithLabelValues(metrics.NavGrantEventExpired).Add(float64(removed))
	}

	return removed
}

// Len reports the number of live and not yet swept grants.
func (n *NavRegistry) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.grants)
}

// TTL returns the grant lifetime this registry was built with.
func (n *NavRegistry) TTL() time.Duration {
	return n.ttl
}
