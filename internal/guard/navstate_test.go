package guard

import (
	"oracle-dashboard/internal/models"
	"testing"
	"time"
)

func TestNavRegistryConsumeOnce(t *testing.T) {
	registry := NewNavRegistry(time.Minute)

	id := registry.Grant(models.NavigationState{AllowUnauthenticatedAccess: true})
	if id == "" {
		t.Fatal("Grant() returned empty id")
	}

	state, ok := registry.Consume(id)
	if !ok {
		t.Fatal("Consume() first call expected grant")
	}
	if !state.AllowUnauthenticatedAccess {
		t.Error("grant lost its state")
	}

	if _, ok := registry.Consume(id); ok {
		t.Error("Consume() second call should find nothing")
	}
}

func TestNavRegistryUnknownID(t *testing.T) {
	registry := NewNavRegistry(time.Minute)

	if _, ok := registry.Consume("no-such-grant"); ok {
		t.Error("Consume() of unknown id should find nothing")
	}

	if _, ok := registry.Consume(""); ok {
		t.Error("Consume() of empty id should find nothing")
	}
}

func TestNavRegistryExpiry(t *testing.T) {
	registry := NewNavRegistry(time.Nanosecond)

	id := registry.Grant(models.NavigationState{AllowUnauthenticatedAccess: true})
	time.Sleep(5 * time.Millisecond)

	if _, ok := registry.Consume(id); ok {
		t.Error("Consume() after ttl should find nothing")
	}
}

func TestNavRegistrySweep(t *testing.T) {
	registry := NewNavRegistry(time.Nanosecond)

	registry.Grant(models.NavigationState{})
	registry.Grant(models.NavigationState{})

	if registry.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", registry.Len())
	}

	removed := registry.Sweep(time.Now().Add(time.Second))
	if removed != 2 {
		t.Errorf("Sweep() removed %d, want 2", removed)
	}

	if registry.Len() != 0 {
		t.Errorf("Len() after sweep = %d, want 0", registry.Len())
	}
}

func TestNavRegistrySweepKeepsLiveGrants(t *testing.T) {
	registry := NewNavRegistry(time.Hour)

	id := registry.Grant(models.NavigationState{AllowUnauthenticatedAccess: true})

	if removed := registry.Sweep(time.Now()); removed != 0 {
		t.Errorf("Sweep() removed %d live grants", removed)
	}

	if _, ok := registry.Consume(id); !ok {
		t.Error("live grant should survive a sweep")
	}
}

func TestNavRegistryDefaultTTL(t *testing.T) {
	registry := NewNavRegistry(0)

	if registry.TTL() != DefaultGrantTTL {
		t.Errorf("TTL() = %s, want %s", registry.TTL(), DefaultGrantTTL)
	}
}
