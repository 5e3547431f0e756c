package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	c := New[string](10, time.Minute)

	c.Set("k", "snapshot")
	got, hit := c.Get("k")
	assert.True(t, hit)
	assert.Equal(t, "snapshot", got)

	_, hit = c.Get("other")
	assert.False(t, hit)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New[int](10, 10*time.Millisecond)

	c.Set("k", 42)
	_, hit := c.Get("k")
	assert.True(t, hit)

	time.Sleep(25 * time.Millisecond)
	_, hit = c.Get("k")
	assert.False(t, hit, "entry should expire after the TTL")
}

func TestCache_ZeroTTLDisables(t *testing.T) {
	c := New[string](10, 0)

	c.Set("k", "v")
	_, hit := c.Get("k")
	assert.False(t, hit)
	assert.Equal(t, 0, c.Len())
}

func TestCache_CapacityEviction(t *testing.T) {
	c := New[int](3, time.Minute)

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	assert.LessOrEqual(t, c.Len(), 3, "cache must never exceed capacity")
}

func TestKey_Deterministic(t *testing.T) {
	assert.Equal(t, Key("indices", "sectoral"), Key("indices", "sectoral"))
	assert.NotEqual(t, Key("indices", "sectoral"), Key("indices", "thematic"))
	// The separator keeps part boundaries from colliding.
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
}
