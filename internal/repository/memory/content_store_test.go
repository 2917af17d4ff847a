package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentStoreSetGetDelete(t *testing.T) {
	s := NewContentStore()

	s.Set("draft:1", "hello")
	v, ok := s.Get("draft:1")
	require.True(t, ok)
	assert.Equal(t, "hello", v)

	s.Delete("draft:1")
	_, ok = s.Get("draft:1")
	assert.False(t, ok)
}

func TestContentStoreTTLExpiry(t *testing.T) {
	s := NewContentStore()

	s.SetWithTTL("ephemeral", 1, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, ok := s.Get("ephemeral")
	assert.False(t, ok)
}

func TestContentStoreKeys(t *testing.T) {
	s := NewContentStore()
	s.Set("a", 1)
	s.Set("b", 2)

	assert.ElementsMatch(t, []string{"a", "b"}, s.Keys())
}

func TestContentStoreOnChange(t *testing.T) {
	s := NewContentStore()

	type change struct {
		key   string
		value interface{}
	}
	var got []change
	s.OnChange(func(key string, value interface{}) {
		got = append(got, change{key, value})
	})

	s.Set("k", "v")
	s.Delete("k")

	require.Len(t, got, 2)
	assert.Equal(t, change{"k", "v"}, got[0])
	assert.Equal(t, change{"k", nil}, got[1])
}
