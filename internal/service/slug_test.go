package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello World"))
	assert.Equal(t, "50-off-sale", Slugify("  50% Off -- SALE!  "))
	assert.Equal(t, "cafe-menu", Slugify("cafe menu"))
	assert.Equal(t, "untitled", Slugify(""))
	assert.Equal(t, "untitled", Slugify("!!!"))
}

func TestUniqueSlugFirstFree(t *testing.T) {
	got, err := uniqueSlug(context.Background(), "post", func(ctx context.Context, slug string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "post", got)
}

func TestUniqueSlugAppendsSuffix(t *testing.T) {
	taken := map[string]bool{"post": true, "post-2": true}
	got, err := uniqueSlug(context.Background(), "post", func(ctx context.Context, slug string) (bool, error) {
		return taken[slug], nil
	})
	require.NoError(t, err)
	assert.Equal(t, "post-3", got)
}

func TestUniqueSlugPropagatesError(t *testing.T) {
	boom := errors.New("db down")
	_, err := uniqueSlug(context.Background(), "post", func(ctx context.Context, slug string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}
