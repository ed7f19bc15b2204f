package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Run("empty context is anonymous", func(t *testing.T) {
		id := FromContext(context.Background())
		assert.False(t, id.Admin)
		assert.False(t, IsAdmin(context.Background()))
	})

	t.Run("stored identity is returned", func(t *testing.T) {
		expires := time.Now().Add(time.Hour)
		ctx := WithIdentity(context.Background(), Identity{Admin: true, SessionID: "abc", ExpiresAt: expires})

		id := FromContext(ctx)
		assert.True(t, id.Admin)
		assert.Equal(t, "abc", id.SessionID)
		assert.Equal(t, expires, id.ExpiresAt)
		assert.True(t, IsAdmin(ctx))
	})
}
