package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Port 1 is never listening, so every call fails at dial time. The client
// must report that instead of pretending the operation succeeded.
func TestClient_UnreachableServerSurfacesErrors(t *testing.T) {
	client := New("127.0.0.1:1", "", 0)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, client.Ping(ctx))
	assert.Error(t, client.Set(ctx, "k", []byte("v"), time.Minute))

	_, err := client.Get(ctx, "k")
	assert.Error(t, err)

	assert.Error(t, client.Delete(ctx, "k"))
}
