package memory

import (
	"context"
	"testing"

	"github.com/hhubb22/kea-conf-generate/core/idstore"
	"github.com/hhubb22/kea-conf-generate/core/idstore/tests"
)

func TestMemoryStore(t *testing.T) {
	factory := func(ctx context.Context) idstore.Store {
		return makeStore()
	}

	teardown := func(_ idstore.Store) {}

	tests.Run(t, factory, teardown)
}
