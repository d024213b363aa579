package adapter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/retrospect/pkg/adapter"
)

func TestBadgerStorage(t *testing.T) {
	ctx := context.Background()

	storage, err := adapter.NewBadgerInMemory()
	gt.NoError(t, err)
	defer storage.Close()

	_, err = storage.Get(ctx, "history")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, adapter.ErrKeyNotFound))

	gt.NoError(t, storage.Set(ctx, "history", []byte(`[{"id":"a"}]`)))

	data, err := storage.Get(ctx, "history")
	gt.NoError(t, err)
	gt.Value(t, string(data)).Equal(`[{"id":"a"}]`)

	// set replaces the whole blob
	gt.NoError(t, storage.Set(ctx, "history", []byte(`[]`)))
	data, err = storage.Get(ctx, "history")
	gt.NoError(t, err)
	gt.Value(t, string(data)).Equal(`[]`)
}
