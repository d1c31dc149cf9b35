package commands

import (
	"context"
	"time"
)

// PurgeStaleCartsCommandHandler removes abandoned cart rows.
type PurgeStaleCartsCommandHandler struct {
	uowFactory CartUoWFactory

	now func() time.Time
}

// NewPurgeStaleCartsCommandHandler creates a handler for the cart purge.
func NewPurgeStaleCartsCommandHandler(uowFactory CartUoWFactory) PurgeStaleCartsCommandHandler {
	return PurgeStaleCartsCommandHandler{uowFactory: uowFactory, now: time.Now}
}

// Handle deletes cart rows older than the TTL and reports how many went.
func (h *PurgeStaleCartsCommandHandler) Handle(ctx context.Context, cmd PurgeStaleCartsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.CartRepository().DeleteOlderThan(ctx, h.now().Add(-cmd.TTL()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
