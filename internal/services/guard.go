package services

import (
	"context"
	"fmt"

	"github.com/baharkarakas/mini-linkedin/internal/apperr"
)

// CheckOwner allows a mutation only when the caller owns the resource.
func CheckOwner(callerID, ownerID string) error {
	if callerID == "" || callerID != ownerID {
		return apperr.ErrForbidden
	}
	return nil
}

// guardedMutation fetches a resource (NotFound if missing), checks the caller
// owns it (Forbidden otherwise) and then applies mutate.
func guardedMutation[T, R any](
	ctx context.Context,
	callerID string,
	fetch func(context.Context) (T, error),
	owner func(T) string,
	mutate func(context.Context, T) (R, error),
) (R, error) {
	var zero R
	res, err := fetch(ctx)
	if err != nil {
		return zero, err
	}
	if err := CheckOwner(callerID, owner(res)); err != nil {
		return zero, fmt.Errorf("caller %q: %w", callerID, err)
	}
	return mutate(ctx, res)
}
