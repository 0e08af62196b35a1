package middleware

import (
	"context"

	"github.com/google/uuid"
)

// ContextIdentity resolves the submitting user from the request context
// populated by Auth. Resolution never fails; anything short of a valid user
// id means anonymous.
type ContextIdentity struct{}

func (ContextIdentity) Resolve(ctx context.Context) *uuid.UUID {
	raw := UserIDFromContext(ctx)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
