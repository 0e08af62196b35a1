package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/amirulhakim/spicebite-backend/api/middleware"
)

// viewerID extracts the authenticated user id, or nil for anonymous requests.
func viewerID(r *http.Request) *uuid.UUID {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
