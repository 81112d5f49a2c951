package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/interfaces/http/middleware"
)

// parseUUIDParam parses a UUID path parameter
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.BadRequest("Invalid " + name + " parameter")
	}
	return id, nil
}

// currentUserID extracts the authenticated user's ID from the gin context.
// Returns false when the route is not behind the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	return middleware.GetUserID(c)
}

// currentActor builds the acting user from the auth claims. ID and role are
// all the authorization checks need, so no database read happens here.
func currentActor(c *gin.Context) (*entities.User, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, false
	}
	role, _ := middleware.GetUserRole(c)
	return &entities.User{ID: userID, Role: entities.UserRole(role)}, true
}
