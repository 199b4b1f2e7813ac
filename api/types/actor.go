package types

import (
	"github.com/gin-gonic/gin"

	"github.com/labelreader/label-api/internal/services/auth"
)

// actorKey is where the auth middleware stashes the validated actor
const actorKey = "actor"

// SetActor stores the authenticated actor on the request context
func SetActor(c *gin.Context, actor *auth.Actor) {
	c.Set(actorKey, actor)
}

// GetActor returns the authenticated actor, or nil on unauthenticated
// routes
func GetActor(c *gin.Context) *auth.Actor {
	value, exists := c.Get(actorKey)
	if !exists {
		return nil
	}
	actor, ok := value.(*auth.Actor)
	if !ok {
		return nil
	}
	return actor
}

// MustActor returns the actor or aborts with 401. Routes behind the auth
// middleware always have one; this guards direct handler use in tests.
func MustActor(c *gin.Context) (*auth.Actor, bool) {
	actor := GetActor(c)
	if actor == nil {
		c.AbortWithStatusJSON(401, ErrorResponse{Status: StatusError, Error: "Authentication required"})
		return nil, false
	}
	return actor, true
}
