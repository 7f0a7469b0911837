// file: internals/helpers/actor.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Actor is the acting user as an opaque identity plus display name.
// Services take it as an explicit parameter instead of reading request context.
type Actor struct {
	ID   uuid.UUID
	Name string
}

// ActorFromLocals reads the identity stored by the auth middleware.
func ActorFromLocals(c *fiber.Ctx) (Actor, error) {
	idStr, _ := c.Locals("user_id").(string)
	if idStr == "" {
		return Actor{}, errors.New("no authenticated user in request context")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Actor{}, errors.New("invalid user id in request context")
	}
	name, _ := c.Locals("user_name").(string)
	return Actor{ID: id, Name: name}, nil
}
