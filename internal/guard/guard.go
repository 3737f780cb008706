package guard

import (
	"fmt"

	"notehub-be/internal/entity"
	"notehub-be/internal/pkg/apperror"
)

// Owned is any resource bound to a single owning user.
type Owned interface {
	OwnerID() string
}

// Guard decides whether a request's session may touch a resource. The
// authentication check always runs before any store lookup so an
// unauthenticated caller never learns whether a resource exists.
type Guard struct{}

func New() *Guard {
	return &Guard{}
}

// Authenticate fails with Unauthenticated when the request carries no valid
// session. action names the attempted operation for the client message,
// e.g. "access notes".
func (g *Guard) Authenticate(user *entity.User, action string) error {
	if user == nil || user.Id == "" {
		return apperror.NewUnauthenticated(fmt.Sprintf("Cannot %s, you are unauthenticated", action))
	}
	return nil
}

// Authorize reports whether the session user owns the resource. Ownership is
// the only grant: no admin bypass, no sharing. A nil resource is never
// accessible.
func (g *Guard) Authorize(user *entity.User, resource Owned) bool {
	if user == nil || resource == nil {
		return false
	}
	return resource.OwnerID() == user.Id
}
