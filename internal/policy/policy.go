// Package policy decides whether an actor may act on a resource.
// Functions are pure; a nil actor is anonymous and is never allowed to modify anything.
package policy

import (
	"github.com/google/uuid"
	"github.com/sbilibin2017/cats-api/internal/models"
)

// CanModifyCat reports whether the actor may update or delete the cat.
func CanModifyCat(actor *models.Actor, cat *models.Cat) bool {
	return CanDeleteAnyCat(actor) || CanDeleteOwnCat(actor, cat)
}

// CanReassignCatOwner reports whether the actor may change a cat's owner.
func CanReassignCatOwner(actor *models.Actor) bool {
	return actor.IsAdmin()
}

// CanDeleteAnyCat reports whether the actor may delete cats regardless of ownership.
func CanDeleteAnyCat(actor *models.Actor) bool {
	return actor.IsAdmin()
}

// CanDeleteOwnCat reports whether the actor owns the cat.
func CanDeleteOwnCat(actor *models.Actor, cat *models.Cat) bool {
	return actor != nil && cat != nil && actor.ID == cat.Owner.UserID
}

// CanModifyUser reports whether the actor may change the target user.
// Only self-service is allowed.
func CanModifyUser(actor *models.Actor, target *models.UserDB) bool {
	return actor != nil && target != nil && actor.ID == target.UserID
}

// DeleteScope returns the owner a delete must be restricted to,
// or nil when the actor may delete any cat.
func DeleteScope(actor *models.Actor) *uuid.UUID {
	if CanDeleteAnyCat(actor) {
		return nil
	}
	if actor == nil {
		// anonymous callers match no owner
		none := uuid.Nil
		return &none
	}
	id := actor.ID
	return &id
}
