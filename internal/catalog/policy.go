package catalog

import "github.com/seifadel74/bookweb/internal/entities"

// Actor identifies who is performing a catalog operation.
type Actor struct {
	ID      uint
	IsAdmin bool
}

// CanModify reports whether the actor may change the given book.
// Owners may modify their own books; administrators may modify any book.
func CanModify(book *entities.Book, actor Actor) bool {
	if actor.ID == 0 {
		return false
	}
	return actor.IsAdmin || book.UserID == actor.ID
}
