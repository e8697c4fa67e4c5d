package users

import (
	"github.com/averyhollis/stockroom-backend/pkg/db/models"
)

// PublicIdentity is the transport shape attributed as "last user" on item
// projections and returned by the profile endpoint. It never carries the
// username or the password hash.
type PublicIdentity struct {
	ID    int64  `json:"id"`
	First string `json:"first"`
	Last  string `json:"last"`
}

func FromModel(u *models.User) *PublicIdentity {
	if u == nil {
		return nil
	}
	return &PublicIdentity{
		ID:    u.ID,
		First: u.First,
		Last:  u.Last,
	}
}
