package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User mirrors a registered profile in the users collection. Passwords are
// stored as bcrypt hashes only. Authorization never consults Role; the
// administrator is identified by a configured user id (helpers.AccessGuard)
// and Role is informational.
type User struct {
	ID            primitive.ObjectID `bson:"_id" json:"-"`
	Name          *string            `json:"name" validate:"required,min=2,max=100"`
	Email         *string            `json:"email" validate:"email,required"`
	Password      *string            `json:"password,omitempty" validate:"required,min=6"`
	Role          string             `json:"role"`
	Token         *string            `json:"token,omitempty"`
	Refresh_token *string            `json:"refresh_token,omitempty"`
	Created_at    time.Time          `json:"created_at"`
	Updated_at    time.Time          `json:"updated_at"`
	User_id       string             `json:"user_id"`
}
