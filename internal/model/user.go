package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a customer managed from the admin console.
type User struct {
	ID        uuid.UUID `json:"_id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Mobile    string    `json:"mobile,omitempty" db:"mobile"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// UserRequest is the payload for creating a user.
type UserRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required"`
	Mobile string `json:"mobile"`
}

// UserPatch lists the user fields an update may change. Nil fields are left untouched.
type UserPatch struct {
	Name   *string `json:"name" validate:"omitnil,min=1"`
	Email  *string `json:"email" validate:"omitnil,min=1"`
	Mobile *string `json:"mobile"`
}

// Apply copies the set fields of the patch onto u.
func (p *UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Mobile != nil {
		u.Mobile = *p.Mobile
	}
}
