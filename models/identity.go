package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Identity is the resolved caller. The zero value means "no identity".
type Identity struct {
	UserID      primitive.ObjectID `json:"userId"`
	DisplayName string             `json:"displayName"`
	Email       string             `json:"email"`
}

// Present reports whether the identity carries a user id.
func (i Identity) Present() bool {
	return !i.UserID.IsZero()
}

// Name returns the best label for the identity, falling back to the email
// and finally to "Anon".
func (i Identity) Name() string {
	switch {
	case i.DisplayName != "":
		return i.DisplayName
	case i.Email != "":
		return i.Email
	default:
		return "Anon"
	}
}
