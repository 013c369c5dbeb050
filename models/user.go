package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by a successful login or registration.
type AuthResponse struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

// LastSession bookmarks the session a user most recently joined.
type LastSession struct {
	ChannelID primitive.ObjectID `bson:"channelId" json:"channelId"`
	SessionID primitive.ObjectID `bson:"sessionId" json:"sessionId"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// User is the global profile of an identity.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName" json:"displayName"`
	Password    string             `bson:"password" json:"-"` // bcrypt hash
	Bio         string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Interests   []string           `bson:"interests,omitempty" json:"interests,omitempty"`
	LastSession *LastSession       `bson:"lastSession,omitempty" json:"lastSession,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
