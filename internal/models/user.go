package models

import (
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
}

type SignupRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// LoginResult carries the outcome of a login attempt. RetryAfter is only set
// when the attempt was rejected by the rate limiter.
type LoginResult struct {
	Success        bool
	User           *User
	Token          string
	Message        string
	RemainingTries int
	RetryAfter     int
}

// Claims is the session cookie payload issued on login.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
