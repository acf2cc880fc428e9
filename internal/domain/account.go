package domain

import (
	"errors"
	"time"
)

// ErrAccountNotFound is returned by account stores for unknown names.
var ErrAccountNotFound = errors.New("account not found")

// Account is a sign-in identity. Its ID doubles as the profile id.
type Account struct {
	ID           string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// AuthSession is returned by sign up and sign in.
type AuthSession struct {
	Token   string      `json:"token"`
	Profile UserProfile `json:"profile"`
}
