package model

import "github.com/google/uuid"

type UserRegistered struct {
	UserID   uuid.UUID
	Username string
}

func (e UserRegistered) Type() string { return "UserRegistered" }

type UserLoggedIn struct {
	UserID uuid.UUID
}

func (e UserLoggedIn) Type() string { return "UserLoggedIn" }
