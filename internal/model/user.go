package model

import "time"

type User struct {
	UserID         int64     `json:"userId"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"-"`
}
