package models

import "time"

type User struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Password string    `json:"password"` // stored and compared verbatim, demo account model
	JoinDate time.Time `json:"joinDate"`
}
