package model

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Firstname string    `json:"firstname" gorm:"size:100"`
	Lastname  string    `json:"lastname" gorm:"size:100"`
	Email     string    `json:"email" gorm:"unique;not null;size:255"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	Galleries []Gallery `json:"-"`
}
