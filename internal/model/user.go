package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Nama     string `json:"nama"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-"`
}
