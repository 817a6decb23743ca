package models

import "gorm.io/gorm"

const RoleAdmin = "admin"

type User struct {
	gorm.Model
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex; size:64" json:"username"`
	Password string `json:"-"`
	Role     string `gorm:"size:16; default:user" json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
