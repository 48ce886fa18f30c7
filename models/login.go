package models

import "time"

// Login é a credencial de acesso ao sistema. Senha guarda o hash bcrypt.
type Login struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id" bson:"-"`
	Email     string     `gorm:"not null;unique" json:"email" bson:"email"`
	Senha     string     `gorm:"not null" json:"-" bson:"senha"`
	CreatedAt *time.Time `json:"created_at" bson:"created_at,omitempty"`
}

func (Login) TableName() string {
	return "login"
}
