package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Usuario is an API user allowed to obtain access tokens
type Usuario struct {
	BaseModel
	Username  string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	SenhaHash string `gorm:"size:255;not null" json:"-"`
	Ativo     bool   `gorm:"default:true" json:"ativo"`
}

// TableName overrides the default pluralization
func (Usuario) TableName() string {
	return "usuarios"
}

// SetSenha hashes a password and sets it on the user
func (u *Usuario) SetSenha(senha string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.SenhaHash = string(hash)
	return nil
}

// VerificarSenha compares a password with the user's hashed password
func (u *Usuario) VerificarSenha(senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(senha)) == nil
}
