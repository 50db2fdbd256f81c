package models

import "time"

// RevokedToken is the DB fallback for jti revocation when Redis is not
// configured. Rows are written on logout and consulted on every validation.
type RevokedToken struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	RevokedAt time.Time `json:"revoked_at"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
