package customer

import "time"

// SessionToken is the persisted side of a customer session JWT. The JWT's jti
// claim maps to TokenID so logout can revoke a token server-side.
type SessionToken struct {
	EntityID   uint      `gorm:"column:entity_id;primaryKey;autoIncrement"`
	TokenID    string    `gorm:"column:token_id;type:varchar(64);not null;uniqueIndex"`
	CustomerID uint      `gorm:"column:customer_id;not null;index"`
	Revoked    uint16    `gorm:"column:revoked;not null;default:0"`
	ExpiresAt  time.Time `gorm:"column:expires_at;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (SessionToken) TableName() string {
	return "customer_session_token"
}
