package customer

import "time"

type Customer struct {
	CustomerID   uint      `gorm:"column:customer_id;primaryKey;autoIncrement"`
	Email        string    `gorm:"column:email;type:varchar(128);not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(128);not null"`
	Firstname    *string   `gorm:"column:firstname;type:varchar(64)"`
	Lastname     *string   `gorm:"column:lastname;type:varchar(64)"`
	IsActive     uint16    `gorm:"column:is_active;not null;default:1"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Customer) TableName() string {
	return "customer_entity"
}
