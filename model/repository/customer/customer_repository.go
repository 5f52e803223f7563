package customer

import (
	"time"

	"gorm.io/gorm"

	customerEntity "mobilia.GO/model/entity/customer"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(c *customerEntity.Customer) error {
	return r.db.Create(c).Error
}

func (r *CustomerRepository) FindByEmail(email string) (*customerEntity.Customer, error) {
	var c customerEntity.Customer
	if err := r.db.First(&c, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) FindByID(id uint) (*customerEntity.Customer, error) {
	var c customerEntity.Customer
	if err := r.db.First(&c, "customer_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) CreateToken(t *customerEntity.SessionToken) error {
	return r.db.Create(t).Error
}

// FindActiveToken returns the session row for a token id when it is neither
// revoked nor expired.
func (r *CustomerRepository) FindActiveToken(tokenID string) (*customerEntity.SessionToken, error) {
	var t customerEntity.SessionToken
	err := r.db.
		Where("token_id = ? AND revoked = 0 AND expires_at > ?", tokenID, time.Now()).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *CustomerRepository) RevokeToken(tokenID string) error {
	return r.db.Model(&customerEntity.SessionToken{}).
		Where("token_id = ?", tokenID).
		Update("revoked", 1).Error
}
