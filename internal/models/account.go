package models

import "time"

// Account represents a financial account owned by a user. Balance is stored
// in minor currency units and may go negative.
type Account struct {
	Base
	UserID  string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name    string `gorm:"not null" json:"name"`
	Balance int64  `gorm:"type:bigint;not null;default:0" json:"balance"`
	Color   string `json:"color"`
	Icon    string `json:"icon"`
}

// UpdateBalance sets the account balance. This is the only sanctioned way to
// change Balance; callers must not assign the field directly.
func (a *Account) UpdateBalance(balance int64) {
	a.Balance = balance
	a.UpdatedAt = time.Now()
}
