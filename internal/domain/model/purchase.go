package model

import "time"

// 確定した購入。作成後は変更しない。
type Purchase struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ClerkSessionID string    `gorm:"type:varchar(36);not null;index" json:"clerkSessionId"`
	TotalExclTax   int64     `gorm:"not null" json:"totalExclTax"`
	TotalInclTax   int64     `gorm:"not null" json:"totalInclTax"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
}
