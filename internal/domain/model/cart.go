package model

import "time"

// 1セッションにつきACTIVEカートは1つ。購入確定で閉じて二度と戻さない。
type Cart struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ClerkSessionID string    `gorm:"type:varchar(36);not null;index" json:"clerkSessionId"`
	IsActive       bool      `gorm:"not null;index" json:"isActive"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
}
