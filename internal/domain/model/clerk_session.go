package model

import "time"

// レジ担当者のセッション。
// ACTIVEは全体で1つだけ（1デバイス1セッション想定）。
type ClerkSession struct {
	ID        string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	ClerkCode string     `gorm:"type:varchar(5);not null;index" json:"clerkCode"`
	StoreCode string     `gorm:"type:varchar(10);not null" json:"storeCode"`
	IsActive  bool       `gorm:"not null;index" json:"isActive"`
	StartedAt time.Time  `gorm:"not null" json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt"`
}
