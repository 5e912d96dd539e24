package model

// 購入の明細。
// 価格は購入時点のスナップショット。後から商品マスタが変わっても影響しない。
type PurchaseItem struct {
	ID           string `gorm:"type:varchar(36);primaryKey" json:"id"`
	PurchaseID   string `gorm:"type:varchar(36);not null;index" json:"purchaseId"`
	JanCode      string `gorm:"type:varchar(14);not null" json:"janCode"`
	Quantity     int64  `gorm:"not null" json:"quantity"`
	PriceExclTax int64  `gorm:"not null" json:"priceExclTax"`
	PriceInclTax int64  `gorm:"not null" json:"priceInclTax"`
}
