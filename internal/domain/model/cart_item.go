package model

// カートの明細。
// 同一JANは1行にまとめる（追加は数量加算）。
type CartItem struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	CartID   string `gorm:"type:varchar(36);not null;index" json:"cartId"`
	JanCode  string `gorm:"type:varchar(14);not null" json:"janCode"`
	Quantity int64  `gorm:"not null;default:1" json:"quantity"`
}
