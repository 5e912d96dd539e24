package model

// 商品マスタ。JANコードを主キーとして扱う。
type Product struct {
	JanCode        string `gorm:"type:varchar(14);primaryKey" json:"janCode"`
	Name           string `gorm:"type:varchar(200);not null" json:"name"`
	PriceExclTax   int64  `gorm:"not null" json:"priceExclTax"`
	TaxRatePercent int64  `gorm:"not null;default:10" json:"taxRate"`
}

// PriceInclTax は税込価格を返す。
func (p Product) PriceInclTax() int64 {
	return PriceInclTax(p.PriceExclTax, p.TaxRatePercent)
}

// PriceInclTax は税抜価格と税率(%)から税込価格を計算する。
// 丸めは四捨五入（0.5は切り上げ）で固定し、整数演算 (excl*(100+rate)+50)/100 で行う。
// 例: 150円/10% → 165円
func PriceInclTax(priceExclTax int64, taxRatePercent int64) int64 {
	return (priceExclTax*(100+taxRatePercent) + 50) / 100
}
