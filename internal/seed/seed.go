package seed

import (
	"context"

	"app/internal/domain/model"
	"app/internal/repository"
)

// 初期投入する商品マスタ（文具10点、税率は一律10%）
var products = []model.Product{
	{JanCode: "4901001000012", Name: "シャープペンシル 0.5mm", PriceExclTax: 150, TaxRatePercent: 10},
	{JanCode: "4901001000029", Name: "ボールペン 黒 1.0mm", PriceExclTax: 120, TaxRatePercent: 10},
	{JanCode: "4901001000036", Name: "消しゴム スタンダード", PriceExclTax: 100, TaxRatePercent: 10},
	{JanCode: "4901001000043", Name: "ノート A5 横罫 50枚", PriceExclTax: 180, TaxRatePercent: 10},
	{JanCode: "4901001000050", Name: "修正テープ 5mm×6m", PriceExclTax: 250, TaxRatePercent: 10},
	{JanCode: "4901001000067", Name: "油性マーカー 黒", PriceExclTax: 200, TaxRatePercent: 10},
	{JanCode: "4901001000074", Name: "クリアファイル タイプA", PriceExclTax: 80, TaxRatePercent: 10},
	{JanCode: "4901001000081", Name: "クリアファイル タイプB", PriceExclTax: 100, TaxRatePercent: 10},
	{JanCode: "4901001000098", Name: "クリアファイル タイプC", PriceExclTax: 120, TaxRatePercent: 10},
	{JanCode: "4901001000104", Name: "筆箱", PriceExclTax: 600, TaxRatePercent: 10},
}

// Products は商品マスタをアップサートで反映する。既存は上書き更新。
// 何度流しても行は増えない。
func Products(ctx context.Context, productRepo repository.ProductRepository) error {
	for _, p := range products {
		if err := productRepo.Upsert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
