package main

import (
	"context"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/seed"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .envは無くても起動できる（本番は環境変数のみ）
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config load failed")
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("db connect failed")
	}

	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.ClerkSession{},
		&model.Cart{},
		&model.CartItem{},
		&model.Purchase{},
		&model.PurchaseItem{},
	); err != nil {
		logrus.WithError(err).Fatal("migrate failed")
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	sessionRepo := infraRepo.NewSessionGormRepository(gormDB)
	purchaseRepo := infraRepo.NewPurchaseGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//テーブル作成後に初回シード
	if err := seed.Products(context.Background(), productRepo); err != nil {
		logrus.WithError(err).Fatal("seed failed")
	}

	//Usecase生成
	sessionUC := usecase.NewSessionUsecase(txManager, sessionRepo, cfg.DefaultStoreCode)
	productUC := usecase.NewProductUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(txManager)
	purchaseUC := usecase.NewPurchaseUsecase(txManager, sessionRepo, purchaseRepo)

	//Handler生成
	sessionH := handler.NewSessionHandler(sessionUC)
	productH := handler.NewProductHandler(productUC)
	cartH := handler.NewCartHandler(cartUC)
	purchaseH := handler.NewPurchaseHandler(purchaseUC)
	healthH := handler.NewHealthHandler(gormDB)

	//Server起動
	e := server.New(cfg, sessionH, productH, cartH, purchaseH, healthH)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logrus.WithField("addr", addr).Info("starting pos api")
	if err := server.Start(e, addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
