// Command seed wipes and repopulates the product catalog with a small demo
// data set. Intended for local development and staging environments only.
package main

import (
	"log/slog"
	"os"

	"freshmarket/config"
	"freshmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := seedProducts(db); err != nil {
		logger.Error("Failed to seed products", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Catalog seeded")
}

func seedProducts(db *gorm.DB) error {
	products := []*model.ProductModel{
		{
			ID:          uuid.New(),
			Slug:        "fuji-apple",
			Name:        "Fuji Apple",
			Description: "Fresh apples imported from Japan.",
			Price:       25000,
			Stock:       100,
			Weight:      100,
		},
		{
			ID:          uuid.New(),
			Slug:        "cavendish-banana",
			Name:        "Cavendish Banana",
			Description: "Premium quality fresh bananas.",
			Price:       15000,
			Stock:       150,
			Weight:      100,
		},
		{
			ID:          uuid.New(),
			Slug:        "mandarin-orange",
			Name:        "Mandarin Orange",
			Description: "Sweet oranges imported from China.",
			Price:       30000,
			Stock:       80,
			Weight:      100,
		},
	}

	for i, product := range products {
		products[i].Images = []*model.ProductImageModel{
			{
				ID:        uuid.New(),
				ProductID: product.ID,
				URL:       "https://cdn.freshmarket.example/products/" + product.Slug + ".jpg",
				Alt:       product.Name + " front view",
			},
		}
	}
	// The apple gets a second angle, the rest a single shot.
	products[0].Images = append(products[0].Images, &model.ProductImageModel{
		ID:        uuid.New(),
		ProductID: products[0].ID,
		URL:       "https://cdn.freshmarket.example/products/fuji-apple-side.jpg",
		Alt:       "Fuji Apple side view",
	})

	return db.Transaction(func(tx *gorm.DB) error {
		// Images reference products, so they go first.
		if err := tx.Where("1 = 1").Delete(&model.ProductImageModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.ProductModel{}).Error; err != nil {
			return err
		}

		return tx.Create(products).Error
	})
}
