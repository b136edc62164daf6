package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lmedina-dev/tastebite-backend/pkg/config"
	"github.com/lmedina-dev/tastebite-backend/pkg/db"
	"github.com/lmedina-dev/tastebite-backend/pkg/db/models"
	"github.com/lmedina-dev/tastebite-backend/pkg/logger"
	"github.com/lmedina-dev/tastebite-backend/pkg/migrate"
)

func demoFoods() []models.Food {
	return []models.Food{
		{
			Name:        "Margherita Pizza",
			Description: "Classic pizza with tomato sauce, mozzarella, and fresh basil",
			Price:       decimal.RequireFromString("12.99"),
			ImageURL:    "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?w=500&auto=format&fit=crop&q=60",
			Category:    "pizza",
			Rating:      4.5,
			IsVeg:       true,
			IsPopular:   true,
		},
		{
			Name:        "Pepperoni Pizza",
			Description: "Classic pizza with tomato sauce, mozzarella, and pepperoni",
			Price:       decimal.RequireFromString("14.99"),
			ImageURL:    "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=500&auto=format&fit=crop&q=60",
			Category:    "pizza",
			Rating:      4.7,
			IsPopular:   true,
		},
		{
			Name:        "Chicken Burger",
			Description: "Juicy chicken patty with lettuce, tomato, and special sauce",
			Price:       decimal.RequireFromString("10.99"),
			ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=500&auto=format&fit=crop&q=60",
			Category:    "burger",
			Rating:      4.3,
		},
		{
			Name:        "Classic Cheeseburger",
			Description: "Beef patty with cheddar cheese, lettuce, tomato, and special sauce",
			Price:       decimal.RequireFromString("11.99"),
			ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=500&auto=format&fit=crop&q=60",
			Category:    "burger",
			Rating:      4.6,
			IsPopular:   true,
		},
		{
			Name:        "California Roll",
			Description: "Crab, avocado, and cucumber roll with sesame seeds",
			Price:       decimal.RequireFromString("8.99"),
			ImageURL:    "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?w=500&auto=format&fit=crop&q=60",
			Category:    "sushi",
			Rating:      4.4,
		},
		{
			Name:        "Spicy Tuna Roll",
			Description: "Spicy tuna and cucumber roll with spicy mayo",
			Price:       decimal.RequireFromString("10.99"),
			ImageURL:    "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?w=500&auto=format&fit=crop&q=60",
			Category:    "sushi",
			Rating:      4.7,
			IsSpicy:     true,
		},
	}
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}
	if cfg.App.IsProd() {
		logg.Error(ctx, "refusing to seed a production database", nil)
		os.Exit(1)
	}

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to connect to database", err)
		os.Exit(1)
	}
	defer client.Close()

	sqlDB, err := client.DB().DB()
	if err != nil {
		logg.Error(ctx, "failed to unwrap sql.DB", err)
		os.Exit(1)
	}
	if err := migrate.Run(ctx, sqlDB, migrate.GooseDialect(cfg.DB), migrate.DefaultDir, "up"); err != nil {
		logg.Error(ctx, "failed to migrate before seeding", err)
		os.Exit(1)
	}

	items := demoFoods()
	err = client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM foods").Error; err != nil {
			return err
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		logg.Error(ctx, "failed to seed demo foods", err)
		os.Exit(1)
	}

	logg.Info(logg.WithField(ctx, "count", len(items)), "seeded demo foods")
}
