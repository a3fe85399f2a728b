package main

import (
	"fmt"
	"log"

	"comanda_manager/internal/config"
	"comanda_manager/internal/database"
	"comanda_manager/internal/repository"
	"comanda_manager/internal/services"
	"comanda_manager/internal/storage"
)

func main() {
	fmt.Println("Seeding product catalog...")

	// Load configuration
	cfg := config.Load()

	store, err := newStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize store:", err)
	}

	productRepo := repository.NewProductRepository(store)
	productService := services.NewProductService(productRepo)

	if err := productService.SeedDefaults(); err != nil {
		log.Fatal("Failed to seed default products:", err)
	}

	products, err := productService.GetProducts()
	if err != nil {
		log.Fatal("Failed to read product catalog:", err)
	}

	fmt.Printf("Catalog now holds %d products:\n", len(products))
	for _, p := range products {
		kitchen := ""
		if p.ForKitchen {
			kitchen = " (kitchen)"
		}
		fmt.Printf("  - %s: %.2f%s\n", p.Name, p.Price, kitchen)
	}
}

func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := database.Initialize(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return storage.NewPostgresStore(db), nil
	case "redis":
		return storage.NewRedisStore(cfg.RedisURL)
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}
