package models

import "time"

type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	ForKitchen bool      `json:"for_kitchen"`
	CreatedAt  time.Time `json:"created_at"`
}
