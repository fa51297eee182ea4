package models

import "time"

// Workshop is a maintenance provider.
type Workshop struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Address   string    `json:"address,omitempty" firestore:"address"`
	Phone     string    `json:"phone,omitempty" firestore:"phone"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// FuelStation is a refuelling point.
type FuelStation struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Brand     string    `json:"brand,omitempty" firestore:"brand"`
	Address   string    `json:"address,omitempty" firestore:"address"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
