// File: /models/carbon_record.go
package models

import (
	"time"
)

// CarbonRecord is one persisted, dated, per-user emissions result.
// Record ids are assigned by the repository (max+1) and never reused.
type CarbonRecord struct {
	RecordID        uint      `json:"record_id" gorm:"primaryKey;column:record_id"`
	UserID          uint      `json:"user_id" gorm:"not null;index"`
	RecordDate      string    `json:"record_date" gorm:"not null;size:10;index"` // YYYY-MM-DD
	TotalCarbon     float64   `json:"total_carbon" gorm:"not null"`
	TransportCarbon float64   `json:"transport_carbon" gorm:"not null"`
	EnergyCarbon    float64   `json:"energy_carbon" gorm:"not null"`
	FoodCarbon      float64   `json:"food_carbon" gorm:"not null"`
	ShoppingCarbon  float64   `json:"shopping_carbon" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ActivityInput carries raw user-entered quantities for one calculation.
// Missing sub-objects decode to zero values, which count as zero activity.
type ActivityInput struct {
	Transport TransportInput `json:"transport"`
	Energy    EnergyInput    `json:"energy"`
	Food      FoodInput      `json:"food"`
	Shopping  ShoppingInput  `json:"shopping"`
}

type TransportInput struct {
	CarKm   float64 `json:"carKm" binding:"min=0"`
	BusKm   float64 `json:"busKm" binding:"min=0"`
	TrainKm float64 `json:"trainKm" binding:"min=0"`
	PlaneKm float64 `json:"planeKm" binding:"min=0"`
}

type EnergyInput struct {
	ElectricityHours float64 `json:"electricityHours" binding:"min=0"`
	GasHours         float64 `json:"gasHours" binding:"min=0"`
}

type FoodInput struct {
	MeatMeals       int `json:"meatMeals" binding:"min=0"`
	VegetarianMeals int `json:"vegetarianMeals" binding:"min=0"`
}

type ShoppingInput struct {
	Amount float64 `json:"amount" binding:"min=0"`
}

// EmissionResult holds the four category totals plus grand total, each
// rounded to 2 decimals. Total equals the re-rounded sum of the four
// already-rounded categories.
type EmissionResult struct {
	Total     float64 `json:"total"`
	Transport float64 `json:"transport"`
	Energy    float64 `json:"energy"`
	Food      float64 `json:"food"`
	Shopping  float64 `json:"shopping"`
}

// CarbonBreakdown is the per-category sum over a date range.
type CarbonBreakdown struct {
	TotalTransport float64 `json:"total_transport"`
	TotalEnergy    float64 `json:"total_energy"`
	TotalFood      float64 `json:"total_food"`
	TotalShopping  float64 `json:"total_shopping"`
	GrandTotal     float64 `json:"grand_total"`
}
