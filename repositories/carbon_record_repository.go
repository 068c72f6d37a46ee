// File: /repositories/carbon_record_repository.go
package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"carbontrack-api/models"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("record not found")

// CarbonRecordRepository owns the carbon record ledger. Append always
// creates a new record; there is no update or delete. Date arguments are
// inclusive YYYY-MM-DD bounds; empty strings mean unbounded.
type CarbonRecordRepository interface {
	Append(userID uint, recordDate string, result models.EmissionResult) (uint, error)
	ListByUser(userID uint, startDate, endDate string) ([]models.CarbonRecord, error)
	FindByID(recordID uint) (*models.CarbonRecord, error)
	TotalCarbon(userID uint, startDate, endDate string) (float64, error)
	Breakdown(userID uint, startDate, endDate string) (models.CarbonBreakdown, error)
}

type GormCarbonRecordRepository struct {
	db *gorm.DB
}

func NewGormCarbonRecordRepository(db *gorm.DB) *GormCarbonRecordRepository {
	return &GormCarbonRecordRepository{db: db}
}

// Append assigns max(record_id)+1 and inserts inside one locking
// transaction so concurrent callers never observe the same next id.
func (r *GormCarbonRecordRepository) Append(userID uint, recordDate string, result models.EmissionResult) (uint, error) {
	var recordID uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var maxID uint
		err := tx.Model(&models.CarbonRecord{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("COALESCE(MAX(record_id), 0)").
			Scan(&maxID).Error
		if err != nil {
			return err
		}

		now := time.Now()
		record := models.CarbonRecord{
			RecordID:        maxID + 1,
			UserID:          userID,
			RecordDate:      recordDate,
			TotalCarbon:     result.Total,
			TransportCarbon: result.Transport,
			EnergyCarbon:    result.Energy,
			FoodCarbon:      result.Food,
			ShoppingCarbon:  result.Shopping,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		recordID = record.RecordID
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("append carbon record: %w", err)
	}
	return recordID, nil
}

func (r *GormCarbonRecordRepository) ListByUser(userID uint, startDate, endDate string) ([]models.CarbonRecord, error) {
	records := []models.CarbonRecord{}
	query := rangeQuery(r.db, userID, startDate, endDate)
	err := query.Order("record_date DESC, record_id ASC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list carbon records: %w", err)
	}
	return records, nil
}

func (r *GormCarbonRecordRepository) FindByID(recordID uint) (*models.CarbonRecord, error) {
	var record models.CarbonRecord
	err := r.db.Where("record_id = ?", recordID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find carbon record: %w", err)
	}
	return &record, nil
}

func (r *GormCarbonRecordRepository) TotalCarbon(userID uint, startDate, endDate string) (float64, error) {
	var total float64
	query := rangeQuery(r.db, userID, startDate, endDate)
	err := query.Select("COALESCE(SUM(total_carbon), 0)").Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum total carbon: %w", err)
	}
	return total, nil
}

func (r *GormCarbonRecordRepository) Breakdown(userID uint, startDate, endDate string) (models.CarbonBreakdown, error) {
	var breakdown models.CarbonBreakdown
	query := rangeQuery(r.db, userID, startDate, endDate)
	err := query.Select(
		"COALESCE(SUM(transport_carbon), 0) AS total_transport, " +
			"COALESCE(SUM(energy_carbon), 0) AS total_energy, " +
			"COALESCE(SUM(food_carbon), 0) AS total_food, " +
			"COALESCE(SUM(shopping_carbon), 0) AS total_shopping, " +
			"COALESCE(SUM(total_carbon), 0) AS grand_total").
		Scan(&breakdown).Error
	if err != nil {
		return models.CarbonBreakdown{}, fmt.Errorf("sum carbon breakdown: %w", err)
	}
	return breakdown, nil
}

func rangeQuery(db *gorm.DB, userID uint, startDate, endDate string) *gorm.DB {
	query := db.Model(&models.CarbonRecord{}).Where("user_id = ?", userID)
	if startDate != "" {
		query = query.Where("record_date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("record_date <= ?", endDate)
	}
	return query
}
