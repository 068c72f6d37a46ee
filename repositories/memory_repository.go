// File: /repositories/memory_repository.go
package repositories

import (
	"sort"
	"sync"
	"time"

	"carbontrack-api/models"
)

// MemoryCarbonRecordRepository is a mutex-guarded in-memory ledger. It
// backs tests and can serve as a storage fallback when no database is
// configured. The whole append cycle runs under one lock, so id
// assignment is race free.
type MemoryCarbonRecordRepository struct {
	mu      sync.RWMutex
	records []models.CarbonRecord
}

func NewMemoryCarbonRecordRepository() *MemoryCarbonRecordRepository {
	return &MemoryCarbonRecordRepository{}
}

func (r *MemoryCarbonRecordRepository) Append(userID uint, recordDate string, result models.EmissionResult) (uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID uint
	for _, record := range r.records {
		if record.RecordID > maxID {
			maxID = record.RecordID
		}
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
	r.records = append(r.records, record)
	return record.RecordID, nil
}

func (r *MemoryCarbonRecordRepository) ListByUser(userID uint, startDate, endDate string) ([]models.CarbonRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []models.CarbonRecord{}
	for _, record := range r.records {
		if record.UserID != userID {
			continue
		}
		if !inDateRange(record.RecordDate, startDate, endDate) {
			continue
		}
		matched = append(matched, record)
	}

	// Newest date first; insertion order breaks ties.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].RecordDate > matched[j].RecordDate
	})
	return matched, nil
}

func (r *MemoryCarbonRecordRepository) FindByID(recordID uint) (*models.CarbonRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		if record.RecordID == recordID {
			found := record
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryCarbonRecordRepository) TotalCarbon(userID uint, startDate, endDate string) (float64, error) {
	records, err := r.ListByUser(userID, startDate, endDate)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, record := range records {
		total += record.TotalCarbon
	}
	return total, nil
}

func (r *MemoryCarbonRecordRepository) Breakdown(userID uint, startDate, endDate string) (models.CarbonBreakdown, error) {
	records, err := r.ListByUser(userID, startDate, endDate)
	if err != nil {
		return models.CarbonBreakdown{}, err
	}

	var breakdown models.CarbonBreakdown
	for _, record := range records {
		breakdown.TotalTransport += record.TransportCarbon
		breakdown.TotalEnergy += record.EnergyCarbon
		breakdown.TotalFood += record.FoodCarbon
		breakdown.TotalShopping += record.ShoppingCarbon
		breakdown.GrandTotal += record.TotalCarbon
	}
	return breakdown, nil
}

// ISO dates compare lexicographically, so plain string comparison covers
// the inclusive range check. Empty bounds are open ended.
func inDateRange(date, startDate, endDate string) bool {
	if startDate != "" && date < startDate {
		return false
	}
	if endDate != "" && date > endDate {
		return false
	}
	return true
}
