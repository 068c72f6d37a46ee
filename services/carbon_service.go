// File: /services/carbon_service.go
package services

import (
	"math"
	"time"

	"carbontrack-api/metrics"
	"carbontrack-api/models"
	"carbontrack-api/repositories"
)

// earliestRecordDate is the default lower bound for range queries when the
// caller omits a start date.
const earliestRecordDate = "2020-01-01"

// EmissionFactors is the fixed kg-CO2 coefficient table. It is injected
// into the calculator at construction and never mutated at runtime.
type EmissionFactors struct {
	Car   float64 // kg per km
	Bus   float64 // kg per km
	Train float64 // kg per km
	Plane float64 // kg per km

	ElectricityHourlyConsumption float64 // kWh per hour
	ElectricityEmission          float64 // kg per kWh
	GasHourlyConsumption         float64 // m3 per hour
	GasEmission                  float64 // kg per m3

	MeatMeal       float64 // kg per meal
	VegetarianMeal float64 // kg per meal

	Shopping float64 // kg per 100 currency units
}

func DefaultEmissionFactors() EmissionFactors {
	return EmissionFactors{
		Car:   0.21,
		Bus:   0.089,
		Train: 0.014,
		Plane: 0.255,

		ElectricityHourlyConsumption: 1.2,
		ElectricityEmission:          0.5,
		GasHourlyConsumption:         0.3,
		GasEmission:                  1.96,

		MeatMeal:       3.5,
		VegetarianMeal: 1.0,

		Shopping: 0.5,
	}
}

// Calculator maps activity quantities to kg-CO2 contributions. It is pure
// and stateless; every category value is rounded to 2 decimals on its own
// before the total is summed and rounded again, so the figures shown per
// category always add up to the reported total.
type Calculator struct {
	factors EmissionFactors
}

func NewCalculator(factors EmissionFactors) *Calculator {
	return &Calculator{factors: factors}
}

func (c *Calculator) TransportCarbon(input models.TransportInput) float64 {
	total := input.CarKm*c.factors.Car +
		input.BusKm*c.factors.Bus +
		input.TrainKm*c.factors.Train +
		input.PlaneKm*c.factors.Plane
	return round2(total)
}

func (c *Calculator) EnergyCarbon(input models.EnergyInput) float64 {
	kwh := input.ElectricityHours * c.factors.ElectricityHourlyConsumption
	m3 := input.GasHours * c.factors.GasHourlyConsumption
	total := kwh*c.factors.ElectricityEmission + m3*c.factors.GasEmission
	return round2(total)
}

func (c *Calculator) FoodCarbon(input models.FoodInput) float64 {
	total := float64(input.MeatMeals)*c.factors.MeatMeal +
		float64(input.VegetarianMeals)*c.factors.VegetarianMeal
	return round2(total)
}

func (c *Calculator) ShoppingCarbon(input models.ShoppingInput) float64 {
	total := (input.Amount / 100) * c.factors.Shopping
	return round2(total)
}

func (c *Calculator) Calculate(input models.ActivityInput) models.EmissionResult {
	transport := c.TransportCarbon(input.Transport)
	energy := c.EnergyCarbon(input.Energy)
	food := c.FoodCarbon(input.Food)
	shopping := c.ShoppingCarbon(input.Shopping)

	return models.EmissionResult{
		Total:     round2(transport + energy + food + shopping),
		Transport: transport,
		Energy:    energy,
		Food:      food,
		Shopping:  shopping,
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// CarbonService is the single internal surface all protocol adapters
// consume. Adapters only translate wire formats; calculation and
// persistence live here.
type CarbonService struct {
	calculator *Calculator
	records    repositories.CarbonRecordRepository
}

func NewCarbonService(calculator *Calculator, records repositories.CarbonRecordRepository) *CarbonService {
	return &CarbonService{
		calculator: calculator,
		records:    records,
	}
}

// ComputeAndRecord computes emissions for the input and appends a new
// record for the user. An empty recordDate defaults to today.
func (s *CarbonService) ComputeAndRecord(userID uint, recordDate string, input models.ActivityInput) (models.EmissionResult, uint, error) {
	if recordDate == "" {
		recordDate = today()
	}

	result := s.calculator.Calculate(input)
	recordID, err := s.records.Append(userID, recordDate, result)
	if err != nil {
		metrics.RecordAppendErrors.Inc()
		return models.EmissionResult{}, 0, err
	}
	return result, recordID, nil
}

// Records lists the user's records newest date first, optionally bounded
// by an inclusive date range.
func (s *CarbonService) Records(userID uint, startDate, endDate string) ([]models.CarbonRecord, error) {
	return s.records.ListByUser(userID, startDate, endDate)
}

// FindRecord looks a single record up by id.
func (s *CarbonService) FindRecord(recordID uint) (*models.CarbonRecord, error) {
	return s.records.FindByID(recordID)
}

// TotalCarbon sums the user's recorded totals over the range. Missing
// bounds default to the fixed epoch and today respectively.
func (s *CarbonService) TotalCarbon(userID uint, startDate, endDate string) (float64, error) {
	startDate, endDate = defaultRange(startDate, endDate)
	return s.records.TotalCarbon(userID, startDate, endDate)
}

// Breakdown sums each category over the range, same defaulting as
// TotalCarbon. A degenerate range (start after end) yields zeros.
func (s *CarbonService) Breakdown(userID uint, startDate, endDate string) (models.CarbonBreakdown, error) {
	startDate, endDate = defaultRange(startDate, endDate)
	return s.records.Breakdown(userID, startDate, endDate)
}

func defaultRange(startDate, endDate string) (string, string) {
	if startDate == "" {
		startDate = earliestRecordDate
	}
	if endDate == "" {
		endDate = today()
	}
	return startDate, endDate
}

func today() string {
	return time.Now().Format("2006-01-02")
}
