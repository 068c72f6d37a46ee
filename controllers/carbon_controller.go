// File: /controllers/carbon_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"carbontrack-api/metrics"
	"carbontrack-api/middleware"
	"carbontrack-api/models"
	"carbontrack-api/services"
	"carbontrack-api/utils"
)

// CarbonController is the request/response adapter: it decodes the REST
// wire shapes, calls the shared carbon service and encodes the result. No
// calculation or persistence logic lives here.
type CarbonController struct {
	service *services.CarbonService
	advice  *services.AdviceService
}

func NewCarbonController(service *services.CarbonService, advice *services.AdviceService) *CarbonController {
	return &CarbonController{
		service: service,
		advice:  advice,
	}
}

type CalculateRequest struct {
	RecordDate string                `json:"recordDate"`
	Transport  models.TransportInput `json:"transport"`
	Energy     models.EnergyInput    `json:"energy"`
	Food       models.FoodInput      `json:"food"`
	Shopping   models.ShoppingInput  `json:"shopping"`
}

type RecommendationsRequest struct {
	Total     *float64 `json:"total" binding:"required"`
	Transport *float64 `json:"transport" binding:"required"`
	Energy    *float64 `json:"energy" binding:"required"`
	Food      *float64 `json:"food" binding:"required"`
	Shopping  *float64 `json:"shopping" binding:"required"`
}

// Calculate computes emissions for the submitted activity and appends a
// new record for the authenticated user.
func (cc *CarbonController) Calculate(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.RecordDate != "" && !utils.IsValidRecordDate(req.RecordDate) {
		utils.SendValidationError(c, "recordDate must be a YYYY-MM-DD date")
		return
	}

	input := models.ActivityInput{
		Transport: req.Transport,
		Energy:    req.Energy,
		Food:      req.Food,
		Shopping:  req.Shopping,
	}

	result, recordID, err := cc.service.ComputeAndRecord(userID, req.RecordDate, input)
	if err != nil {
		log.Printf("compute and record failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save record"})
		return
	}
	metrics.CalculationsTotal.WithLabelValues("rest").Inc()

	utils.SendCreated(c, "Carbon record created", gin.H{
		"recordId":  recordID,
		"total":     result.Total,
		"transport": result.Transport,
		"energy":    result.Energy,
		"food":      result.Food,
		"shopping":  result.Shopping,
	})
}

// GetRecords lists the user's records, newest date first.
func (cc *CarbonController) GetRecords(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	startDate, endDate, valid := dateRangeParams(c)
	if !valid {
		return
	}

	records, err := cc.service.Records(userID, startDate, endDate)
	if err != nil {
		log.Printf("list records failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch records"})
		return
	}

	utils.SendSuccess(c, "", records)
}

// GetTotalCarbon returns the summed footprint over the range.
func (cc *CarbonController) GetTotalCarbon(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	startDate, endDate, valid := dateRangeParams(c)
	if !valid {
		return
	}

	total, err := cc.service.TotalCarbon(userID, startDate, endDate)
	if err != nil {
		log.Printf("total carbon failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate total"})
		return
	}

	utils.SendSuccess(c, "", gin.H{"totalCarbon": total})
}

// GetBreakdown returns per-category sums over the range.
func (cc *CarbonController) GetBreakdown(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	startDate, endDate, valid := dateRangeParams(c)
	if !valid {
		return
	}

	breakdown, err := cc.service.Breakdown(userID, startDate, endDate)
	if err != nil {
		log.Printf("breakdown failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate breakdown"})
		return
	}

	utils.SendSuccess(c, "", breakdown)
}

// GetRecommendations returns advice text for an already computed result.
// Upstream failures degrade to the local fallback, never an error.
func (cc *CarbonController) GetRecommendations(c *gin.Context) {
	var req RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "total, transport, energy, food and shopping must all be numbers")
		return
	}

	result := models.EmissionResult{
		Total:     *req.Total,
		Transport: *req.Transport,
		Energy:    *req.Energy,
		Food:      *req.Food,
		Shopping:  *req.Shopping,
	}

	advice := cc.advice.GetRecommendations(result)
	utils.SendSuccess(c, "", gin.H{"advice": advice})
}

func dateRangeParams(c *gin.Context) (string, string, bool) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate != "" && !utils.IsValidRecordDate(startDate) {
		utils.SendValidationError(c, "startDate must be a YYYY-MM-DD date")
		return "", "", false
	}
	if endDate != "" && !utils.IsValidRecordDate(endDate) {
		utils.SendValidationError(c, "endDate must be a YYYY-MM-DD date")
		return "", "", false
	}
	return startDate, endDate, true
}
