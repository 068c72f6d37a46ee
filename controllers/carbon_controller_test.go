// File: /controllers/carbon_controller_test.go
package controllers_test

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"carbontrack-api/config"
	"carbontrack-api/middleware"
	"carbontrack-api/models"
	"carbontrack-api/repositories"
	"carbontrack-api/routes"
	"carbontrack-api/services"
)

type testEnv struct {
	router  *gin.Engine
	users   *repositories.MemoryUserRepository
	records *repositories.MemoryCarbonRecordRepository
	cfg     *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:      "8080",
		JWTSecret: "test-secret",
	}
	users := repositories.NewMemoryUserRepository()
	records := repositories.NewMemoryCarbonRecordRepository()
	calculator := services.NewCalculator(services.DefaultEmissionFactors())
	carbonService := services.NewCarbonService(calculator, records)
	adviceService := services.NewAdviceService(cfg) // no API key: always falls back

	router := gin.New()
	routes.SetupRoutes(router, cfg, users, carbonService, adviceService, nil)

	return &testEnv{
		router:  router,
		users:   users,
		records: records,
		cfg:     cfg,
	}
}

func (env *testEnv) createUser(t *testing.T, email string) (uint, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Username: "tester", Email: email, PasswordHash: string(hash)}
	if err := env.users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := middleware.GenerateToken(env.cfg.JWTSecret, user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user.ID, token
}

func (env *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return response.Data
}

func TestCalculateRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]interface{}{
		"transport": map[string]float64{"carKm": 10},
	}
	w := env.do(t, http.MethodPost, "/api/v1/carbon/calculate", "", body)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	// No persistence side effect for the unauthenticated request.
	records, err := env.records.ListByUser(1, "", "")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("unauthenticated request persisted %d records", len(records))
	}
}

func TestCalculateRejectsInvalidToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/carbon/calculate", "not-a-token", map[string]interface{}{})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestCalculateCreatesRecord(t *testing.T) {
	env := newTestEnv(t)
	userID, token := env.createUser(t, "calc@example.com")

	body := map[string]interface{}{
		"recordDate": "2024-06-01",
		"transport":  map[string]float64{"carKm": 10},
		"energy":     map[string]float64{"electricityHours": 2, "gasHours": 1},
		"food":       map[string]int{"meatMeals": 1},
		"shopping":   map[string]float64{"amount": 200},
	}
	w := env.do(t, http.MethodPost, "/api/v1/carbon/calculate", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}

	data := decodeData(t, w)
	wantValues := map[string]float64{
		"transport": 2.10,
		"energy":    1.79,
		"food":      3.50,
		"shopping":  1.00,
		"total":     8.39,
	}
	for field, want := range wantValues {
		got, ok := data[field].(float64)
		if !ok || math.Abs(got-want) > 1e-9 {
			t.Errorf("%s = %v, want %v", field, data[field], want)
		}
	}
	if recordID, ok := data["recordId"].(float64); !ok || recordID != 1 {
		t.Errorf("recordId = %v, want 1", data["recordId"])
	}

	records, err := env.records.ListByUser(userID, "", "")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("persisted %d records, want 1", len(records))
	}
	if records[0].RecordDate != "2024-06-01" {
		t.Errorf("record date = %q, want 2024-06-01", records[0].RecordDate)
	}
}

func TestCalculateRejectsBadDate(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "baddate@example.com")

	body := map[string]interface{}{"recordDate": "June 1st"}
	w := env.do(t, http.MethodPost, "/api/v1/carbon/calculate", token, body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetTotalAndBreakdown(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "totals@example.com")

	for i := 0; i < 2; i++ {
		body := map[string]interface{}{
			"recordDate": "2024-06-01",
			"food":       map[string]int{"meatMeals": 1}, // 3.50 each
		}
		w := env.do(t, http.MethodPost, "/api/v1/carbon/calculate", token, body)
		if w.Code != http.StatusCreated {
			t.Fatalf("calculate status = %d", w.Code)
		}
	}

	w := env.do(t, http.MethodGet, "/api/v1/carbon/total?startDate=2024-06-01&endDate=2024-06-30", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("total status = %d", w.Code)
	}
	data := decodeData(t, w)
	if got := data["totalCarbon"].(float64); math.Abs(got-7.00) > 1e-9 {
		t.Errorf("totalCarbon = %v, want 7.00", got)
	}

	w = env.do(t, http.MethodGet, "/api/v1/carbon/breakdown?startDate=2024-06-01&endDate=2024-06-30", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("breakdown status = %d", w.Code)
	}
	data = decodeData(t, w)
	if got := data["total_food"].(float64); math.Abs(got-7.00) > 1e-9 {
		t.Errorf("total_food = %v, want 7.00", got)
	}
	if got := data["grand_total"].(float64); math.Abs(got-7.00) > 1e-9 {
		t.Errorf("grand_total = %v, want 7.00", got)
	}
	if got := data["total_transport"].(float64); got != 0 {
		t.Errorf("total_transport = %v, want 0", got)
	}
}

func TestGetRecordsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "records@example.com")

	for _, date := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		body := map[string]interface{}{"recordDate": date}
		if w := env.do(t, http.MethodPost, "/api/v1/carbon/calculate", token, body); w.Code != http.StatusCreated {
			t.Fatalf("calculate status = %d", w.Code)
		}
	}

	w := env.do(t, http.MethodGet, "/api/v1/carbon/records", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("records status = %d", w.Code)
	}

	var response struct {
		Data []models.CarbonRecord `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode records: %v", err)
	}
	want := []string{"2024-03-01", "2024-02-01", "2024-01-01"}
	if len(response.Data) != len(want) {
		t.Fatalf("got %d records, want %d", len(response.Data), len(want))
	}
	for i, record := range response.Data {
		if record.RecordDate != want[i] {
			t.Errorf("record %d date = %q, want %q", i, record.RecordDate, want[i])
		}
	}
}

func TestRecommendationsValidatesInput(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "advice@example.com")

	// Missing numeric fields is a validation error.
	w := env.do(t, http.MethodPost, "/api/v1/carbon/recommendations", token, map[string]interface{}{"total": 5.0})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRecommendationsFallsBackWithoutUpstream(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "advice2@example.com")

	body := map[string]float64{
		"total":     8.39,
		"transport": 2.10,
		"energy":    1.79,
		"food":      3.50,
		"shopping":  1.00,
	}
	w := env.do(t, http.MethodPost, "/api/v1/carbon/recommendations", token, body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	advice, ok := data["advice"].(string)
	if !ok || advice == "" {
		t.Errorf("advice is empty, want non-empty fallback text")
	}
}
