// File: /services/advice_service_test.go
package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carbontrack-api/models"
)

func sampleEmissionResult() models.EmissionResult {
	return models.EmissionResult{
		Total:     8.39,
		Transport: 2.10,
		Energy:    1.79,
		Food:      3.50,
		Shopping:  1.00,
	}
}

func TestGetRecommendationsFromUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") == "" {
			t.Errorf("missing x-api-key header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"text":"Take the train more often."}]}`))
	}))
	defer upstream.Close()

	as := &AdviceService{
		apiKey: "test-key",
		apiURL: upstream.URL,
		client: &http.Client{Timeout: 5 * time.Second},
	}

	advice := as.GetRecommendations(sampleEmissionResult())
	if advice != "Take the train more often." {
		t.Errorf("advice = %q, want upstream text", advice)
	}
}

func TestGetRecommendationsFallsBackOnUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	as := &AdviceService{
		apiKey: "test-key",
		apiURL: upstream.URL,
		client: &http.Client{Timeout: 5 * time.Second},
	}

	advice := as.GetRecommendations(sampleEmissionResult())
	if advice == "" {
		t.Fatal("fallback advice is empty")
	}
	if !strings.Contains(advice, "8.39") {
		t.Errorf("fallback advice %q does not mention the total", advice)
	}
}

func TestGetRecommendationsFallsBackWithoutKey(t *testing.T) {
	as := &AdviceService{
		apiKey: "",
		apiURL: "http://127.0.0.1:0", // must never be called
		client: &http.Client{Timeout: time.Second},
	}

	advice := as.GetRecommendations(sampleEmissionResult())
	if advice == "" {
		t.Fatal("fallback advice is empty")
	}
}

func TestFallbackAdviceTargetsDominantCategory(t *testing.T) {
	result := models.EmissionResult{
		Total:     12.00,
		Transport: 8.00,
		Energy:    1.00,
		Food:      2.00,
		Shopping:  1.00,
	}
	advice := FallbackAdvice(result)
	if !strings.Contains(advice, "Transport is your largest source") {
		t.Errorf("advice %q does not flag transport as the largest source", advice)
	}

	// Even an all-zero footprint gets at least one generic tip.
	if FallbackAdvice(models.EmissionResult{}) == "" {
		t.Error("zero footprint advice is empty")
	}
}
