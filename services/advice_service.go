// File: /services/advice_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"carbontrack-api/config"
	"carbontrack-api/metrics"
	"carbontrack-api/models"
)

const defaultAdviceAPIURL = "https://api.anthropic.com/v1/messages"

// AdviceService asks an external model for reduction advice based on a
// computed emission result. The upstream call is best-effort: any failure
// (missing key, timeout, bad status) degrades to a locally built text, so
// callers always get a non-empty answer.
type AdviceService struct {
	apiKey string
	apiURL string
	client *http.Client
}

func NewAdviceService(cfg *config.Config) *AdviceService {
	return &AdviceService{
		apiKey: cfg.AnthropicAPIKey,
		apiURL: defaultAdviceAPIURL,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type adviceRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []adviceMessage `json:"messages"`
}

type adviceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type adviceResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// GetRecommendations returns advice text for the given result. It never
// returns an error; upstream failures are logged and replaced by the
// rule-based fallback.
func (as *AdviceService) GetRecommendations(result models.EmissionResult) string {
	advice, err := as.fetchRecommendations(result)
	if err != nil {
		log.Printf("advice service unavailable, using fallback: %v", err)
		metrics.AdviceFallbacksTotal.Inc()
		return FallbackAdvice(result)
	}
	return advice
}

func (as *AdviceService) fetchRecommendations(result models.EmissionResult) (string, error) {
	if as.apiKey == "" {
		return "", fmt.Errorf("advice API key is not configured")
	}

	prompt := fmt.Sprintf(
		"Daily carbon footprint: %.2f kg CO2. Breakdown: transport %.2f, energy %.2f, food %.2f, shopping %.2f. "+
			"Give 5-7 practical, actionable tips to reduce this footprint.",
		result.Total, result.Transport, result.Energy, result.Food, result.Shopping)

	body, err := json.Marshal(adviceRequest{
		Model:     "claude-3-5-sonnet-20241022",
		MaxTokens: 1000,
		Messages:  []adviceMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal advice request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, as.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build advice request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", as.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := as.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call advice API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advice API returned status %d", resp.StatusCode)
	}

	var parsed adviceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode advice response: %w", err)
	}
	if len(parsed.Content) == 0 || strings.TrimSpace(parsed.Content[0].Text) == "" {
		return "", fmt.Errorf("advice API returned empty content")
	}
	return parsed.Content[0].Text, nil
}

// FallbackAdvice builds a rule-based recommendation text from the
// breakdown when the external service cannot be reached.
func FallbackAdvice(result models.EmissionResult) string {
	tips := []string{}

	if result.Transport >= result.Energy && result.Transport >= result.Food && result.Transport >= result.Shopping && result.Transport > 0 {
		tips = append(tips, "Transport is your largest source. Swap short car trips for the train or bus; rail emits a fraction of the CO2 per km.")
	}
	if result.Transport > 5 {
		tips = append(tips, "Consider combining errands into fewer trips or carpooling to cut driving distance.")
	}
	if result.Energy > 2 {
		tips = append(tips, "Reduce heating and electricity hours: lower the thermostat by a degree and switch devices off standby.")
	}
	if result.Food > 3.5 {
		tips = append(tips, "Replacing one meat meal with a vegetarian one saves roughly 2.5 kg of CO2.")
	}
	if result.Shopping > 1 {
		tips = append(tips, "Buy fewer, longer-lasting goods; second-hand purchases carry a much smaller footprint.")
	}

	tips = append(tips, "Track your footprint daily; steady small reductions add up over a month.")

	header := fmt.Sprintf("Your daily footprint is %.2f kg CO2. Suggestions:", result.Total)
	return header + "\n- " + strings.Join(tips, "\n- ")
}
