// seed_demo.go — standalone script to seed a demo comparison session via the Vantage API.
//
// Usage:
//
//	go run scripts/seed_demo.go -api http://localhost:8700
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
)

type seedCriterion struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type createSessionRequest struct {
	Criteria     []seedCriterion `json:"criteria"`
	Alternatives []string        `json:"alternatives"`
}

type setScoreRequest struct {
	AlternativeID string  `json:"alternative_id"`
	CriterionID   string  `json:"criterion_id"`
	Value         float64 `json:"value"`
}

// Demo data: an ILS software comparison with priority-ordered success
// factors.
var demoCriteria = []seedCriterion{
	{ID: "framework-compliance", Label: "Compliance with ILS frameworks"},
	{ID: "customer-price", Label: "Price for customer"},
	{ID: "time-savings", Label: "Time savings"},
	{ID: "operational-scalability", Label: "Operational scalability"},
	{ID: "security-classification", Label: "Information security classification"},
	{ID: "automation-degree", Label: "Degree of automation"},
	{ID: "usability", Label: "Usability (UI/UX)"},
}

var demoAlternatives = []string{"vendor-a", "vendor-b", "vendor-c"}

// Scores per alternative, in demoCriteria order.
var demoScores = map[string][]float64{
	"vendor-a": {5, 3, 4, 4, 5, 4, 3},
	"vendor-b": {3, 4, 3, 3, 3, 2, 4},
	"vendor-c": {2, 5, 2, 3, 2, 3, 5},
}

func main() {
	apiURL := flag.String("api", "http://localhost:8700", "Vantage API base URL")
	flag.Parse()

	sessionID, err := createSession(*apiURL)
	if err != nil {
		log.Fatalf("create session: %v", err)
	}
	fmt.Printf("created session %s\n", sessionID)

	for alt, values := range demoScores {
		for i, v := range values {
			if err := setScore(*apiURL, sessionID, alt, demoCriteria[i].ID, v); err != nil {
				log.Fatalf("set score %s/%s: %v", alt, demoCriteria[i].ID, err)
			}
		}
	}

	fmt.Printf("seeded %d criteria, %d alternatives\n", len(demoCriteria), len(demoAlternatives))
	fmt.Printf("ranking: GET %s/api/v1/sessions/%s/ranking\n", *apiURL, sessionID)
}

func createSession(apiURL string) (string, error) {
	body, _ := json.Marshal(createSessionRequest{
		Criteria:     demoCriteria,
		Alternatives: demoAlternatives,
	})
	resp, err := http.Post(apiURL+"/api/v1/sessions", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var out struct {
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.SessionID, nil
}

func setScore(apiURL, sessionID, alt, crit string, value float64) error {
	body, _ := json.Marshal(setScoreRequest{
		AlternativeID: alt,
		CriterionID:   crit,
		Value:         value,
	})
	req, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("%s/api/v1/sessions/%s/scores", apiURL, sessionID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
