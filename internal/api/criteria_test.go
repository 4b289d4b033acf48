package api

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestSetRanksEndpoint(t *testing.T) {
	e := newTestEnv(t)
	id := createSeededSession(t, e)

	w := e.do(t, "PUT", "/api/v1/sessions/"+id+"/criteria/ranks", SetRanksRequest{
		OrderedIDs: []string{"b", "a"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeSession(t, w)
	if resp.Criteria[0].ID != "b" || resp.Criteria[0].Rank != 1 {
		t.Errorf("expected b at rank 1, got %+v", resp.Criteria[0])
	}
	if resp.Criteria[1].ID != "a" || resp.Criteria[1].Rank != 2 {
		t.Errorf("expected a at rank 2, got %+v", resp.Criteria[1])
	}
}

func TestSetRanksRejectsBadPermutation(t *testing.T) {
	e := newTestEnv(t)
	id := createSeededSession(t, e)

	tests := []struct {
		name string
		ids  []string
	}{
		{"missing", []string{"a"}},
		{"unknown", []string{"a", "ghost"}},
		{"duplicate", []string{"a", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := e.do(t, "PUT", "/api/v1/sessions/"+id+"/criteria/ranks",
				SetRanksRequest{OrderedIDs: tt.ids})
			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected 422, got %d", w.Code)
			}
		})
	}
}

func TestAddCriterionEndpoint(t *testing.T) {
	e := newTestEnv(t)
	id := createSeededSession(t, e)

	w := e.do(t, "POST", "/api/v1/sessions/"+id+"/criteria", AddCriterionRequest{
		ID: "c", Label: "C", Rank: 3,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decodeSession(t, w)
	if len(resp.Criteria) != 3 {
		t.Fatalf("expected 3 criteria, got %d", len(resp.Criteria))
	}

	// Occupied rank is rejected.
	w = e.do(t, "POST", "/api/v1/sessions/"+id+"/criteria", AddCriterionRequest{
		ID: "d", Label: "D", Rank: 1,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for rank collision, got %d", w.Code)
	}
}

func TestRemoveCriterionCompactsAndDropsScores(t *testing.T) {
	e := newTestEnv(t)
	id := createSeededSession(t, e)
	for _, alt := range []string{"x", "y"} {
		setScore(t, e, id, alt, "a", 3)
		setScore(t, e, id, alt, "b", 3)
	}

	w := e.do(t, "DELETE", "/api/v1/sessions/"+id+"/criteria/a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeSession(t, w)
	if len(resp.Criteria) != 1 || resp.Criteria[0].ID != "b" || resp.Criteria[0].Rank != 1 {
		t.Errorf("expected b compacted to rank 1, got %+v", resp.Criteria)
	}

	// b is still fully scored, so the ranking works with the remaining
	// single criterion.
	w = e.do(t, "GET", "/api/v1/sessions/"+id+"/ranking", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 after removal, got %d: %s", w.Code, w.Body.String())
	}
	var ranking RankingResponse
	if err := json.NewDecoder(w.Body).Decode(&ranking); err != nil {
		t.Fatalf("decode ranking: %v", err)
	}
	for _, row := range ranking.Results {
		if row.Composite != 3.0 {
			t.Errorf("%s: expected composite 3.0, got %f", row.AlternativeID, row.Composite)
		}
	}
}

func TestRemoveUnknownCriterion(t *testing.T) {
	e := newTestEnv(t)
	id := createSeededSession(t, e)

	w := e.do(t, "DELETE", "/api/v1/sessions/"+id+"/criteria/ghost", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
