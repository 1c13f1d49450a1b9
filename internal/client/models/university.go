// Package models defines the canonical client-side shapes for platform
// entities. API responses are normalized into these types at the API-client
// boundary; everything above works with one shape only.
package models

import "strings"

// University is a read-only projection from the catalog service.
type University struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	Country              string  `json:"country"`
	City                 string  `json:"city"`
	TuitionFee           float64 `json:"tuition_fee"`
	MinGPA               float64 `json:"min_gpa"`
	Ranking              int     `json:"ranking"`
	AcceptanceRate       float64 `json:"acceptance_rate"`
	Duration             string  `json:"duration"`
	ScholarshipAvailable bool    `json:"scholarship_available"`
	RecommendationScore  float64 `json:"recommendation_score"`
}

// Major is a study program offered by a university.
type Major struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FilterUniversities returns the subset of list whose name, country or city
// contains term, case-insensitively. An empty or blank term returns list
// unchanged. The input slice is never modified.
func FilterUniversities(list []University, term string) []University {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return list
	}

	filtered := make([]University, 0, len(list))
	for _, u := range list {
		if strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.Country), term) ||
			strings.Contains(strings.ToLower(u.City), term) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}
