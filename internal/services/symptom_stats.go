package services

import (
	"sort"
	"strings"

	"github.com/terraincognita07/cradle/internal/models"
)

type SymptomFrequency struct {
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Count        int    `json:"count"`
	TotalPeriods int    `json:"total_periods"`
}

// SymptomFrequencies counts tags across entries, most frequent first.
// Tags differing only by case are merged under the first spelling seen.
func SymptomFrequencies(entries []models.PeriodEntry) []SymptomFrequency {
	if len(entries) == 0 {
		return []SymptomFrequency{}
	}

	iconByName := make(map[string]string)
	for _, symptom := range models.DefaultPeriodSymptoms() {
		iconByName[strings.ToLower(symptom.Name)] = symptom.Icon
	}

	counts := make(map[string]int)
	displayNames := make(map[string]string)
	for _, entry := range entries {
		for _, tag := range NormalizeSymptomTags(entry.Symptoms) {
			key := strings.ToLower(tag)
			if _, ok := displayNames[key]; !ok {
				displayNames[key] = tag
			}
			counts[key]++
		}
	}

	result := make([]SymptomFrequency, 0, len(counts))
	for key, count := range counts {
		icon, ok := iconByName[key]
		if !ok {
			icon = "✨"
		}
		result = append(result, SymptomFrequency{
			Name:         displayNames[key],
			Icon:         icon,
			Count:        count,
			TotalPeriods: len(entries),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count == result[j].Count {
			return result[i].Name < result[j].Name
		}
		return result[i].Count > result[j].Count
	})
	return result
}
