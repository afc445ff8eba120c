package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

func TestCheckRequired(t *testing.T) {
	tests := []struct {
		name  string
		rec   types.Record
		field string
	}{
		{
			name:  "experience without role",
			rec:   types.Experience{Company: "TCS", Period: types.Period{Start: "June 2024", End: "Present"}, Location: "Chennai"},
			field: "role",
		},
		{
			name:  "experience without period start",
			rec:   types.Experience{Role: "Engineer", Company: "TCS", Period: types.Period{End: "Present"}, Location: "Chennai"},
			field: "period.start",
		},
		{
			name:  "project without description",
			rec:   types.Project{Title: "Apparel Recommender"},
			field: "description",
		},
		{
			name: "project metric without value",
			rec: types.Project{
				Title:       "Apparel Recommender",
				Description: "ML-based recommendation engine",
				Metrics:     []types.Metric{{Name: "Accuracy"}},
			},
			field: "metrics[0].value",
		},
		{
			name:  "publication without venue",
			rec:   types.Publication{Title: "Paper", Identifier: "DOI: 10.1/x", Impact: "Cited"},
			field: "venue",
		},
		{
			name:  "certification without year",
			rec:   types.Certification{Title: "AWS Cloud Practitioner", Provider: "AWS"},
			field: "year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRequired(tt.rec, 3)
			require.Error(t, err)

			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.rec.Kind(), missing.Kind)
			assert.Equal(t, tt.field, missing.Field)
			assert.Equal(t, 3, missing.Index)
			assert.Contains(t, err.Error(), tt.field)
			assert.Contains(t, err.Error(), string(tt.rec.Kind()))
		})
	}
}

func TestCheckRequired_CompleteRecords(t *testing.T) {
	records := []types.Record{
		sampleExperience(),
		sampleProject(),
		types.Project{Title: "No metrics", Description: "Still valid"},
		types.Publication{Title: "Paper", Journal: "IJRASET", Identifier: "DOI: 10.1/x", Impact: "Cited"},
		types.Certification{Title: "AWS Cloud Practitioner", Provider: "AWS", Year: "2023"},
	}
	for _, rec := range records {
		assert.NoError(t, CheckRequired(rec, 0), "kind %s", rec.Kind())
	}
}

func TestCheckRequired_EmptyAchievementsAllowed(t *testing.T) {
	exp := sampleExperience()
	exp.Achievements = nil
	assert.NoError(t, CheckRequired(exp, 0))
}
