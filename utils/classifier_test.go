package utils

import (
	"testing"

	"civicconnect-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCategories(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		desc     string
		category models.IssueCategory
	}{
		{"pothole", "Huge pothole on main avenue", "", models.CategoryRoad},
		{"sidewalk", "Broken sidewalk tiles", "near the school", models.CategoryRoad},
		{"garbage", "Garbage piling up", "dustbin overflowing for a week", models.CategoryWaste},
		{"sewage", "Sewage smell", "drain is backed up", models.CategoryWater},
		{"streetlight desc", "Dark corner", "the streetlight has been out for days", models.CategoryElectricity},
		{"no match", "Stray dogs in the park", "", models.CategoryOther},
		{"keyword in description only", "Something is wrong", "a water pipeline burst", models.CategoryWater},
		{"case insensitive", "POTHOLE", "", models.CategoryRoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.title, tt.desc)
			assert.Equal(t, tt.category, got.Category)
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// "street" (road) and "water" both appear; road is checked first.
	got := Classify("Water flooding the street", "")
	assert.Equal(t, models.CategoryRoad, got.Category)

	// waste beats water and electricity
	got = Classify("Trash blocking the drain near the power pole", "")
	assert.Equal(t, models.CategoryWaste, got.Category)
}

func TestClassifySeverityIndependent(t *testing.T) {
	// urgency keyword with no category keyword
	got := Classify("Fire in the park", "")
	assert.Equal(t, models.CategoryOther, got.Category)
	assert.Equal(t, models.SeverityUrgent, got.Severity)

	// category keyword with no urgency keyword
	got = Classify("Small pothole", "")
	assert.Equal(t, models.CategoryRoad, got.Category)
	assert.Equal(t, models.SeverityNonUrgent, got.Severity)

	// both
	got = Classify("Pothole caused an accident", "")
	assert.Equal(t, models.CategoryRoad, got.Category)
	assert.Equal(t, models.SeverityUrgent, got.Severity)

	// multi-word urgency keyword
	got = Classify("Exposed wire hanging from the pole", "")
	assert.Equal(t, models.CategoryElectricity, got.Category)
	assert.Equal(t, models.SeverityUrgent, got.Severity)
}

func TestClassifyEmptyInput(t *testing.T) {
	got := Classify("", "")
	assert.Equal(t, models.CategoryOther, got.Category)
	assert.Equal(t, models.SeverityNonUrgent, got.Severity)
	assert.Equal(t, "General Administration", got.Department)
}

func TestClassifyDepartmentTable(t *testing.T) {
	tests := []struct {
		title      string
		department string
	}{
		{"pothole", "Public Works Department"},
		{"garbage", "Solid Waste Management"},
		{"sewage", "Water Supply & Sewerage"},
		{"streetlight", "Electricity Board"},
		{"stray dogs", "General Administration"},
	}

	for _, tt := range tests {
		got := Classify(tt.title, "")
		assert.Equal(t, tt.department, got.Department, "title %q", tt.title)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	first := Classify("Streetlight sparking, danger", "exposed wire")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Classify("Streetlight sparking, danger", "exposed wire"))
	}
}
