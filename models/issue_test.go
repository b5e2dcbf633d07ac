package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	for _, s := range []string{"road", "waste", "water", "electricity", "other"} {
		assert.True(t, ValidCategory(s), s)
	}
	for _, s := range []string{"", "Road", "sanitation", "roads"} {
		assert.False(t, ValidCategory(s), s)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"open", "in_progress", "closed"} {
		assert.True(t, ValidStatus(s), s)
	}
	for _, s := range []string{"", "pending", "Open", "in progress", "resolved"} {
		assert.False(t, ValidStatus(s), s)
	}
}

func TestValidSeverity(t *testing.T) {
	assert.True(t, ValidSeverity("urgent"))
	assert.True(t, ValidSeverity("non-urgent"))
	assert.False(t, ValidSeverity("critical"))
	assert.False(t, ValidSeverity(""))
}

func TestNewGeoPoint(t *testing.T) {
	p := NewGeoPoint(77.2090, 28.6139)
	assert.Equal(t, "Point", p.Type)
	// GeoJSON ordering is [longitude, latitude]
	assert.Equal(t, []float64{77.2090, 28.6139}, p.Coordinates)
}
