package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IssueCategory enum
type IssueCategory string

const (
	CategoryRoad        IssueCategory = "road"
	CategoryWaste       IssueCategory = "waste"
	CategoryWater       IssueCategory = "water"
	CategoryElectricity IssueCategory = "electricity"
	CategoryOther       IssueCategory = "other"
)

// IssueSeverity enum
type IssueSeverity string

const (
	SeverityUrgent    IssueSeverity = "urgent"
	SeverityNonUrgent IssueSeverity = "non-urgent"
)

// IssueStatus enum
type IssueStatus string

const (
	StatusOpen       IssueStatus = "open"
	StatusInProgress IssueStatus = "in_progress"
	StatusClosed     IssueStatus = "closed"
)

// ValidCategory reports whether s is one of the closed category values.
func ValidCategory(s string) bool {
	switch IssueCategory(s) {
	case CategoryRoad, CategoryWaste, CategoryWater, CategoryElectricity, CategoryOther:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the closed status values.
func ValidStatus(s string) bool {
	switch IssueStatus(s) {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// ValidSeverity reports whether s is one of the closed severity values.
func ValidSeverity(s string) bool {
	switch IssueSeverity(s) {
	case SeverityUrgent, SeverityNonUrgent:
		return true
	}
	return false
}

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Comment is one entry in an issue's append-only comment list.
type Comment struct {
	Text            string    `bson:"text" json:"text"`
	UserUID         string    `bson:"userUid,omitempty" json:"userUid,omitempty"`
	UserDisplayName string    `bson:"userDisplayName,omitempty" json:"userDisplayName,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// Issue represents a citizen-reported civic problem
type Issue struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    IssueCategory      `bson:"category" json:"category"`
	Severity    IssueSeverity      `bson:"severity" json:"severity"`
	Department  string             `bson:"department" json:"department"`
	Status      IssueStatus        `bson:"status" json:"status"`
	PhotoURL    *string            `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Upvotes     int64              `bson:"upvotes" json:"upvotes"`
	Comments    []Comment          `bson:"comments" json:"comments"`
	Location    GeoPoint           `bson:"location" json:"location"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EnsureIssueIndexes creates the 2dsphere index backing the radius query and
// the compound (category, severity, status) index backing the filtered list.
func EnsureIssueIndexes(collection *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "location", Value: "2dsphere"}},
		},
		{
			Keys: bson.D{
				{Key: "category", Value: 1},
				{Key: "severity", Value: 1},
				{Key: "status", Value: 1},
			},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
