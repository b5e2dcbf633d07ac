package main

import (
	"context"
	"log"
	"time"

	"civicconnect-be/config"
	"civicconnect-be/models"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strptr(s string) *string { return &s }

// Wipes the issues collection and inserts a handful of sample reports.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	issues := db.Collection("issues")
	if err := models.EnsureIssueIndexes(issues); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := issues.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("failed to clear issues: %v", err)
	}

	now := time.Now()
	samples := []interface{}{
		models.Issue{
			ID:          primitive.NewObjectID(),
			Title:       "Pothole near Connaught Place",
			Description: "Large pothole causing traffic jams and potential accidents.",
			Category:    models.CategoryRoad,
			Severity:    models.SeverityUrgent,
			Department:  "Public Works Department",
			Status:      models.StatusOpen,
			PhotoURL:    strptr("https://picsum.photos/seed/pothole/800/500"),
			Upvotes:     5,
			Comments:    []models.Comment{},
			Location:    models.NewGeoPoint(77.216721, 28.632429),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		models.Issue{
			ID:          primitive.NewObjectID(),
			Title:       "Overflowing garbage bin in Bandra",
			Description: "Unhygienic condition with foul smell in the area.",
			Category:    models.CategoryWaste,
			Severity:    models.SeverityNonUrgent,
			Department:  "Solid Waste Management",
			Status:      models.StatusOpen,
			PhotoURL:    strptr("https://picsum.photos/seed/garbage/800/500"),
			Upvotes:     12,
			Comments:    []models.Comment{},
			Location:    models.NewGeoPoint(72.8296, 19.0596),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		models.Issue{
			ID:          primitive.NewObjectID(),
			Title:       "Streetlight not working in Koramangala 4th Block",
			Description: "Dark street, safety issue for pedestrians.",
			Category:    models.CategoryElectricity,
			Severity:    models.SeverityUrgent,
			Department:  "Electricity Board",
			Status:      models.StatusInProgress,
			PhotoURL:    strptr("https://picsum.photos/seed/streetlight/800/500"),
			Upvotes:     8,
			Comments:    []models.Comment{},
			Location:    models.NewGeoPoint(77.6229, 12.9352),
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	if _, err := issues.InsertMany(ctx, samples); err != nil {
		log.Fatalf("failed to insert samples: %v", err)
	}
	log.Printf("Inserted %d sample issues.", len(samples))
}
