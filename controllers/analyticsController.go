package controllers

import (
	"context"
	"net/http"
	"time"

	"civicconnect-be/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnalyticsController serves the coarse dashboard counts.
type AnalyticsController struct {
	issues *mongo.Collection
	log    zerolog.Logger
}

func NewAnalyticsController(db *mongo.Database, log zerolog.Logger) *AnalyticsController {
	return &AnalyticsController{issues: db.Collection("issues"), log: log}
}

// GetStatusCounts returns issue counts grouped by status. Average resolution
// time is a known gap and is always reported as null.
func (ac *AnalyticsController) GetStatusCounts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	open, err := ac.issues.CountDocuments(ctx, bson.M{"status": models.StatusOpen})
	if err != nil {
		ac.fail(c, err)
		return
	}
	inProgress, err := ac.issues.CountDocuments(ctx, bson.M{"status": models.StatusInProgress})
	if err != nil {
		ac.fail(c, err)
		return
	}
	closed, err := ac.issues.CountDocuments(ctx, bson.M{"status": models.StatusClosed})
	if err != nil {
		ac.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"open":               open,
		"inProgress":         inProgress,
		"closed":             closed,
		"avgResolutionHours": nil,
	})
}

// GetCategoryBreakdown returns issue counts grouped by category.
func (ac *AnalyticsController) GetCategoryBreakdown(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{
			"$group": bson.M{
				"_id":   "$category",
				"count": bson.M{"$sum": 1},
			},
		},
		{
			"$project": bson.M{
				"name":  "$_id",
				"value": "$count",
				"_id":   0,
			},
		},
	}

	cursor, err := ac.issues.Aggregate(ctx, pipeline)
	if err != nil {
		ac.fail(c, err)
		return
	}
	defer cursor.Close(ctx)

	byCategory := make([]bson.M, 0)
	if err := cursor.All(ctx, &byCategory); err != nil {
		ac.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": byCategory})
}

func (ac *AnalyticsController) fail(c *gin.Context, err error) {
	ac.log.Error().Err(err).Msg("failed to compute analytics")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
}
