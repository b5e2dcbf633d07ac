package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"civicconnect-be/middlewares"
	"civicconnect-be/models"
	"civicconnect-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fallback coordinates used when a submission carries no usable location.
const (
	fallbackLng = 77.2090
	fallbackLat = 28.6139
)

const listLimit = 200

// IssueController serves the issue endpoints over a single collection.
type IssueController struct {
	issues    *mongo.Collection
	uploadDir string
	log       zerolog.Logger
}

func NewIssueController(db *mongo.Database, uploadDir string, log zerolog.Logger) *IssueController {
	return &IssueController{
		issues:    db.Collection("issues"),
		uploadDir: uploadDir,
		log:       log,
	}
}

// CreateIssue handles a multipart submission: validates, classifies the text,
// stores an optional photo and persists the new issue.
func (ic *IssueController) CreateIssue(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if len(title) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title must be at least 3 characters"})
		return
	}
	description := c.PostForm("description")

	ai := utils.Classify(title, description)

	// A valid caller-supplied category overrides the classifier's pick.
	// Severity and department always come from the classifier; department
	// follows the classifier's own category even when overridden.
	category := ai.Category
	if raw := c.PostForm("category"); raw != "" {
		if !models.ValidCategory(raw) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		category = models.IssueCategory(raw)
	}

	lng := parseCoordinate(c.PostForm("lng"), fallbackLng)
	lat := parseCoordinate(c.PostForm("lat"), fallbackLat)

	var photoURL *string
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		path, err := utils.SavePhoto(ic.uploadDir, fh)
		if err != nil {
			ic.log.Error().Err(err).Msg("failed to store photo")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
			return
		}
		photoURL = &path
	}

	now := time.Now()
	issue := models.Issue{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Category:    category,
		Severity:    ai.Severity,
		Department:  ai.Department,
		Status:      models.StatusOpen,
		PhotoURL:    photoURL,
		Upvotes:     0,
		Comments:    []models.Comment{},
		Location:    models.NewGeoPoint(lng, lat),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if _, err := ic.issues.InsertOne(ctx, issue); err != nil {
		ic.log.Error().Err(err).Msg("failed to insert issue")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// GetAllIssues lists issues with optional equality filters and an optional
// geo-radius filter. Radius results come back nearest-first from the store;
// otherwise newest-first. The result window is hard-capped.
func (ic *IssueController) GetAllIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if severity := c.Query("severity"); severity != "" {
		filter["severity"] = severity
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	geo := false
	if lngStr, latStr := c.Query("lng"), c.Query("lat"); lngStr != "" && latStr != "" {
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		lat, errLat := strconv.ParseFloat(latStr, 64)
		if errLng == nil && errLat == nil {
			radiusKm, err := strconv.ParseFloat(c.Query("radiusKm"), 64)
			if err != nil || radiusKm <= 0 {
				radiusKm = 5
			}
			filter["location"] = bson.M{
				"$near": bson.M{
					"$geometry": bson.M{
						"type":        "Point",
						"coordinates": []float64{lng, lat},
					},
					"$maxDistance": radiusKm * 1000,
				},
			}
			geo = true
		}
	}

	findOptions := options.Find().SetLimit(listLimit)
	if !geo {
		findOptions.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}

	cursor, err := ic.issues.Find(ctx, filter, findOptions)
	if err != nil {
		ic.log.Error().Err(err).Msg("failed to query issues")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch issues"})
		return
	}
	defer cursor.Close(ctx)

	items := make([]models.Issue, 0)
	if err := cursor.All(ctx, &items); err != nil {
		ic.log.Error().Err(err).Msg("failed to decode issues")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch issues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetIssue retrieves a single issue by id.
func (ic *IssueController) GetIssue(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var issue models.Issue
	if err := ic.issues.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			ic.log.Error().Err(err).Msg("failed to fetch issue")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch issue"})
		}
		return
	}

	c.JSON(http.StatusOK, issue)
}

// UpvoteIssue increments the upvote counter by one. Repeated calls from the
// same client keep accumulating.
func (ic *IssueController) UpvoteIssue(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	update := bson.M{
		"$inc": bson.M{"upvotes": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	ic.findOneAndUpdate(c, issueID, update)
}

// CommentOnIssue appends one comment with a server-assigned timestamp.
func (ic *IssueController) CommentOnIssue(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var input struct {
		Text            string `json:"text"`
		UserUID         string `json:"userUid"`
		UserDisplayName string `json:"userDisplayName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text required"})
		return
	}

	comment := models.Comment{
		Text:            input.Text,
		UserUID:         input.UserUID,
		UserDisplayName: input.UserDisplayName,
		CreatedAt:       time.Now(),
	}

	// When the auth gate verified the caller, fill in missing author fields.
	if comment.UserUID == "" {
		if uid, ok := c.Get(middlewares.CtxUserUID); ok {
			comment.UserUID, _ = uid.(string)
		}
	}
	if comment.UserDisplayName == "" {
		if name, ok := c.Get(middlewares.CtxUserName); ok {
			comment.UserDisplayName, _ = name.(string)
		}
	}

	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	ic.findOneAndUpdate(c, issueID, update)
}

// UpdateIssueStatus replaces the status unconditionally; there is no
// transition graph, closed issues may reopen.
func (ic *IssueController) UpdateIssueStatus(c *gin.Context) {
	issueID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	update := bson.M{
		"$set": bson.M{
			"status":    models.IssueStatus(input.Status),
			"updatedAt": time.Now(),
		},
	}

	ic.findOneAndUpdate(c, issueID, update)
}

// findOneAndUpdate applies a single-document atomic update and responds with
// the updated issue, or 404 when the id does not exist.
func (ic *IssueController) findOneAndUpdate(c *gin.Context, issueID primitive.ObjectID, update bson.M) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var issue models.Issue
	err := ic.issues.FindOneAndUpdate(ctx, bson.M{"_id": issueID}, update, opts).Decode(&issue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			ic.log.Error().Err(err).Msg("failed to update issue")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		}
		return
	}

	c.JSON(http.StatusOK, issue)
}

func parseCoordinate(raw string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fallback
	}
	return v
}
