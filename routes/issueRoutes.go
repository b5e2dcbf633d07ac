package routes

import (
	"civicconnect-be/controllers"
	"civicconnect-be/middlewares"
	"civicconnect-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.Engine, ic *controllers.IssueController, verifier utils.TokenVerifier, limiter *redis.Client, createLimit int) {
	issue := r.Group("/api/issues")
	{
		issue.POST("", middlewares.OptionalAuth(verifier), middlewares.SubmitRateLimiter(limiter, createLimit), ic.CreateIssue)
		issue.GET("", ic.GetAllIssues)
		issue.GET("/:id", ic.GetIssue)
		issue.POST("/:id/upvote", middlewares.OptionalAuth(verifier), ic.UpvoteIssue)
		issue.POST("/:id/comment", middlewares.OptionalAuth(verifier), ic.CommentOnIssue)
		issue.PATCH("/:id/status", middlewares.OptionalAuth(verifier), ic.UpdateIssueStatus)
	}
}
