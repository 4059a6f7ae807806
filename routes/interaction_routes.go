package routes

import (
	"github.com/civic-lens/api-go/controllers"

	"github.com/gin-gonic/gin"
)

func SetupInteractionRoutes(public, protected *gin.RouterGroup, commentController *controllers.CommentController, reactionController *controllers.ReactionController) {
	// Reads are open; mutations need a principal.
	public.GET("/reports/:id/comments", commentController.GetComments)
	public.GET("/reports/:id/reactions", reactionController.GetReactions)

	protected.POST("/reports/:id/comments", commentController.AddComment)
	protected.PUT("/comments/:id", commentController.UpdateComment)
	protected.DELETE("/comments/:id", commentController.DeleteComment)

	protected.POST("/reports/:id/reaction", reactionController.React)
}
