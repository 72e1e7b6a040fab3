package http

import (
	"moviecatalog/catalog/internal/controller/comment"
	"moviecatalog/catalog/pkg/model"

	"github.com/gin-gonic/gin"
)

func (h *Handler) registerSocial(r gin.IRouter) {
	comments := r.Group("/comments")
	comments.GET("", h.instrument("comment_list"), h.listComments)
	comments.GET("/:movieId", h.instrument("comment_list_by_movie"), h.listMovieComments)
	comments.POST("", h.instrument("comment_create"), h.authenticate(false), h.createComment)
	comments.DELETE("/:movieId/:commentId", h.instrument("comment_delete"), h.authenticate(true), h.deleteComment)

	ratings := r.Group("/ratings")
	ratings.GET("", h.instrument("rating_list"), h.listRatings)
	ratings.GET("/:movieId", h.instrument("rating_get"), h.getRating)
	ratings.POST("", h.instrument("rating_put"), h.authenticate(false), h.putRating)
	ratings.POST("/anonymous-id", h.instrument("rating_anonymous_id"), h.anonymousID)
	r.GET("/user-ratings/:id", h.instrument("rating_user_list"), h.userRatings)
}

func (h *Handler) listComments(c *gin.Context) {
	res, err := h.ctrl.Comments.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"comments": res})
}

func (h *Handler) listMovieComments(c *gin.Context) {
	movieID, err := pathInt(c, "movieId")
	if err != nil {
		h.fail(c, err)
		return
	}
	res, err := h.ctrl.Comments.ListByMovie(c.Request.Context(), movieID)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"comments": res})
}

func (h *Handler) createComment(c *gin.Context) {
	var req comment.NewComment
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, err)
		return
	}
	res, err := h.ctrl.Comments.Create(c.Request.Context(), authUser(c), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"comment": res})
}

func (h *Handler) deleteComment(c *gin.Context) {
	movieID, err := pathInt(c, "movieId")
	if err != nil {
		h.fail(c, err)
		return
	}
	id := c.Param("commentId")
	if err := h.ctrl.Comments.Delete(c.Request.Context(), authUser(c), movieID, id); err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"id": id})
}

func (h *Handler) listRatings(c *gin.Context) {
	res, err := h.ctrl.Ratings.ListAggregated(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"ratings": res})
}

func (h *Handler) getRating(c *gin.Context) {
	movieID, err := pathInt(c, "movieId")
	if err != nil {
		h.fail(c, err)
		return
	}
	res, err := h.ctrl.Ratings.GetAggregatedRating(c.Request.Context(), movieID)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"rating": res})
}

func (h *Handler) putRating(c *gin.Context) {
	var r model.Rating
	if err := bindJSON(c, &r); err != nil {
		h.fail(c, err)
		return
	}
	res, err := h.ctrl.Ratings.PutRating(c.Request.Context(), authUser(c), &r)
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"rating": res})
}

func (h *Handler) anonymousID(c *gin.Context) {
	ok(c, gin.H{"userIdentifier": h.ctrl.Ratings.NewAnonymousID()})
}

func (h *Handler) userRatings(c *gin.Context) {
	res, err := h.ctrl.Ratings.UserRatings(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, gin.H{"ratings": res})
}
