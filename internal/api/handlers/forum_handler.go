package handlers

import (
	"errors"
	"time"

	"mentorai/internal/dto"
	"mentorai/internal/models"
	"mentorai/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ForumHandler struct {
	forumService *service.ForumService
	logger       *zap.Logger
}

func NewForumHandler(forumService *service.ForumService, logger *zap.Logger) *ForumHandler {
	return &ForumHandler{
		forumService: forumService,
		logger:       logger,
	}
}

// CreatePost godoc
// @Summary Create a discussion post
// @Description Create a new forum post; the author earns XP and may earn a badge
// @Tags forum
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Post content"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/forum/posts [post]
func (h *ForumHandler) CreatePost(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Title == "" || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title and content are required"})
	}

	post, err := h.forumService.CreatePost(c.Context(), userID, req.Title, req.Content)
	if err != nil {
		h.logger.Error("Post creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Post creation failed"})
	}

	return c.Status(fiber.StatusCreated).JSON(newPostResponse(post))
}

// ListPosts godoc
// @Summary List discussion posts
// @Description List forum posts, newest first
// @Tags forum
// @Produce json
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.PostResponse
// @Security BearerAuth
// @Router /api/v1/forum/posts [get]
func (h *ForumHandler) ListPosts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	offset := c.QueryInt("offset")

	posts, err := h.forumService.ListPosts(c.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Post listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Post listing failed"})
	}

	resp := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		resp = append(resp, newPostResponse(post))
	}
	return c.JSON(resp)
}

// GetPost godoc
// @Summary Get a post with replies
// @Description Fetch one post and all of its replies in creation order
// @Tags forum
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.PostWithRepliesResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/forum/posts/{id} [get]
func (h *ForumHandler) GetPost(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post ID"})
	}

	post, replies, err := h.forumService.GetPost(c.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
		}
		h.logger.Error("Post lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Post lookup failed"})
	}

	resp := dto.PostWithRepliesResponse{
		PostResponse: newPostResponse(post),
		Replies:      make([]dto.ReplyResponse, 0, len(replies)),
	}
	for _, reply := range replies {
		resp.Replies = append(resp.Replies, newReplyResponse(reply))
	}
	return c.JSON(resp)
}

// UpdatePost godoc
// @Summary Update a post
// @Description Rewrite a post's title and content; author only
// @Tags forum
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.UpdatePostRequest true "New content"
// @Success 200 {object} dto.PostResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/forum/posts/{id} [put]
func (h *ForumHandler) UpdatePost(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post ID"})
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	post, err := h.forumService.UpdatePost(c.Context(), postID, userID, req.Title, req.Content)
	if err != nil {
		return h.forumError(c, err, "Post update failed")
	}
	return c.JSON(newPostResponse(post))
}

// DeletePost godoc
// @Summary Delete a post
// @Description Delete a post and its replies; author only
// @Tags forum
// @Produce json
// @Param id path string true "Post ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/forum/posts/{id} [delete]
func (h *ForumHandler) DeletePost(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post ID"})
	}

	if err := h.forumService.DeletePost(c.Context(), postID, userID); err != nil {
		return h.forumError(c, err, "Post deletion failed")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// VotePost godoc
// @Summary Upvote a post
// @Description Increment a post's upvote counter; the post author earns XP
// @Tags forum
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.VoteRequest true "Vote value"
// @Success 200 {object} map[string]int
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/forum/posts/{id}/vote [post]
func (h *ForumHandler) VotePost(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post ID"})
	}

	var req dto.VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Value != 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only upvotes (value 1) are supported"})
	}

	upvotes, err := h.forumService.UpvotePost(c.Context(), postID)
	if err != nil {
		return h.forumError(c, err, "Vote failed")
	}
	return c.JSON(fiber.Map{"upvotes": upvotes})
}

// CreateReply godoc
// @Summary Reply to a post
// @Description Add a reply under a post, optionally nested under another reply of the same post
// @Tags forum
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.CreateReplyRequest true "Reply content"
// @Success 201 {object} dto.ReplyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/forum/posts/{id}/replies [post]
func (h *ForumHandler) CreateReply(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid post ID"})
	}

	var req dto.CreateReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "content is required"})
	}

	var parentID *uuid.UUID
	if req.ParentReplyID != "" {
		parsed, err := uuid.Parse(req.ParentReplyID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid parent reply ID"})
		}
		parentID = &parsed
	}

	reply, err := h.forumService.CreateReply(c.Context(), postID, userID, parentID, req.Content)
	if err != nil {
		return h.forumError(c, err, "Reply creation failed")
	}
	return c.Status(fiber.StatusCreated).JSON(newReplyResponse(reply))
}

// DeleteReply godoc
// @Summary Delete a reply
// @Description Delete a single reply; author only
// @Tags forum
// @Produce json
// @Param id path string true "Reply ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/forum/replies/{id} [delete]
func (h *ForumHandler) DeleteReply(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	replyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid reply ID"})
	}

	if err := h.forumService.DeleteReply(c.Context(), replyID, userID); err != nil {
		return h.forumError(c, err, "Reply deletion failed")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ForumHandler) forumError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
	case errors.Is(err, service.ErrReplyNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reply not found"})
	case errors.Is(err, service.ErrNotAuthor):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only the author can do that"})
	case errors.Is(err, service.ErrInvalidParentReply):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parent reply does not belong to this post"})
	default:
		h.logger.Error(fallback, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
	}
}

func newPostResponse(post *models.ForumPost) dto.PostResponse {
	return dto.PostResponse{
		ID:        post.ID.String(),
		AuthorID:  post.AuthorID.String(),
		Title:     post.Title,
		Content:   post.Content,
		Upvotes:   post.Upvotes,
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
	}
}

func newReplyResponse(reply *models.ForumReply) dto.ReplyResponse {
	resp := dto.ReplyResponse{
		ID:        reply.ID.String(),
		PostID:    reply.PostID.String(),
		AuthorID:  reply.AuthorID.String(),
		Content:   reply.Content,
		Upvotes:   reply.Upvotes,
		CreatedAt: reply.CreatedAt.Format(time.RFC3339),
	}
	if reply.ParentReplyID != nil {
		resp.ParentReplyID = reply.ParentReplyID.String()
	}
	return resp
}
