package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"taruvae/internal/usecase"
	"taruvae/pkg/errors"
	"taruvae/pkg/response"
)

type BlogHandler struct {
	blogUseCase *usecase.BlogUseCase
}

func NewBlogHandler(blogUseCase *usecase.BlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
	}
}

type blogPostRequest struct {
	Title     string `json:"title" validate:"required"`
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

func (h *BlogHandler) ListPublished(c echo.Context) error {
	return response.Success(c, h.blogUseCase.ListPublished(c.Request().Context()))
}

func (h *BlogHandler) ListAll(c echo.Context) error {
	return response.Success(c, h.blogUseCase.ListAll(c.Request().Context()))
}

func (h *BlogHandler) GetBySlug(c echo.Context) error {
	post, err := h.blogUseCase.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

func (h *BlogHandler) CreatePost(c echo.Context) error {
	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, res, err := h.blogUseCase.CreatePost(c.Request().Context(), usecase.BlogPostInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return respondCreated(c, post, res)
}

func (h *BlogHandler) UpdatePost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid post id", err))
	}

	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, res, err := h.blogUseCase.UpdatePost(c.Request().Context(), id, usecase.BlogPostInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return respondWrite(c, post, res)
}

func (h *BlogHandler) DeletePost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid post id", err))
	}

	res, err := h.blogUseCase.DeletePost(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return respondWrite(c, map[string]interface{}{"deleted": id}, res)
}
