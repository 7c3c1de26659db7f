package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studiofolio/internal/service"
)

type blogPostRequest struct {
	Title            string  `json:"title" binding:"required"`
	Slug             string  `json:"slug"`
	Excerpt          *string `json:"excerpt"`
	Content          string  `json:"content" binding:"required"`
	ContentFormat    string  `json:"content_format"`
	FeaturedImageURL *string `json:"featured_image_url"`
	Published        bool    `json:"published"`
	MetaTitle        *string `json:"meta_title"`
	MetaDescription  *string `json:"meta_description"`
	MetaKeywords     *string `json:"meta_keywords"`
}

func (r blogPostRequest) toInput() service.BlogPostInput {
	return service.BlogPostInput{
		Title:            r.Title,
		Slug:             r.Slug,
		Excerpt:          r.Excerpt,
		Content:          r.Content,
		ContentFormat:    r.ContentFormat,
		FeaturedImageURL: r.FeaturedImageURL,
		Published:        r.Published,
		MetaTitle:        r.MetaTitle,
		MetaDescription:  r.MetaDescription,
		MetaKeywords:     r.MetaKeywords,
	}
}

// ListBlogPosts lists posts. Without a published filter drafts are included.
func (a *API) ListBlogPosts(c *gin.Context) {
	published, err := parseBoolQuery(c, "published")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := parseIntQuery(c, "limit", 0)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := a.blog.List(c.Request.Context(), service.BlogFilter{Published: published, Limit: limit})
	if err != nil {
		a.internalError(c, err, "failed to list blog posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetBlogPostBySlug returns a published post.
func (a *API) GetBlogPostBySlug(c *gin.Context) {
	post, err := a.blog.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		a.blogError(c, err, "failed to load blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetBlogPost returns any post by id for the admin editor.
func (a *API) GetBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid blog post id")
		return
	}

	post, err := a.blog.Get(c.Request.Context(), id)
	if err != nil {
		a.blogError(c, err, "failed to load blog post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (a *API) CreateBlogPost(c *gin.Context) {
	var req blogPostRequest
	if !bindJSON(c, &req, "title and content are required") {
		return
	}

	post, err := a.blog.Create(c.Request.Context(), req.toInput())
	if err != nil {
		a.blogError(c, err, "failed to create blog post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": post.ID, "message": "Blog post created successfully"})
}

func (a *API) UpdateBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid blog post id")
		return
	}

	var req blogPostRequest
	if !bindJSON(c, &req, "title and content are required") {
		return
	}

	if _, err := a.blog.Update(c.Request.Context(), id, req.toInput()); err != nil {
		a.blogError(c, err, "failed to update blog post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post updated successfully"})
}

func (a *API) DeleteBlogPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid blog post id")
		return
	}

	if err := a.blog.Delete(c.Request.Context(), id); err != nil {
		a.internalError(c, err, "failed to delete blog post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}

func (a *API) blogError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrBlogPostNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBlogSlugTaken):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrBlogSlugMissing), errors.Is(err, service.ErrContentFormatInvalid):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		a.internalError(c, err, fallback)
	}
}
