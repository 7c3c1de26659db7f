package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studiofolio/internal/service"
)

type portfolioItemRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  *string `json:"description"`
	ImageURL     string  `json:"image_url" binding:"required"`
	ThumbnailURL *string `json:"thumbnail_url"`
	CategoryID   uint    `json:"category_id" binding:"required"`
	Featured     bool    `json:"featured"`
	SortOrder    int     `json:"sort_order"`
}

func (r portfolioItemRequest) toInput() service.PortfolioItemInput {
	return service.PortfolioItemInput{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		ThumbnailURL: r.ThumbnailURL,
		CategoryID:   r.CategoryID,
		Featured:     r.Featured,
		SortOrder:    r.SortOrder,
	}
}

type categoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

func (r categoryRequest) toInput() service.CategoryInput {
	return service.CategoryInput{Name: r.Name, Slug: r.Slug, Description: r.Description}
}

// ListPortfolio 返回作品列表，可按分类 slug 和精选标记过滤
func (a *API) ListPortfolio(c *gin.Context) {
	featured, err := parseBoolQuery(c, "featured")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := parseIntQuery(c, "limit", 0)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	items, err := a.portfolio.List(c.Request.Context(), service.PortfolioFilter{
		CategorySlug: strings.TrimSpace(c.Query("category")),
		Featured:     featured,
		Limit:        limit,
	})
	if err != nil {
		a.internalError(c, err, "failed to list portfolio items")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetPortfolioItem 返回单个作品，供后台编辑使用
func (a *API) GetPortfolioItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid portfolio item id")
		return
	}

	item, err := a.portfolio.Get(c.Request.Context(), id)
	if err != nil {
		a.portfolioError(c, err, "failed to load portfolio item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreatePortfolioItem 创建作品
func (a *API) CreatePortfolioItem(c *gin.Context) {
	var req portfolioItemRequest
	if !bindJSON(c, &req, "title, image_url and category_id are required") {
		return
	}

	item, err := a.portfolio.Create(c.Request.Context(), req.toInput())
	if err != nil {
		a.portfolioError(c, err, "failed to create portfolio item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": item.ID, "message": "Portfolio item created successfully"})
}

// UpdatePortfolioItem 更新作品
func (a *API) UpdatePortfolioItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid portfolio item id")
		return
	}

	var req portfolioItemRequest
	if !bindJSON(c, &req, "title, image_url and category_id are required") {
		return
	}

	if _, err := a.portfolio.Update(c.Request.Context(), id, req.toInput()); err != nil {
		a.portfolioError(c, err, "failed to update portfolio item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item updated successfully"})
}

// DeletePortfolioItem 删除作品
func (a *API) DeletePortfolioItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid portfolio item id")
		return
	}

	if err := a.portfolio.Delete(c.Request.Context(), id); err != nil {
		a.internalError(c, err, "failed to delete portfolio item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted successfully"})
}

// ListCategories 按名称返回全部分类
func (a *API) ListCategories(c *gin.Context) {
	categories, err := a.portfolio.ListCategories(c.Request.Context())
	if err != nil {
		a.internalError(c, err, "failed to list categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory 创建分类，未提供 slug 时根据名称生成
func (a *API) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req, "category name is required") {
		return
	}

	category, err := a.portfolio.CreateCategory(c.Request.Context(), req.toInput())
	if err != nil {
		a.portfolioError(c, err, "failed to create category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": category.ID, "message": "Category created successfully"})
}

// UpdateCategory 更新分类
func (a *API) UpdateCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	var req categoryRequest
	if !bindJSON(c, &req, "category name is required") {
		return
	}

	if _, err := a.portfolio.UpdateCategory(c.Request.Context(), id, req.toInput()); err != nil {
		a.portfolioError(c, err, "failed to update category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

// DeleteCategory 删除分类，关联的作品不再出现在列表中
func (a *API) DeleteCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := a.portfolio.DeleteCategory(c.Request.Context(), id); err != nil {
		a.internalError(c, err, "failed to delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

func (a *API) portfolioError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrPortfolioItemNotFound), errors.Is(err, service.ErrCategoryNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrCategorySlugTaken):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrCategoryNameMissing):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		a.internalError(c, err, fallback)
	}
}
