package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/middleware"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// respondOK writes the standard success envelope.
func respondOK(c *gin.Context, status int, message string, data gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondError writes the standard failure envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func respondServerError(c *gin.Context) {
	respondError(c, http.StatusInternalServerError, "Internal server error")
}

// pageParams holds the parsed pagination query.
type pageParams struct {
	Page   int
	Limit  int
	Offset int
}

// parsePagination reads 1-indexed page and limit query params with the
// standard defaults and cap.
func parsePagination(c *gin.Context) pageParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if err != nil || limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return pageParams{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// pageMeta builds the pagination envelope from a total row count.
func pageMeta(p pageParams, totalItems int64) gin.H {
	totalPages := int((totalItems + int64(p.Limit) - 1) / int64(p.Limit))
	return gin.H{
		"currentPage": p.Page,
		"totalPages":  totalPages,
		"totalItems":  totalItems,
		"hasMore":     p.Page < totalPages,
	}
}

// currentUserID returns the authenticated user's id; ok is false on
// anonymous requests.
func currentUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return "", false
	}
	return id.(string), true
}

// currentRole returns the authenticated user's role, defaulting to
// viewer for anonymous requests.
func currentRole(c *gin.Context) models.Role {
	role, exists := c.Get(middleware.ContextRole)
	if !exists {
		return models.RoleViewer
	}
	return role.(models.Role)
}
