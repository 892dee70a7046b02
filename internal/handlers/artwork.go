package handlers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/database"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/models"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/internal/services"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/logger"
	"github.com/sasss77/Inskspira-A-digital-Art-Portfolio-Web--sub000/pkg/utils"
)

// viewDedupWindow is how long a repeat view by the same viewer is
// ignored for the view counter.
const viewDedupWindow = 24 * time.Hour

// ListArtworks handles GET /artworks. Only active artworks are listed;
// supports tag/artist/featured filters and latest|popular|trending
// sort orders.
func ListArtworks(c *gin.Context) {
	p := parsePagination(c)

	query := database.DB.Model(&models.Artwork{}).Where("status = ?", models.StatusActive)

	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		query = query.Where("? = ANY(tags)", tag)
	}
	if artist := c.Query("artist"); artist != "" {
		query = query.Where("artist_id = ?", artist)
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}

	sortParam := c.DefaultQuery("sort", "latest")
	if sortParam == "trending" {
		listTrendingArtworks(c, p)
		return
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to count artworks")
		respondServerError(c)
		return
	}

	order := "created_at DESC"
	if sortParam == "popular" {
		order = "like_count DESC, created_at DESC"
	}

	var artworks []models.Artwork
	if err := query.Preload("Artist").Order(order).Limit(p.Limit).Offset(p.Offset).Find(&artworks).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list artworks")
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"artworks":   artworks,
		"pagination": pageMeta(p, total),
	})
}

// listTrendingArtworks ranks the recent window by decayed engagement
// score. The ordered id list is cached briefly so the scoring pass is
// not repeated per page.
func listTrendingArtworks(c *gin.Context, p pageParams) {
	const cacheKey = "trending:artwork_ids"

	var ids []string
	if err := database.CacheGet(cacheKey, &ids); err != nil {
		var candidates []models.Artwork
		err := database.DB.
			Where("status = ? AND created_at > ?", models.StatusActive, time.Now().Add(-7*24*time.Hour)).
			Order("created_at DESC").
			Limit(500).
			Find(&candidates).Error
		if err != nil {
			logger.Error().Err(err).Msg("Failed to load trending candidates")
			respondServerError(c)
			return
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			si := services.TrendingScore(candidates[i].CreatedAt, candidates[i].LikeCount, candidates[i].CommentCount, candidates[i].ViewCount)
			sj := services.TrendingScore(candidates[j].CreatedAt, candidates[j].LikeCount, candidates[j].CommentCount, candidates[j].ViewCount)
			return si > sj
		})

		ids = make([]string, len(candidates))
		for i, a := range candidates {
			ids[i] = a.ID
		}
		database.CacheSet(cacheKey, ids, 5*time.Minute)
	}

	total := int64(len(ids))
	start := p.Offset
	if start > len(ids) {
		start = len(ids)
	}
	end := start + p.Limit
	if end > len(ids) {
		end = len(ids)
	}
	pageIDs := ids[start:end]

	var artworks []models.Artwork
	if len(pageIDs) > 0 {
		if err := database.DB.Preload("Artist").Where("id IN ? AND status = ?", pageIDs, models.StatusActive).Find(&artworks).Error; err != nil {
			logger.Error().Err(err).Msg("Failed to load trending page")
			respondServerError(c)
			return
		}
		// Restore score order lost by the IN query.
		byID := make(map[string]models.Artwork, len(artworks))
		for _, a := range artworks {
			byID[a.ID] = a
		}
		ordered := make([]models.Artwork, 0, len(pageIDs))
		for _, id := range pageIDs {
			if a, ok := byID[id]; ok {
				ordered = append(ordered, a)
			}
		}
		artworks = ordered
	}

	respondOK(c, http.StatusOK, "", gin.H{
		"artworks":   artworks,
		"pagination": pageMeta(p, total),
	})
}

// GetArtwork handles GET /artworks/:id. Non-active artworks are only
// visible to their owner or an admin. Views are counted once per
// viewer per dedup window.
func GetArtwork(c *gin.Context) {
	artworkID := c.Param("id")

	var artwork models.Artwork
	if err := database.DB.Preload("Artist").First(&artwork, "id = ?", artworkID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Artwork not found")
		return
	}

	userID, authed := currentUserID(c)
	if artwork.Status != models.StatusActive {
		isOwner := authed && userID == artwork.ArtistID
		if !isOwner && !currentRole(c).CanModerate() {
			respondError(c, http.StatusNotFound, "Artwork not found")
			return
		}
	}

	if artwork.Status == models.StatusActive {
		viewerKey := c.ClientIP()
		if authed {
			viewerKey = userID
		}
		if database.MarkViewed(viewerKey, artwork.ID, viewDedupWindow) {
			if err := database.DB.Model(&models.Artwork{}).Where("id = ?", artwork.ID).
				UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err == nil {
				artwork.ViewCount++
			}
		}
	}

	data := gin.H{"artwork": artwork}
	if authed {
		var likeCount, favCount int64
		database.DB.Model(&models.Like{}).Where("user_id = ? AND artwork_id = ?", userID, artwork.ID).Count(&likeCount)
		database.DB.Model(&models.Favorite{}).Where("user_id = ? AND artwork_id = ?", userID, artwork.ID).Count(&favCount)
		data["isLiked"] = likeCount > 0
		data["isFavorited"] = favCount > 0
	}

	respondOK(c, http.StatusOK, "", data)
}

// CreateArtwork handles POST /artworks (multipart). Route is gated to
// artist/admin roles.
func CreateArtwork(c *gin.Context) {
	userID, _ := currentUserID(c)

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		respondError(c, http.StatusBadRequest, "Title is required")
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Image file is required")
		return
	}

	imageURL, thumbURL, cleanup, err := storeArtworkImage(header)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	artwork := models.Artwork{
		ArtistID:    userID,
		Title:       utils.TruncateString(title, 200),
		Description: utils.SanitizeUserContent(c.PostForm("description")),
		ImageURL:    imageURL,
		ThumbURL:    thumbURL,
		Tags:        parseTags(c.PostForm("tags")),
		Status:      models.StatusActive,
	}

	if err := database.DB.Create(&artwork).Error; err != nil {
		// Keep disk and DB consistent: the stored files are orphans
		// once the insert fails.
		cleanup()
		logger.Error().Err(err).Msg("Failed to create artwork")
		respondServerError(c)
		return
	}

	logger.Info().Str("artwork_id", artwork.ID).Str("artist_id", userID).Msg("Artwork created")
	respondOK(c, http.StatusCreated, "Artwork uploaded", gin.H{"artwork": artwork})
}

func parseTags(raw string) pq.StringArray {
	var tags pq.StringArray
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(strings.ToLower(t))
		if t != "" && len(tags) < 10 {
			tags = append(tags, utils.TruncateString(t, 40))
		}
	}
	return tags
}

type UpdateArtworkInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}

// UpdateArtwork handles PUT /artworks/:id. Owner or admin only.
func UpdateArtwork(c *gin.Context) {
	userID, _ := currentUserID(c)

	var artwork models.Artwork
	if err := database.DB.First(&artwork, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Artwork not found")
		return
	}

	if artwork.ArtistID != userID && !currentRole(c).CanModerate() {
		respondError(c, http.StatusNotFound, "Artwork not found")
		return
	}

	var input UpdateArtworkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			respondError(c, http.StatusBadRequest, "Title cannot be empty")
			return
		}
		updates["title"] = utils.TruncateString(title, 200)
	}
	if input.Description != nil {
		updates["description"] = utils.SanitizeUserContent(*input.Description)
	}
	if input.Tags != nil {
		updates["tags"] = parseTags(strings.Join(input.Tags, ","))
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&artwork).Updates(updates).Error; err != nil {
			logger.Error().Err(err).Msg("Failed to update artwork")
			respondServerError(c)
			return
		}
	}

	respondOK(c, http.StatusOK, "Artwork updated", gin.H{"artwork": artwork})
}

// DeleteArtwork handles DELETE /artworks/:id. Soft delete: the row is
// kept with status=deleted.
func DeleteArtwork(c *gin.Context) {
	userID, _ := currentUserID(c)

	var artwork models.Artwork
	if err := database.DB.First(&artwork, "id = ?", c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "Artwork not found")
		return
	}

	if artwork.ArtistID != userID && !currentRole(c).CanModerate() {
		respondError(c, http.StatusNotFound, "Artwork not found")
		return
	}

	if err := database.DB.Model(&artwork).Update("status", models.StatusDeleted).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to delete artwork")
		respondServerError(c)
		return
	}

	respondOK(c, http.StatusOK, "Artwork deleted", nil)
}
