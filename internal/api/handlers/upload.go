package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Rishikesh183/auction-tracker/internal/admin"
	"github.com/Rishikesh183/auction-tracker/internal/storage"
)

// UploadPlayerPhoto validates and stores a player photo, returning its public
// URL. POST /api/v1/auction/upload-photo (multipart: file, playerName)
func UploadPlayerPhoto(db *sqlx.DB, store *storage.SpacesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminUsername := c.GetString("admin_username")

		if store == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Photo storage is not configured"})
			return
		}

		fileHeader, err := c.FormFile("file")
		playerName := c.PostForm("playerName")
		if err != nil || playerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File and player name are required"})
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")

		// Reject bad type/size before opening the file or touching the bucket
		if err := storage.ValidatePhoto(contentType, fileHeader.Size); err != nil {
			respondError(c, err, "Failed to upload photo")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, err, "Failed to upload photo")
			return
		}
		defer file.Close()

		photoURL, err := store.UploadPlayerPhoto(c.Request.Context(), file, fileHeader.Size, contentType, playerName)
		if err != nil {
			admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/auction/upload-photo", "upload_photo", map[string]interface{}{"player": playerName}, false)
			respondError(c, err, "Failed to upload photo")
			return
		}

		admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/auction/upload-photo", "upload_photo", map[string]interface{}{"player": playerName, "url": photoURL}, true)
		respondSuccess(c, gin.H{"photoUrl": photoURL})
	}
}

// DeletePlayerPhoto removes a stored photo by its public URL.
// POST /api/v1/auction/delete-photo
func DeletePlayerPhoto(db *sqlx.DB, store *storage.SpacesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminUsername := c.GetString("admin_username")

		if store == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Photo storage is not configured"})
			return
		}

		var req struct {
			PhotoURL string `json:"photo_url"`
		}
		if err := c.BindJSON(&req); err != nil || req.PhotoURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Photo URL is required"})
			return
		}

		if err := store.DeletePlayerPhoto(c.Request.Context(), req.PhotoURL); err != nil {
			admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/auction/delete-photo", "delete_photo", map[string]interface{}{"url": req.PhotoURL}, false)
			respondError(c, err, "Failed to delete photo")
			return
		}

		admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/auction/delete-photo", "delete_photo", map[string]interface{}{"url": req.PhotoURL}, true)
		respondSuccess(c, gin.H{"deleted": true})
	}
}
