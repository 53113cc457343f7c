package handler

import (
	"testing"

	"gallery-server/internal/db"
	galleryrepo "gallery-server/internal/modules/gallery/repo"
	modulerepo "gallery-server/internal/modules/image/repo"
	imageservice "gallery-server/internal/modules/image/service"
	"gallery-server/internal/storage"
	"gallery-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T, uid uint) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutils.SetupDB(t)
	blobs := storage.NewLocalBlobStore(t.TempDir(), "/uploads/")
	svc := imageservice.New(db.NewTransactor(gdb), galleryrepo.NewGalleryRepository(gdb), modulerepo.NewImageRepository(gdb), blobs)
	h := New(svc)

	r := gin.New()
	api := r.Group("/api/images", func(c *gin.Context) {
		if uid != 0 {
			c.Set("id", uid)
		}
		c.Next()
	})
	api.POST("/upload", h.UploadImages)
	api.DELETE("/deleteImage/:id", h.DeleteImage)
	api.POST("/moveImage/:id", h.MoveImage)
	api.POST("/copyImage/:id", h.CopyImage)
	api.GET("/gallery/:galleryId", h.ListGalleryImages)
	return r, gdb
}
