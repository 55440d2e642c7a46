package api

import (
	"net/http"
	"strconv"

	"SurebetStats/internal/cache"
	"SurebetStats/internal/repository"
	"SurebetStats/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SheetHandler exposes the registration CRUD endpoints.
type SheetHandler struct {
	sheetService *service.SheetService
	logger       *logrus.Logger
}

// NewSheetHandler wires the registry service. rowCache is shared with the
// dashboard so registration changes invalidate cached rows.
func NewSheetHandler(db *gorm.DB, rowCache *cache.RowCache, logger *logrus.Logger) *SheetHandler {
	repo := repository.NewSheetRepository(db)
	return &SheetHandler{
		sheetService: service.NewSheetService(repo, rowCache, logger),
		logger:       logger,
	}
}

// ListSheets GET /api/sheets
func (h *SheetHandler) ListSheets(c *gin.Context) {
	sheets, err := h.sheetService.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sheets)
}

// CreateSheet POST /api/sheets
func (h *SheetHandler) CreateSheet(c *gin.Context) {
	var req service.CreateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	info, err := h.sheetService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, info)
}

// DeleteSheet DELETE /api/sheets/:id
func (h *SheetHandler) DeleteSheet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "id must be numeric")
		return
	}
	if err := h.sheetService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
