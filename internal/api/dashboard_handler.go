package api

import (
	"net/http"
	"strconv"
	"time"

	"SurebetStats/internal/cache"
	"SurebetStats/internal/interfaces"
	"SurebetStats/internal/repository"
	"SurebetStats/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardHandler exposes the statistics, export and cache maintenance
// endpoints.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *logrus.Logger
}

func NewDashboardHandler(db *gorm.DB, rowCache *cache.RowCache, fetcher interfaces.SheetFetcher, logger *logrus.Logger) *DashboardHandler {
	sheetRepo := repository.NewSheetRepository(db)
	logRepo := repository.NewFetchLogRepository(db)
	return &DashboardHandler{
		dashboardService: service.NewDashboardService(sheetRepo, logRepo, fetcher, rowCache, logger),
		logger:           logger,
	}
}

func statsFilter(c *gin.Context) service.StatsFilter {
	return service.StatsFilter{
		Operador: c.Query("operador"),
		From:     c.Query("from"),
		To:       c.Query("to"),
	}
}

// Overview GET /api/dashboard/overview?sheetDbId=&operador=&from=&to=
func (h *DashboardHandler) Overview(c *gin.Context) {
	raw := c.Query("sheetDbId")
	if raw == "" {
		badRequest(c, "sheetDbId is required")
		return
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		badRequest(c, "sheetDbId must be numeric")
		return
	}

	stats, hit, err := h.dashboardService.Overview(c.Request.Context(), id, statsFilter(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if hit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.JSON(http.StatusOK, stats)
}

// OverviewAll GET /api/dashboard/overview-all?operador=&from=&to=
func (h *DashboardHandler) OverviewAll(c *gin.Context) {
	stats, err := h.dashboardService.OverviewAll(c.Request.Context(), statsFilter(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RefreshSheets POST /api/dashboard/refresh-sheets
func (h *DashboardHandler) RefreshSheets(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Refresh())
}

// ListFetchLogs GET /api/fetch-logs?limit=
func (h *DashboardHandler) ListFetchLogs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		badRequest(c, "limit must be numeric")
		return
	}
	logs, err := h.dashboardService.ListFetchLogs(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// ExportXLSX GET /api/dashboard/export?sheetDbId=&operador=&from=&to=
// Without sheetDbId the export covers every registered sheet.
func (h *DashboardHandler) ExportXLSX(c *gin.Context) {
	filter := statsFilter(c)

	var (
		stats *service.Stats
		err   error
	)
	if raw := c.Query("sheetDbId"); raw != "" {
		id, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil {
			badRequest(c, "sheetDbId must be numeric")
			return
		}
		stats, _, err = h.dashboardService.Overview(c.Request.Context(), id, filter)
	} else {
		stats, err = h.dashboardService.OverviewAll(c.Request.Context(), filter)
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	f, err := service.BuildWorkbook(stats)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer f.Close()

	filename := "surebet-stats-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if _, err := f.WriteTo(c.Writer); err != nil {
		h.logger.WithError(err).Error("write workbook failed")
	}
}
