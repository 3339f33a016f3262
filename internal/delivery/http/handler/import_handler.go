package handler

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cooler-fleet-portal/internal/importer"
	"cooler-fleet-portal/internal/importjob"
	apperrors "cooler-fleet-portal/pkg/errors"
	"cooler-fleet-portal/pkg/utils"
)

const (
	defaultWaitSeconds = 60
	maxWaitSeconds     = 600
)

type ImportHandler struct {
	manager   *importjob.Manager
	imp       *importer.Importer
	schedules *importjob.ScheduleStore
	dropDir   string
}

func NewImportHandler(manager *importjob.Manager, imp *importer.Importer, schedules *importjob.ScheduleStore, dropDir string) *ImportHandler {
	return &ImportHandler{
		manager:   manager,
		imp:       imp,
		schedules: schedules,
		dropDir:   dropDir,
	}
}

func (h *ImportHandler) RegisterRoutes(router *gin.RouterGroup) {
	imports := router.Group("/import")
	{
		imports.POST("/start", h.StartImport)
		imports.GET("/status", h.GetStatus)
		imports.POST("/cancel", h.CancelImport)
		imports.GET("/wait", h.WaitImport)
		imports.POST("/upload", h.UploadFile)
		imports.GET("/schedules", h.ListSchedules)
		imports.POST("/schedules", h.AddSchedule)
		imports.DELETE("/schedules/:time", h.RemoveSchedule)
	}
}

type startImportRequest struct {
	RefreshViews *bool `json:"refresh_views"`
}

// StartImport launches a batch import over the drop directory.
func (h *ImportHandler) StartImport(c *gin.Context) {
	var req startImportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, apperrors.ErrInvalidInput.Error())
			return
		}
	}

	refreshViews := true
	if req.RefreshViews != nil {
		refreshViews = *req.RefreshViews
	}

	if !h.manager.Start(refreshViews) {
		utils.ErrorResponse(c, http.StatusConflict, apperrors.ErrImportRunning.Error())
		return
	}
	utils.SuccessResponse(c, http.StatusAccepted, h.manager.Status())
}

func (h *ImportHandler) GetStatus(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, h.manager.Status())
}

func (h *ImportHandler) CancelImport(c *gin.Context) {
	if !h.manager.Cancel() {
		utils.ErrorResponse(c, http.StatusBadRequest, apperrors.ErrImportNotRunning.Error())
		return
	}
	utils.SuccessResponse(c, http.StatusOK, h.manager.Status())
}

// WaitImport blocks until the running batch finishes or the timeout
// elapses, then reports the state either way.
func (h *ImportHandler) WaitImport(c *gin.Context) {
	seconds := defaultWaitSeconds
	if raw := c.Query("timeout"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "timeout must be a positive number of seconds")
			return
		}
		seconds = n
	}
	if seconds > maxWaitSeconds {
		seconds = maxWaitSeconds
	}

	snap := h.manager.Wait(time.Duration(seconds) * time.Second)
	utils.SuccessResponse(c, http.StatusOK, snap)
}

// UploadFile imports a single export file synchronously. The file is placed
// in the drop directory, imported, and removed on success.
func (h *ImportHandler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file field is required")
		return
	}

	name := utils.SanitizeFilename(file.Filename)
	if name == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid filename")
		return
	}

	ent, ok := importer.DetectEntity(name)
	if forced := c.PostForm("entity"); forced != "" {
		ent, ok = importer.EntityByName(forced)
		if !ok {
			utils.ErrorResponse(c, http.StatusBadRequest, "unknown entity: "+forced)
			return
		}
	}
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, apperrors.ErrUnrecognizedFile.Error())
		return
	}

	path := filepath.Join(h.dropDir, name)
	if err := c.SaveUploadedFile(file, path); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "could not save uploaded file")
		return
	}

	res, err := h.imp.ImportFileAs(c.Request.Context(), ent, path)
	if err != nil {
		utils.ErrorResponse(c, importErrorStatus(err), err.Error())
		return
	}
	_ = os.Remove(path)
	utils.SuccessResponse(c, http.StatusOK, res)
}

func importErrorStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrUnrecognizedFile),
		errors.Is(err, apperrors.ErrUnsupportedFormat),
		errors.Is(err, apperrors.ErrKeyColumnMissing),
		errors.Is(err, apperrors.ErrEmptyFile):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *ImportHandler) ListSchedules(c *gin.Context) {
	sched, err := h.schedules.Load()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.SuccessResponse(c, http.StatusOK, sched)
}

type addScheduleRequest struct {
	Time string `json:"time" binding:"required"`
}

func (h *ImportHandler) AddSchedule(c *gin.Context) {
	var req addScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, apperrors.ErrInvalidInput.Error())
		return
	}

	sched, err := h.schedules.Add(req.Time)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidSchedule) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, sched)
}

func (h *ImportHandler) RemoveSchedule(c *gin.Context) {
	sched, err := h.schedules.Remove(c.Param("time"))
	if err != nil {
		if errors.Is(err, apperrors.ErrScheduleNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.SuccessResponse(c, http.StatusOK, sched)
}
