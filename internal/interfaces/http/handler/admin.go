package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobsboard/integration-bridge/internal/application/resend"
)

// AdminHandler exposes the administrative resend endpoints. They bulk-discover
// unregistered source records, or force-refresh explicitly named ones.
type AdminHandler struct {
	BaseHandler
	resend *resend.Service
	logger *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(resendService *resend.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		resend: resendService,
		logger: logger.Named("admin"),
	}
}

// RegisterRoutes registers admin routes
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/integration-admin")
	{
		admin.PUT("/resend-employers", h.ResendEmployers)
		admin.PUT("/resend-jobs", h.ResendJobs)
	}
}

// resendEmployersRequest is the body of PUT /integration-admin/resend-employers.
// An empty ID list requests discovery of every unregistered employer.
type resendEmployersRequest struct {
	EmployerIDs []string `json:"employerIds" binding:"omitempty,dive,required"`
	ForceUpdate bool     `json:"forceUpdate"`
}

// resendJobsRequest is the body of PUT /integration-admin/resend-jobs.
type resendJobsRequest struct {
	JobIDs      []string `json:"jobIds" binding:"omitempty,dive,required"`
	ForceUpdate bool     `json:"forceUpdate"`
}

// ResendEmployers handles PUT /integration-admin/resend-employers
func (h *AdminHandler) ResendEmployers(c *gin.Context) {
	var req resendEmployersRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	h.logger.Info("Employer resend requested",
		zap.Int("id_count", len(req.EmployerIDs)),
		zap.Bool("force_update", req.ForceUpdate),
	)

	result, err := h.resend.ResendEmployers(c.Request.Context(), req.EmployerIDs, req.ForceUpdate)
	if err != nil {
		h.logger.Error("Employer resend failed", zap.Error(err))
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ResendJobs handles PUT /integration-admin/resend-jobs
func (h *AdminHandler) ResendJobs(c *gin.Context) {
	var req resendJobsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	h.logger.Info("Job resend requested",
		zap.Int("id_count", len(req.JobIDs)),
		zap.Bool("force_update", req.ForceUpdate),
	)

	result, err := h.resend.ResendJobs(c.Request.Context(), req.JobIDs, req.ForceUpdate)
	if err != nil {
		h.logger.Error("Job resend failed", zap.Error(err))
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
