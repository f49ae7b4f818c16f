package laborcost

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	laborcosterrors "go-siteops/internal/laborcost/errors"
	"go-siteops/internal/shared/apperror"
	"go-siteops/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("laborcost.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("laborcost.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("labor cost request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLaborRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CreateFromAttendance(c *gin.Context) {
	var req FromAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.CreateFromAttendance(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GeneratePeriod(c *gin.Context) {
	var req GeneratePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	period, record, err := h.service.GeneratePeriod(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"period": period,
		"record": record,
	}, nil)
}

// AttendancePreview prices a day without creating a record, so supervisors
// can inspect the split before committing payroll.
func (h *Handler) AttendancePreview(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		h.writeServiceError(c, apperror.RequiredField("employee_id"))
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		h.writeServiceError(c, laborcosterrors.ErrInvalidDate)
		return
	}

	var siteID *string
	if v := c.Query("site_id"); v != "" {
		siteID = &v
	}
	progressive := c.DefaultQuery("progressive", "true") != "false"

	resp, err := h.service.PreviewAttendance(c.Request.Context(), employeeID, date, siteID, progressive)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	filter := RecordFilter{
		EmployeeID:  c.Query("employee_id"),
		SiteID:      c.Query("site_id"),
		PaymentType: c.Query("payment_type"),
		Status:      c.Query("status"),
	}

	resp, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	h.updateStatus(c, h.service.Approve)
}

func (h *Handler) Pay(c *gin.Context) {
	h.updateStatus(c, h.service.Pay)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.updateStatus(c, h.service.Cancel)
}

func (h *Handler) updateStatus(
	c *gin.Context,
	op func(ctx context.Context, id string, req UpdateStatusRequest) (LaborRecordResponse, error),
) {
	var req UpdateStatusRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
			return
		}
	}

	resp, err := op(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetYTD(c *gin.Context) {
	employeeID := c.Param("id")

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().UTC().Year())))
	if err != nil || year < 2000 {
		h.writeServiceError(c, apperror.InvalidField("year"))
		return
	}

	resp, err := h.service.GetYTD(c.Request.Context(), employeeID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPaymentTypeStats(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().UTC().Year())))
	if err != nil || year < 2000 {
		h.writeServiceError(c, apperror.InvalidField("year"))
		return
	}

	resp, err := h.service.GetPaymentTypeStats(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
