package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sebastian26-ui/barbershop-backend/internal/httperr"
	"github.com/sebastian26-ui/barbershop-backend/internal/models"
	ucBooking "github.com/sebastian26-ui/barbershop-backend/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	db       *gorm.DB
	addUC    *ucBooking.AddWindow
	removeUC *ucBooking.RemoveWindow
}

func NewAvailabilityHandler(
	db *gorm.DB,
	addUC *ucBooking.AddWindow,
	removeUC *ucBooking.RemoveWindow,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:       db,
		addUC:    addUC,
		removeUC: removeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AddWindowRequest struct {
	DayOfWeek    *int    `json:"dayOfWeek"`
	SpecificDate *string `json:"specificDate"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	IsAvailable  *bool   `json:"isAvailable"`
}

// ======================================================
// LIST
// ======================================================

// List returns the barber's active windows, one-off dates first, then
// recurring days ordered by weekday and start time.
func (h *AvailabilityHandler) List(c *gin.Context) {
	barberID := c.Param("id")

	var windows []models.AvailabilityWindow
	err := h.db.
		Where("barber_id = ? AND active = ?", barberID, true).
		Order("COALESCE(specific_date, '9999-99-99') ASC, day_of_week ASC, start_time ASC").
		Find(&windows).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Failed to list availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": windows})
}

// ======================================================
// CREATE
// ======================================================

func (h *AvailabilityHandler) Create(c *gin.Context) {
	barberID := c.Param("id")

	var req AddWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	id, err := h.addUC.Execute(c.Request.Context(), ucBooking.AddWindowInput{
		BarberID:     barberID,
		DayOfWeek:    req.DayOfWeek,
		SpecificDate: req.SpecificDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Available:    available,
	})
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      id,
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	windowID := c.Param("id")

	if err := h.removeUC.Execute(c.Request.Context(), windowID); err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
