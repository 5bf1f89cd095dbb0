package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sebastian26-ui/barbershop-backend/internal/dto"
	"github.com/sebastian26-ui/barbershop-backend/internal/httperr"
	"github.com/sebastian26-ui/barbershop-backend/internal/httpresp"
	"github.com/sebastian26-ui/barbershop-backend/internal/models"
	ucBooking "github.com/sebastian26-ui/barbershop-backend/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	db       *gorm.DB
	createUC *ucBooking.CreateReservation
	statusUC *ucBooking.UpdateReservationStatus
	findUC   *ucBooking.FindAvailableBarbers
}

func NewReservationHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateReservation,
	statusUC *ucBooking.UpdateReservationStatus,
	findUC *ucBooking.FindAvailableBarbers,
) *ReservationHandler {
	return &ReservationHandler{
		db:       db,
		createUC: createUC,
		statusUC: statusUC,
		findUC:   findUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Required-field checks live in the use case so the error order matches
// the booking contract; binding stays tag-free on purpose.
type CreateReservationRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	ServiceID     string `json:"serviceId"`
	BarberID      string `json:"barberId"`
	StartTime     string `json:"startTime"`
	Notes         string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	view, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateReservationInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		ServiceID:     req.ServiceID,
		BarberID:      req.BarberID,
		StartTime:     req.StartTime,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"success":     true,
		"reservation": view,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	reservationID := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if err := h.statusUC.Execute(c.Request.Context(), reservationID, req.Status); err != nil {
		httperr.FromDomain(c, err)
		return
	}

	httpresp.OK(c, gin.H{"success": true})
}

// ======================================================
// LIST (BARBER DASHBOARD)
// ======================================================

func (h *ReservationHandler) ListForBarber(c *gin.Context) {
	barberID := c.Param("id")

	var reservations []models.Reservation
	err := h.db.
		Preload("Service").
		Where("barber_id = ?", barberID).
		Order("start_time DESC").
		Find(&reservations).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Failed to list reservations.")
		return
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, dto.ReservationListDTO{
			ID:            r.ID,
			CustomerName:  r.CustomerName,
			CustomerEmail: r.CustomerEmail,
			CustomerPhone: r.CustomerPhone,
			ServiceID:     r.ServiceID,
			ServiceName:   r.Service.Name,
			DurationMin:   r.Service.DurationMin,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			Status:        r.Status,
			Notes:         r.Notes,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// AVAILABLE BARBERS
// ======================================================

func (h *ReservationHandler) AvailableBarbers(c *gin.Context) {
	serviceID := c.Query("serviceId")
	dateTime := c.Query("dateTime")

	barbers, err := h.findUC.Execute(c.Request.Context(), serviceID, dateTime)
	if err != nil {
		httperr.FromDomain(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"barbers": barbers})
}
