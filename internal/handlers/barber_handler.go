package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sebastian26-ui/barbershop-backend/internal/dto"
	"github.com/sebastian26-ui/barbershop-backend/internal/httperr"
	"github.com/sebastian26-ui/barbershop-backend/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

// --------- Requests ---------

type ReplaceOfferingsRequest struct {
	ServiceIDs []string `json:"serviceIds" binding:"required"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("active = ?", true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Failed to list barbers.")
		return
	}

	out := make([]dto.BarberSummary, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, dto.BarberSummary{
			ID:    b.ID,
			Name:  b.Name,
			Bio:   b.Bio,
			Phone: b.Phone,
		})
	}

	c.JSON(http.StatusOK, gin.H{"barbers": out})
}

func (h *BarberHandler) ListOfferings(c *gin.Context) {
	barberID := c.Param("id")

	var services []models.Service
	err := h.db.
		Joins("JOIN barber_services bs ON bs.service_id = services.id").
		Where("bs.barber_id = ?", barberID).
		Order("services.name ASC").
		Find(&services).Error
	if err != nil {
		httperr.Internal(c, "failed_to_list_offerings", "Failed to list offerings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ReplaceOfferings swaps the barber's whole offering set for the given
// service ids, matching how the dashboard saves the checklist.
func (h *BarberHandler) ReplaceOfferings(c *gin.Context) {
	barberID := c.Param("id")

	var req ReplaceOfferingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", barberID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var services []models.Service
	if len(req.ServiceIDs) > 0 {
		if err := h.db.Find(&services, "id IN ?", req.ServiceIDs).Error; err != nil {
			httperr.Internal(c, "failed_to_save_offerings", "Failed to save offerings.")
			return
		}
	}

	if err := h.db.Model(&barber).Association("Services").Replace(services); err != nil {
		httperr.Internal(c, "failed_to_save_offerings", "Failed to save offerings.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Services saved successfully",
	})
}
