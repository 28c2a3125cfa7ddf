package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/mapleforkbistro/bistro-api/internal/domain/reservation"
	"github.com/mapleforkbistro/bistro-api/internal/httperr"
	"github.com/mapleforkbistro/bistro-api/internal/httpresp"
	ucReservation "github.com/mapleforkbistro/bistro-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC *ucReservation.CreateReservation
	listUC   *ucReservation.ListReservations
}

func NewReservationHandler(
	createUC *ucReservation.CreateReservation,
	listUC *ucReservation.ListReservations,
) *ReservationHandler {
	return &ReservationHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	GuestName       string    `json:"guestName" binding:"required"`
	GuestEmail      string    `json:"guestEmail" binding:"required"`
	GuestPhone      string    `json:"guestPhone" binding:"required"`
	PartySize       int       `json:"partySize" binding:"required"`
	ReservationDate time.Time `json:"reservationDate" binding:"required"`
	SpecialRequests string    `json:"specialRequests"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reservation payload.")
		return
	}

	_, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		PartySize:       req.PartySize,
		ReservationDate: req.ReservationDate,
		SpecialRequests: req.SpecialRequests,
	})

	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error_code": "validation_error",
				"message":    ve.Error(),
				"fields":     ve.Fields,
			})
			return
		}

		// Storage failure: the cause was already logged, callers only get
		// the retry suggestion.
		httperr.Internal(
			c,
			"failed_to_create_reservation",
			"Failed to create reservation. Please try again.",
		)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Reservation created successfully!",
	})
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	limit := ucReservation.DefaultLimit
	offset := ucReservation.DefaultOffset

	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			httperr.BadRequest(c, "invalid_limit", "limit must be a non-negative integer.")
			return
		}
		limit = v
	}

	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			httperr.BadRequest(c, "invalid_offset", "offset must be a non-negative integer.")
			return
		}
		offset = v
	}

	reservations := h.listUC.Execute(c.Request.Context(), limit, offset)

	httpresp.List(c, reservations)
}
