package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	reservationRepo "konoba/database/repository/reservation"
	"konoba/models"
	"konoba/utils"
)

// ListReservationsHandler returns all reservations, optionally filtered by
// date (?date=2026-09-12) or user (?user_id=...).
func ListReservationsHandler(repo reservationRepo.ReservationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			reservations []models.Reservation
			err          error
		)
		switch {
		case c.Query("date") != "":
			reservations, err = repo.GetByDate(c.Request.Context(), c.Query("date"))
		case c.Query("user_id") != "":
			reservations, err = repo.GetByUserID(c.Request.Context(), c.Query("user_id"))
		default:
			reservations, err = repo.GetAll(c.Request.Context())
		}
		if err != nil {
			utils.GetLogger().Error("Failed to list reservations", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reservations"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reservations": reservations, "count": len(reservations)})
	}
}

// GetReservationHandler fetches a single reservation by ID.
func GetReservationHandler(repo reservationRepo.ReservationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reservation, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.GetLogger().Error("Failed to fetch reservation",
				zap.String("id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reservation"})
			return
		}
		if reservation == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		c.JSON(http.StatusOK, reservation)
	}
}

// UpdateReservationStatusHandler sets a reservation's status (confirmed,
// cancelled, completed, no_show).
func UpdateReservationStatusHandler(repo reservationRepo.ReservationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		switch req.Status {
		case models.ReservationStatusConfirmed, models.ReservationStatusCancelled,
			models.ReservationStatusCompleted, models.ReservationStatusNoShow:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status value"})
			return
		}

		if err := repo.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
			utils.GetLogger().Error("Failed to update reservation status",
				zap.String("id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reservation"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DeleteReservationHandler removes a reservation permanently.
func DeleteReservationHandler(repo reservationRepo.ReservationRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
			utils.GetLogger().Error("Failed to delete reservation",
				zap.String("id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete reservation"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
