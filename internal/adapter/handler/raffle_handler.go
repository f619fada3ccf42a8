package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sorteix/rifa-engine/internal/core/domain"
	"github.com/sorteix/rifa-engine/internal/core/services"
)

type RaffleHandler struct {
	svc *services.RaffleService
}

func NewRaffleHandler(svc *services.RaffleService) *RaffleHandler {
	return &RaffleHandler{svc: svc}
}

func (h *RaffleHandler) RegisterRoutes(r *gin.Engine) {
	raffles := r.Group("/raffles")
	raffles.POST("", h.CreateRaffle)
	raffles.GET("", h.ListRaffles)
	raffles.GET("/:id", h.GetRaffle)
	raffles.PATCH("/:id/status", h.UpdateRaffleStatus)
	raffles.POST("/:id/numbers/select", h.SelectNumbers)
	raffles.POST("/:id/reservations", h.ReserveNumbers)
	raffles.DELETE("/:id/reservations/:reservationId", h.ReleaseReservation)
	raffles.POST("/:id/payments/confirm", h.ConfirmPayment)
	raffles.GET("/:id/report", h.GetSalesReport)
	raffles.GET("/:id/holders/:holderId/numbers", h.GetHolderNumbers)

	r.POST("/sweep", h.Sweep)
}

type raffleResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	TotalNumbers int     `json:"total_numbers"`
	TicketPrice  float64 `json:"ticket_price"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

func toRaffleResponse(r *domain.Raffle) raffleResponse {
	return raffleResponse{
		ID:           r.ID.String(),
		Title:        r.Title,
		TotalNumbers: r.TotalNumbers,
		TicketPrice:  r.TicketPrice,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}

func (h *RaffleHandler) CreateRaffle(c *gin.Context) {
	var req services.CreateRaffleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	raffle, err := h.svc.CreateRaffle(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toRaffleResponse(raffle))
}

func (h *RaffleHandler) ListRaffles(c *gin.Context) {
	raffles, err := h.svc.ListRaffles(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]raffleResponse, 0, len(raffles))
	for i := range raffles {
		resp = append(resp, toRaffleResponse(&raffles[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RaffleHandler) GetRaffle(c *gin.Context) {
	raffle, err := h.svc.GetRaffle(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRaffleResponse(raffle))
}

func (h *RaffleHandler) UpdateRaffleStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	if err := h.svc.UpdateRaffleStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RaffleHandler) SelectNumbers(c *gin.Context) {
	var req services.SelectNumbersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	numbers, err := h.svc.SelectNumbers(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"numbers": numbers})
}

func (h *RaffleHandler) ReserveNumbers(c *gin.Context) {
	var req services.ReserveNumbersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	resp, err := h.svc.ReserveNumbers(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *RaffleHandler) ReleaseReservation(c *gin.Context) {
	holderID := c.Query("holder_id")

	released, err := h.svc.ReleaseReservation(c.Request.Context(), c.Param("id"), holderID, c.Param("reservationId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"released": released})
}

func (h *RaffleHandler) ConfirmPayment(c *gin.Context) {
	var req services.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}

	if err := h.svc.ConfirmPayment(c.Request.Context(), c.Param("id"), req); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}

func (h *RaffleHandler) GetSalesReport(c *gin.Context) {
	report, err := h.svc.GetSalesReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *RaffleHandler) GetHolderNumbers(c *gin.Context) {
	numbers, err := h.svc.GetHolderNumbers(c.Request.Context(), c.Param("id"), c.Param("holderId"))
	if err != nil {
		writeError(c, err)
		return
	}

	if numbers == nil {
		numbers = []int{}
	}
	c.JSON(http.StatusOK, gin.H{"numbers": numbers})
}

func (h *RaffleHandler) Sweep(c *gin.Context) {
	released, err := h.svc.ReleaseExpired(c.Request.Context(), c.Query("raffle_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"released": released})
}

func writeError(c *gin.Context, err error) {
	var unavailable *domain.NumberUnavailableError

	switch {
	case errors.As(err, &unavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error":       "numbers not available",
			"unavailable": unavailable.Numbers,
		})
	case errors.Is(err, domain.ErrInsufficientInventory):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrReservationMismatch):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrReservationExpired):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRaffleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRaffleNotSellable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
