package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "reservation-gateway/internal/handler/dto/request"
	resdto "reservation-gateway/internal/handler/dto/response"
	"reservation-gateway/internal/handler/httperr"
	"reservation-gateway/internal/handler/middleware"
	"reservation-gateway/internal/pkg/errs"
	"reservation-gateway/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
}

func NewReservationHandler(reservationCommands commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
	}
}

// @Summary Create reservation
// @Description Run a reservation request through validation, risk verification and the transactional backend
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 200 {object} resdto.ReservationEnvelope
// @Failure 400 {object} resdto.ReservationEnvelope
// @Failure 403 {object} resdto.ReservationEnvelope
// @Failure 404 {object} resdto.ReservationEnvelope
// @Failure 409 {object} resdto.ReservationEnvelope
// @Failure 500 {object} resdto.ReservationEnvelope
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, resdto.CodeInvalidRequest, "Invalid request format", nil)
		return
	}

	in := req.ToInput(c.ClientIP(), c.GetHeader("Referer"))
	h.reserve(c, in)
}

// @Summary Create reservation on behalf of a visitor
// @Description Staff variant: authenticated, records who reserved, skips risk verification
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 200 {object} resdto.ReservationEnvelope
// @Failure 401 {object} map[string]any
// @Router /staff/reservations [post]
func (h *ReservationHandler) CreateByStaff(c *gin.Context) {
	staffName, ok := middleware.GetStaffName(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("staff identity missing from context"), resdto.CodeServerError, "", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, resdto.CodeInvalidRequest, "Invalid request format", nil)
		return
	}

	in := req.ToInput(c.ClientIP(), c.GetHeader("Referer"))
	in.SkipVerification = true
	in.ReservedBy = staffName
	h.reserve(c, in)
}

func (h *ReservationHandler) reserve(c *gin.Context, in commands.ReserveInput) {
	result, err := h.reservationCommands.Reserve(c.Request.Context(), in)
	if err != nil {
		var verr *commands.ValidationError
		switch {
		case errors.As(err, &verr):
			httperr.AbortWithError(c, http.StatusBadRequest, verr, resdto.CodeValidationFailed, "", verr.Fields)
		case errors.Is(err, commands.ErrBackendFailure):
			slog.Error("reservation backend unreachable",
				"request_id", middleware.GetRequestID(c),
				"stack", errs.ExtractStackLines(err, 5),
			)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, resdto.CodeServerError, "Reservation backend unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, resdto.CodeServerError, "", nil)
		}
		return
	}

	status, envelope := resdto.FromResult(result)
	c.JSON(status, envelope)
}
