package handlers

import (
	"net/http"

	apperrors "github.com/TickTockPlumbing/ticktock-backend/errors"
	"github.com/TickTockPlumbing/ticktock-backend/logger"
	"github.com/TickTockPlumbing/ticktock-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// QuoteHandler accepts quote-request submissions from the website form,
// re-validates them server-side, and hands them to the mailer. Validation
// here is authoritative: a direct API call bypassing the browser client is
// held to the same rules.
type QuoteHandler struct {
	mailer   QuoteMailer
	validate *validator.Validate
}

func NewQuoteHandler(mailer QuoteMailer) *QuoteHandler {
	return &QuoteHandler{
		mailer:   mailer,
		validate: validator.New(),
	}
}

// SendQuote handles POST /api/send-quote.
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	var quote types.QuoteRequest
	if err := c.ShouldBindJSON(&quote); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Missing required fields", err.Error()))
		return
	}

	quote.Normalize()

	if quote.MissingRequired() {
		_ = c.Error(apperrors.MissingFields())
		return
	}

	if err := h.validate.Var(quote.Email, "email"); err != nil {
		_ = c.Error(apperrors.InvalidEmail(quote.Email + " is not a valid address"))
		return
	}

	messageID, err := h.mailer.SendQuoteNotification(c.Request.Context(), &quote)
	if err != nil {
		_ = c.Error(apperrors.DeliveryFailed(err))
		return
	}

	logger.GetLogger().Infow("Quote request processed",
		"message_id", messageID,
		"service", quote.ServiceLabel())

	c.JSON(http.StatusOK, types.SuccessResponse("Quote request sent successfully"))
}

// MethodNotAllowed responds to any verb the router has no handler for.
// The body is never inspected.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, types.ErrorResponse("Method not allowed"))
}
