package handlers

import (
	"context"

	"github.com/TickTockPlumbing/ticktock-backend/types"
)

// QuoteMailer defines the email dispatch operation the quote handler needs.
// Satisfied by services.QuoteMailer; tests substitute a fake.
type QuoteMailer interface {
	SendQuoteNotification(ctx context.Context, quote *types.QuoteRequest) (string, error)
}
