package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/TickTockPlumbing/ticktock-backend/config"
	"github.com/TickTockPlumbing/ticktock-backend/logger"
	"github.com/TickTockPlumbing/ticktock-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
)

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// QuoteMailer renders quote-request notification emails and delivers them
// through Resend to the business intake mailbox. It holds no per-request state.
type QuoteMailer struct {
	config    *config.EmailConfig
	recipient string
	client    *resend.Client
	metrics   *EmailMetrics
	tmpl      *template.Template
}

func NewQuoteMailer(emailCfg *config.EmailConfig, quoteCfg *config.QuoteConfig) *QuoteMailer {
	return NewQuoteMailerWithRegistry(emailCfg, quoteCfg, prometheus.DefaultRegisterer)
}

func NewQuoteMailerWithRegistry(emailCfg *config.EmailConfig, quoteCfg *config.QuoteConfig, reg prometheus.Registerer) *QuoteMailer {
	logger.GetLogger().Infow("Initializing quote mailer",
		"from", emailCfg.FromAddress,
		"recipient", logger.MaskEmail(quoteCfg.RecipientAddress),
		"apikey", logger.MaskSensitiveString(emailCfg.ResendAPIKey, 3, 2))

	client := resend.NewClient(emailCfg.ResendAPIKey)
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ticktock_email_send_duration_seconds",
			Help:    "Time taken to send quote notification emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ticktock_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ticktock_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &QuoteMailer{
		config:    emailCfg,
		recipient: quoteCfg.RecipientAddress,
		client:    client,
		metrics:   metrics,
		tmpl:      template.Must(template.New("quote").Parse(quoteEmailTemplate)),
	}
}

// SendQuoteNotification renders the notification email for one quote request
// and delivers it. The reply-to address is the customer's own email, so the
// business can answer them directly from its inbox.
func (s *QuoteMailer) SendQuoteNotification(ctx context.Context, quote *types.QuoteRequest) (string, error) {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	var htmlContent bytes.Buffer
	if err := s.tmpl.Execute(&htmlContent, quoteTemplateData(quote)); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to render quote email", "error", err)
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      []string{s.recipient},
		ReplyTo: quote.Email,
		Subject: quote.Subject(),
		Html:    htmlContent.String(),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send quote notification",
			"error", err,
			"customer", logger.MaskEmail(quote.Email),
			"subject", params.Subject)
		return "", err
	}

	s.metrics.sentCount.Inc()
	log.Infow("Quote notification sent",
		"message_id", sent.Id,
		"customer", logger.MaskEmail(quote.Email),
		"subject", params.Subject)

	return sent.Id, nil
}

// quoteTemplateData flattens a QuoteRequest for the email template,
// applying the default labels for absent optional fields.
func quoteTemplateData(q *types.QuoteRequest) map[string]string {
	return map[string]string{
		"FirstName": q.FirstName,
		"LastName":  q.LastName,
		"Email":     q.Email,
		"Phone":     q.Phone,
		"Address":   q.Address,
		"Service":   q.ServiceLabel(),
		"Urgency":   q.UrgencyLabel(),
		"Message":   q.Message,
	}
}

// Template constant. html/template escapes every interpolated field, so
// customer-supplied text cannot inject markup into the notification email.
const quoteEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #7E8A6D; border-bottom: 2px solid #7E8A6D; padding-bottom: 10px;">
        New Quote Request from TickTock Plumbing Website
    </h2>

    <div style="background-color: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="color: #333; margin-top: 0;">Customer Information</h3>
        <p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
        <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
        <p><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
        {{if .Address}}<p><strong>Address:</strong> {{.Address}}</p>{{end}}
    </div>

    <div style="background-color: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="color: #333; margin-top: 0;">Service Details</h3>
        <p><strong>Service Needed:</strong> {{.Service}}</p>
        <p><strong>Urgency:</strong> {{.Urgency}}</p>
    </div>

    {{if .Message}}
    <div style="background-color: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="color: #333; margin-top: 0;">Message</h3>
        <p>{{.Message}}</p>
    </div>
    {{end}}

    <div style="margin-top: 30px; padding: 15px; background-color: #7E8A6D; color: white; border-radius: 8px; text-align: center;">
        <p style="margin: 0;">Reply directly to this email or call the customer at <strong>{{.Phone}}</strong></p>
    </div>

    <p style="color: #666; font-size: 12px; margin-top: 20px; text-align: center;">
        This email was sent from the TickTock Plumbing website contact form.
    </p>
</div>`
