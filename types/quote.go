package types

import "strings"

// Default labels used when optional quote fields are absent.
const (
	DefaultService = "Not specified"
	DefaultUrgency = "Routine Service"
	DefaultSubject = "General Inquiry"
)

// QuoteRequest is a customer-submitted inquiry from the website quote form.
// It is transient: built from one HTTP request, rendered into a notification
// email, and discarded. Nothing is persisted.
type QuoteRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
	Service   string `json:"service,omitempty"`
	Urgency   string `json:"urgency,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Normalize trims surrounding whitespace from every field.
func (q *QuoteRequest) Normalize() {
	q.FirstName = strings.TrimSpace(q.FirstName)
	q.LastName = strings.TrimSpace(q.LastName)
	q.Email = strings.TrimSpace(q.Email)
	q.Phone = strings.TrimSpace(q.Phone)
	q.Address = strings.TrimSpace(q.Address)
	q.Service = strings.TrimSpace(q.Service)
	q.Urgency = strings.TrimSpace(q.Urgency)
	q.Message = strings.TrimSpace(q.Message)
}

// MissingRequired reports whether any of the required contact fields is empty.
func (q *QuoteRequest) MissingRequired() bool {
	return q.FirstName == "" || q.LastName == "" || q.Email == "" || q.Phone == ""
}

// FullName returns the customer's display name.
func (q *QuoteRequest) FullName() string {
	return q.FirstName + " " + q.LastName
}

// ServiceLabel returns the requested service, or the default label when absent.
func (q *QuoteRequest) ServiceLabel() string {
	if q.Service == "" {
		return DefaultService
	}
	return q.Service
}

// UrgencyLabel returns the requested urgency, or the default label when absent.
func (q *QuoteRequest) UrgencyLabel() string {
	if q.Urgency == "" {
		return DefaultUrgency
	}
	return q.Urgency
}

// Subject composes the notification email subject line.
func (q *QuoteRequest) Subject() string {
	service := q.Service
	if service == "" {
		service = DefaultSubject
	}
	return "New Quote Request: " + service + " - " + q.FullName()
}
