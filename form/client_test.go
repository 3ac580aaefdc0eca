package form

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendQuoteSuccess(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/send-quote", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Quote request sent successfully",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithHTTPClient(server.Client()))
	message, err := client.SendQuote(context.Background(), map[string]string{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@x.com",
		"phone":     "305-555-1234",
	})

	require.NoError(t, err)
	assert.Equal(t, "Quote request sent successfully", message)
	assert.Equal(t, "Jane", received["firstName"])
}

func TestSendQuoteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Missing required fields",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SendQuote(context.Background(), map[string]string{"firstName": "Jane"})

	require.Error(t, err)
	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, http.StatusBadRequest, submitErr.StatusCode)
	assert.Equal(t, "Missing required fields", submitErr.Message)
}

func TestSendQuoteServerErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SendQuote(context.Background(), map[string]string{})

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, defaultSubmitError, submitErr.Message)
}

func TestSendQuoteNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL)
	_, err := client.SendQuote(context.Background(), map[string]string{})

	require.Error(t, err)
	var submitErr *SubmitError
	assert.False(t, errors.As(err, &submitErr), "transport errors are not SubmitErrors")
}
