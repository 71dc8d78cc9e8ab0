package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/charshithreddy3/basic-finance-calculator/internal/finance"
	"github.com/charshithreddy3/basic-finance-calculator/internal/store"
)

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	input, err := parseQuoteInput(r)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.writeJSON(w, http.StatusOK, finance.Calculate(input))
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.quotes.List())
}

func (s *server) handleQuoteCreate(w http.ResponseWriter, r *http.Request) {
	var record store.SavedQuote
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := s.quotes.Create(record)
	if err != nil {
		s.logger.Error("failed to save quote", zap.Error(err))
		http.Error(w, "failed to save quote", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusCreated, created)
}

func (s *server) handleQuoteDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	switch err := s.quotes.Delete(id); {
	case errors.Is(err, store.ErrNotFound):
		http.NotFound(w, r)
	case err != nil:
		s.logger.Error("failed to delete quote", zap.String("id", id), zap.Error(err))
		http.Error(w, "failed to delete quote", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// parseQuoteInput reads the calculation payload. Numeric fields that are
// missing or not numbers are treated as 0 rather than rejected; only a body
// that is not JSON at all fails.
func parseQuoteInput(r *http.Request) (finance.QuoteInput, error) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return finance.QuoteInput{}, err
	}

	return finance.QuoteInput{
		Cost:         floatField(payload, "cost"),
		Profit:       floatField(payload, "profit"),
		SellingPrice: floatField(payload, "sellingPrice"),
		Term:         floatField(payload, "term"),
		Rate:         floatField(payload, "rate"),
		OutOfPocket:  floatField(payload, "outOfPocket"),
		TaxRate:      floatField(payload, "taxRate"),
		QuoteName:    stringField(payload, "quoteName"),
	}, nil
}

func floatField(payload map[string]any, key string) float64 {
	switch v := payload[key].(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return 0
}

func stringField(payload map[string]any, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}
