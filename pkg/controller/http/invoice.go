package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/usecase"
)

type invoiceItemRequest struct {
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	Rate        float64 `json:"rate" validate:"gte=0"`
}

type createInvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number"`
	ClientID      string               `json:"clientId" validate:"required"`
	Tax           float64              `json:"tax" validate:"gte=0"`
	Items         []invoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	IssuedAt      time.Time            `json:"issued_at"`
	DueDate       time.Time            `json:"due_date"`
	Notes         string               `json:"notes"`
}

func (s *Server) handleCreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	items := make([]model.InvoiceItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		}
	}

	invoice, err := s.uc.Invoice.Create(r.Context(), &usecase.CreateInvoiceInput{
		InvoiceNumber: req.InvoiceNumber,
		ClientID:      model.ClientID(req.ClientID),
		Tax:           req.Tax,
		Items:         items,
		IssuedAt:      req.IssuedAt,
		DueDate:       req.DueDate,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusCreated, invoice)
}

func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch {
	case r.URL.Query().Get("unpaid") == "true":
		invoices, err := s.uc.Invoice.ListUnpaid(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, invoices)
	case r.URL.Query().Get("clientId") != "":
		invoices, err := s.uc.Invoice.ListByClient(ctx, model.ClientID(r.URL.Query().Get("clientId")))
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, invoices)
	default:
		invoices, err := s.uc.Invoice.List(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}
		respondData(ctx, w, http.StatusOK, invoices)
	}
}

type payInvoiceRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

func (s *Server) handlePayInvoice(w http.ResponseWriter, r *http.Request) {
	var req payInvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	invoice, err := s.uc.Invoice.MarkPaid(r.Context(), model.InvoiceID(chi.URLParam(r, "id")), req.PaymentMethod)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondData(r.Context(), w, http.StatusOK, invoice)
}
