// Package server provides Connect RPC handlers for the wellness service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"github.com/traitel/calmnight/internal/record"
	"github.com/traitel/calmnight/internal/wellness"
)

const WellnessServiceName = "calmnight.v1.WellnessService"

const (
	GetSummaryProcedure    = "/" + WellnessServiceName + "/GetSummary"
	RecordCheckInProcedure = "/" + WellnessServiceName + "/RecordCheckIn"
	RecordJournalProcedure = "/" + WellnessServiceName + "/RecordJournal"
	ListJournalsProcedure  = "/" + WellnessServiceName + "/ListJournals"
)

// WellnessHandler serves summaries and records new check-ins and journals.
type WellnessHandler struct {
	service *wellness.Service
	logger  *slog.Logger
}

// NewWellnessHandler creates a new WellnessHandler.
func NewWellnessHandler(service *wellness.Service, logger *slog.Logger) *WellnessHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WellnessHandler{
		service: service,
		logger:  logger,
	}
}

// NewWellnessServiceHandler builds an http.Handler serving every procedure of the service
// and returns the path prefix to mount it on.
func NewWellnessServiceHandler(h *WellnessHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec)}, opts...)

	mux := http.NewServeMux()
	mux.Handle(GetSummaryProcedure, connect.NewUnaryHandler(GetSummaryProcedure, h.GetSummary, opts...))
	mux.Handle(RecordCheckInProcedure, connect.NewUnaryHandler(RecordCheckInProcedure, h.RecordCheckIn, opts...))
	mux.Handle(RecordJournalProcedure, connect.NewUnaryHandler(RecordJournalProcedure, h.RecordJournal, opts...))
	mux.Handle(ListJournalsProcedure, connect.NewUnaryHandler(ListJournalsProcedure, h.ListJournals, opts...))
	return "/" + WellnessServiceName + "/", mux
}

// GetSummary returns the dashboard summary as of now.
func (h *WellnessHandler) GetSummary(
	ctx context.Context,
	req *connect.Request[GetSummaryRequest],
) (*connect.Response[GetSummaryResponse], error) {
	summary := h.service.Summary(ctx)
	return connect.NewResponse(newGetSummaryResponse(summary)), nil
}

// RecordCheckIn validates and stores a check-in.
func (h *WellnessHandler) RecordCheckIn(
	ctx context.Context,
	req *connect.Request[RecordCheckInRequest],
) (*connect.Response[RecordCheckInResponse], error) {
	c, err := h.service.RecordCheckIn(ctx, req.Msg.Emotion, req.Msg.Intensity, req.Msg.Notes)
	if err != nil {
		return nil, h.toConnectError("record check-in", err)
	}
	return connect.NewResponse(&RecordCheckInResponse{CheckIn: c}), nil
}

// RecordJournal validates and stores a journal entry.
func (h *WellnessHandler) RecordJournal(
	ctx context.Context,
	req *connect.Request[RecordJournalRequest],
) (*connect.Response[RecordJournalResponse], error) {
	j, err := h.service.RecordJournal(ctx, req.Msg.Entry, req.Msg.Gratitude)
	if err != nil {
		return nil, h.toConnectError("record journal", err)
	}
	return connect.NewResponse(&RecordJournalResponse{Journal: j}), nil
}

// ListJournals returns stored journals, most recent first.
func (h *WellnessHandler) ListJournals(
	ctx context.Context,
	req *connect.Request[ListJournalsRequest],
) (*connect.Response[ListJournalsResponse], error) {
	if req.Msg.Limit < 0 {
		return nil, newInvalidArgumentError(
			fmt.Errorf("limit must not be negative, got %d", req.Msg.Limit),
			[]record.FieldError{{Field: "limit", Message: "limit must not be negative"}},
		)
	}

	journals, err := h.service.Journals(ctx)
	if err != nil {
		return nil, h.toConnectError("list journals", err)
	}
	if req.Msg.Limit > 0 && len(journals) > req.Msg.Limit {
		journals = journals[:req.Msg.Limit]
	}
	return connect.NewResponse(&ListJournalsResponse{Journals: journals}), nil
}

func (h *WellnessHandler) toConnectError(action string, err error) error {
	var validationErr *record.ValidationError
	if errors.As(err, &validationErr) {
		return newInvalidArgumentError(err, validationErr.Fields)
	}
	h.logger.Error("request failed", "action", action, "error", err)
	return connect.NewError(connect.CodeInternal, fmt.Errorf("%s: %w", action, err))
}

func newInvalidArgumentError(err error, fields []record.FieldError) *connect.Error {
	connectErr := connect.NewError(connect.CodeInvalidArgument, err)
	var fieldViolations []*errdetails.BadRequest_FieldViolation
	for _, f := range fields {
		fieldViolations = append(fieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       f.Field,
			Description: f.Message,
		})
	}
	if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
		FieldViolations: fieldViolations,
	}); detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}
