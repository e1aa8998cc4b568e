package services

import (
	"context"

	"github.com/SscSPs/shiftpay/internal/core/domain"
	"github.com/SscSPs/shiftpay/internal/dto"
)

// ShiftReaderSvc defines read operations for shifts
type ShiftReaderSvc interface {
	GetShiftByID(ctx context.Context, userID, shiftID string) (*domain.Shift, error)

	// ListShifts returns a page of shifts and a token for the next page.
	ListShifts(ctx context.Context, userID string, params dto.ListShiftsParams) ([]domain.Shift, *string, error)

	// PreviewEarnings prices a shift form without persisting anything.
	PreviewEarnings(ctx context.Context, userID string, req dto.EarningsPreviewRequest) (*domain.ResolvedEarnings, error)
}

// ShiftWriterSvc defines write operations for shifts
type ShiftWriterSvc interface {
	CreateShift(ctx context.Context, userID string, intent domain.ShiftEditIntent) (*domain.Shift, error)

	// UpdateShift merges the intent into the stored shift and applies the
	// earnings snapshot policy in a single read-modify-write.
	UpdateShift(ctx context.Context, userID, shiftID string, intent domain.ShiftEditIntent) (*domain.Shift, error)

	DeleteShift(ctx context.Context, userID, shiftID string) error
}

// ShiftSvcFacade combines all shift-related service interfaces
type ShiftSvcFacade interface {
	ShiftReaderSvc
	ShiftWriterSvc
}
