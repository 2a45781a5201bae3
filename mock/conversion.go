package mock

import (
	"context"

	"github.com/fwojciec/docparse"
)

var _ docparse.ConversionService = (*ConversionService)(nil)

// ConversionService is a mock implementation of docparse.ConversionService.
type ConversionService struct {
	CreateConversionFn   func(ctx context.Context, conv *docparse.Conversion) error
	FindConversionByIDFn func(ctx context.Context, id string) (*docparse.Conversion, error)
	FindConversionsFn    func(ctx context.Context, filter docparse.ConversionFilter) ([]*docparse.Conversion, error)
	DeleteConversionFn   func(ctx context.Context, id string) error
}

func (s *ConversionService) CreateConversion(ctx context.Context, conv *docparse.Conversion) error {
	return s.CreateConversionFn(ctx, conv)
}

func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*docparse.Conversion, error) {
	return s.FindConversionByIDFn(ctx, id)
}

func (s *ConversionService) FindConversions(ctx context.Context, filter docparse.ConversionFilter) ([]*docparse.Conversion, error) {
	return s.FindConversionsFn(ctx, filter)
}

func (s *ConversionService) DeleteConversion(ctx context.Context, id string) error {
	return s.DeleteConversionFn(ctx, id)
}
