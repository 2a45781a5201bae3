package mock

import (
	"context"

	"github.com/fwojciec/docparse"
)

var _ docparse.ConversionWriter = (*ConversionWriter)(nil)

// ConversionWriter is a mock implementation of docparse.ConversionWriter.
type ConversionWriter struct {
	CreateConversionFn func(ctx context.Context, conv *docparse.Conversion) error
}

func (w *ConversionWriter) CreateConversion(ctx context.Context, conv *docparse.Conversion) error {
	return w.CreateConversionFn(ctx, conv)
}
