// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mlsolid

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mlsolid-go/internal/adapter"
)

// mapAdapterError translates a transport error into one of the package
// errors. The original error stays in the chain. Errors raised before
// anything was sent, such as cancellation or an unencodable body, are
// returned as is.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, adapter.ErrEncodeRequest):
		return err
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}
