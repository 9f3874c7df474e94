// Package storecall acota la duración de cada llamada al almacén.
package storecall

import (
	"context"
	"time"
)

// DefaultTimeout tiempo por defecto de una llamada al almacén.
const DefaultTimeout = 30 * time.Second

// WithTimeout deriva un contexto con el tiempo máximo d; d <= 0 usa DefaultTimeout.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultTimeout
	}
	return context.WithTimeout(ctx, d)
}
