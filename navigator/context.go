// SPDX-License-Identifier: MIT
package navigator

import "context"

type requestIDKey struct{}

// WithRequestID returns a context carrying an inbound request id, which
// FindRoute adds to its log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom extracts the id stored by WithRequestID.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)

	return id, ok && id != ""
}
