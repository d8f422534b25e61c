package service

import (
	domainerrors "textura/internal/domain/errors"
)

// AuthMetrics records auth engine activity for diagnostics.
type AuthMetrics interface {
	// RecordTransition counts an effective change of the authenticated boolean.
	RecordTransition(authenticated bool)

	// RecordFailure counts a classified failure of an operation.
	RecordFailure(operation string, kind domainerrors.Kind)

	// RecordSessionEvent counts a notification received from the provider stream.
	RecordSessionEvent(event AuthEvent)
}
