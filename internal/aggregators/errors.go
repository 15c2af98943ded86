package aggregators

import (
	"fmt"

	"session-analytics/internal/shared/svcerrors"
)

const (
	codeMalformedActionTime = "AGG_1000"
)

// errMalformedActionTime returns an error when an action timestamp cannot be
// parsed. The run aborts: the session's start and end would be undefined.
func errMalformedActionTime(sessionID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedActionTime,
		fmt.Sprintf("malformed action time in session %s: %v", sessionID, cause), cause)
}
