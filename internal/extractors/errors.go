package extractors

import (
	"fmt"

	"session-analytics/internal/shared/svcerrors"
)

const (
	codeMalformedStartTime = "EXT_1000"
)

func errMalformedStartTime(sessionID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedStartTime,
		fmt.Sprintf("malformed start time in session %s: %v", sessionID, cause), cause)
}
