package http

import (
	"fmt"

	"session-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidTaskID = "HTTP_1000"
)

func errInvalidTaskID(raw string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTaskID,
		fmt.Sprintf("task id %q is not numeric", raw), cause)
}
