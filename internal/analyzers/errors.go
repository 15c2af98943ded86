package analyzers

import (
	"fmt"

	"session-analytics/internal/shared/svcerrors"
)

const (
	codeTaskNotFound        = "TSK_1000"
	codeMalformedTaskParams = "TSK_1001"
	codeInvalidTaskParams   = "TSK_1002"

	codeTaskStoreFailed     = "TSK_9000"
	codeActionStoreFailed   = "TSK_9001"
	codeUserStoreFailed     = "TSK_9002"
	codeSnapshotStoreFailed = "TSK_9003"
	codeStatSinkFailed      = "TSK_9004"
)

func errTaskNotFound(taskID int64) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeTaskNotFound,
		fmt.Sprintf("task %d does not exist", taskID), nil)
}

func errMalformedTaskParams(taskID int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedTaskParams,
		fmt.Sprintf("task %d carries malformed parameters: %v", taskID, cause), cause)
}

func errInvalidTaskParams(taskID int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTaskParams,
		fmt.Sprintf("task %d carries invalid parameters: %v", taskID, cause), cause)
}

func errInternalTaskStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeTaskStoreFailed, cause)
}

func errInternalActionStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeActionStoreFailed, cause)
}

func errInternalUserStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeUserStoreFailed, cause)
}

func errInternalSnapshotStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeSnapshotStoreFailed, cause)
}

func errInternalStatSinkFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeStatSinkFailed, cause)
}
