package codecs

import (
	"fmt"

	"session-analytics/internal/shared/svcerrors"
)

const (
	codeMalformedRecord = "COD_1000"
	codeMalformedIDList = "COD_1001"
)

// errMalformedRecord returns an error when a delimited record cannot be decoded.
func errMalformedRecord(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedRecord, fmt.Sprintf("malformed session record: %v", cause), cause)
}

// errMalformedIDList returns an error when a comma-joined id list holds a non-numeric id.
func errMalformedIDList(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedIDList, fmt.Sprintf("malformed id list: %v", cause), cause)
}
