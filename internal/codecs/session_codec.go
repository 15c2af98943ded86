package codecs

import (
	"fmt"
	"strconv"
	"strings"

	"session-analytics/internal/models"
)

// The delimited key=value encoding used where a session aggregate crosses a
// serialization boundary (warehouse snapshots, broadcast payloads). Field
// order is fixed so that encoded records compare byte-for-byte.

const (
	fieldSessionID        = "sessionid"
	fieldSearchKeywords   = "searchKeywords"
	fieldClickCategoryIDs = "clickCategoryIds"
	fieldVisitLength      = "visitLength"
	fieldStepLength       = "stepLength"
	fieldStartTime        = "starttime"
	fieldAge              = "age"
	fieldProfessional     = "professional"
	fieldCity             = "city"
	fieldSex              = "sex"
)

const (
	fieldDelimiter    = "|"
	keyValueDelimiter = "="
)

// EncodeSessionAggregate renders agg as a single delimited key=value record.
func EncodeSessionAggregate(agg *models.SessionAggregate) string {
	var b strings.Builder
	writeField(&b, fieldSessionID, agg.SessionID)
	writeField(&b, fieldSearchKeywords, agg.SearchKeywords)
	writeField(&b, fieldClickCategoryIDs, agg.ClickCategoryIDs)
	writeField(&b, fieldVisitLength, strconv.FormatInt(agg.VisitLength, 10))
	writeField(&b, fieldStepLength, strconv.FormatInt(agg.StepLength, 10))
	writeField(&b, fieldStartTime, agg.StartTime)
	writeField(&b, fieldAge, strconv.Itoa(agg.Age))
	writeField(&b, fieldProfessional, agg.Professional)
	writeField(&b, fieldCity, agg.City)
	b.WriteString(fieldSex + keyValueDelimiter + agg.Sex)
	return b.String()
}

// DecodeSessionAggregate parses a record produced by EncodeSessionAggregate.
func DecodeSessionAggregate(encoded string) (*models.SessionAggregate, error) {
	fields := make(map[string]string)
	for _, part := range strings.Split(encoded, fieldDelimiter) {
		key, value, found := strings.Cut(part, keyValueDelimiter)
		if !found {
			return nil, errMalformedRecord(fmt.Errorf("field %q has no %q separator", part, keyValueDelimiter))
		}
		fields[key] = value
	}

	sessionID, ok := fields[fieldSessionID]
	if !ok {
		return nil, errMalformedRecord(fmt.Errorf("missing field %q", fieldSessionID))
	}

	visitLength, err := decodeInt64Field(fields, fieldVisitLength)
	if err != nil {
		return nil, err
	}
	stepLength, err := decodeInt64Field(fields, fieldStepLength)
	if err != nil {
		return nil, err
	}
	age, err := decodeInt64Field(fields, fieldAge)
	if err != nil {
		return nil, err
	}

	return &models.SessionAggregate{
		SessionID:        sessionID,
		SearchKeywords:   fields[fieldSearchKeywords],
		ClickCategoryIDs: fields[fieldClickCategoryIDs],
		VisitLength:      visitLength,
		StepLength:       stepLength,
		StartTime:        fields[fieldStartTime],
		Age:              int(age),
		Professional:     fields[fieldProfessional],
		City:             fields[fieldCity],
		Sex:              fields[fieldSex],
	}, nil
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString(keyValueDelimiter)
	b.WriteString(value)
	b.WriteString(fieldDelimiter)
}

func decodeInt64Field(fields map[string]string, key string) (int64, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, errMalformedRecord(fmt.Errorf("missing field %q", key))
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errMalformedRecord(fmt.Errorf("field %q: %w", key, err))
	}
	return value, nil
}
