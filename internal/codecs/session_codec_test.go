package codecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"session-analytics/internal/models"
	"session-analytics/internal/shared/svcerrors"
)

func TestEncodeSessionAggregate(t *testing.T) {
	t.Parallel()

	agg := &models.SessionAggregate{
		SessionID:        "s1",
		SearchKeywords:   "phone,laptop",
		ClickCategoryIDs: "7,3",
		VisitLength:      45,
		StepLength:       8,
		StartTime:        "2019-02-26 10:00:01",
		Age:              25,
		Professional:     "engineer",
		City:             "hanoi",
		Sex:              "female",
	}

	encoded := EncodeSessionAggregate(agg)

	assert.Equal(t,
		"sessionid=s1|searchKeywords=phone,laptop|clickCategoryIds=7,3|"+
			"visitLength=45|stepLength=8|starttime=2019-02-26 10:00:01|"+
			"age=25|professional=engineer|city=hanoi|sex=female",
		encoded)
}

func TestDecodeSessionAggregate(t *testing.T) {
	t.Parallel()

	t.Run("decodes an encoded record", func(t *testing.T) {
		t.Parallel()
		agg := &models.SessionAggregate{
			SessionID:   "s1",
			VisitLength: 45,
			StepLength:  8,
			StartTime:   "2019-02-26 10:00:01",
			Age:         25,
			City:        "hanoi",
		}

		decoded, err := DecodeSessionAggregate(EncodeSessionAggregate(agg))

		require.NoError(t, err)
		assert.Equal(t, agg, decoded)
	})

	t.Run("empty optional fields survive", func(t *testing.T) {
		t.Parallel()
		decoded, err := DecodeSessionAggregate(
			"sessionid=s2|searchKeywords=|clickCategoryIds=|visitLength=0|" +
				"stepLength=1|starttime=2019-02-26 11:00:00|age=30|professional=|city=|sex=")

		require.NoError(t, err)
		assert.Equal(t, "s2", decoded.SessionID)
		assert.Empty(t, decoded.SearchKeywords)
		assert.Equal(t, int64(0), decoded.VisitLength)
		assert.Equal(t, int64(1), decoded.StepLength)
	})

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "field without separator", encoded: "sessionid=s1|garbage"},
		{name: "missing session id", encoded: "visitLength=1|stepLength=1|age=1"},
		{name: "missing visit length", encoded: "sessionid=s1|stepLength=1|age=1"},
		{name: "non-numeric step length", encoded: "sessionid=s1|visitLength=1|stepLength=abc|age=1"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeSessionAggregate(tc.encoded)
			var svcErr *svcerrors.ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, codeMalformedRecord, svcErr.Code)
		})
	}
}
