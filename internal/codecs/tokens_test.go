package codecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		joined string
		token  string
		want   string
	}{
		{name: "first token", joined: "", token: "phone", want: "phone"},
		{name: "appends new token", joined: "phone", token: "laptop", want: "phone,laptop"},
		{name: "duplicate is dropped", joined: "phone,laptop", token: "phone", want: "phone,laptop"},
		{name: "empty token is dropped", joined: "phone", token: "", want: "phone"},
		{name: "first-seen order preserved", joined: "b,a", token: "c", want: "b,a,c"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, AppendToken(tc.joined, tc.token))
		})
	}
}

func TestSplitTokens(t *testing.T) {
	t.Parallel()

	assert.Nil(t, SplitTokens(""))
	assert.Equal(t, []string{"a"}, SplitTokens("a"))
	assert.Equal(t, []string{"a", "b"}, SplitTokens("a,b"))
}

func TestJoinIDs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", JoinIDs(nil))
	assert.Equal(t, "7,3,12", JoinIDs([]int64{7, 3, 12}))
}

func TestParseIDList(t *testing.T) {
	t.Parallel()

	t.Run("parses a joined list", func(t *testing.T) {
		t.Parallel()
		ids, err := ParseIDList("7,3,12")
		require.NoError(t, err)
		assert.Equal(t, []int64{7, 3, 12}, ids)
	})

	t.Run("empty list parses to no ids", func(t *testing.T) {
		t.Parallel()
		ids, err := ParseIDList("")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("non-numeric id fails", func(t *testing.T) {
		t.Parallel()
		_, err := ParseIDList("7,oops")
		require.Error(t, err)
	})
}
