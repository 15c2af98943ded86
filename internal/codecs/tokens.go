package codecs

import (
	"strconv"
	"strings"
)

// AppendToken appends token to a comma-joined list unless it is already
// present, preserving first-seen order. Empty tokens are dropped.
func AppendToken(joined, token string) string {
	if token == "" {
		return joined
	}
	for _, existing := range SplitTokens(joined) {
		if existing == token {
			return joined
		}
	}
	if joined == "" {
		return token
	}
	return joined + "," + token
}

// SplitTokens splits a comma-joined list. An empty list yields no tokens.
func SplitTokens(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}

// JoinIDs renders ids as a comma-joined list.
func JoinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// ParseIDList parses a comma-joined id list. A non-numeric id is a
// run-failing error: silently dropping it would corrupt counts downstream.
func ParseIDList(joined string) ([]int64, error) {
	tokens := SplitTokens(joined)
	ids := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, errMalformedIDList(err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
