package client

import (
	"fmt"
)

const maxSearchLimit = 500

// Limit caps the number of search results per page. The store accepts
// values between 1 and 500, so out-of-range values are clamped.
func Limit(count uint64) RequestDecoratorFunc {
	if count < 1 {
		count = 1
	}
	if count > maxSearchLimit {
		count = maxSearchLimit
	}

	return func(params []string) []string {
		return append(params, fmt.Sprintf("limit=%d", count))
	}
}

// Offset skips the first count search results.
func Offset(count uint64) RequestDecoratorFunc {
	return func(params []string) []string {
		return append(params, fmt.Sprintf("offset=%d", count))
	}
}
