package wikibase

import (
	"net/http"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestRevisionMatchDates(t *testing.T) {
	is := is.New(t)

	rm := RevisionMatch{
		ModifiedSince:   time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		UnmodifiedSince: time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	header := http.Header{}
	rm.ModifyHeaders(header)

	is.Equal(header.Get("If-Modified-Since"), "Fri, 01 Jan 2021 00:00:00 GMT")
	is.Equal(header.Get("If-Unmodified-Since"), "Sat, 02 Jan 2021 00:00:00 GMT")
}

func TestRevisionMatchRevisionsBecomeETags(t *testing.T) {
	is := is.New(t)

	rm := RevisionMatch{
		UnmodifiedSinceRevisions: []uint64{4, 5},
		ModifiedSinceRevisions:   []uint64{1},
	}

	header := http.Header{}
	rm.ModifyHeaders(header)

	is.Equal(header.Values("If-Match"), []string{"\"4\"", "\"5\""})
	is.Equal(header.Values("If-None-Match"), []string{"\"1\""})
}

func TestRevisionMatchZeroValueAddsNothing(t *testing.T) {
	is := is.New(t)

	header := http.Header{}
	RevisionMatch{}.ModifyHeaders(header)

	is.Equal(len(header), 0)
}
