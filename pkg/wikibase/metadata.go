package wikibase

import (
	"fmt"
	"net/http"
	"time"
)

// EditMetadata annotates a mutating call with a comment, flags, and
// tags, plus the revision preconditions the store should enforce.
// The zero value is a plain unconditional edit.
type EditMetadata struct {
	Comment       string
	Bot           bool
	Minor         bool
	Tags          []string
	RevisionMatch RevisionMatch
}

// RevisionMatch holds conditional-request constraints. None of the
// fields are mutually exclusive here; the store decides which
// combination is legal for a given method.
type RevisionMatch struct {
	ModifiedSinceRevisions   []uint64
	ModifiedSince            time.Time
	UnmodifiedSinceRevisions []uint64
	UnmodifiedSince          time.Time
	IfMatch                  []string
	IfNoneMatch              []string
}

// ModifyHeaders translates the preconditions into conditional request
// headers. Revision IDs are sent as quoted ETag values.
func (rm RevisionMatch) ModifyHeaders(header http.Header) {
	if !rm.ModifiedSince.IsZero() {
		header.Set("If-Modified-Since", rm.ModifiedSince.UTC().Format(http.TimeFormat))
	}
	if !rm.UnmodifiedSince.IsZero() {
		header.Set("If-Unmodified-Since", rm.UnmodifiedSince.UTC().Format(http.TimeFormat))
	}

	for _, revision := range rm.UnmodifiedSinceRevisions {
		header.Add("If-Match", fmt.Sprintf("\"%d\"", revision))
	}
	for _, revision := range rm.ModifiedSinceRevisions {
		header.Add("If-None-Match", fmt.Sprintf("\"%d\"", revision))
	}

	for _, etag := range rm.IfMatch {
		header.Add("If-Match", etag)
	}
	for _, etag := range rm.IfNoneMatch {
		header.Add("If-None-Match", etag)
	}
}
