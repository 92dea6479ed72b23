package types

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// HeaderInfo carries the revision metadata a response reports about
// the resource: the revision ID from the ETag header and the
// Last-Modified timestamp. Both are optional and zero when absent.
type HeaderInfo struct {
	RevisionID   uint64
	LastModified time.Time
}

// NewHeaderInfo parses revision metadata from response headers.
// Values that fail to parse are left at their zero value.
func NewHeaderInfo(header http.Header) HeaderInfo {
	hi := HeaderInfo{}

	if etag := header.Get("ETag"); etag != "" {
		etag = strings.ReplaceAll(etag, "\"", "")
		if revision, err := strconv.ParseUint(etag, 10, 64); err == nil {
			hi.RevisionID = revision
		}
	}

	if lastModified := header.Get("Last-Modified"); lastModified != "" {
		if t, err := http.ParseTime(lastModified); err == nil {
			hi.LastModified = t.UTC()
		}
	}

	return hi
}
