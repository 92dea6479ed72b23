package types

import (
	"encoding/json"
	"slices"

	"github.com/wikibase-go/rest-client/pkg/wikibase/errors"
)

// Sitelink links an entity to a page on a specific wiki. The wiki
// itself is the key in the enclosing Sitelinks map.
type Sitelink struct {
	Title  string   `json:"title"`
	Badges []string `json:"badges"`
	URL    string   `json:"url,omitempty"`
}

func NewSitelink(title string) Sitelink {
	return Sitelink{Title: title, Badges: []string{}}
}

func (s Sitelink) MarshalJSON() ([]byte, error) {
	badges := s.Badges
	if badges == nil {
		badges = []string{}
	}

	type sitelink Sitelink
	clone := sitelink(s)
	clone.Badges = badges

	return json.Marshal(clone)
}

func (s Sitelink) Clone() Sitelink {
	clone := s
	clone.Badges = slices.Clone(s.Badges)
	return clone
}

// Sitelinks maps a wiki identifier to its sitelink. Setting a wiki
// replaces any existing entry, so only the key carries identity.
type Sitelinks map[string]Sitelink

func NewSitelinks() Sitelinks {
	return Sitelinks{}
}

func NewSitelinksFromJSON(data []byte) (Sitelinks, error) {
	s := Sitelinks{}
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.NewInvalidFieldError("sitelinks", data)
	}
	return s, nil
}

func (s Sitelinks) Get(wiki string) (Sitelink, bool) {
	link, ok := s[wiki]
	return link, ok
}

func (s Sitelinks) Set(wiki string, link Sitelink) { s[wiki] = link }

func (s Sitelinks) Clone() Sitelinks {
	clone := make(Sitelinks, len(s))
	for wiki, link := range s {
		clone[wiki] = link.Clone()
	}
	return clone
}
