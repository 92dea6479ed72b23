package patch

import (
	"fmt"

	"github.com/wikibase-go/rest-client/pkg/wikibase/types"
)

// SitelinksPatch edits an entity's sitelinks. Paths are /{wiki} for
// whole sitelinks and /{wiki}/title, /{wiki}/badges and so on for
// partial edits.
type SitelinksPatch struct {
	entryList
}

func NewSitelinksPatch() *SitelinksPatch {
	return &SitelinksPatch{}
}

// DiffSitelinks computes the patch that transforms from into to.
func DiffSitelinks(from, to types.Sitelinks) (*SitelinksPatch, error) {
	p := NewSitelinksPatch()
	entries, err := Diff(from, to)
	if err != nil {
		return nil, err
	}
	p.extend(entries)
	return p, nil
}

// ReplaceTitle appends a replace of a wiki's page title.
func (p *SitelinksPatch) ReplaceTitle(wiki, title string) {
	p.Replace(fmt.Sprintf("/%s/title", escapePointer(wiki)), title)
}

// RemoveWiki appends a removal of the whole sitelink for a wiki.
func (p *SitelinksPatch) RemoveWiki(wiki string) {
	p.Remove("/" + escapePointer(wiki))
}

func (p *SitelinksPatch) Path(id types.EntityID) (string, error) {
	group, err := id.Group()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/entities/%s/%s/sitelinks", group, id), nil
}
