package patch

import (
	"fmt"

	"github.com/wikibase-go/rest-client/pkg/wikibase/types"
)

type termsKind string

const (
	kindLabels       termsKind = "labels"
	kindDescriptions termsKind = "descriptions"
)

// TermsPatch edits an entity's labels or descriptions. Paths are
// /{language}.
type TermsPatch struct {
	entryList
	kind termsKind
}

func NewLabelsPatch() *TermsPatch {
	return &TermsPatch{kind: kindLabels}
}

func NewDescriptionsPatch() *TermsPatch {
	return &TermsPatch{kind: kindDescriptions}
}

// DiffLabels computes the patch that transforms from into to.
func DiffLabels(from, to types.Labels) (*TermsPatch, error) {
	p := NewLabelsPatch()
	entries, err := Diff(from, to)
	if err != nil {
		return nil, err
	}
	p.extend(entries)
	return p, nil
}

// DiffDescriptions computes the patch that transforms from into to.
func DiffDescriptions(from, to types.Descriptions) (*TermsPatch, error) {
	p := NewDescriptionsPatch()
	entries, err := Diff(from, to)
	if err != nil {
		return nil, err
	}
	p.extend(entries)
	return p, nil
}

// ReplaceLang appends a replace of the term in the given language.
func (p *TermsPatch) ReplaceLang(language, value string) {
	p.Replace("/"+escapePointer(language), value)
}

// RemoveLang appends a removal of the term in the given language.
func (p *TermsPatch) RemoveLang(language string) {
	p.Remove("/" + escapePointer(language))
}

// Path returns the REST path of the sub-resource this patch applies
// to.
func (p *TermsPatch) Path(id types.EntityID) (string, error) {
	group, err := id.Group()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/entities/%s/%s/%s", group, id, p.kind), nil
}
