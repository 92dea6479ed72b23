package patch

import (
	"fmt"

	"github.com/wikibase-go/rest-client/pkg/wikibase/types"
)

// AliasesPatch edits an entity's aliases. Alias lists are position
// sensitive, so paths are /{language}/{index} and a mid-list insert
// shifts the entries after it. This matches the store's own patch
// semantics for this sub-resource.
type AliasesPatch struct {
	entryList
}

func NewAliasesPatch() *AliasesPatch {
	return &AliasesPatch{}
}

// DiffAliases computes the patch that transforms from into to.
func DiffAliases(from, to types.Aliases) (*AliasesPatch, error) {
	p := NewAliasesPatch()
	entries, err := Diff(from, to)
	if err != nil {
		return nil, err
	}
	p.extend(entries)
	return p, nil
}

// ReplaceAt appends a replace of the alias at a specific position in
// a language's list.
func (p *AliasesPatch) ReplaceAt(language string, index int, value string) {
	p.Replace(fmt.Sprintf("/%s/%d", escapePointer(language), index), value)
}

// RemoveAt appends a removal of the alias at a specific position in a
// language's list.
func (p *AliasesPatch) RemoveAt(language string, index int) {
	p.Remove(fmt.Sprintf("/%s/%d", escapePointer(language), index))
}

func (p *AliasesPatch) Path(id types.EntityID) (string, error) {
	group, err := id.Group()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/entities/%s/%s/aliases", group, id), nil
}
