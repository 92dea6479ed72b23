package patch

import (
	"fmt"

	"github.com/wikibase-go/rest-client/pkg/wikibase/types"
)

// EntityPatch edits an entity as a whole. Term, alias and sitelink
// operations are prefixed with the sub-resource they belong to, while
// statement operations keep the paths the reconciler produced.
type EntityPatch struct {
	entryList
}

func NewEntityPatch() *EntityPatch {
	return &EntityPatch{}
}

// DiffItem computes the patch that transforms one item into another.
func DiffItem(from, to types.Item) (*EntityPatch, error) {
	p := NewEntityPatch()

	if err := p.diffTerms(from.Labels, to.Labels, from.Descriptions, to.Descriptions); err != nil {
		return nil, err
	}

	aliases, err := DiffAliases(from.Aliases, to.Aliases)
	if err != nil {
		return nil, err
	}
	p.merge("/aliases", aliases.Entries())

	sitelinks, err := DiffSitelinks(from.Sitelinks, to.Sitelinks)
	if err != nil {
		return nil, err
	}
	p.merge("/sitelinks", sitelinks.Entries())

	statements, err := DiffStatements(from.Statements, to.Statements)
	if err != nil {
		return nil, err
	}
	p.extend(statements.Entries())

	return p, nil
}

// DiffProperty computes the patch that transforms one property into
// another.
func DiffProperty(from, to types.Property) (*EntityPatch, error) {
	p := NewEntityPatch()

	if err := p.diffTerms(from.Labels, to.Labels, from.Descriptions, to.Descriptions); err != nil {
		return nil, err
	}

	aliases, err := DiffAliases(from.Aliases, to.Aliases)
	if err != nil {
		return nil, err
	}
	p.merge("/aliases", aliases.Entries())

	statements, err := DiffStatements(from.Statements, to.Statements)
	if err != nil {
		return nil, err
	}
	p.extend(statements.Entries())

	return p, nil
}

func (p *EntityPatch) diffTerms(fromLabels, toLabels types.Labels, fromDescs, toDescs types.Descriptions) error {
	labels, err := DiffLabels(fromLabels, toLabels)
	if err != nil {
		return err
	}
	p.merge("/labels", labels.Entries())

	descriptions, err := DiffDescriptions(fromDescs, toDescs)
	if err != nil {
		return err
	}
	p.merge("/descriptions", descriptions.Entries())

	return nil
}

func (p *EntityPatch) merge(prefix string, entries []Entry) {
	for _, e := range entries {
		p.entries = append(p.entries, NewEntry(e.Op, prefix+e.Path, e.Value))
	}
}

func (p *EntityPatch) Path(id types.EntityID) (string, error) {
	group, err := id.Group()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/entities/%s/%s", group, id), nil
}
