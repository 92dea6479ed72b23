package patch

import (
	"github.com/wikibase-go/rest-client/pkg/wikibase/errors"
	"github.com/wikibase-go/rest-client/pkg/wikibase/types"
)

// StatementPatch edits a single statement addressed by its own ID,
// independently of the entity it belongs to.
type StatementPatch struct {
	entryList
	statementID string
}

func NewStatementPatch(statementID string) *StatementPatch {
	return &StatementPatch{statementID: statementID}
}

// DiffStatement computes the patch that transforms from into to. The
// target statement must carry an ID, since that is what the patch is
// addressed by.
func DiffStatement(from, to types.Statement) (*StatementPatch, error) {
	if to.ID == "" {
		return nil, errors.NewMissingIDError("statement has no id to address the patch by")
	}

	p := NewStatementPatch(to.ID)
	entries, err := Diff(from, to)
	if err != nil {
		return nil, err
	}
	p.extend(entries)
	return p, nil
}

func (p *StatementPatch) StatementID() string {
	return p.statementID
}

func (p *StatementPatch) Path() string {
	return "/statements/" + p.statementID
}
