package patch

import (
	"fmt"
	"sort"

	"github.com/wikibase-go/rest-client/pkg/wikibase/errors"
	"github.com/wikibase-go/rest-client/pkg/wikibase/types"
)

// StatementsPatch edits an entity's full statement collection. The
// collection is keyed by statement ID rather than by list position,
// so the diff reconciles by identity: statements present on both
// sides are patched in place, statements only on the from side are
// removed and statements only on the to side are added whole.
type StatementsPatch struct {
	entryList
}

func NewStatementsPatch() *StatementsPatch {
	return &StatementsPatch{}
}

// DiffStatements computes the patch that transforms from into to.
//
// Every statement on the to side must carry an ID, otherwise there is
// nothing to reconcile it against and the diff fails. Statements
// without an ID on the from side have never been applied to the store
// and are skipped.
//
// Statements present on both sides are diffed field by field and the
// resulting operations are merged with their statement local paths
// kept as is, since the store addresses an individual statement by ID
// rather than by a collection path. Removals and field edits come
// first, additions last, each group in lexicographic statement ID
// order so equal inputs always produce equal patches.
func DiffStatements(from, to types.Statements) (*StatementsPatch, error) {
	fromByID := map[string]types.Statement{}
	for _, statements := range from {
		for _, st := range statements {
			if st.ID == "" {
				continue
			}
			fromByID[st.ID] = st
		}
	}

	toByID := map[string]types.Statement{}
	for _, statements := range to {
		for _, st := range statements {
			if st.ID == "" {
				return nil, errors.NewMissingIDError(
					fmt.Sprintf("statement for property %s has no id", st.Property.ID),
				)
			}
			toByID[st.ID] = st
		}
	}

	fromIDs := make([]string, 0, len(fromByID))
	for id := range fromByID {
		fromIDs = append(fromIDs, id)
	}
	sort.Strings(fromIDs)

	p := NewStatementsPatch()

	for _, id := range fromIDs {
		toSt, inTo := toByID[id]
		if !inTo {
			p.Remove(statementPath(id))
			continue
		}

		entries, err := Diff(fromByID[id], toSt)
		if err != nil {
			return nil, err
		}
		p.extend(entries)
	}

	addedIDs := make([]string, 0, len(toByID))
	for id := range toByID {
		if _, inFrom := fromByID[id]; !inFrom {
			addedIDs = append(addedIDs, id)
		}
	}
	sort.Strings(addedIDs)

	for _, id := range addedIDs {
		p.Add(statementPath(id), toByID[id])
	}

	return p, nil
}

func statementPath(id string) string {
	return "/statements/" + escapePointer(id)
}

func (p *StatementsPatch) Path(id types.EntityID) (string, error) {
	group, err := id.Group()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/entities/%s/%s/statements", group, id), nil
}
