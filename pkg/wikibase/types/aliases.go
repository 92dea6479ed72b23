package types

import (
	"encoding/json"
	"slices"

	"github.com/wikibase-go/rest-client/pkg/wikibase/errors"
)

// Aliases holds an ordered list of aliases per language code.
// Order within a language is significant, values are unique.
type Aliases map[string][]string

func NewAliases() Aliases {
	return Aliases{}
}

func NewAliasesFromJSON(data []byte) (Aliases, error) {
	a := Aliases{}
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, errors.NewInvalidFieldError("aliases", data)
	}
	return a, nil
}

func (a Aliases) Get(language string) []string { return a[language] }

// Push appends an alias to the end of a language's list, unless the
// value is already present in that list.
func (a Aliases) Push(language, alias string) {
	if slices.Contains(a[language], alias) {
		return
	}
	a[language] = append(a[language], alias)
}

func (a Aliases) Clone() Aliases {
	clone := make(Aliases, len(a))
	for language, values := range a {
		clone[language] = slices.Clone(values)
	}
	return clone
}
