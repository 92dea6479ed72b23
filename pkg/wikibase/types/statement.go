package types

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/wikibase-go/rest-client/pkg/wikibase/errors"
)

// PropertyType identifies the property a statement or qualifier is
// about, with its data type when known.
type PropertyType struct {
	ID       string   `json:"id"`
	DataType DataType `json:"data-type,omitempty"`
}

func NewPropertyType(id string) PropertyType {
	return PropertyType{ID: id}
}

func (p *PropertyType) UnmarshalJSON(data []byte) error {
	type propertyType PropertyType
	var wire propertyType
	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.NewInvalidFieldError("property", data)
	}
	if wire.ID == "" {
		return errors.NewInvalidFieldError("id", data)
	}
	*p = PropertyType(wire)
	return nil
}

// PropertyValue pairs a property with a statement value, used for
// qualifiers and for reference parts.
type PropertyValue struct {
	Property PropertyType   `json:"property"`
	Value    StatementValue `json:"value"`
}

// Reference backs a statement with a source, identified by a server
// computed hash over its parts.
type Reference struct {
	Hash  string          `json:"hash"`
	Parts []PropertyValue `json:"parts"`
}

func (r Reference) MarshalJSON() ([]byte, error) {
	parts := r.Parts
	if parts == nil {
		parts = []PropertyValue{}
	}

	type reference Reference
	clone := reference(r)
	clone.Parts = parts

	return json.Marshal(clone)
}

// Statement is a single property/value assertion. The ID is assigned
// by the server on first creation and empty until then.
type Statement struct {
	ID         string
	Property   PropertyType
	Value      StatementValue
	Rank       StatementRank
	Qualifiers []PropertyValue
	References []Reference
}

// NewStatement returns a normal rank statement for the given property
// and value, without an ID.
func NewStatement(property string, value StatementValue) Statement {
	return Statement{
		Property:   NewPropertyType(property),
		Value:      value,
		Rank:       RankNormal,
		Qualifiers: []PropertyValue{},
		References: []Reference{},
	}
}

// NewStringStatement returns a statement holding a plain string value.
func NewStringStatement(property, value string) Statement {
	return NewStatement(property, NewStringValue(value))
}

// NewStatementID generates a fresh client-side statement ID of the
// form {entityID}${UUID}. Such IDs are never reused.
func NewStatementID(entityID EntityID) (string, error) {
	id, err := entityID.ID()
	if err != nil {
		return "", err
	}
	return id + "$" + strings.ToUpper(uuid.NewString()), nil
}

func NewStatementFromJSON(data []byte) (Statement, error) {
	var s Statement
	if err := json.Unmarshal(data, &s); err != nil {
		return Statement{}, err
	}
	return s, nil
}

type statementWire struct {
	ID         string          `json:"id,omitempty"`
	Property   PropertyType    `json:"property"`
	Value      StatementValue  `json:"value"`
	Rank       StatementRank   `json:"rank"`
	Qualifiers []PropertyValue `json:"qualifiers"`
	References []Reference     `json:"references"`
}

func (s Statement) MarshalJSON() ([]byte, error) {
	wire := statementWire(s)
	if wire.Rank == "" {
		wire.Rank = RankNormal
	}
	if wire.Qualifiers == nil {
		wire.Qualifiers = []PropertyValue{}
	}
	if wire.References == nil {
		wire.References = []Reference{}
	}
	return json.Marshal(wire)
}

func (s *Statement) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID         string          `json:"id"`
		Property   *PropertyType   `json:"property"`
		Value      *StatementValue `json:"value"`
		Rank       *string         `json:"rank"`
		Qualifiers []PropertyValue `json:"qualifiers"`
		References []Reference     `json:"references"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	if wire.Property == nil {
		return errors.NewInvalidFieldError("property", data)
	}
	if wire.Value == nil {
		return errors.NewInvalidFieldError("value", data)
	}
	if wire.Rank == nil {
		return errors.NewInvalidFieldError("rank", data)
	}

	rank, err := ParseStatementRank(*wire.Rank)
	if err != nil {
		return errors.NewInvalidFieldError("rank", data)
	}

	if wire.Qualifiers == nil {
		wire.Qualifiers = []PropertyValue{}
	}
	if wire.References == nil {
		wire.References = []Reference{}
	}

	*s = Statement{
		ID:         wire.ID,
		Property:   *wire.Property,
		Value:      *wire.Value,
		Rank:       rank,
		Qualifiers: wire.Qualifiers,
		References: wire.References,
	}

	return nil
}

func (s Statement) Clone() Statement {
	clone := s
	clone.Qualifiers = slices.Clone(s.Qualifiers)
	clone.References = make([]Reference, 0, len(s.References))
	for _, ref := range s.References {
		ref.Parts = slices.Clone(ref.Parts)
		clone.References = append(clone.References, ref)
	}
	return clone
}

// Statements groups an entity's statements by property ID. Identity
// across the collection is a statement's own ID, never its position.
type Statements map[string][]Statement

func NewStatements() Statements {
	return Statements{}
}

func NewStatementsFromJSON(data []byte) (Statements, error) {
	s := Statements{}
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// Insert appends a statement to its property's list.
func (s Statements) Insert(statement Statement) {
	property := statement.Property.ID
	s[property] = append(s[property], statement)
}

// Property returns the statements for a specific property ID.
func (s Statements) Property(propertyID string) []Statement {
	return s[propertyID]
}

// Len returns the total number of statements across all properties.
func (s Statements) Len() int {
	n := 0
	for _, statements := range s {
		n += len(statements)
	}
	return n
}

func (s Statements) Clone() Statements {
	clone := make(Statements, len(s))
	for property, statements := range s {
		cloned := make([]Statement, 0, len(statements))
		for _, statement := range statements {
			cloned = append(cloned, statement.Clone())
		}
		clone[property] = cloned
	}
	return clone
}
