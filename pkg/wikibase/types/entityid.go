package types

import (
	"fmt"

	"github.com/wikibase-go/rest-client/pkg/wikibase/errors"
)

type entityKind int

const (
	kindNone entityKind = iota
	kindItem
	kindProperty
)

// EntityID identifies an item or a property. The zero value is unset,
// which is the only legal state before an entity's first create.
type EntityID struct {
	kind entityKind
	id   string
}

// IDScheme holds the leading letters that distinguish item IDs from
// property IDs in a store.
type IDScheme struct {
	ItemLetter     byte
	PropertyLetter byte
}

// WikidataScheme is the Q/P scheme used by Wikidata.
var WikidataScheme = IDScheme{ItemLetter: 'Q', PropertyLetter: 'P'}

func (s IDScheme) Parse(id string) (EntityID, error) {
	if len(id) == 0 {
		return EntityID{}, fmt.Errorf("empty entity id")
	}

	switch id[0] {
	case s.ItemLetter:
		return ItemID(id), nil
	case s.PropertyLetter:
		return PropertyID(id), nil
	}

	return EntityID{}, fmt.Errorf("unknown entity id letter in \"%s\"", id)
}

// ParseEntityID parses an entity ID using the Wikidata Q/P scheme.
func ParseEntityID(id string) (EntityID, error) {
	return WikidataScheme.Parse(id)
}

func ItemID(id string) EntityID {
	return EntityID{kind: kindItem, id: id}
}

func PropertyID(id string) EntityID {
	return EntityID{kind: kindProperty, id: id}
}

func (e EntityID) IsZero() bool { return e.kind == kindNone }

func (e EntityID) IsItem() bool { return e.kind == kindItem }

func (e EntityID) IsProperty() bool { return e.kind == kindProperty }

// ID returns the bare identifier string.
func (e EntityID) ID() (string, error) {
	if e.kind == kindNone {
		return "", errors.NewNoEntityIDError("entity id is not set")
	}
	return e.id, nil
}

// Group returns the REST path segment for the entity's kind.
func (e EntityID) Group() (string, error) {
	switch e.kind {
	case kindItem:
		return "items", nil
	case kindProperty:
		return "properties", nil
	}
	return "", errors.NewNoEntityIDError("entity id is not set")
}

// TypeName returns the wire name for the entity's kind.
func (e EntityID) TypeName() (string, error) {
	switch e.kind {
	case kindItem:
		return "item", nil
	case kindProperty:
		return "property", nil
	}
	return "", errors.NewNoEntityIDError("entity id is not set")
}

func (e EntityID) String() string { return e.id }
