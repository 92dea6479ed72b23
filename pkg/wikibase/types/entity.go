package types

import (
	"encoding/json"

	"github.com/wikibase-go/rest-client/pkg/wikibase/errors"
)

// Item is a top-level entity with sitelinks. HeaderInfo is response
// metadata and not part of the item's identity.
type Item struct {
	ID           EntityID
	Labels       Labels
	Descriptions Descriptions
	Aliases      Aliases
	Sitelinks    Sitelinks
	Statements   Statements
	HeaderInfo   HeaderInfo
}

func NewItem() *Item {
	return &Item{
		Labels:       NewLabels(),
		Descriptions: NewDescriptions(),
		Aliases:      NewAliases(),
		Sitelinks:    NewSitelinks(),
		Statements:   NewStatements(),
	}
}

func NewItemFromJSON(data []byte) (*Item, error) {
	var wire struct {
		ID           string       `json:"id"`
		Labels       Labels       `json:"labels"`
		Descriptions Descriptions `json:"descriptions"`
		Aliases      Aliases      `json:"aliases"`
		Sitelinks    Sitelinks    `json:"sitelinks"`
		Statements   Statements   `json:"statements"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if wire.ID == "" {
		return nil, errors.NewInvalidFieldError("id", data)
	}

	item := NewItem()
	item.ID = ItemID(wire.ID)
	if wire.Labels != nil {
		item.Labels = wire.Labels
	}
	if wire.Descriptions != nil {
		item.Descriptions = wire.Descriptions
	}
	if wire.Aliases != nil {
		item.Aliases = wire.Aliases
	}
	if wire.Sitelinks != nil {
		item.Sitelinks = wire.Sitelinks
	}
	if wire.Statements != nil {
		item.Statements = wire.Statements
	}

	return item, nil
}

func (i *Item) MarshalJSON() ([]byte, error) {
	body := map[string]any{}
	if !i.ID.IsZero() {
		body["id"] = i.ID.String()
	}
	if len(i.Labels) > 0 {
		body["labels"] = i.Labels
	}
	if len(i.Descriptions) > 0 {
		body["descriptions"] = i.Descriptions
	}
	if len(i.Aliases) > 0 {
		body["aliases"] = i.Aliases
	}
	if len(i.Sitelinks) > 0 {
		body["sitelinks"] = i.Sitelinks
	}
	if len(i.Statements) > 0 {
		body["statements"] = i.Statements
	}
	return json.Marshal(body)
}

// Clone copies the item without its response metadata, for local
// mutation before a diff.
func (i *Item) Clone() *Item {
	return &Item{
		ID:           i.ID,
		Labels:       i.Labels.Clone(),
		Descriptions: i.Descriptions.Clone(),
		Aliases:      i.Aliases.Clone(),
		Sitelinks:    i.Sitelinks.Clone(),
		Statements:   i.Statements.Clone(),
	}
}

// Property is a top-level property entity.
type Property struct {
	ID           EntityID
	Labels       Labels
	Descriptions Descriptions
	Aliases      Aliases
	Statements   Statements
	HeaderInfo   HeaderInfo
}

func NewProperty() *Property {
	return &Property{
		Labels:       NewLabels(),
		Descriptions: NewDescriptions(),
		Aliases:      NewAliases(),
		Statements:   NewStatements(),
	}
}

func NewPropertyFromJSON(data []byte) (*Property, error) {
	var wire struct {
		ID           string       `json:"id"`
		Labels       Labels       `json:"labels"`
		Descriptions Descriptions `json:"descriptions"`
		Aliases      Aliases      `json:"aliases"`
		Statements   Statements   `json:"statements"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if wire.ID == "" {
		return nil, errors.NewInvalidFieldError("id", data)
	}

	property := NewProperty()
	property.ID = PropertyID(wire.ID)
	if wire.Labels != nil {
		property.Labels = wire.Labels
	}
	if wire.Descriptions != nil {
		property.Descriptions = wire.Descriptions
	}
	if wire.Aliases != nil {
		property.Aliases = wire.Aliases
	}
	if wire.Statements != nil {
		property.Statements = wire.Statements
	}

	return property, nil
}

func (p *Property) MarshalJSON() ([]byte, error) {
	body := map[string]any{}
	if !p.ID.IsZero() {
		body["id"] = p.ID.String()
	}
	if len(p.Labels) > 0 {
		body["labels"] = p.Labels
	}
	if len(p.Descriptions) > 0 {
		body["descriptions"] = p.Descriptions
	}
	if len(p.Aliases) > 0 {
		body["aliases"] = p.Aliases
	}
	if len(p.Statements) > 0 {
		body["statements"] = p.Statements
	}
	return json.Marshal(body)
}

func (p *Property) Clone() *Property {
	return &Property{
		ID:           p.ID,
		Labels:       p.Labels.Clone(),
		Descriptions: p.Descriptions.Clone(),
		Aliases:      p.Aliases.Clone(),
		Statements:   p.Statements.Clone(),
	}
}
