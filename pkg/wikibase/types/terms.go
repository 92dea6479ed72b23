package types

import (
	"encoding/json"

	"github.com/wikibase-go/rest-client/pkg/wikibase/errors"
)

// LanguageString is a single value in a specific language.
type LanguageString struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Labels holds one label per language code.
type Labels map[string]string

func NewLabels() Labels {
	return Labels{}
}

func NewLabelsFromJSON(data []byte) (Labels, error) {
	l := Labels{}
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, errors.NewInvalidFieldError("labels", data)
	}
	return l, nil
}

func (l Labels) Get(language string) string { return l[language] }

func (l Labels) Set(language, value string) { l[language] = value }

func (l Labels) Clone() Labels {
	clone := make(Labels, len(l))
	for language, value := range l {
		clone[language] = value
	}
	return clone
}

// Descriptions holds one description per language code.
type Descriptions map[string]string

func NewDescriptions() Descriptions {
	return Descriptions{}
}

func NewDescriptionsFromJSON(data []byte) (Descriptions, error) {
	d := Descriptions{}
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, errors.NewInvalidFieldError("descriptions", data)
	}
	return d, nil
}

func (d Descriptions) Get(language string) string { return d[language] }

func (d Descriptions) Set(language, value string) { d[language] = value }

func (d Descriptions) Clone() Descriptions {
	clone := make(Descriptions, len(d))
	for language, value := range d {
		clone[language] = value
	}
	return clone
}
