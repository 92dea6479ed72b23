package types

import (
	"encoding/json"
	"fmt"

	"github.com/wikibase-go/rest-client/pkg/wikibase/errors"
)

// GregorianCalendar is the calendar model used by most time values.
const GregorianCalendar = "http://www.wikidata.org/entity/Q1985727"

// JulianCalendar is the Julian calendar model.
const JulianCalendar = "http://www.wikidata.org/entity/Q11184"

// TimePrecision is the precision of a time value, from billions of
// years (0) down to seconds (14).
type TimePrecision uint8

const (
	PrecisionBillionYears TimePrecision = iota
	PrecisionHundredMillionYears
	PrecisionTenMillionYears
	PrecisionMillionYears
	PrecisionHundredMillennia
	PrecisionTenMillennia
	PrecisionMillennia
	PrecisionCentury
	PrecisionDecade
	PrecisionYear
	PrecisionMonth
	PrecisionDay
	PrecisionHour
	PrecisionMinute
	PrecisionSecond
)

func (p TimePrecision) Valid() bool { return p <= PrecisionSecond }

// StatementValueContent is the content of a known statement value.
// The variants form a closed set.
type StatementValueContent interface {
	isValueContent()
}

type StringValue string

func (StringValue) isValueContent() {}

type TimeValue struct {
	Time          string        `json:"time"`
	Precision     TimePrecision `json:"precision"`
	CalendarModel string        `json:"calendarmodel"`
}

func (TimeValue) isValueContent() {}

type LocationValue struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Precision float64 `json:"precision"`
	Globe     string  `json:"globe"`
}

func (LocationValue) isValueContent() {}

type QuantityValue struct {
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

func (QuantityValue) isValueContent() {}

type MonolingualTextValue struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

func (MonolingualTextValue) isValueContent() {}

type valueKind string

const (
	kindValue     valueKind = "value"
	kindSomeValue valueKind = "somevalue"
	kindNoValue   valueKind = "novalue"
)

// StatementValue is a known value, an unknown value (somevalue), or
// an explicit absence of a value (novalue). The zero value is novalue.
type StatementValue struct {
	kind    valueKind
	content StatementValueContent
}

func NewValue(content StatementValueContent) StatementValue {
	return StatementValue{kind: kindValue, content: content}
}

func NewStringValue(s string) StatementValue {
	return NewValue(StringValue(s))
}

func SomeValue() StatementValue {
	return StatementValue{kind: kindSomeValue}
}

func NoValue() StatementValue {
	return StatementValue{kind: kindNoValue}
}

func (v StatementValue) IsValue() bool { return v.kind == kindValue }

func (v StatementValue) IsSomeValue() bool { return v.kind == kindSomeValue }

func (v StatementValue) IsNoValue() bool { return v.kind == kindNoValue || v.kind == "" }

// Content returns the value content, or nil for somevalue/novalue.
func (v StatementValue) Content() StatementValueContent { return v.content }

func (v StatementValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindValue:
		content, err := marshalValueContent(v.content)
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			Type    string          `json:"type"`
			Content json.RawMessage `json:"content"`
		}{Type: "value", Content: content})
	case kindSomeValue:
		return []byte(`{"type":"somevalue"}`), nil
	default:
		return []byte(`{"type":"novalue"}`), nil
	}
}

func (v *StatementValue) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Type    string          `json:"type"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return errors.NewInvalidFieldError("value", data)
	}

	switch envelope.Type {
	case "value":
		content, err := decodeValueContent(envelope.Content)
		if err != nil {
			return err
		}
		*v = StatementValue{kind: kindValue, content: content}
	case "somevalue":
		*v = StatementValue{kind: kindSomeValue}
	case "novalue":
		*v = StatementValue{kind: kindNoValue}
	default:
		return errors.NewInvalidFieldError("type", data)
	}

	return nil
}

func marshalValueContent(content StatementValueContent) ([]byte, error) {
	switch c := content.(type) {
	case StringValue:
		return json.Marshal(string(c))
	case TimeValue, LocationValue, QuantityValue, MonolingualTextValue:
		return json.Marshal(c)
	}
	return nil, fmt.Errorf("value has no content")
}

// decodeValueContent probes the shape of the content and performs a
// single typed decode for the matching variant.
func decodeValueContent(data []byte) (StatementValueContent, error) {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, errors.NewInvalidFieldError("content", data)
		}
		return StringValue(s), nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.NewInvalidFieldError("content", data)
	}

	has := func(names ...string) bool {
		for _, name := range names {
			if _, ok := fields[name]; !ok {
				return false
			}
		}
		return true
	}

	switch {
	case has("time", "precision", "calendarmodel"):
		var t TimeValue
		if err := json.Unmarshal(data, &t); err != nil || !t.Precision.Valid() {
			return nil, errors.NewInvalidFieldError("precision", data)
		}
		return t, nil
	case has("latitude", "longitude", "precision", "globe"):
		var l LocationValue
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, errors.NewInvalidFieldError("content", data)
		}
		return l, nil
	case has("amount", "unit"):
		var q QuantityValue
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, errors.NewInvalidFieldError("content", data)
		}
		return q, nil
	case has("language", "text"):
		var m MonolingualTextValue
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errors.NewInvalidFieldError("content", data)
		}
		return m, nil
	}

	return nil, errors.NewInvalidFieldError("content", data)
}
