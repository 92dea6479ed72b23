package types

import (
	"encoding/json"
	goerrors "errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/wikibase-go/rest-client/pkg/wikibase/errors"
)

func TestAliasesPushDeduplicates(t *testing.T) {
	is := is.New(t)

	a := NewAliases()
	a.Push("en", "Foo")
	a.Push("en", "Bar")
	a.Push("en", "Foo")

	is.Equal(a.Get("en"), []string{"Foo", "Bar"})
}

func TestSitelinksSetReplaces(t *testing.T) {
	is := is.New(t)

	s := NewSitelinks()
	s.Set("enwiki", NewSitelink("Douglas Adams"))
	s.Set("enwiki", NewSitelink("Douglas Noel Adams"))

	link, ok := s.Get("enwiki")
	is.True(ok)
	is.Equal(link.Title, "Douglas Noel Adams")
}

func TestSitelinkMarshalsEmptyBadges(t *testing.T) {
	is := is.New(t)

	b, err := json.Marshal(Sitelink{Title: "Foo"})

	is.NoErr(err)
	is.Equal(string(b), `{"title":"Foo","badges":[]}`)
}

func TestEntityIDParsing(t *testing.T) {
	is := is.New(t)

	id, err := ParseEntityID("Q42")
	is.NoErr(err)
	is.True(id.IsItem())

	group, err := id.Group()
	is.NoErr(err)
	is.Equal(group, "items")

	id, err = ParseEntityID("P31")
	is.NoErr(err)
	is.True(id.IsProperty())

	typeName, err := id.TypeName()
	is.NoErr(err)
	is.Equal(typeName, "property")

	_, err = ParseEntityID("X1")
	is.True(err != nil)
}

func TestEntityIDZeroValue(t *testing.T) {
	is := is.New(t)

	var id EntityID
	is.True(id.IsZero())

	_, err := id.ID()
	is.True(goerrors.Is(err, errors.ErrNoEntityID))

	_, err = id.Group()
	is.True(goerrors.Is(err, errors.ErrNoEntityID))
}

func TestCustomIDScheme(t *testing.T) {
	is := is.New(t)

	scheme := IDScheme{ItemLetter: 'A', PropertyLetter: 'B'}

	id, err := scheme.Parse("A123")
	is.NoErr(err)
	is.True(id.IsItem())

	id, err = scheme.Parse("B123")
	is.NoErr(err)
	is.True(id.IsProperty())
}

func TestNewStatementID(t *testing.T) {
	is := is.New(t)

	id, err := NewStatementID(ItemID("Q42"))
	is.NoErr(err)
	is.True(strings.HasPrefix(id, "Q42$"))
	is.Equal(id, strings.ToUpper(id))

	_, err = NewStatementID(EntityID{})
	is.True(goerrors.Is(err, errors.ErrNoEntityID))
}

func TestHeaderInfoParsing(t *testing.T) {
	is := is.New(t)

	header := http.Header{}
	header.Set("ETag", "\"1234567890\"")
	header.Set("Last-Modified", "Wed, 21 Oct 2015 07:28:00 GMT")

	hi := NewHeaderInfo(header)

	is.Equal(hi.RevisionID, uint64(1234567890))
	is.Equal(hi.LastModified, time.Date(2015, 10, 21, 7, 28, 0, 0, time.UTC))
}

func TestHeaderInfoToleratesMissingHeaders(t *testing.T) {
	is := is.New(t)

	hi := NewHeaderInfo(http.Header{})

	is.Equal(hi.RevisionID, uint64(0))
	is.True(hi.LastModified.IsZero())
}

func TestStatementValueRoundTrip(t *testing.T) {
	is := is.New(t)

	values := []StatementValue{
		NewStringValue("Foo"),
		NewValue(TimeValue{Time: "+2021-01-01T00:00:00Z", Precision: PrecisionDay, CalendarModel: GregorianCalendar}),
		NewValue(LocationValue{Latitude: 52.5, Longitude: 13.4, Precision: 0.001, Globe: "http://www.wikidata.org/entity/Q2"}),
		NewValue(QuantityValue{Amount: "+42", Unit: "1"}),
		NewValue(MonolingualTextValue{Language: "en", Text: "Foo"}),
		SomeValue(),
		NoValue(),
	}

	for _, value := range values {
		b, err := json.Marshal(value)
		is.NoErr(err)

		var decoded StatementValue
		is.NoErr(json.Unmarshal(b, &decoded))
		is.Equal(decoded, value)
	}
}

func TestStatementValueSerializedShape(t *testing.T) {
	is := is.New(t)

	b, err := json.Marshal(NewStringValue("foo"))
	is.NoErr(err)
	is.Equal(string(b), `{"type":"value","content":"foo"}`)

	b, err = json.Marshal(SomeValue())
	is.NoErr(err)
	is.Equal(string(b), `{"type":"somevalue"}`)
}

func TestStatementValueRejectsUnknownShape(t *testing.T) {
	is := is.New(t)

	var v StatementValue
	err := json.Unmarshal([]byte(`{"type":"value","content":{"frob":1}}`), &v)
	is.True(goerrors.Is(err, errors.ErrInvalidField))

	err = json.Unmarshal([]byte(`{"type":"maybe"}`), &v)
	is.True(goerrors.Is(err, errors.ErrInvalidField))
}

func TestStatementValueRejectsInvalidPrecision(t *testing.T) {
	is := is.New(t)

	var v StatementValue
	err := json.Unmarshal([]byte(`{"type":"value","content":{"time":"+2021-01-01T00:00:00Z","precision":15,"calendarmodel":"`+GregorianCalendar+`"}}`), &v)
	is.True(goerrors.Is(err, errors.ErrInvalidField))
}

func TestStatementRoundTrip(t *testing.T) {
	is := is.New(t)

	statement := NewStringStatement("P31", "Q5")
	statement.ID = "Q42$ABCD-1234"
	statement.Qualifiers = append(statement.Qualifiers, PropertyValue{
		Property: NewPropertyType("P580"),
		Value:    SomeValue(),
	})
	statement.References = append(statement.References, Reference{
		Hash: "deadbeef",
		Parts: []PropertyValue{
			{Property: NewPropertyType("P854"), Value: NewStringValue("https://example.org")},
		},
	})

	b, err := json.Marshal(statement)
	is.NoErr(err)

	decoded, err := NewStatementFromJSON(b)
	is.NoErr(err)
	is.Equal(decoded, statement)
}

func TestStatementRejectsMissingRank(t *testing.T) {
	is := is.New(t)

	_, err := NewStatementFromJSON([]byte(`{"property":{"id":"P31"},"value":{"type":"novalue"}}`))
	is.True(goerrors.Is(err, errors.ErrInvalidField))
}

func TestStatementsInsertAndLen(t *testing.T) {
	is := is.New(t)

	s := NewStatements()
	s.Insert(NewStringStatement("P31", "Q5"))
	s.Insert(NewStringStatement("P31", "Q42"))
	s.Insert(NewStringStatement("P21", "Q6581097"))

	is.Equal(s.Len(), 3)
	is.Equal(len(s.Property("P31")), 2)
	is.Equal(len(s.Property("P21")), 1)
	is.Equal(len(s.Property("P999")), 0)
}

func TestItemRoundTrip(t *testing.T) {
	is := is.New(t)

	item := NewItem()
	item.ID = ItemID("Q42")
	item.Labels.Set("en", "Douglas Adams")
	item.Descriptions.Set("en", "English author")
	item.Aliases.Push("en", "DNA")
	item.Sitelinks.Set("enwiki", NewSitelink("Douglas Adams"))

	statement := NewStringStatement("P31", "Q5")
	statement.ID = "Q42$F078E5B3-F9A8-480E-B7AC-D97778CBBEF9"
	item.Statements.Insert(statement)

	b, err := json.Marshal(item)
	is.NoErr(err)

	decoded, err := NewItemFromJSON(b)
	is.NoErr(err)
	is.Equal(decoded, item)
}

func TestItemFromJSONRequiresID(t *testing.T) {
	is := is.New(t)

	_, err := NewItemFromJSON([]byte(`{"labels":{"en":"Foo"}}`))
	is.True(goerrors.Is(err, errors.ErrInvalidField))
}

func TestItemMarshalOmitsUnsetID(t *testing.T) {
	is := is.New(t)

	item := NewItem()
	item.Labels.Set("en", "New item")

	b, err := json.Marshal(item)
	is.NoErr(err)
	is.Equal(string(b), `{"labels":{"en":"New item"}}`)
}

func TestItemCloneIsIndependent(t *testing.T) {
	is := is.New(t)

	item := NewItem()
	item.ID = ItemID("Q42")
	item.Labels.Set("en", "Douglas Adams")
	item.Aliases.Push("en", "DNA")

	clone := item.Clone()
	clone.Labels.Set("en", "Changed")
	clone.Aliases.Push("en", "Added")

	is.Equal(item.Labels.Get("en"), "Douglas Adams")
	is.Equal(item.Aliases.Get("en"), []string{"DNA"})
}

func TestPropertyRoundTrip(t *testing.T) {
	is := is.New(t)

	property := NewProperty()
	property.ID = PropertyID("P31")
	property.Labels.Set("en", "instance of")

	b, err := json.Marshal(property)
	is.NoErr(err)

	decoded, err := NewPropertyFromJSON(b)
	is.NoErr(err)
	is.Equal(decoded, property)
}

func TestParseDataType(t *testing.T) {
	is := is.New(t)

	dt, err := ParseDataType("wikibase-item")
	is.NoErr(err)
	is.Equal(dt, DataTypeWikibaseItem)

	_, err = ParseDataType("frobnicator")
	is.True(err != nil)
}

func TestParseStatementRank(t *testing.T) {
	is := is.New(t)

	rank, err := ParseStatementRank("Preferred")
	is.NoErr(err)
	is.Equal(rank, RankPreferred)

	_, err = ParseStatementRank("best")
	is.True(err != nil)
}
