package client

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"

	"github.com/wikibase-go/rest-client/pkg/wikibase"
	wberrors "github.com/wikibase-go/rest-client/pkg/wikibase/errors"
	"github.com/wikibase-go/rest-client/pkg/wikibase/patch"
	"github.com/wikibase-go/rest-client/pkg/wikibase/types"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput
var method = expects.RequestMethod
var path = expects.RequestPath
var body = expects.RequestBody

const itemResponseBody = `{"id":"Q42","labels":{"en":"Douglas Adams"},"descriptions":{"en":"English writer"},"aliases":{"en":["DNA"]},"sitelinks":{},"statements":{}}`

func TestRetrieveItem(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodGet),
			path("/wikibase/v1/entities/items/Q42"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(itemResponseBody)),
		),
	)
	defer s.Close()

	c := NewEntityStoreClient(s.URL())

	item, err := c.RetrieveItem(context.Background(), types.ItemID("Q42"))

	is.NoErr(err)
	is.Equal(item.ID.String(), "Q42")
	is.Equal(item.Labels["en"], "Douglas Adams")
	is.Equal(item.Aliases["en"], []string{"DNA"})
}

func TestRetrieveItemParsesResponseHeaders(t *testing.T) {
	is := is.New(t)

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", "\"12345\"")
		w.Header().Set("Last-Modified", "Fri, 01 Jan 2021 00:00:00 GMT")
		w.Write([]byte(itemResponseBody))
	}))
	defer s.Close()

	c := NewEntityStoreClient(s.URL)

	item, err := c.RetrieveItem(context.Background(), types.ItemID("Q42"))

	is.NoErr(err)
	is.Equal(item.HeaderInfo.RevisionID, uint64(12345))
	is.Equal(item.HeaderInfo.LastModified, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestRetrieveItemReturnsTypedErrorOnNotFound(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusNotFound),
			response.Body([]byte(`{"code":"item-not-found","message":"Could not find an item with the ID: Q42"}`)),
		),
	)
	defer s.Close()

	c := NewEntityStoreClient(s.URL())

	_, err := c.RetrieveItem(context.Background(), types.ItemID("Q42"))

	is.True(goerrors.Is(err, wberrors.ErrNotFound))
	is.True(goerrors.Is(err, wberrors.ErrAPIError))

	apiErr := &wberrors.APIError{}
	is.True(goerrors.As(err, &apiErr))
	is.Equal(apiErr.Payload.Code, "item-not-found")
}

func TestCreateItem(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/wikibase/v1/entities/items"),
			body(`{"bot":false,"comment":"","item":{"labels":{"en":"New item"}},"tags":[]}`),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusCreated),
			response.Body([]byte(`{"id":"Q123","labels":{"en":"New item"}}`)),
		),
	)
	defer s.Close()

	c := NewEntityStoreClient(s.URL())

	item := types.NewItem()
	item.Labels["en"] = "New item"

	created, err := c.CreateItem(context.Background(), *item, wikibase.EditMetadata{})

	is.NoErr(err)
	is.Equal(created.ID.String(), "Q123")
}

func TestCreateItemRejectsPresetID(t *testing.T) {
	is := is.New(t)

	c := NewEntityStoreClient("http://localhost")

	item := types.NewItem()
	item.ID = types.ItemID("Q42")

	_, err := c.CreateItem(context.Background(), *item, wikibase.EditMetadata{})

	is.True(goerrors.Is(err, wberrors.ErrHasID))
}

func TestPatchLabelsSendsPatchEnvelope(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPatch),
			path("/wikibase/v1/entities/items/Q42/labels"),
			body(`{"bot":true,"comment":"rename","patch":[{"op":"replace","path":"/en","value":"Douglas Noel Adams"}],"tags":["tool"]}`),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"en":"Douglas Noel Adams"}`)),
		),
	)
	defer s.Close()

	c := NewEntityStoreClient(s.URL())

	p := patch.NewLabelsPatch()
	p.ReplaceLang("en", "Douglas Noel Adams")

	labels, _, err := c.PatchLabels(context.Background(), types.ItemID("Q42"), p, wikibase.EditMetadata{
		Comment: "rename",
		Bot:     true,
		Tags:    []string{"tool"},
	})

	is.NoErr(err)
	is.Equal(labels["en"], "Douglas Noel Adams")
}

func TestPatchRequestCarriesHeaders(t *testing.T) {
	is := is.New(t)

	var captured http.Header
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		w.Write([]byte(`{"en":"Douglas Adams"}`))
	}))
	defer s.Close()

	c := NewEntityStoreClient(s.URL, AccessToken("secret-token"), UserAgent("test-agent/1.0"))

	p := patch.NewLabelsPatch()
	p.ReplaceLang("en", "Douglas Adams")

	_, _, err := c.PatchLabels(context.Background(), types.ItemID("Q42"), p, wikibase.EditMetadata{
		RevisionMatch: wikibase.RevisionMatch{
			UnmodifiedSinceRevisions: []uint64{12345},
		},
	})

	is.NoErr(err)
	is.Equal(captured.Get("Content-Type"), "application/json-patch+json")
	is.Equal(captured.Get("Authorization"), "Bearer secret-token")
	is.Equal(captured.Get("User-Agent"), "test-agent/1.0")
	is.Equal(captured.Get("If-Match"), "\"12345\"")
}

func TestRetrieveAliasesInLanguageTreatsNotFoundAsEmpty(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusNotFound),
			response.Body([]byte(`{"code":"aliases-not-defined","message":"Item with the ID Q42 does not have aliases in the language: de"}`)),
		),
	)
	defer s.Close()

	c := NewEntityStoreClient(s.URL())

	aliases, _, err := c.RetrieveAliasesInLanguage(context.Background(), types.ItemID("Q42"), "de")

	is.NoErr(err)
	is.Equal(aliases, []string{})
}

func TestAddAliases(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/wikibase/v1/entities/items/Q42/aliases/en"),
			body(`{"aliases":["DNA"],"bot":false,"comment":"","tags":[]}`),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`["Douglas Noel Adams","DNA"]`)),
		),
	)
	defer s.Close()

	c := NewEntityStoreClient(s.URL())

	merged, _, err := c.AddAliases(context.Background(), types.ItemID("Q42"), "en", []string{"DNA"}, wikibase.EditMetadata{})

	is.NoErr(err)
	is.Equal(merged, []string{"Douglas Noel Adams", "DNA"})
}

func TestPostStatementClearsID(t *testing.T) {
	is := is.New(t)

	var sent map[string]any
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.NoErr(json.NewDecoder(r.Body).Decode(&sent))
		w.Write([]byte(`{"id":"Q42$NEW","property":{"id":"P31"},"value":{"type":"value","content":"human"},"rank":"normal"}`))
	}))
	defer s.Close()

	c := NewEntityStoreClient(s.URL)

	st := types.NewStringStatement("P31", "human")
	st.ID = "Q42$OLD"

	created, _, err := c.PostStatement(context.Background(), types.ItemID("Q42"), st, wikibase.EditMetadata{})

	is.NoErr(err)
	is.Equal(created.ID, "Q42$NEW")

	wire := sent["statement"].(map[string]any)
	_, hasID := wire["id"]
	is.True(!hasID)
}

func TestPutStatementRequiresID(t *testing.T) {
	is := is.New(t)

	c := NewEntityStoreClient("http://localhost")

	_, _, err := c.PutStatement(context.Background(), types.NewStringStatement("P31", "human"), wikibase.EditMetadata{})

	is.True(goerrors.Is(err, wberrors.ErrMissingID))
}

func TestDeleteStatement(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodDelete),
			path("/wikibase/v1/statements/Q42$AAAA"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`"Statement deleted"`)),
		),
	)
	defer s.Close()

	c := NewEntityStoreClient(s.URL())

	err := c.DeleteStatement(context.Background(), "Q42$AAAA", wikibase.EditMetadata{})

	is.NoErr(err)
}

func TestDeleteStatementRejectsUnexpectedBody(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"something":"else"}`)),
		),
	)
	defer s.Close()

	c := NewEntityStoreClient(s.URL())

	err := c.DeleteStatement(context.Background(), "Q42$AAAA", wikibase.EditMetadata{})

	is.True(goerrors.Is(err, wberrors.ErrUnexpectedResponse))
}

func TestSearchItems(t *testing.T) {
	is := is.New(t)

	searchResponse := `{"results":[
		{"id":"Q123","display-label":{"language":"en","value":"potato"},"description":{"language":"en","value":"staple food"},"match":{"type":"label","language":"en","text":"potato"}},
		{"id":"Q234","match":{"type":"alias","language":"en","text":"spud"}},
		{"bogus":true}
	]}`

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodGet),
			path("/wikibase/v1/search/items"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(searchResponse)),
		),
	)
	defer s.Close()

	c := NewEntityStoreClient(s.URL())

	results, err := c.SearchItems(context.Background(), "potato", "en")

	is.NoErr(err)
	is.Equal(len(results), 3)
	is.Equal(results[0].ID, "Q123")
	is.Equal(results[0].DisplayLabel.Value, "potato")
	is.Equal(results[1].ID, "Q234")
	is.Equal(results[1].Match.Type, "alias")
}

func TestSearchPassesQueryParameters(t *testing.T) {
	is := is.New(t)

	var query string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`{"results":[]}`))
	}))
	defer s.Close()

	c := NewEntityStoreClient(s.URL)

	_, err := c.SearchProperties(context.Background(), "instance of", "en", Limit(20), Offset(40))

	is.NoErr(err)
	is.Equal(query, "q=instance+of&language=en&limit=20&offset=40")
}

func TestAPIVersionChangesRequestPaths(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodGet),
			path("/wikibase/v2/entities/properties/P31"),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"id":"P31","data-type":"wikibase-item","labels":{"en":"instance of"}}`)),
		),
	)
	defer s.Close()

	c := NewEntityStoreClient(s.URL(), APIVersion(2))

	property, err := c.RetrieveProperty(context.Background(), types.PropertyID("P31"))

	is.NoErr(err)
	is.Equal(property.ID.String(), "P31")
}
