package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wikibase-go/rest-client/pkg/wikibase"
	"github.com/wikibase-go/rest-client/pkg/wikibase/errors"
	"github.com/wikibase-go/rest-client/pkg/wikibase/patch"
	"github.com/wikibase-go/rest-client/pkg/wikibase/types"
)

//go:generate moq -rm -out ../../test/entitystoreclient_mock.go . EntityStoreClient

type EntityStoreClient interface {
	RetrieveItem(ctx context.Context, id types.EntityID) (*types.Item, error)
	RetrieveProperty(ctx context.Context, id types.EntityID) (*types.Property, error)
	CreateItem(ctx context.Context, item types.Item, em wikibase.EditMetadata) (*types.Item, error)
	CreateProperty(ctx context.Context, property types.Property, em wikibase.EditMetadata) (*types.Property, error)
	PatchItem(ctx context.Context, id types.EntityID, p *patch.EntityPatch, em wikibase.EditMetadata) (*types.Item, error)
	PatchProperty(ctx context.Context, id types.EntityID, p *patch.EntityPatch, em wikibase.EditMetadata) (*types.Property, error)

	RetrieveLabels(ctx context.Context, id types.EntityID) (types.Labels, types.HeaderInfo, error)
	PatchLabels(ctx context.Context, id types.EntityID, p *patch.TermsPatch, em wikibase.EditMetadata) (types.Labels, types.HeaderInfo, error)
	RetrieveDescriptions(ctx context.Context, id types.EntityID) (types.Descriptions, types.HeaderInfo, error)
	PatchDescriptions(ctx context.Context, id types.EntityID, p *patch.TermsPatch, em wikibase.EditMetadata) (types.Descriptions, types.HeaderInfo, error)

	RetrieveAliases(ctx context.Context, id types.EntityID) (types.Aliases, types.HeaderInfo, error)
	RetrieveAliasesInLanguage(ctx context.Context, id types.EntityID, language string) ([]string, types.HeaderInfo, error)
	AddAliases(ctx context.Context, id types.EntityID, language string, aliases []string, em wikibase.EditMetadata) ([]string, types.HeaderInfo, error)
	PatchAliases(ctx context.Context, id types.EntityID, p *patch.AliasesPatch, em wikibase.EditMetadata) (types.Aliases, types.HeaderInfo, error)

	RetrieveSitelinks(ctx context.Context, id types.EntityID) (types.Sitelinks, types.HeaderInfo, error)
	PatchSitelinks(ctx context.Context, id types.EntityID, p *patch.SitelinksPatch, em wikibase.EditMetadata) (types.Sitelinks, types.HeaderInfo, error)

	RetrieveStatements(ctx context.Context, id types.EntityID) (types.Statements, types.HeaderInfo, error)
	PatchStatements(ctx context.Context, id types.EntityID, p *patch.StatementsPatch, em wikibase.EditMetadata) (types.Statements, types.HeaderInfo, error)
	RetrieveStatement(ctx context.Context, statementID string) (types.Statement, types.HeaderInfo, error)
	PatchStatement(ctx context.Context, p *patch.StatementPatch, em wikibase.EditMetadata) (types.Statement, types.HeaderInfo, error)
	PostStatement(ctx context.Context, id types.EntityID, statement types.Statement, em wikibase.EditMetadata) (types.Statement, types.HeaderInfo, error)
	PutStatement(ctx context.Context, statement types.Statement, em wikibase.EditMetadata) (types.Statement, types.HeaderInfo, error)
	DeleteStatement(ctx context.Context, statementID string, em wikibase.EditMetadata) error

	SearchItems(ctx context.Context, query, language string, parameters ...RequestDecoratorFunc) ([]wikibase.SearchResult, error)
	SearchProperties(ctx context.Context, query, language string, parameters ...RequestDecoratorFunc) ([]wikibase.SearchResult, error)
}

type RequestDecoratorFunc func([]string) []string

// Option configures the client returned by NewEntityStoreClient.
type Option func(*wbClient)

const defaultUserAgent = "wikibase-go-rest-client/0.1"

func AccessToken(token string) Option {
	return func(c *wbClient) {
		c.tokens = staticTokenProvider(token)
	}
}

func WithTokenProvider(tokens TokenProvider) Option {
	return func(c *wbClient) {
		c.tokens = tokens
	}
}

func UserAgent(userAgent string) Option {
	return func(c *wbClient) {
		c.userAgent = userAgent
	}
}

func APIVersion(version int) Option {
	return func(c *wbClient) {
		c.apiVersion = version
	}
}

func Debug(enabled string) Option {
	return func(c *wbClient) {
		c.debug = (enabled == "true")
	}
}

// NewEntityStoreClient creates a client for the REST API rooted at
// apiURL, for instance https://www.wikidata.org/w/rest.php.
func NewEntityStoreClient(apiURL string, options ...Option) EntityStoreClient {
	c := &wbClient{
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		apiVersion: 1,
		userAgent:  defaultUserAgent,
		debug:      false,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const (
	TraceAttributeEntityID    string = "entity-id"
	TraceAttributeStatementID string = "statement-id"
)

var tracer = otel.Tracer("wikibase-rest-client")

type wbClient struct {
	apiURL     string
	apiVersion int
	userAgent  string
	tokens     TokenProvider
	debug      bool
}

func (c wbClient) RetrieveItem(ctx context.Context, id types.EntityID) (*types.Item, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-item",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	group, err := id.Group()
	if err != nil {
		return nil, err
	}

	responseBody, headerInfo, err := c.retrieve(ctx, fmt.Sprintf("/entities/%s/%s", group, id))
	if err != nil {
		return nil, err
	}

	item, err := types.NewItemFromJSON(responseBody)
	if err != nil {
		return nil, err
	}

	item.HeaderInfo = headerInfo
	return item, nil
}

func (c wbClient) RetrieveProperty(ctx context.Context, id types.EntityID) (*types.Property, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-property",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	group, err := id.Group()
	if err != nil {
		return nil, err
	}

	responseBody, headerInfo, err := c.retrieve(ctx, fmt.Sprintf("/entities/%s/%s", group, id))
	if err != nil {
		return nil, err
	}

	property, err := types.NewPropertyFromJSON(responseBody)
	if err != nil {
		return nil, err
	}

	property.HeaderInfo = headerInfo
	return property, nil
}

func (c wbClient) CreateItem(ctx context.Context, item types.Item, em wikibase.EditMetadata) (*types.Item, error) {
	var err error

	ctx, span := tracer.Start(ctx, "create-item")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if !item.ID.IsZero() {
		err = errors.NewHasIDError("item already has an id, use a patch to modify it")
		return nil, err
	}

	responseBody, headerInfo, err := c.mutate(ctx, http.MethodPost, "/entities/items",
		map[string]any{"item": &item}, em,
	)
	if err != nil {
		return nil, err
	}

	created, err := types.NewItemFromJSON(responseBody)
	if err != nil {
		return nil, err
	}

	created.HeaderInfo = headerInfo
	return created, nil
}

func (c wbClient) CreateProperty(ctx context.Context, property types.Property, em wikibase.EditMetadata) (*types.Property, error) {
	var err error

	ctx, span := tracer.Start(ctx, "create-property")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if !property.ID.IsZero() {
		err = errors.NewHasIDError("property already has an id, use a patch to modify it")
		return nil, err
	}

	responseBody, headerInfo, err := c.mutate(ctx, http.MethodPost, "/entities/properties",
		map[string]any{"property": &property}, em,
	)
	if err != nil {
		return nil, err
	}

	created, err := types.NewPropertyFromJSON(responseBody)
	if err != nil {
		return nil, err
	}

	created.HeaderInfo = headerInfo
	return created, nil
}

func (c wbClient) PatchItem(ctx context.Context, id types.EntityID, p *patch.EntityPatch, em wikibase.EditMetadata) (*types.Item, error) {
	var err error

	ctx, span := tracer.Start(ctx, "patch-item",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path, err := p.Path(id)
	if err != nil {
		return nil, err
	}

	responseBody, headerInfo, err := c.applyPatch(ctx, path, p.Entries(), em)
	if err != nil {
		return nil, err
	}

	item, err := types.NewItemFromJSON(responseBody)
	if err != nil {
		return nil, err
	}

	item.HeaderInfo = headerInfo
	return item, nil
}

func (c wbClient) PatchProperty(ctx context.Context, id types.EntityID, p *patch.EntityPatch, em wikibase.EditMetadata) (*types.Property, error) {
	var err error

	ctx, span := tracer.Start(ctx, "patch-property",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path, err := p.Path(id)
	if err != nil {
		return nil, err
	}

	responseBody, headerInfo, err := c.applyPatch(ctx, path, p.Entries(), em)
	if err != nil {
		return nil, err
	}

	property, err := types.NewPropertyFromJSON(responseBody)
	if err != nil {
		return nil, err
	}

	property.HeaderInfo = headerInfo
	return property, nil
}

func (c wbClient) RetrieveLabels(ctx context.Context, id types.EntityID) (types.Labels, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-labels",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	responseBody, headerInfo, err := c.retrieveSubResource(ctx, id, "labels")
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	labels, err := types.NewLabelsFromJSON(responseBody)
	return labels, headerInfo, err
}

func (c wbClient) PatchLabels(ctx context.Context, id types.EntityID, p *patch.TermsPatch, em wikibase.EditMetadata) (types.Labels, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "patch-labels",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path, err := p.Path(id)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	responseBody, headerInfo, err := c.applyPatch(ctx, path, p.Entries(), em)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	labels, err := types.NewLabelsFromJSON(responseBody)
	return labels, headerInfo, err
}

func (c wbClient) RetrieveDescriptions(ctx context.Context, id types.EntityID) (types.Descriptions, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-descriptions",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	responseBody, headerInfo, err := c.retrieveSubResource(ctx, id, "descriptions")
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	descriptions, err := types.NewDescriptionsFromJSON(responseBody)
	return descriptions, headerInfo, err
}

func (c wbClient) PatchDescriptions(ctx context.Context, id types.EntityID, p *patch.TermsPatch, em wikibase.EditMetadata) (types.Descriptions, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "patch-descriptions",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path, err := p.Path(id)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	responseBody, headerInfo, err := c.applyPatch(ctx, path, p.Entries(), em)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	descriptions, err := types.NewDescriptionsFromJSON(responseBody)
	return descriptions, headerInfo, err
}

func (c wbClient) RetrieveAliases(ctx context.Context, id types.EntityID) (types.Aliases, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-aliases",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	responseBody, headerInfo, err := c.retrieveSubResource(ctx, id, "aliases")
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	aliases, err := types.NewAliasesFromJSON(responseBody)
	return aliases, headerInfo, err
}

// RetrieveAliasesInLanguage returns the aliases of an entity in a
// single language. A 404 means the entity has no aliases in that
// language and yields an empty list, not an error.
func (c wbClient) RetrieveAliasesInLanguage(ctx context.Context, id types.EntityID, language string) ([]string, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-aliases-in-language",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	group, err := id.Group()
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	endpoint := fmt.Sprintf("/entities/%s/%s/aliases/%s", group, id, url.PathEscape(language))

	response, responseBody, err := c.callEntityStore(ctx, http.MethodGet, endpoint, nil, "", nil)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	headerInfo := types.NewHeaderInfo(response.Header)

	if response.StatusCode == http.StatusNotFound {
		return []string{}, headerInfo, nil
	}

	if response.StatusCode != http.StatusOK {
		err = c.responseError(response, responseBody)
		return nil, types.HeaderInfo{}, err
	}

	var aliases []string
	if err = json.Unmarshal(responseBody, &aliases); err != nil {
		err = fmt.Errorf("failed to unmarshal aliases: %s (%w)", err.Error(), errors.ErrBadResponse)
		return nil, types.HeaderInfo{}, err
	}

	return aliases, headerInfo, nil
}

// AddAliases appends aliases to an entity's list for one language.
func (c wbClient) AddAliases(ctx context.Context, id types.EntityID, language string, aliases []string, em wikibase.EditMetadata) ([]string, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "add-aliases",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	group, err := id.Group()
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	endpoint := fmt.Sprintf("/entities/%s/%s/aliases/%s", group, id, url.PathEscape(language))

	responseBody, headerInfo, err := c.mutate(ctx, http.MethodPost, endpoint,
		map[string]any{"aliases": aliases}, em,
	)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	var merged []string
	if err = json.Unmarshal(responseBody, &merged); err != nil {
		err = fmt.Errorf("failed to unmarshal aliases: %s (%w)", err.Error(), errors.ErrBadResponse)
		return nil, types.HeaderInfo{}, err
	}

	return merged, headerInfo, nil
}

func (c wbClient) PatchAliases(ctx context.Context, id types.EntityID, p *patch.AliasesPatch, em wikibase.EditMetadata) (types.Aliases, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "patch-aliases",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path, err := p.Path(id)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	responseBody, headerInfo, err := c.applyPatch(ctx, path, p.Entries(), em)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	aliases, err := types.NewAliasesFromJSON(responseBody)
	return aliases, headerInfo, err
}

func (c wbClient) RetrieveSitelinks(ctx context.Context, id types.EntityID) (types.Sitelinks, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-sitelinks",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	responseBody, headerInfo, err := c.retrieveSubResource(ctx, id, "sitelinks")
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	sitelinks, err := types.NewSitelinksFromJSON(responseBody)
	return sitelinks, headerInfo, err
}

func (c wbClient) PatchSitelinks(ctx context.Context, id types.EntityID, p *patch.SitelinksPatch, em wikibase.EditMetadata) (types.Sitelinks, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "patch-sitelinks",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path, err := p.Path(id)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	responseBody, headerInfo, err := c.applyPatch(ctx, path, p.Entries(), em)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	sitelinks, err := types.NewSitelinksFromJSON(responseBody)
	return sitelinks, headerInfo, err
}

func (c wbClient) RetrieveStatements(ctx context.Context, id types.EntityID) (types.Statements, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-statements",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	responseBody, headerInfo, err := c.retrieveSubResource(ctx, id, "statements")
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	statements, err := types.NewStatementsFromJSON(responseBody)
	return statements, headerInfo, err
}

func (c wbClient) PatchStatements(ctx context.Context, id types.EntityID, p *patch.StatementsPatch, em wikibase.EditMetadata) (types.Statements, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "patch-statements",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path, err := p.Path(id)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	responseBody, headerInfo, err := c.applyPatch(ctx, path, p.Entries(), em)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	statements, err := types.NewStatementsFromJSON(responseBody)
	return statements, headerInfo, err
}

func (c wbClient) RetrieveStatement(ctx context.Context, statementID string) (types.Statement, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-statement",
		trace.WithAttributes(attribute.String(TraceAttributeStatementID, statementID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	responseBody, headerInfo, err := c.retrieve(ctx, "/statements/"+url.PathEscape(statementID))
	if err != nil {
		return types.Statement{}, types.HeaderInfo{}, err
	}

	statement, err := types.NewStatementFromJSON(responseBody)
	return statement, headerInfo, err
}

func (c wbClient) PatchStatement(ctx context.Context, p *patch.StatementPatch, em wikibase.EditMetadata) (types.Statement, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "patch-statement",
		trace.WithAttributes(attribute.String(TraceAttributeStatementID, p.StatementID())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	responseBody, headerInfo, err := c.applyPatch(ctx, p.Path(), p.Entries(), em)
	if err != nil {
		return types.Statement{}, types.HeaderInfo{}, err
	}

	statement, err := types.NewStatementFromJSON(responseBody)
	return statement, headerInfo, err
}

// PostStatement creates a new statement on an entity. Any ID already
// set on the statement is cleared, since the store assigns one.
func (c wbClient) PostStatement(ctx context.Context, id types.EntityID, statement types.Statement, em wikibase.EditMetadata) (types.Statement, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "post-statement",
		trace.WithAttributes(attribute.String(TraceAttributeEntityID, id.String())),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	group, err := id.Group()
	if err != nil {
		return types.Statement{}, types.HeaderInfo{}, err
	}

	statement.ID = ""

	endpoint := fmt.Sprintf("/entities/%s/%s/statements", group, id)
	responseBody, headerInfo, err := c.mutate(ctx, http.MethodPost, endpoint,
		map[string]any{"statement": statement}, em,
	)
	if err != nil {
		return types.Statement{}, types.HeaderInfo{}, err
	}

	created, err := types.NewStatementFromJSON(responseBody)
	return created, headerInfo, err
}

func (c wbClient) PutStatement(ctx context.Context, statement types.Statement, em wikibase.EditMetadata) (types.Statement, types.HeaderInfo, error) {
	var err error

	ctx, span := tracer.Start(ctx, "put-statement",
		trace.WithAttributes(attribute.String(TraceAttributeStatementID, statement.ID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if statement.ID == "" {
		err = errors.NewMissingIDError("statement has no id to replace")
		return types.Statement{}, types.HeaderInfo{}, err
	}

	endpoint := "/statements/" + url.PathEscape(statement.ID)
	responseBody, headerInfo, err := c.mutate(ctx, http.MethodPut, endpoint,
		map[string]any{"statement": statement}, em,
	)
	if err != nil {
		return types.Statement{}, types.HeaderInfo{}, err
	}

	replaced, err := types.NewStatementFromJSON(responseBody)
	return replaced, headerInfo, err
}

func (c wbClient) DeleteStatement(ctx context.Context, statementID string, em wikibase.EditMetadata) error {
	var err error

	ctx, span := tracer.Start(ctx, "delete-statement",
		trace.WithAttributes(attribute.String(TraceAttributeStatementID, statementID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	endpoint := "/statements/" + url.PathEscape(statementID)
	responseBody, _, err := c.mutate(ctx, http.MethodDelete, endpoint, map[string]any{}, em)
	if err != nil {
		return err
	}

	var acknowledgement string
	if err = json.Unmarshal(responseBody, &acknowledgement); err != nil || acknowledgement != "Statement deleted" {
		err = errors.NewUnexpectedResponseError(string(responseBody))
		return err
	}

	return nil
}

func (c wbClient) SearchItems(ctx context.Context, query, language string, parameters ...RequestDecoratorFunc) ([]wikibase.SearchResult, error) {
	return c.search(ctx, "items", query, language, parameters)
}

func (c wbClient) SearchProperties(ctx context.Context, query, language string, parameters ...RequestDecoratorFunc) ([]wikibase.SearchResult, error) {
	return c.search(ctx, "properties", query, language, parameters)
}

func (c wbClient) search(ctx context.Context, group, query, language string, parameters []RequestDecoratorFunc) ([]wikibase.SearchResult, error) {
	var err error

	ctx, span := tracer.Start(ctx, "search-"+group)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	params := make([]string, 0, 4)
	params = append(params, "q="+url.QueryEscape(query), "language="+url.QueryEscape(language))
	for _, rdf := range parameters {
		params = rdf(params)
	}

	endpoint := fmt.Sprintf("/search/%s?%s", group, strings.Join(params, "&"))

	response, responseBody, err := c.callEntityStore(ctx, http.MethodGet, endpoint, nil, "application/json", nil)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		err = c.responseError(response, responseBody)
		return nil, err
	}

	var envelope struct {
		Results []json.RawMessage `json:"results"`
	}
	if err = json.Unmarshal(responseBody, &envelope); err != nil {
		err = fmt.Errorf("failed to unmarshal search response: %s (%w)", err.Error(), errors.ErrBadResponse)
		return nil, err
	}

	// results that do not decode are dropped rather than failing the
	// whole search
	results := make([]wikibase.SearchResult, 0, len(envelope.Results))
	for _, raw := range envelope.Results {
		var result wikibase.SearchResult
		if json.Unmarshal(raw, &result) == nil {
			results = append(results, result)
		}
	}

	return results, nil
}

func (c wbClient) retrieve(ctx context.Context, endpoint string) ([]byte, types.HeaderInfo, error) {
	response, responseBody, err := c.callEntityStore(ctx, http.MethodGet, endpoint, nil, "", nil)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, types.HeaderInfo{}, c.responseError(response, responseBody)
	}

	return responseBody, types.NewHeaderInfo(response.Header), nil
}

func (c wbClient) retrieveSubResource(ctx context.Context, id types.EntityID, subResource string) ([]byte, types.HeaderInfo, error) {
	group, err := id.Group()
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	return c.retrieve(ctx, fmt.Sprintf("/entities/%s/%s/%s", group, id, subResource))
}

// applyPatch sends a JSON Patch document to a sub-resource and
// returns the body and header metadata of the store's response.
func (c wbClient) applyPatch(ctx context.Context, endpoint string, entries []patch.Entry, em wikibase.EditMetadata) ([]byte, types.HeaderInfo, error) {
	body, err := newEditBody(map[string]any{"patch": entries}, em)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	response, responseBody, err := c.callEntityStore(
		ctx, http.MethodPatch, endpoint, body, "application/json-patch+json", &em.RevisionMatch,
	)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	if response.StatusCode != http.StatusOK {
		return nil, types.HeaderInfo{}, c.responseError(response, responseBody)
	}

	return responseBody, types.NewHeaderInfo(response.Header), nil
}

func (c wbClient) mutate(ctx context.Context, method, endpoint string, payload map[string]any, em wikibase.EditMetadata) ([]byte, types.HeaderInfo, error) {
	body, err := newEditBody(payload, em)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	response, responseBody, err := c.callEntityStore(ctx, method, endpoint, body, "application/json", &em.RevisionMatch)
	if err != nil {
		return nil, types.HeaderInfo{}, err
	}

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return nil, types.HeaderInfo{}, c.responseError(response, responseBody)
	}

	return responseBody, types.NewHeaderInfo(response.Header), nil
}

// newEditBody merges the tags/bot/comment envelope into a request
// payload, leaving any of the three keys alone if the payload already
// carries them.
func newEditBody(payload map[string]any, em wikibase.EditMetadata) (io.Reader, error) {
	if _, ok := payload["tags"]; !ok {
		tags := em.Tags
		if tags == nil {
			tags = []string{}
		}
		payload["tags"] = tags
	}
	if _, ok := payload["bot"]; !ok {
		payload["bot"] = em.Bot
	}
	if _, ok := payload["comment"]; !ok {
		payload["comment"] = em.Comment
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %s (%w)", err.Error(), errors.ErrInternal)
	}

	return bytes.NewBuffer(body), nil
}

func (c wbClient) responseError(response *http.Response, responseBody []byte) error {
	if response.StatusCode >= http.StatusBadRequest {
		return errors.NewAPIErrorFromResponse(response.StatusCode, responseBody)
	}

	return fmt.Errorf("unexpected response code %d (%w)", response.StatusCode, errors.ErrInternal)
}

func (c wbClient) callEntityStore(ctx context.Context, method, endpoint string, body io.Reader, contentType string, rm *wikibase.RevisionMatch) (*http.Response, []byte, error) {
	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	requestURL := fmt.Sprintf("%s/wikibase/v%d%s", c.apiURL, c.apiVersion, endpoint)

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if rm != nil {
		rm.ModifyHeaders(req.Header)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx, method)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to acquire access token: %s (%w)", err.Error(), errors.ErrRequest)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrRequest)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusNotFound {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		log := logging.GetFromContext(ctx)
		log.Error("request failed", "request", string(reqbytes), "response", string(respbytes))
	}

	return resp, respBody, nil
}
