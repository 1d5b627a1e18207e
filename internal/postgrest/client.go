// Package postgrest is a thin client for the hosted table-oriented backend.
// Each call is a select/insert/upsert against one table with optional
// eq/gte/lte/ilike/order/limit predicate chaining, authenticated with the
// project URL plus a bearer anonymous key.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

// NewClient builds a client for the given project URL and anonymous key.
// The URL is the project root; the REST prefix is appended here.
func NewClient(projectURL, anonKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(projectURL, "/") + "/rest/v1",
		anonKey: anonKey,
		http:    http.DefaultClient,
	}
}

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// From starts a query against one table.
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table}
}

type filter struct {
	column string
	value  string
}

type Query struct {
	client  *Client
	table   string
	filters []filter
	order   string
	limit   int
	single  bool
}

func (q *Query) Eq(column string, value any) *Query {
	q.filters = append(q.filters, filter{column, fmt.Sprintf("eq.%v", value)})
	return q
}

func (q *Query) Gte(column string, value any) *Query {
	q.filters = append(q.filters, filter{column, fmt.Sprintf("gte.%v", value)})
	return q
}

func (q *Query) Lte(column string, value any) *Query {
	q.filters = append(q.filters, filter{column, fmt.Sprintf("lte.%v", value)})
	return q
}

// Ilike matches the column case-insensitively against a substring.
func (q *Query) Ilike(column, substring string) *Query {
	q.filters = append(q.filters, filter{column, "ilike.*" + substring + "*"})
	return q
}

func (q *Query) Order(column string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.order = column + "." + dir
	return q
}

func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Single requests exactly one row; a zero-row result classifies as NotFound.
func (q *Query) Single() *Query {
	q.single = true
	return q
}

// Select runs the query and decodes the JSON rows into dest.
func (q *Query) Select(ctx context.Context, dest any) error {
	params := url.Values{}
	params.Set("select", "*")
	for _, f := range q.filters {
		params.Add(f.column, f.value)
	}
	if q.order != "" {
		params.Set("order", q.order)
	}
	if q.limit > 0 {
		params.Set("limit", fmt.Sprint(q.limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		q.client.baseURL+"/"+q.table+"?"+params.Encode(), nil)
	if err != nil {
		return errors.WithStack(err)
	}
	q.setHeaders(req)
	if q.single {
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}

	body, ferr := q.client.do(req, q.table)
	if ferr != nil {
		return ferr
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &FetchError{Kind: SchemaMismatch, Table: q.table, Err: err}
	}
	return nil
}

// Insert writes value as a new row (or rows).
func (q *Query) Insert(ctx context.Context, value any) error {
	return q.write(ctx, value, false)
}

// Upsert inserts value or replaces the existing row with the same primary key.
func (q *Query) Upsert(ctx context.Context, value any) error {
	return q.write(ctx, value, true)
}

func (q *Query) write(ctx context.Context, value any, merge bool) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		q.client.baseURL+"/"+q.table, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	q.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	prefer := "return=minimal"
	if merge {
		prefer = "resolution=merge-duplicates," + prefer
	}
	req.Header.Set("Prefer", prefer)

	_, ferr := q.client.do(req, q.table)
	return ferr
}

func (q *Query) setHeaders(req *http.Request) {
	req.Header.Set("apikey", q.client.anonKey)
	req.Header.Set("Authorization", "Bearer "+q.client.anonKey)
}

// do executes the request and classifies any failure into a FetchError.
func (c *Client) do(req *http.Request, table string) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: Unreachable, Table: table, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Kind: Unreachable, Table: table, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	kind := classifyStatus(resp.StatusCode, body)
	return nil, &FetchError{
		Kind:  kind,
		Table: table,
		Err:   fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
	}
}

type pgrstError struct {
	Code string `json:"code"`
}

func classifyStatus(status int, body []byte) FetchErrorKind {
	var perr pgrstError
	_ = json.Unmarshal(body, &perr)

	switch perr.Code {
	case "PGRST116": // single-object request matched zero rows
		return NotFound
	case "PGRST205", "42P01": // table not in schema cache / undefined table
		return SchemaMismatch
	}

	switch {
	case status == http.StatusNotFound || status == http.StatusNotAcceptable:
		// 406 is what a .single() miss reports without a structured body.
		return NotFound
	case status >= http.StatusInternalServerError:
		return Unreachable
	default:
		return SchemaMismatch
	}
}
