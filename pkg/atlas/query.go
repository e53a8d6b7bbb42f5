package atlas

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/atlas-cms/atlas-go/internal/constants"
)

// FilterOperator is a comparison applied by a content or asset filter.
type FilterOperator int

const (
	FilterEqual FilterOperator = iota
	FilterNotEqual
	FilterLessThan
	FilterLessThanOrEqual
	FilterGreaterThan
	FilterGreaterThanOrEqual
	FilterAll
	FilterAny
	FilterContains
	FilterNotContains
	FilterNotAny
	FilterStartsWith
	FilterNotStartsWith
	FilterEndsWith
	FilterNotEndsWith
)

var filterOperatorNames = []string{
	"eq", "neq", "lt", "lte", "gt", "gte",
	"all", "any", "contains", "ncontains", "nany",
	"starts", "nstarts", "ends", "nends",
}

// String returns the operator as used in query keys; unknown values map to "eq".
func (o FilterOperator) String() string {
	if o < 0 || int(o) >= len(filterOperatorNames) {
		return filterOperatorNames[FilterEqual]
	}

	return filterOperatorNames[o]
}

type filter struct {
	key   string
	value string
}

// FilterBuilder accumulates filter[field][op]=value query parameters.
type FilterBuilder struct {
	filters []filter
}

// NewFilterBuilder creates an empty FilterBuilder.
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{}
}

// Add appends a filter. A nil value is ignored. Numbers are written in
// invariant form (1.5, never 1,5 or 1.500000).
func (b *FilterBuilder) Add(field string, op FilterOperator, value interface{}) *FilterBuilder {
	formatted, ok := formatFilterValue(value)
	if !ok {
		return b
	}

	b.filters = append(b.filters, filter{
		key:   fmt.Sprintf("filter[%s][%s]", field, op),
		value: formatted,
	})

	return b
}

// Len returns the number of filters.
func (b *FilterBuilder) Len() int {
	if b == nil {
		return 0
	}

	return len(b.filters)
}

// String renders the filters as a raw query fragment joined with "&".
func (b *FilterBuilder) String() string {
	if b == nil {
		return ""
	}

	parts := make([]string, 0, len(b.filters))
	for _, f := range b.filters {
		parts = append(parts, f.key+"="+f.value)
	}

	return strings.Join(parts, "&")
}

func (b *FilterBuilder) apply(values url.Values) {
	if b == nil {
		return
	}

	for _, f := range b.filters {
		values.Add(f.key, f.value)
	}
}

func formatFilterValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case time.Time:
		return v.Format(time.RFC3339), true
	case fmt.Stringer:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return fmt.Sprint(v), true
	}
}

// ContentResolver selects related entities expanded inline in content responses.
type ContentResolver int

const (
	ResolveNone         ContentResolver = 0
	ResolveMedia        ContentResolver = 1
	ResolveMediaGallery ContentResolver = 2
	ResolveReferences   ContentResolver = 4
)

// String renders the flags as the comma-separated "resolve" parameter.
func (r ContentResolver) String() string {
	var names []string

	if r&ResolveMedia != 0 {
		names = append(names, "media")
	}

	if r&ResolveMediaGallery != 0 {
		names = append(names, "mediagallery")
	}

	if r&ResolveReferences != 0 {
		names = append(names, "references")
	}

	return strings.Join(names, ",")
}

// ListQuery holds the paging and sorting options shared by list operations.
// Zero Page and Size mean the defaults 1 and 25.
type ListQuery struct {
	Page int
	Size int
	Sort string
}

// NewListQuery returns a query for the first page with the default size.
func NewListQuery() ListQuery {
	return ListQuery{Page: constants.DefaultPage, Size: constants.DefaultPageSize}
}

func (q ListQuery) apply(values url.Values) {
	page := q.Page
	if page <= 0 {
		page = constants.DefaultPage
	}

	size := q.Size
	if size <= 0 {
		size = constants.DefaultPageSize
	}

	values.Set("page", strconv.Itoa(page))
	values.Set("size", strconv.Itoa(size))
	setIfNotEmpty(values, "sort", q.Sort)
}

// ToValues converts the query into URL parameters.
func (q ListQuery) ToValues() url.Values {
	values := url.Values{}
	q.apply(values)

	return values
}

// ContentsQuery filters a content list.
type ContentsQuery struct {
	ListQuery

	Filters   *FilterBuilder
	Search    string
	Resolvers ContentResolver
}

// ToValues converts the query into URL parameters.
func (q *ContentsQuery) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		ListQuery{}.apply(values)

		return values
	}

	q.Filters.apply(values)
	setIfNotEmpty(values, "resolve", q.Resolvers.String())
	setIfNotEmpty(values, "search", q.Search)
	q.ListQuery.apply(values)

	return values
}

// AssetsQuery filters a media library list.
type AssetsQuery struct {
	ListQuery

	Filters *FilterBuilder
	Folder  string
}

// ToValues converts the query into URL parameters.
func (q *AssetsQuery) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		ListQuery{}.apply(values)

		return values
	}

	q.Filters.apply(values)
	setIfNotEmpty(values, "folder", q.Folder)
	q.ListQuery.apply(values)

	return values
}

// UsersQuery filters a user list.
type UsersQuery struct {
	ListQuery

	Username  string
	Search    string
	RoleID    string
	Resolvers ContentResolver
}

// ToValues converts the query into URL parameters.
func (q *UsersQuery) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		ListQuery{}.apply(values)

		return values
	}

	setIfNotEmpty(values, "username", q.Username)
	setIfNotEmpty(values, "search", q.Search)
	setIfNotEmpty(values, "roleId", q.RoleID)
	setIfNotEmpty(values, "resolve", q.Resolvers.String())
	q.ListQuery.apply(values)

	return values
}

// AccountsQuery filters an account list.
type AccountsQuery struct {
	ListQuery

	Username string
	Search   string
	RoleID   string
}

// ToValues converts the query into URL parameters.
func (q *AccountsQuery) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		ListQuery{}.apply(values)

		return values
	}

	setIfNotEmpty(values, "username", q.Username)
	setIfNotEmpty(values, "search", q.Search)
	setIfNotEmpty(values, "roleId", q.RoleID)
	q.ListQuery.apply(values)

	return values
}

func setIfNotEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}
