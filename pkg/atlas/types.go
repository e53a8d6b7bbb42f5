package atlas

import (
	"time"
)

// Enum is implemented by int-backed enumerations. EnumNames lists the wire
// name of each value, indexed by the value itself.
type Enum interface {
	EnumNames() []string
}

// Attributes holds free-form key/value data such as content attributes.
type Attributes map[string]interface{}

// KeyResult wraps the identifier returned by create operations.
type KeyResult[T any] struct {
	Result T `json:"result"`
}

// Audit carries the server-maintained creation and modification stamps.
// The values are read-only for callers and are populated by decoding.
type Audit struct {
	createdAt  *time.Time
	createdBy  string
	modifiedAt *time.Time
	modifiedBy string
}

// CreatedAt returns the creation time, or the zero time when unknown.
func (a Audit) CreatedAt() time.Time {
	if a.createdAt == nil {
		return time.Time{}
	}

	return *a.createdAt
}

// CreatedBy returns the creator.
func (a Audit) CreatedBy() string {
	return a.createdBy
}

// ModifiedAt returns the last modification time, or the zero time when unknown.
func (a Audit) ModifiedAt() time.Time {
	if a.modifiedAt == nil {
		return time.Time{}
	}

	return *a.modifiedAt
}

// ModifiedBy returns the last modifier.
func (a Audit) ModifiedBy() string {
	return a.modifiedBy
}

// PagedList represents one page of a list response.
type PagedList[T any] struct {
	Data     []T
	metadata PagedListMetadata
}

// Metadata returns the paging information of the page.
func (p *PagedList[T]) Metadata() PagedListMetadata {
	return p.metadata
}

// PagedListMetadata describes where a page sits in the full result set.
type PagedListMetadata struct {
	currentPage     int
	pageSize        int
	hasPreviousPage bool
	hasNextPage     bool
	totalPages      int
	count           int
}

func (m PagedListMetadata) CurrentPage() int      { return m.currentPage }
func (m PagedListMetadata) PageSize() int         { return m.pageSize }
func (m PagedListMetadata) HasPreviousPage() bool { return m.hasPreviousPage }
func (m PagedListMetadata) HasNextPage() bool     { return m.hasNextPage }
func (m PagedListMetadata) TotalPages() int       { return m.totalPages }
func (m PagedListMetadata) Count() int            { return m.count }

// KeyValue is a single name/value pair, e.g. a webhook header.
type KeyValue struct {
	Key   string
	Value string
}
