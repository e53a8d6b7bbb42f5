// Package codec serializes request and response bodies according to an
// atlas.CodecPolicy.
package codec

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/atlas-cms/atlas-go/internal/constants"
	"github.com/atlas-cms/atlas-go/pkg/atlas"
)

// Codec encodes and decodes JSON bodies. It is safe for concurrent use.
type Codec struct {
	api    jsoniter.API
	policy atlas.CodecPolicy
}

// New creates a codec for policy. A nil policy means atlas.DefaultCodecPolicy.
func New(policy *atlas.CodecPolicy) *Codec {
	if policy == nil {
		policy = atlas.DefaultCodecPolicy()
	}

	api := jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()

	for _, extension := range extensionsFor(policy) {
		api.RegisterExtension(extension)
	}

	return &Codec{api: api, policy: *policy}
}

// Policy returns a copy of the policy the codec was built with.
func (c *Codec) Policy() atlas.CodecPolicy {
	return c.policy
}

// Encode serializes v.
func (c *Codec) Encode(v interface{}) ([]byte, error) {
	data, err := c.api.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, err)
	}

	return data, nil
}

// Decode deserializes data into v. An empty body leaves v untouched. A body
// that does not match the shape of v returns *atlas.DecodeError.
func (c *Codec) Decode(data []byte, v interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	err := c.api.Unmarshal(data, v)
	if err != nil {
		return &atlas.DecodeError{
			Target: fmt.Sprintf("%T", v),
			Body:   Excerpt(data),
			Err:    err,
		}
	}

	return nil
}

// Excerpt returns at most constants.MaxLoggedBodyBytes of data for logs and
// error messages.
func Excerpt(data []byte) string {
	if len(data) <= constants.MaxLoggedBodyBytes {
		return string(data)
	}

	return string(data[:constants.MaxLoggedBodyBytes]) + "..."
}
