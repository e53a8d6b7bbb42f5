package http

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atlas-cms/atlas-go/internal/constants"
)

// Multipart is a multipart/form-data payload carrying a single file.
type Multipart struct {
	// FieldName of the file part. Defaults to "file".
	FieldName string
	FileName  string
	// ContentType of the file. Guessed from the extension when empty.
	ContentType string
	Content     []byte
	// Fields are sent as plain form fields before the file.
	Fields map[string]string
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (m *Multipart) encode() ([]byte, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(m.Fields))
	for key := range m.Fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		err := writer.WriteField(key, m.Fields[key])
		if err != nil {
			return nil, "", fmt.Errorf("writing form field %s: %w", key, err)
		}
	}

	fieldName := m.FieldName
	if fieldName == "" {
		fieldName = "file"
	}

	contentType := m.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(m.FileName))
	}

	if contentType == "" {
		contentType = constants.ContentTypeOctetStream
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(fieldName), quoteEscaper.Replace(m.FileName)))
	header.Set(constants.HeaderContentType, contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("creating file part: %w", err)
	}

	_, err = part.Write(m.Content)
	if err != nil {
		return nil, "", fmt.Errorf("writing file part: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
