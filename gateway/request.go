package gateway

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Request describes one backend call. Exactly one of Body (JSON) or Form
// (multipart) may be set; both nil means no request body.
type Request struct {
	Method string
	Path   string // relative to the gateway base URL, e.g. "auth/me/"
	Query  url.Values
	Body   any
	Form   *Form
	Header http.Header
}

// Form is a multipart/form-data payload. Fields and file parts are written in
// the order given.
type Form struct {
	Fields []Field
	Files  []FilePart
}

// Field is a single text form field.
type Field struct {
	Name  string
	Value string
}

// FilePart is a single uploaded file.
type FilePart struct {
	Field    string
	Filename string
	Content  []byte
}

// Add appends a text field to the form.
func (f *Form) Add(name, value string) {
	f.Fields = append(f.Fields, Field{Name: name, Value: value})
}

// AddFile appends a file part to the form.
func (f *Form) AddFile(field, filename string, content []byte) {
	f.Files = append(f.Files, FilePart{Field: field, Filename: filename, Content: content})
}

func (f *Form) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, field := range f.Fields {
		if err := w.WriteField(field.Name, field.Value); err != nil {
			return nil, "", errors.Wrap(err, "[Form.encode] write field")
		}
	}
	for _, file := range f.Files {
		part, err := w.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return nil, "", errors.Wrap(err, "[Form.encode] create file part")
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, "", errors.Wrap(err, "[Form.encode] write file part")
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "[Form.encode] close writer")
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// Response is a successful (2xx) backend reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON response body into v. A nil v or empty body is a
// no-op.
func (r *Response) Decode(v any) error {
	if v == nil || len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrap(err, "[Response.Decode] unmarshal body")
	}
	return nil
}
