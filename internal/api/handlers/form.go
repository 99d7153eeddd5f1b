package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dheerajjx/portfolio/internal/domain"
	"github.com/dheerajjx/portfolio/internal/media"
	"github.com/google/uuid"
)

const (
	maxRequestBytes = 50 << 20
	maxFormMemory   = 8 << 20
)

type BodyKind int

const (
	// BodyFields carries named values only (JSON or urlencoded).
	BodyFields BodyKind = iota
	// BodyFiles carries named values plus uploaded files (multipart).
	BodyFiles
)

// RequestBody is a decoded create or update request. Files are only present
// when Kind is BodyFiles and have already been written to the upload
// directory.
type RequestBody struct {
	Kind   BodyKind
	Fields map[string]string
	Files  map[string][]media.LocalFile
}

// Field returns nil when name was not sent.
func (b *RequestBody) Field(name string) *string {
	v, ok := b.Fields[name]
	if !ok {
		return nil
	}
	return &v
}

func (b *RequestBody) File(name string) *media.LocalFile {
	files := b.Files[name]
	if len(files) == 0 {
		return nil
	}
	return &files[0]
}

func (b *RequestBody) FileList(name string) []media.LocalFile {
	return b.Files[name]
}

// Discard deletes the uploaded files. Handlers call it when the request is
// rejected, so nothing is left behind in the public upload directory.
func (b *RequestBody) Discard() {
	if b == nil {
		return
	}
	for _, files := range b.Files {
		for _, f := range files {
			os.Remove(f.Path)
		}
	}
}

func (b *RequestBody) Bool(name string) (*bool, error) {
	v := b.Field(name)
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(*v))
	if err != nil {
		return nil, domain.Invalid(fmt.Sprintf("%s must be true or false", name))
	}
	return &parsed, nil
}

// FormDecoder turns JSON or multipart requests into a RequestBody.
type FormDecoder struct {
	uploadDir string
}

func NewFormDecoder(uploadDir string) *FormDecoder {
	return &FormDecoder{uploadDir: uploadDir}
}

func (d *FormDecoder) Decode(w http.ResponseWriter, r *http.Request) (*RequestBody, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		return d.decodeMultipart(r)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, domain.Invalid("invalid form body")
		}
		body := &RequestBody{Kind: BodyFields, Fields: map[string]string{}}
		for key, values := range r.PostForm {
			if len(values) > 0 {
				body.Fields[key] = values[0]
			}
		}
		return body, nil
	default:
		return decodeJSONFields(r.Body)
	}
}

func decodeJSONFields(rd io.Reader) (*RequestBody, error) {
	body := &RequestBody{Kind: BodyFields, Fields: map[string]string{}}

	var raw map[string]any
	if err := json.NewDecoder(rd).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return body, nil
		}
		return nil, domain.Invalid("invalid request body")
	}
	for key, v := range raw {
		switch v := v.(type) {
		case string:
			body.Fields[key] = v
		case bool:
			body.Fields[key] = strconv.FormatBool(v)
		case float64:
			body.Fields[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case []any:
			// String lists arrive comma-joined, the same shape a form sends.
			parts := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					parts = append(parts, s)
				}
			}
			body.Fields[key] = strings.Join(parts, ",")
		}
	}
	return body, nil
}

func (d *FormDecoder) decodeMultipart(r *http.Request) (*RequestBody, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, domain.Invalid("invalid multipart body")
	}
	defer r.MultipartForm.RemoveAll()

	body := &RequestBody{
		Kind:   BodyFiles,
		Fields: map[string]string{},
		Files:  map[string][]media.LocalFile{},
	}
	for key, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			body.Fields[key] = values[0]
		}
	}
	for key, headers := range r.MultipartForm.File {
		for _, header := range headers {
			file, err := d.save(header)
			if err != nil {
				body.Discard()
				return nil, fmt.Errorf("store upload %q: %w", header.Filename, err)
			}
			body.Files[key] = append(body.Files[key], file)
		}
	}
	return body, nil
}

// save copies an uploaded part into the upload directory under a random name
// so the local fallback URL can serve it.
func (d *FormDecoder) save(header *multipart.FileHeader) (media.LocalFile, error) {
	src, err := header.Open()
	if err != nil {
		return media.LocalFile{}, err
	}
	defer src.Close()

	if err := os.MkdirAll(d.uploadDir, 0o755); err != nil {
		return media.LocalFile{}, err
	}

	name := uuid.NewString() + safeExt(header.Filename)
	path := filepath.Join(d.uploadDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return media.LocalFile{}, err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return media.LocalFile{}, err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return media.LocalFile{}, err
	}

	return media.LocalFile{
		Path:        path,
		Filename:    name,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) < 2 || len(ext) > 6 {
		return ""
	}
	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return ""
		}
	}
	return ext
}
