// Package dataset decodes and validates the static configuration datasets
// (weather categories, header phrases) loaded once at process start.
//
// Decoding is strict: unknown fields are rejected and schema violations are
// reported as a *DataFormatError carrying the first offending field.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DataFormatError reports a malformed dataset. Field is empty when the
// document could not be decoded at all.
type DataFormatError struct {
	Source string
	Field  string
	Err    error
}

func (e *DataFormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("dataset %s: field %s: %v", e.Source, e.Field, e.Err)
	}
	return fmt.Sprintf("dataset %s: %v", e.Source, e.Err)
}

func (e *DataFormatError) Unwrap() error { return e.Err }

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode parses raw into v. Documents named *.yaml or *.yml are read as YAML,
// everything else as JSON.
func Decode(name string, raw []byte, v any) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				err = errors.New("empty document")
			}
			return &DataFormatError{Source: name, Err: err}
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				err = errors.New("empty document")
			}
			return &DataFormatError{Source: name, Err: err}
		}
		if dec.More() {
			return &DataFormatError{Source: name, Err: errors.New("trailing data after document")}
		}
	}
	return nil
}

// Validate checks v against its `validate` struct tags.
func Validate(name string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &DataFormatError{
			Source: name,
			Field:  fe.Namespace(),
			Err:    fmt.Errorf("failed %q validation", fe.Tag()),
		}
	}
	return &DataFormatError{Source: name, Err: err}
}

// Load decodes and validates in one step.
func Load(name string, raw []byte, v any) error {
	if err := Decode(name, raw, v); err != nil {
		return err
	}
	return Validate(name, v)
}

// Read returns the contents of path, or of name inside fallback when path
// is empty. The returned source is the name to report in errors.
func Read(path string, fallback fs.FS, name string) ([]byte, string, error) {
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, path, fmt.Errorf("reading dataset %s: %w", path, err)
		}
		return raw, path, nil
	}
	raw, err := fs.ReadFile(fallback, name)
	if err != nil {
		return nil, name, fmt.Errorf("reading embedded dataset %s: %w", name, err)
	}
	return raw, name, nil
}
