package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}

func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid output format %q (expected text, json, yaml or toml)", s)
}

// TextWriter is implemented by values with a human-readable rendering.
type TextWriter interface {
	WriteText(w io.Writer) error
}

// Formatter writes values to a sink in one format. Each Write is flushed
// before it returns; a value that fails to encode writes nothing.
type Formatter struct {
	format Format
	sink   io.Writer
	w      *bufio.Writer
}

func New(format Format, w io.Writer) *Formatter {
	return &Formatter{format: format, sink: w, w: bufio.NewWriter(w)}
}

func (f *Formatter) Write(v any) error {
	if err := f.encode(v); err != nil {
		f.w.Reset(f.sink)
		return err
	}
	if err := f.w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func (f *Formatter) encode(v any) error {
	switch f.format {
	case FormatJSON:
		return WriteJSON(f.w, v)
	case FormatYAML:
		enc := yaml.NewEncoder(f.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if !isTable(v) {
			return fmt.Errorf("encode toml: %T is not a table", v)
		}
		if err := toml.NewEncoder(f.w).Encode(v); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case FormatText, "":
		if tw, ok := v.(TextWriter); ok {
			return tw.WriteText(f.w)
		}
		_, err := fmt.Fprintf(f.w, "%+v\n", v)
		return err
	}
	return fmt.Errorf("unsupported output format %q", f.format)
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// isTable reports whether v encodes as a TOML table. The encoder writes
// bare scalars at the top level, which is not a valid document.
func isTable(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct || rv.Kind() == reflect.Map
}
