// Package export writes a generated theme as CSS custom properties, JSON,
// TOML or YAML.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/leonardotrapani/shadescale/internal/theme"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	CSS  Format = "css"
	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case CSS, JSON, TOML, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unknown format: %s (use css, json, toml, or yaml)", s)
	}
}

// Options control rendering.
type Options struct {
	Format   Format
	Selector string // CSS only, defaults to :root
}

// Write renders t to w.
func Write(w io.Writer, t *theme.Theme, opts Options) error {
	switch opts.Format {
	case CSS, "":
		return writeCSS(w, t, opts.Selector)
	case JSON:
		return writeJSON(w, t)
	case TOML:
		return writeTOML(w, t)
	case YAML:
		return writeYAML(w, t)
	default:
		return fmt.Errorf("unknown format: %s", opts.Format)
	}
}

// WriteFile renders t into path, replacing it atomically.
func WriteFile(path string, t *theme.Theme, opts Options) error {
	var buf bytes.Buffer
	if err := Write(&buf, t, opts); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func writeCSS(w io.Writer, t *theme.Theme, selector string) error {
	if selector == "" {
		selector = ":root"
	}

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for i, p := range t.Palettes {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  /* %s (%s, %s) */\n", p.Name, p.Kind, p.Strategy)
		for _, e := range p.Entries {
			fmt.Fprintf(&b, "  --%s: %s;\n", e.Name, e.Value)
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// orderedEntries keeps ladder order in JSON output.
type orderedEntries []theme.Entry

func (o orderedEntries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(w io.Writer, t *theme.Theme) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(orderedEntries(t.Entries()))
}

func writeTOML(w io.Writer, t *theme.Theme) error {
	doc := make(map[string]map[string]string, len(t.Palettes))
	for _, p := range t.Palettes {
		table := make(map[string]string, len(p.Entries))
		for _, e := range p.Entries {
			table[e.Name] = e.Value
		}
		doc[p.Name] = table
	}
	return toml.NewEncoder(w).Encode(doc)
}

// writeYAML nests entries under their palette name, in ladder order.
func writeYAML(w io.Writer, t *theme.Theme) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range t.Palettes {
		table := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range p.Entries {
			table.Content = append(table.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: e.Name},
				&yaml.Node{Kind: yaml.ScalarNode, Value: e.Value, Style: yaml.DoubleQuotedStyle},
			)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: p.Name},
			table,
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
