// Package snapshot exports the whole reference dataset as one JSON document,
// optionally zstd-compressed, and reads it back.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/klauspost/compress/zstd"

	"isoref/internal/domain/catalogs/country"
	"isoref/internal/domain/catalogs/currency"
	"isoref/internal/domain/catalogs/language"
	"isoref/internal/domain/relations"
)

// Compression is the encoding applied to the JSON document.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionZstd Compression = "zstd"
)

// ParseCompression accepts "", "none" and "zstd".
func ParseCompression(s string) (Compression, error) {
	switch Compression(s) {
	case "", CompressionNone:
		return CompressionNone, nil
	case CompressionZstd:
		return CompressionZstd, nil
	}
	return "", fmt.Errorf("unknown compression %q", s)
}

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Counts is the number of entities per catalogue.
type Counts struct {
	Countries  int `json:"countries"`
	Currencies int `json:"currencies"`
	Languages  int `json:"languages"`
}

type CountryRecord struct {
	Alpha2     string   `json:"alpha2"`
	Alpha3     string   `json:"alpha3"`
	Numeric    string   `json:"numeric"`
	Name       string   `json:"name"`
	Currencies []string `json:"currencies"`
	Languages  []string `json:"languages"`
}

type CurrencyRecord struct {
	Alpha3  string `json:"alpha3"`
	Numeric string `json:"numeric"`
	Name    string `json:"name"`
	Digits  int    `json:"digits"`
}

type LanguageRecord struct {
	Alpha2 string `json:"alpha2"`
	Name   string `json:"name"`
}

// Snapshot is the full dataset at one version.
type Snapshot struct {
	Version     string           `json:"version"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Counts      Counts           `json:"counts"`
	Countries   []CountryRecord  `json:"countries"`
	Currencies  []CurrencyRecord `json:"currencies"`
	Languages   []LanguageRecord `json:"languages"`
}

// Build captures the catalogues and relationship index in definition order.
func Build(now time.Time) *Snapshot {
	s := &Snapshot{
		Version:     relations.DatasetVersion,
		GeneratedAt: now.UTC(),
	}

	for _, c := range country.All() {
		s.Countries = append(s.Countries, CountryRecord{
			Alpha2:     c.Alpha2(),
			Alpha3:     c.Alpha3(),
			Numeric:    c.NumericCode(),
			Name:       c.Name(),
			Currencies: stringify(relations.CurrenciesOf(c)),
			Languages:  stringify(relations.LanguagesOf(c)),
		})
	}
	for _, c := range currency.All() {
		s.Currencies = append(s.Currencies, CurrencyRecord{
			Alpha3:  c.Alpha3(),
			Numeric: c.NumericCode(),
			Name:    c.Name(),
			Digits:  c.Digits(),
		})
	}
	for _, l := range language.All() {
		s.Languages = append(s.Languages, LanguageRecord{Alpha2: l.Alpha2(), Name: l.Name()})
	}

	s.Counts = Counts{
		Countries:  len(s.Countries),
		Currencies: len(s.Currencies),
		Languages:  len(s.Languages),
	}
	return s
}

// Verify checks the counts and that every country edge points at a listed entity.
func (s *Snapshot) Verify() error {
	got := Counts{len(s.Countries), len(s.Currencies), len(s.Languages)}
	if got != s.Counts {
		return fmt.Errorf("snapshot counts %+v do not match content %+v", s.Counts, got)
	}

	currencies := make([]string, len(s.Currencies))
	for i, c := range s.Currencies {
		currencies[i] = c.Alpha3
	}
	languages := make([]string, len(s.Languages))
	for i, l := range s.Languages {
		languages[i] = l.Alpha2
	}

	for _, c := range s.Countries {
		for _, code := range c.Currencies {
			if !slices.Contains(currencies, code) {
				return fmt.Errorf("country %s references unlisted currency %s", c.Alpha2, code)
			}
		}
		for _, code := range c.Languages {
			if !slices.Contains(languages, code) {
				return fmt.Errorf("country %s references unlisted language %s", c.Alpha2, code)
			}
		}
	}
	return nil
}

// Codec encodes and decodes snapshots. Safe for concurrent use.
type Codec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewCodec creates a codec with default zstd settings.
func NewCodec() (*Codec, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &Codec{encoder: encoder, decoder: decoder}, nil
}

// Encode marshals s and applies comp.
func (c *Codec) Encode(s *Snapshot, comp Compression) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	if comp == CompressionZstd {
		return c.encoder.EncodeAll(raw, nil), nil
	}
	return raw, nil
}

// Decode reads a plain or zstd-compressed snapshot and verifies it.
func (c *Codec) Decode(b []byte) (*Snapshot, error) {
	if bytes.HasPrefix(b, zstdMagic) {
		raw, err := c.decoder.DecodeAll(b, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress snapshot: %w", err)
		}
		b = raw
	}

	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if err := s.Verify(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Close releases the decoder's goroutines.
func (c *Codec) Close() {
	c.decoder.Close()
	_ = c.encoder.Close()
}

func stringify[E fmt.Stringer](in []E) []string {
	out := make([]string, len(in))
	for i, e := range in {
		out[i] = e.String()
	}
	return out
}
