package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// DefaultSchema holds the reference tables unless configured otherwise.
const DefaultSchema = "public"

// Tables names the reference tables inside one schema.
type Tables struct {
	Schema string
}

func (t Tables) name(table string) string {
	return t.ident(table).Sanitize()
}

func (t Tables) ident(table string) pgx.Identifier {
	return pgx.Identifier{t.schema(), table}
}

func (t Tables) schema() string {
	if t.Schema == "" {
		return DefaultSchema
	}
	return t.Schema
}

func (t Tables) Countries() string         { return t.name("ref_countries") }
func (t Tables) Currencies() string        { return t.name("ref_currencies") }
func (t Tables) Languages() string         { return t.name("ref_languages") }
func (t Tables) CountryCurrencies() string { return t.name("ref_country_currencies") }
func (t Tables) CountryLanguages() string  { return t.name("ref_country_languages") }
func (t Tables) Dataset() string           { return t.name("ref_dataset") }

// DDL returns idempotent statements creating the schema and all tables.
func (t Tables) DDL() []string {
	schema := pgx.Identifier{t.schema()}.Sanitize()
	return []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	alpha2       CHAR(2) PRIMARY KEY,
	alpha3       CHAR(3) NOT NULL,
	numeric_code SMALLINT NOT NULL,
	name         TEXT NOT NULL,
	sort_order   SMALLINT NOT NULL
)`, t.Countries()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	alpha3       CHAR(3) PRIMARY KEY,
	numeric_code SMALLINT NOT NULL,
	name         TEXT NOT NULL,
	digits       SMALLINT NOT NULL,
	sort_order   SMALLINT NOT NULL
)`, t.Currencies()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	alpha2     CHAR(2) PRIMARY KEY,
	name       TEXT NOT NULL,
	sort_order SMALLINT NOT NULL
)`, t.Languages()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	country  CHAR(2) NOT NULL REFERENCES %s (alpha2) ON DELETE CASCADE,
	currency CHAR(3) NOT NULL REFERENCES %s (alpha3) ON DELETE CASCADE,
	PRIMARY KEY (country, currency)
)`, t.CountryCurrencies(), t.Countries(), t.Currencies()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	country  CHAR(2) NOT NULL REFERENCES %s (alpha2) ON DELETE CASCADE,
	language CHAR(2) NOT NULL REFERENCES %s (alpha2) ON DELETE CASCADE,
	PRIMARY KEY (country, language)
)`, t.CountryLanguages(), t.Countries(), t.Languages()),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id           BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (id),
	version      TEXT NOT NULL,
	generated_at TIMESTAMPTZ NOT NULL,
	loaded_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`, t.Dataset()),
	}
}
