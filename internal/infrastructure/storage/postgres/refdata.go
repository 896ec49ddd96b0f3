package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"isoref/internal/core/apperror"
	"isoref/internal/domain/catalogs/country"
	"isoref/internal/domain/filter"
	"isoref/internal/infrastructure/snapshot"
	"isoref/pkg/logger"
)

// CountryRow is one row of ref_countries.
type CountryRow struct {
	Alpha2    string `db:"alpha2"`
	Alpha3    string `db:"alpha3"`
	Numeric   int    `db:"numeric_code"`
	Name      string `db:"name"`
	SortOrder int    `db:"sort_order"`
}

// CurrencyRow is one row of ref_currencies.
type CurrencyRow struct {
	Alpha3    string `db:"alpha3"`
	Numeric   int    `db:"numeric_code"`
	Name      string `db:"name"`
	Digits    int    `db:"digits"`
	SortOrder int    `db:"sort_order"`
}

// LanguageRow is one row of ref_languages.
type LanguageRow struct {
	Alpha2    string `db:"alpha2"`
	Name      string `db:"name"`
	SortOrder int    `db:"sort_order"`
}

// StoredCountry is a country read back from the database.
type StoredCountry struct {
	Country country.Country `db:"alpha2"`
	Alpha3  string          `db:"alpha3"`
	Numeric int             `db:"numeric_code"`
	Name    string          `db:"name"`
}

// Counts is the number of rows per reference table.
type Counts struct {
	Countries         int64 `db:"countries"`
	Currencies        int64 `db:"currencies"`
	Languages         int64 `db:"languages"`
	CountryCurrencies int64 `db:"country_currencies"`
	CountryLanguages  int64 `db:"country_languages"`
}

// ExpectedCounts derives the row counts a published snapshot must produce.
func ExpectedCounts(s *snapshot.Snapshot) Counts {
	c := Counts{
		Countries:  int64(len(s.Countries)),
		Currencies: int64(len(s.Currencies)),
		Languages:  int64(len(s.Languages)),
	}
	for _, row := range s.Countries {
		c.CountryCurrencies += int64(len(row.Currencies))
		c.CountryLanguages += int64(len(row.Languages))
	}
	return c
}

// country filter field -> column
var countryColumns = map[string]string{
	"alpha2":  "alpha2",
	"alpha3":  "alpha3",
	"numeric": "numeric_code",
	"name":    "name",
}

// RefDataRepo writes and reads the reference tables.
type RefDataRepo struct {
	txm     *TxManager
	tables  Tables
	builder squirrel.StatementBuilderType
}

// NewRefDataRepo creates a repository over the tables in schema.
func NewRefDataRepo(txm *TxManager, schema string) *RefDataRepo {
	return &RefDataRepo{
		txm:     txm,
		tables:  Tables{Schema: schema},
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Tables returns the table names the repository uses.
func (r *RefDataRepo) Tables() Tables { return r.tables }

// EnsureSchema creates missing tables.
func (r *RefDataRepo) EnsureSchema(ctx context.Context) error {
	ddl := r.tables.DDL()
	queries := make([]BatchQuery, len(ddl))
	for i, stmt := range ddl {
		queries[i] = BatchQuery{SQL: stmt}
	}
	return r.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		return r.txm.ExecBatch(ctx, queries)
	})
}

// Publish replaces the stored dataset with s in one transaction.
// Entities are upserted, links rewritten, and entities absent from s removed.
func (r *RefDataRepo) Publish(ctx context.Context, s *snapshot.Snapshot) error {
	return r.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		q := r.txm.GetQuerier(ctx)

		steps := []struct {
			name string
			sql  squirrel.Sqlizer
		}{
			{"currencies", r.currencyUpsert(s.Currencies)},
			{"languages", r.languageUpsert(s.Languages)},
			{"countries", r.countryUpsert(s.Countries)},
			{"clear country currencies", r.builder.Delete(r.tables.CountryCurrencies())},
			{"clear country languages", r.builder.Delete(r.tables.CountryLanguages())},
		}
		for _, step := range steps {
			if err := exec(ctx, q, step.sql); err != nil {
				return fmt.Errorf("publish %s: %w", step.name, err)
			}
		}

		currencyLinks, languageLinks := linkRows(s.Countries)
		if _, err := r.txm.CopyRows(ctx, r.tables.ident("ref_country_currencies"), []string{"country", "currency"}, currencyLinks); err != nil {
			return fmt.Errorf("publish country currencies: %w", err)
		}
		if _, err := r.txm.CopyRows(ctx, r.tables.ident("ref_country_languages"), []string{"country", "language"}, languageLinks); err != nil {
			return fmt.Errorf("publish country languages: %w", err)
		}

		prune := []squirrel.Sqlizer{
			r.prune(r.tables.Countries(), "alpha2", pluck(s.Countries, func(c snapshot.CountryRecord) string { return c.Alpha2 })),
			r.prune(r.tables.Currencies(), "alpha3", pluck(s.Currencies, func(c snapshot.CurrencyRecord) string { return c.Alpha3 })),
			r.prune(r.tables.Languages(), "alpha2", pluck(s.Languages, func(l snapshot.LanguageRecord) string { return l.Alpha2 })),
		}
		for _, p := range prune {
			if err := exec(ctx, q, p); err != nil {
				return fmt.Errorf("publish prune: %w", err)
			}
		}

		if err := exec(ctx, q, r.datasetUpsert(s.Version, s.GeneratedAt)); err != nil {
			return fmt.Errorf("publish dataset version: %w", err)
		}

		logger.Info(ctx, "reference dataset published",
			"version", s.Version,
			"countries", len(s.Countries),
			"currencies", len(s.Currencies),
			"languages", len(s.Languages),
			"country_currencies", len(currencyLinks),
			"country_languages", len(languageLinks),
		)
		return nil
	})
}

// Counts returns the number of rows per table.
func (r *RefDataRepo) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	sql, args, err := r.countsQuery().ToSql()
	if err != nil {
		return c, fmt.Errorf("build query: %w", err)
	}
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &c, sql, args...); err != nil {
		return c, apperror.NewDatabase("count reference rows", err)
	}
	return c, nil
}

// DatasetVersion returns the stored dataset version, or "" before the first publish.
func (r *RefDataRepo) DatasetVersion(ctx context.Context) (string, error) {
	sql, args, err := r.builder.Select("version").From(r.tables.Dataset()).ToSql()
	if err != nil {
		return "", fmt.Errorf("build query: %w", err)
	}
	var version string
	err = r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", apperror.NewDatabase("read dataset version", err)
	}
	return version, nil
}

// ListCountries reads stored countries in catalogue order, narrowed by items.
func (r *RefDataRepo) ListCountries(ctx context.Context, items []filter.Item) ([]StoredCountry, error) {
	q, err := r.countrySelect(items)
	if err != nil {
		return nil, err
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var out []StoredCountry
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &out, sql, args...); err != nil {
		return nil, apperror.NewDatabase("list countries", err)
	}
	return out, nil
}

// Verify compares the stored tables against s.
func (r *RefDataRepo) Verify(ctx context.Context, s *snapshot.Snapshot) error {
	return r.txm.ReadOnly(ctx, func(ctx context.Context) error {
		got, err := r.Counts(ctx)
		if err != nil {
			return err
		}
		if want := ExpectedCounts(s); got != want {
			return fmt.Errorf("stored counts %+v, want %+v", got, want)
		}

		version, err := r.DatasetVersion(ctx)
		if err != nil {
			return err
		}
		if version != s.Version {
			return fmt.Errorf("stored dataset version %q, want %q", version, s.Version)
		}

		stored, err := r.ListCountries(ctx, nil)
		if err != nil {
			return err
		}
		for i, c := range stored {
			if c.Country.Alpha2() != s.Countries[i].Alpha2 || c.Alpha3 != s.Countries[i].Alpha3 {
				return fmt.Errorf("stored country %d is %s, want %s", i, c.Country, s.Countries[i].Alpha2)
			}
		}
		return nil
	})
}

func (r *RefDataRepo) countryUpsert(records []snapshot.CountryRecord) squirrel.InsertBuilder {
	rows := make([][]any, len(records))
	for i, c := range records {
		rows[i] = RowValues(CountryRow{
			Alpha2: c.Alpha2, Alpha3: c.Alpha3, Numeric: atoi(c.Numeric), Name: c.Name, SortOrder: i,
		}, ExtractDBColumns[CountryRow]())
	}
	return r.upsert(r.tables.Countries(), "alpha2", ExtractDBColumns[CountryRow](), rows)
}

func (r *RefDataRepo) currencyUpsert(records []snapshot.CurrencyRecord) squirrel.InsertBuilder {
	rows := make([][]any, len(records))
	for i, c := range records {
		rows[i] = RowValues(CurrencyRow{
			Alpha3: c.Alpha3, Numeric: atoi(c.Numeric), Name: c.Name, Digits: c.Digits, SortOrder: i,
		}, ExtractDBColumns[CurrencyRow]())
	}
	return r.upsert(r.tables.Currencies(), "alpha3", ExtractDBColumns[CurrencyRow](), rows)
}

func (r *RefDataRepo) languageUpsert(records []snapshot.LanguageRecord) squirrel.InsertBuilder {
	rows := make([][]any, len(records))
	for i, l := range records {
		rows[i] = RowValues(LanguageRow{Alpha2: l.Alpha2, Name: l.Name, SortOrder: i}, ExtractDBColumns[LanguageRow]())
	}
	return r.upsert(r.tables.Languages(), "alpha2", ExtractDBColumns[LanguageRow](), rows)
}

func (r *RefDataRepo) upsert(table, key string, columns []string, rows [][]any) squirrel.InsertBuilder {
	q := r.builder.Insert(table).Columns(columns...)
	for _, row := range rows {
		q = q.Values(row...)
	}

	sets := make([]string, 0, len(columns))
	for _, c := range columns {
		if c != key {
			sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
		}
	}
	return q.Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", key, strings.Join(sets, ", ")))
}

func (r *RefDataRepo) prune(table, key string, keep []string) squirrel.DeleteBuilder {
	return r.builder.Delete(table).Where(squirrel.NotEq{key: keep})
}

func (r *RefDataRepo) datasetUpsert(version string, generatedAt time.Time) squirrel.InsertBuilder {
	return r.builder.Insert(r.tables.Dataset()).
		Columns("id", "version", "generated_at", "loaded_at").
		Values(true, version, generatedAt, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (id) DO UPDATE SET version = EXCLUDED.version, generated_at = EXCLUDED.generated_at, loaded_at = EXCLUDED.loaded_at")
}

func (r *RefDataRepo) countsQuery() squirrel.SelectBuilder {
	count := func(table, alias string) string {
		return fmt.Sprintf("(SELECT count(*) FROM %s) AS %s", table, alias)
	}
	return r.builder.Select(
		count(r.tables.Countries(), "countries"),
		count(r.tables.Currencies(), "currencies"),
		count(r.tables.Languages(), "languages"),
		count(r.tables.CountryCurrencies(), "country_currencies"),
		count(r.tables.CountryLanguages(), "country_languages"),
	)
}

func (r *RefDataRepo) countrySelect(items []filter.Item) (squirrel.SelectBuilder, error) {
	q := r.builder.
		Select("alpha2", "alpha3", "numeric_code", "name").
		From(r.tables.Countries()).
		OrderBy("sort_order")
	return applyFilters(q, items, countryColumns)
}

// applyFilters translates items into WHERE clauses. Only whitelisted fields
// reach the SQL text.
func applyFilters(q squirrel.SelectBuilder, items []filter.Item, columns map[string]string) (squirrel.SelectBuilder, error) {
	fields := make([]string, 0, len(columns))
	for f := range columns {
		fields = append(fields, f)
	}
	slices.Sort(fields)

	for _, item := range items {
		if err := item.Validate(fields); err != nil {
			return q, err
		}
		col := columns[item.Field]

		switch item.Operator {
		case filter.Equal, filter.InList:
			q = q.Where(squirrel.Eq{col: item.Value})
		case filter.NotEqual, filter.NotInList:
			q = q.Where(squirrel.NotEq{col: item.Value})
		case filter.Less:
			q = q.Where(squirrel.Lt{col: item.Value})
		case filter.LessOrEqual:
			q = q.Where(squirrel.LtOrEq{col: item.Value})
		case filter.Greater:
			q = q.Where(squirrel.Gt{col: item.Value})
		case filter.GreaterOrEqual:
			q = q.Where(squirrel.GtOrEq{col: item.Value})
		case filter.Contains:
			q = q.Where(squirrel.ILike{col: fmt.Sprintf("%%%v%%", item.Value)})
		case filter.NotContains:
			q = q.Where(squirrel.NotILike{col: fmt.Sprintf("%%%v%%", item.Value)})
		}
	}
	return q, nil
}

func exec(ctx context.Context, q Querier, s squirrel.Sqlizer) error {
	sql, args, err := s.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	_, err = q.Exec(ctx, sql, args...)
	return err
}

func linkRows(countries []snapshot.CountryRecord) (currencies, languages [][]any) {
	for _, c := range countries {
		for _, code := range c.Currencies {
			currencies = append(currencies, []any{c.Alpha2, code})
		}
		for _, code := range c.Languages {
			languages = append(languages, []any{c.Alpha2, code})
		}
	}
	return currencies, languages
}

func pluck[T any](in []T, key func(T) string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = key(v)
	}
	return out
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
