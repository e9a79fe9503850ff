package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"
	"time"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Write renders records as CSV under schema and returns the number of data rows.
// A kind without records still gets its header row.
func Write(w io.Writer, schema Schema, records []entity.Record) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(schema.Headers()); err != nil {
		return 0, errors.Wrap(err, "write header")
	}

	rows := 0
	for _, rec := range records {
		row, err := Row(schema, rec)
		if err != nil {
			return rows, err
		}
		if err := cw.Write(row); err != nil {
			return rows, errors.Wrapf(err, "write %s row", schema.Kind)
		}
		rows++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, errors.Wrap(err, "flush csv")
	}

	return rows, nil
}

// Row flattens one record into the cells of schema.
func Row(schema Schema, rec entity.Record) ([]string, error) {
	doc, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s %s", rec.Kind(), rec.Identity())
	}

	row := make([]string, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		value, err := cell(gjson.GetBytes(doc, col.Path), col.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "%s.%s", rec.Kind(), col.Header)
		}
		row = append(row, value)
	}

	return row, nil
}

func cell(r gjson.Result, typ ColumnType) (string, error) {
	if !r.Exists() || r.Type == gjson.Null {
		return "", nil
	}

	switch typ {
	case Date:
		at, err := time.Parse(time.RFC3339Nano, r.String())
		if err != nil {
			return "", errors.Wrap(err, "parse date")
		}

		return at.UTC().Format(DateLayout), nil
	case List:
		if !r.IsArray() {
			return r.String(), nil
		}
		parts := make([]string, 0)
		for _, el := range r.Array() {
			parts = append(parts, el.String())
		}

		return strings.Join(parts, ListSeparator), nil
	}

	if r.Type == gjson.Number || r.IsObject() || r.IsArray() {
		return r.Raw, nil
	}

	return r.String(), nil
}
