package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
	"github.com/ukaji3/dagrooster-go/internal/utils"
)

// KeyPrefix namespaces the per-date entries in the KV.
const KeyPrefix = "dagrooster.values.v1."

// DateLayout is the ISO calendar date used as key suffix.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDate indicates a date that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrUnavailable indicates the underlying KV could not be read.
	ErrUnavailable = errors.New("values unavailable")
)

// Values maps a cell address to the text entered for it.
type Values map[string]string

// ValuesStore reads and writes the values map of each date.
type ValuesStore struct {
	kv KV
}

// NewValuesStore returns a ValuesStore on top of kv.
func NewValuesStore(kv KV) *ValuesStore {
	return &ValuesStore{kv: kv}
}

// ValidateDate checks that date is an ISO calendar date.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, date)
	}
	return nil
}

// Key returns the KV key of date.
func Key(date string) string {
	return KeyPrefix + date
}

// Load returns the values saved for date. Missing or corrupt entries yield an
// empty map; a failing read is returned as an error.
func (s *ValuesStore) Load(ctx context.Context, date string) (Values, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	raw, ok, err := s.kv.Get(ctx, Key(date))
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %w", ErrUnavailable, date, err)
	}
	if !ok {
		return Values{}, nil
	}
	return decodeValues(date, raw), nil
}

func decodeValues(date, raw string) Values {
	values := Values{}
	if !gjson.Valid(raw) {
		utils.Log.Warnf("discarding corrupt values for %s", date)
		return values
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		utils.Log.Warnf("discarding non-object values for %s", date)
		return values
	}
	doc.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Null {
			values[key.String()] = value.String()
		}
		return true
	})
	return values
}

// Save replaces the values stored for date.
func (s *ValuesStore) Save(ctx context.Context, date string, values Values) error {
	if err := ValidateDate(date); err != nil {
		return err
	}
	if values == nil {
		values = Values{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, Key(date), string(data))
}

// Set writes a single address: the whole map is read, modified and saved.
func (s *ValuesStore) Set(ctx context.Context, date, addr, value string) (Values, error) {
	values, err := s.Load(ctx, date)
	if err != nil {
		return nil, err
	}
	values[addr] = value
	if err := s.Save(ctx, date, values); err != nil {
		return nil, err
	}
	return values, nil
}

// Clear empties every value of date.
func (s *ValuesStore) Clear(ctx context.Context, date string) error {
	return s.Save(ctx, date, Values{})
}
