package descriptor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oshokin/addon-builder/internal/domain/addon"
	"github.com/oshokin/addon-builder/internal/logger"
)

var (
	// ErrEmpty is returned for a descriptor file without any document.
	ErrEmpty = errors.New("descriptor is empty")
	// ErrTrailingData is returned when anything follows the root object.
	ErrTrailingData = errors.New("unexpected data after descriptor")

	errUnexpectedToken = errors.New("unexpected token")
)

// Load reads and parses the descriptor at path.
func Load(ctx context.Context, path string) (*addon.Record, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}

	record, err := Parse(contents)
	if err != nil {
		return nil, fmt.Errorf("parse descriptor %s: %w", path, err)
	}

	logger.DebugKV(ctx, "Descriptor loaded", "path", path, "fields", record.Len())

	return record, nil
}

// Parse decodes a JSON descriptor into an ordered record.
func Parse(contents []byte) (*addon.Record, error) {
	decoder := json.NewDecoder(bytes.NewReader(contents))
	decoder.UseNumber()

	first, err := decoder.Token()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}

	if err != nil {
		return nil, err
	}

	value, err := decodeValue(decoder, first)
	if err != nil {
		return nil, err
	}

	if _, err = decoder.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}

		return nil, ErrTrailingData
	}

	if value.Kind() != addon.KindMapping {
		return nil, fmt.Errorf("%w, got %s", addon.ErrDescriptorNotMapping, value.Kind())
	}

	return value.Record(), nil
}

// nextToken reads a token inside an open object or array, where EOF means truncation.
func nextToken(decoder *json.Decoder) (json.Token, error) {
	token, err := decoder.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}

	return token, err
}

func decodeValue(decoder *json.Decoder, token json.Token) (addon.Value, error) {
	switch t := token.(type) {
	case nil:
		return addon.Null(), nil
	case bool:
		return addon.Bool(t), nil
	case json.Number:
		return addon.Number(t.String()), nil
	case string:
		return addon.String(t), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		}
	}

	return addon.Null(), fmt.Errorf("%w: %v", errUnexpectedToken, token)
}

func decodeObject(decoder *json.Decoder) (addon.Value, error) {
	record := addon.NewRecord()

	for decoder.More() {
		token, err := nextToken(decoder)
		if err != nil {
			return addon.Null(), err
		}

		key, ok := token.(string)
		if !ok {
			return addon.Null(), fmt.Errorf("%w: object key %v", errUnexpectedToken, token)
		}

		if token, err = nextToken(decoder); err != nil {
			return addon.Null(), fmt.Errorf("%s: %w", key, err)
		}

		value, err := decodeValue(decoder, token)
		if err != nil {
			return addon.Null(), fmt.Errorf("%s: %w", key, err)
		}

		record.Set(key, value)
	}

	// Consumes the closing brace and rejects a trailing comma.
	if _, err := nextToken(decoder); err != nil {
		return addon.Null(), err
	}

	return addon.Mapping(record), nil
}

func decodeArray(decoder *json.Decoder) (addon.Value, error) {
	var items []addon.Value

	for decoder.More() {
		token, err := nextToken(decoder)
		if err != nil {
			return addon.Null(), err
		}

		item, err := decodeValue(decoder, token)
		if err != nil {
			return addon.Null(), fmt.Errorf("[%d]: %w", len(items), err)
		}

		items = append(items, item)
	}

	if _, err := nextToken(decoder); err != nil {
		return addon.Null(), err
	}

	return addon.Sequence(items...), nil
}
