package jsondata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrSyntax reports malformed JSON input.
var ErrSyntax = errors.New("jsondata: invalid JSON")

// Decode parses a single JSON document. Duplicate object keys keep the
// position of their first occurrence and the value of their last. Anything
// other than whitespace after the document is an error.
func Decode(raw []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, fmt.Errorf("%w: empty document", ErrSyntax)
		}
		return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	value, err := decodeToken(dec, tok)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	if extra, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return Value{}, fmt.Errorf("%w: unexpected %v after top-level value", ErrSyntax, extra)
	}
	return value, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Value{Kind: KindNull}, nil
	case bool:
		return Value{Kind: KindBool, Bool: t}, nil
	case json.Number:
		return Value{Kind: KindNumber, Number: t}, nil
	case string:
		return Value{Kind: KindString, String: t}, nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeArray(dec *json.Decoder) (Value, error) {
	out := Value{Kind: KindArray, Items: []Value{}}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		out.Items = append(out.Items, item)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return out, nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	out := Value{Kind: KindObject, Members: []Member{}}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be a string, got %v", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		if pos, seen := index[key]; seen {
			out.Members[pos].Value = value
			continue
		}
		index[key] = len(out.Members)
		out.Members = append(out.Members, Member{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return out, nil
}
