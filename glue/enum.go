package glue

import (
	"encoding/json"
	"fmt"
)

func newEnumLookup[E ~string](values []E) map[string]E {
	lookup := make(map[string]E, len(values))
	for _, v := range values {
		if _, ok := lookup[string(v)]; ok {
			panic(fmt.Sprintf("glue: duplicate enum value %q", v))
		}
		lookup[string(v)] = v
	}
	return lookup
}

func parseEnum[E ~string](enum string, lookup map[string]E, value string) (E, error) {
	if value == "" {
		return "", fmt.Errorf("%s: %w", enum, ErrEmptyEnumValue)
	}
	v, ok := lookup[value]
	if !ok {
		return "", fmt.Errorf("%s: %w %q", enum, ErrUnknownEnumValue, value)
	}
	return v, nil
}

func unmarshalEnum[E ~string](data []byte, dst *E, parse func(string) (E, error)) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := parse(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func enumStrings[E ~string](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
