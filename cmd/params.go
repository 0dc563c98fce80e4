package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"litestore/lib/store"
)

// parseParams turns repeated --param name=value flags into a parameter
// set. Values are typed by inference: integer, real, boolean, the word
// null, or text.
func parseParams(flags []string) (store.Params, error) {
	malformed := lo.Filter(flags, func(flag string, _ int) bool {
		return !strings.Contains(flag, "=")
	})
	if len(malformed) > 0 {
		return nil, fmt.Errorf("malformed --param flags (want name=value): %s", strings.Join(malformed, ", "))
	}

	params := make(store.Params, len(flags))
	for _, flag := range flags {
		name, raw, _ := strings.Cut(flag, "=")
		if name == "" {
			return nil, fmt.Errorf("malformed --param flag %q: empty name", flag)
		}
		params[name] = parseValue(raw)
	}

	return params, nil
}

// parseValue infers the scalar kind of a raw flag value. Only the exact
// literals "true" and "false" bind as booleans; other spellings stay
// text. Quote a value to force text, e.g. --param id='"42"'.
func parseValue(raw string) any {
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		return raw[1 : len(raw)-1]
	}
	switch raw {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return value
	}
	if value, err := strconv.ParseFloat(raw, 64); err == nil {
		return value
	}
	return raw
}
