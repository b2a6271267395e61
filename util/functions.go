package util

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	KV_LIST_SEPARATOR  = "|"
	KV_SEPARATOR       = "="
	VALUE_CONCAT_DELIM = ","
)

func ConcatValues(a, b string) string {
	return a + VALUE_CONCAT_DELIM + b
}

// ParseKVList reads a "k1=v1|k2=v2" list; a key given more than once has
// its values joined with VALUE_CONCAT_DELIM. "_" and "" are the empty list.
func ParseKVList(list string) (map[string]string, error) {
	if list == "_" || list == "" {
		return map[string]string{}, nil
	}
	pairs := make([]Pair[string, string], 0, strings.Count(list, KV_LIST_SEPARATOR)+1)
	for _, kvStr := range strings.Split(list, KV_LIST_SEPARATOR) {
		kv := strings.Split(kvStr, KV_SEPARATOR)
		if len(kv) != 2 || len(kv[0]) == 0 {
			return nil, errors.New("Wrong number of fields for split of key/value " + kvStr)
		}
		pairs = append(pairs, Pair[string, string]{kv[0], kv[1]})
	}
	return Accumulate(ConcatValues, pairs), nil
}

func FormatKVList(m map[string]string) string {
	if len(m) == 0 {
		return "_"
	}
	strs := make([]string, 0, len(m))
	for k, v := range m {
		strs = append(strs, fmt.Sprintf("%v%v%v", k, KV_SEPARATOR, v))
	}
	sort.Strings(strs)
	return strings.Join(strs, KV_LIST_SEPARATOR)
}

func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
