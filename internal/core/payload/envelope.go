package payload

import "encoding/json"

// Record is one decoded JSON object from a list-shaped response.
type Record map[string]any

// Wrapper keys probed when a list endpoint returns an object instead of a
// bare array. Order is the fixed probe priority; view-specific keys passed
// by the caller are probed first.
var listKeys = []string{
	"items",
	"results",
	"rfps",
	"plans",
	"sections",
	"mappings",
	"requirements",
	"funders",
	"data",
}

// Items extracts the element list from a response body that may be a bare
// array or an object wrapping the array under one of several candidate
// keys. Returns ok=false when no list-shaped value is present. An empty
// list is found (ok=true) but empty; the resolver decides what that means.
func Items(raw []byte, preferredKeys ...string) ([]Record, bool) {
	if len(raw) == 0 {
		return nil, false
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, false
	}

	switch v := decoded.(type) {
	case []any:
		return toRecords(v), true
	case map[string]any:
		for _, key := range append(preferredKeys, listKeys...) {
			seq, ok := v[key].([]any)
			if ok {
				return toRecords(seq), true
			}
		}
	}
	return nil, false
}

// Object decodes a single-object response body.
func Object(raw []byte) (Record, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, false
	}
	return rec, true
}

func toRecords(seq []any) []Record {
	records := make([]Record, 0, len(seq))
	for _, elem := range seq {
		if rec, ok := elem.(map[string]any); ok {
			records = append(records, Record(rec))
		}
	}
	return records
}
