package payload

import "testing"

func TestItemsBareArray(t *testing.T) {
	records, ok := Items([]byte(`[{"id":"a"},{"id":"b"}]`))
	if !ok {
		t.Fatalf("expected list to be found")
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].str("id") != "a" {
		t.Fatalf("expected first record id a, got %q", records[0].str("id"))
	}
}

func TestItemsWrapperKeyPriority(t *testing.T) {
	raw := []byte(`{"meta":{"count":1},"results":[{"id":"from-results"}],"data":[{"id":"from-data"}]}`)
	records, ok := Items(raw)
	if !ok {
		t.Fatalf("expected list to be found")
	}
	if len(records) != 1 || records[0].str("id") != "from-results" {
		t.Fatalf("expected results key to win over data, got %+v", records)
	}
}

func TestItemsPreferredKeyProbedFirst(t *testing.T) {
	raw := []byte(`{"items":[{"id":"generic"}],"plans":[{"id":"plan-1"}]}`)
	records, ok := Items(raw, "plans")
	if !ok {
		t.Fatalf("expected list to be found")
	}
	if records[0].str("id") != "plan-1" {
		t.Fatalf("expected preferred plans key, got %q", records[0].str("id"))
	}
}

func TestItemsEmptyWrappedListIsFoundButEmpty(t *testing.T) {
	records, ok := Items([]byte(`{"plans": []}`), "plans")
	if !ok {
		t.Fatalf("expected empty list to still be found")
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestItemsNoListShapedValue(t *testing.T) {
	cases := map[string]string{
		"scalar":        `42`,
		"object":        `{"detail":"not found"}`,
		"wrong type":    `{"items":"nope"}`,
		"invalid json":  `{`,
		"empty body":    ``,
		"null wrapper":  `{"items":null}`,
		"nested object": `{"payload":{"items":[]}}`,
	}
	for name, raw := range cases {
		if _, ok := Items([]byte(raw)); ok {
			t.Fatalf("%s: expected not-found result", name)
		}
	}
}

func TestItemsSkipsNonObjectElements(t *testing.T) {
	records, ok := Items([]byte(`[{"id":"a"},"stray",7]`))
	if !ok {
		t.Fatalf("expected list to be found")
	}
	if len(records) != 1 {
		t.Fatalf("expected non-object elements dropped, got %d records", len(records))
	}
}

func TestObject(t *testing.T) {
	rec, ok := Object([]byte(`{"total_rfps": 3}`))
	if !ok {
		t.Fatalf("expected object to decode")
	}
	if rec.integer("total_rfps") != 3 {
		t.Fatalf("expected total_rfps 3, got %d", rec.integer("total_rfps"))
	}
	if _, ok := Object([]byte(`[1,2]`)); ok {
		t.Fatalf("expected array body to fail object decode")
	}
}
