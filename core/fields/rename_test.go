package fields

import "testing"

func TestParseRules(t *testing.T) {
	rules, err := ParseRules([]string{"Virus name=strain", "Collection date=date"})
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("len = %d, want 2", len(rules))
	}
	if rules[0] != (Rule{Old: "Virus name", New: "strain"}) {
		t.Errorf("rules[0] = %+v", rules[0])
	}
	if rules[1] != (Rule{Old: "Collection date", New: "date"}) {
		t.Errorf("rules[1] = %+v", rules[1])
	}
}

func TestParseRulesValueWithEquals(t *testing.T) {
	rules, err := ParseRules([]string{"a=b=c"})
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	if rules[0].Old != "a" || rules[0].New != "b=c" {
		t.Errorf("rules[0] = %+v", rules[0])
	}
}

func TestParseRulesErrors(t *testing.T) {
	for _, specs := range [][]string{
		{"noequals"},
		{"=new"},
		{"old="},
		{"a=b", "a=c"},
		{"a=x", "b=x"},
	} {
		if _, err := ParseRules(specs); err == nil {
			t.Errorf("expected error for %v", specs)
		}
	}
}
