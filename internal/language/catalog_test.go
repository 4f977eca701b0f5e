package language

import "testing"

func TestByName(t *testing.T) {
	l, ok := ByName("فارسی")
	if !ok {
		t.Fatal("expected catalog hit for فارسی")
	}
	if l.Code != "fa" {
		t.Fatalf("expected code fa, got %s", l.Code)
	}
	if _, ok := ByName("klingon"); ok {
		t.Fatal("unexpected catalog hit for unknown name")
	}
}

func TestIsTarget(t *testing.T) {
	for _, l := range Catalog {
		if !IsTarget(l.Code) {
			t.Errorf("catalog code %s not accepted as target", l.Code)
		}
	}
	if IsTarget(Auto) {
		t.Error("auto must never be a valid target")
	}
	if IsTarget("xx") {
		t.Error("unknown code accepted as target")
	}
}
