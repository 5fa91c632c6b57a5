package validate_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"zahab/internal/validate"
)

func TestQAllowsArabic(t *testing.T) {
	if _, ok := validate.Q("خاتم ذهب"); !ok {
		t.Fatal("Arabic queries must validate")
	}
	if _, ok := validate.Q("gold ring"); !ok {
		t.Fatal("Latin queries must validate")
	}
	if _, ok := validate.Q("<script>"); ok {
		t.Fatal("markup must not validate")
	}
	if _, ok := validate.Q("   "); ok {
		t.Fatal("blank must not validate")
	}
}

func TestQTruncatesByRunes(t *testing.T) {
	long := strings.Repeat("خ", 60) // 120 bytes, 60 runes
	got, ok := validate.Q(long)
	if !ok {
		t.Fatal("long Arabic query should truncate and validate, not be rejected")
	}
	if utf8.RuneCountInString(got) != 50 {
		t.Fatalf("want 50 runes, got %d", utf8.RuneCountInString(got))
	}
	if !utf8.ValidString(got) {
		t.Fatal("truncation split a rune")
	}
}

func TestPhone(t *testing.T) {
	good := []string{"+962790000000", "0790000000"}
	for _, s := range good {
		if _, ok := validate.Phone(s); !ok {
			t.Errorf("%q should validate", s)
		}
	}
	bad := []string{"", "abc", "+", "123", "+96279000000000000000"}
	for _, s := range bad {
		if _, ok := validate.Phone(s); ok {
			t.Errorf("%q should not validate", s)
		}
	}
}

func TestQtyClamps(t *testing.T) {
	if validate.Qty("3") != 3 || validate.Qty("0") != 1 || validate.Qty("-2") != 1 ||
		validate.Qty("junk") != 1 || validate.Qty("999") != 50 {
		t.Fatal("qty clamping wrong")
	}
}

func TestPercentageWindow(t *testing.T) {
	if _, ok := validate.Percentage("15.5"); !ok {
		t.Fatal("15.5 should validate")
	}
	for _, s := range []string{"0", "-1", "100.1", "junk"} {
		if _, ok := validate.Percentage(s); ok {
			t.Errorf("%q should not validate", s)
		}
	}
}

func TestPageDefaultsToZero(t *testing.T) {
	if validate.Page("") != 0 || validate.Page("-1") != 0 || validate.Page("4") != 4 {
		t.Fatal("page parsing wrong")
	}
}
