package i18n_test

import (
	"testing"

	"zahab/internal/i18n"
)

func TestPickFallsBackToEnglish(t *testing.T) {
	if got := i18n.Pick(i18n.Ar, "Ring", ""); got != "Ring" {
		t.Fatalf("want English fallback, got %q", got)
	}
	if got := i18n.Pick(i18n.Ar, "Ring", "خاتم"); got != "خاتم" {
		t.Fatalf("want Arabic value, got %q", got)
	}
	if got := i18n.Pick(i18n.En, "Ring", "خاتم"); got != "Ring" {
		t.Fatalf("want English value, got %q", got)
	}
	for _, l := range []i18n.Lang{i18n.En, i18n.Ar} {
		if got := i18n.Pick(l, "", ""); got != "" {
			t.Fatalf("empty pair under %s: got %q", l, got)
		}
	}
}

func TestTMissingKeyRendersRawKey(t *testing.T) {
	if got := i18n.T(i18n.En, "no.such.key"); got != "no.such.key" {
		t.Fatalf("got %q", got)
	}
	if got := i18n.T(i18n.Ar, "cart.title"); got == "cart.title" || got == "" {
		t.Fatalf("expected Arabic translation, got %q", got)
	}
}

func TestParseAndDir(t *testing.T) {
	if i18n.Parse("ar") != i18n.Ar || i18n.Parse("en") != i18n.En || i18n.Parse("fr") != i18n.En {
		t.Fatal("Parse should clamp to {en, ar}")
	}
	if i18n.Dir(i18n.Ar) != "rtl" || i18n.Dir(i18n.En) != "ltr" {
		t.Fatal("bad direction mapping")
	}
}
