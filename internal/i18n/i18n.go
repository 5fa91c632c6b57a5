package i18n

type Lang string

const (
	En Lang = "en"
	Ar Lang = "ar"
)

// Parse clamps arbitrary input (cookie values, query params) to the closed
// language set, defaulting to English.
func Parse(s string) Lang {
	if s == string(Ar) {
		return Ar
	}
	return En
}

// Dir is the document direction for a language.
func Dir(l Lang) string {
	if l == Ar {
		return "rtl"
	}
	return "ltr"
}

// Pick resolves a bilingual (English, Arabic) field pair: Arabic wins only
// when the current language is Arabic and the Arabic value is non-empty.
// Total by construction; empty pairs resolve to "".
func Pick(l Lang, en, ar string) string {
	if l == Ar && ar != "" {
		return ar
	}
	return en
}

// T looks up a static UI string. A missing key renders as the raw key so a
// gap is visible on the page instead of crashing the render.
func T(l Lang, key string) string {
	var d map[string]string
	if l == Ar {
		d = ar
	} else {
		d = en
	}
	if v, ok := d[key]; ok {
		return v
	}
	return key
}
