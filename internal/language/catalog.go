package language

// Auto is the source-language token passed to translators for detection.
// It is never a valid target and is never stored as a preference.
const Auto = "auto"

// Language pairs an ISO 639-1 code with the display name shown on the
// selection keyboard.
type Language struct {
	Code string
	Name string
}

// Catalog is the fixed set of selectable target languages, in keyboard order.
var Catalog = []Language{
	{Code: "fa", Name: "فارسی"},
	{Code: "en", Name: "انگلیسی"},
	{Code: "fr", Name: "فرانسوی"},
	{Code: "de", Name: "آلمانی"},
	{Code: "es", Name: "اسپانیایی"},
}

// ByName resolves a keyboard display name to its catalog entry.
func ByName(name string) (Language, bool) {
	for _, l := range Catalog {
		if l.Name == name {
			return l, true
		}
	}
	return Language{}, false
}

// IsTarget reports whether code is a valid stored target language.
func IsTarget(code string) bool {
	if code == Auto {
		return false
	}
	for _, l := range Catalog {
		if l.Code == code {
			return true
		}
	}
	return false
}
