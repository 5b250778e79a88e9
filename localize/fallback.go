package localize

import "golang.org/x/text/language"

// fallbacks returns the tags that may be substituted for tag, ordered
// most-specific first: language+script+region, then language+script,
// then bare language.
func fallbacks(tag language.Tag) []language.Tag {
	var result []language.Tag
	lang, script, region := tag.Raw()
	// The language package reports "ZZ"/"Zzzz" for an unspecified
	// region/script.
	if region.String() != "ZZ" {
		if t, err := language.Compose(lang, script, region); err == nil {
			result = append(result, t)
		}
	}
	if script.String() != "Zzzz" {
		if t, err := language.Compose(lang, script); err == nil {
			result = append(result, t)
		}
	}
	if t, err := language.Compose(lang); err == nil {
		result = append(result, t)
	}
	return result
}
