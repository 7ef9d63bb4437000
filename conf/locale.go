package conf

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// SetLocale validates tag as BCP-47 and stores its subtags in the locale
// fields. Subtags are taken as spelled in the tag (with canonical casing);
// nothing is inferred. An invalid tag leaves the config unchanged.
func (c *Config) SetLocale(tag string) error {
	if _, err := language.Parse(tag); err != nil {
		return errors.Wrapf(err, "parse locale %q", tag)
	}

	var lang, script, region string
	var variants []string
	for i, sub := range strings.Split(strings.Replace(tag, "_", "-", -1), "-") {
		switch {
		case i == 0:
			lang = strings.ToLower(sub)
		case script == "" && region == "" && len(variants) == 0 && len(sub) == 4 && isAlpha(sub):
			script = strings.Title(strings.ToLower(sub))
		case region == "" && len(variants) == 0 && (len(sub) == 2 && isAlpha(sub) || len(sub) == 3 && isDigit(sub)):
			region = strings.ToUpper(sub)
		default:
			variants = append(variants, strings.ToLower(sub))
		}
	}

	c.Language = lang
	c.Script = script
	c.Region = region
	c.Variant = strings.Join(variants, "-")
	return nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func isDigit(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
