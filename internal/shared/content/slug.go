package content

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9]+`)
	foldDiacritic = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// special letters that NFD does not decompose into base + mark
var letterFold = strings.NewReplacer(
	"đ", "d", "Đ", "D",
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
)

// RemoveDiacritics maps accented letters to their ASCII base ("Nguyễn" -> "Nguyen")
func RemoveDiacritics(input string) string {
	out, _, err := transform.String(foldDiacritic, letterFold.Replace(input))
	if err != nil {
		return input
	}
	return out
}

// Slugify turns a title into a lowercase, hyphen separated, URL safe slug.
// Runs of anything that is not a letter or digit collapse into one hyphen.
//
//	Slugify("Hello, World!") == "hello-world"
func Slugify(title string) string {
	ascii := strings.ToLower(RemoveDiacritics(title))
	return strings.Trim(nonSlugChars.ReplaceAllString(ascii, "-"), "-")
}
