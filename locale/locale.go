// Package locale implements the locale collaborator corestr consumes: an
// identifier string, decimal separator, and a collator comparing two
// substrings with option flags. Backed by golang.org/x/text/language and
// golang.org/x/text/collate — this package deliberately does not
// reimplement a full locale/calendar subsystem from scratch.
package locale

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Locale identifies a language/region and exposes the handful of
// operations the core consumes.
type Locale struct {
	tag language.Tag
}

// Current is the process's current locale, consulted transiently whenever
// an option combination implies locale-sensitivity but none was supplied.
var Current = New("en-US")

// New parses identifier (a BCP 47 tag such as "en-US" or "tr-TR") into a
// Locale, falling back to the undetermined locale on parse failure.
func New(identifier string) Locale {
	tag, err := language.Parse(identifier)
	if err != nil {
		tag = language.Und
	}
	return Locale{tag: tag}
}

// Identifier returns the locale's canonical BCP 47 identifier string.
func (l Locale) Identifier() string { return l.tag.String() }

// DecimalSeparator returns the locale's decimal point, used by the format
// engine's localized numeric emission.
func (l Locale) DecimalSeparator() string {
	// x/text doesn't expose CLDR's numbering-system symbols directly from
	// language.Tag; the set of locales that use a comma is well known and
	// small enough to special-case, matching the rest of the core's
	// preference for a short explicit table over a heavyweight CLDR walk.
	base, _ := l.tag.Base()
	switch base.String() {
	case "de", "fr", "es", "it", "pt", "ru", "nl", "pl", "tr", "sv", "fi", "da", "nb", "nn":
		return ","
	default:
		return "."
	}
}

// GroupingSeparator returns the locale's digit-grouping separator.
func (l Locale) GroupingSeparator() string {
	if l.DecimalSeparator() == "," {
		return "."
	}
	return ","
}

// IsTurkic reports whether the locale uses dotted/dotless I case mapping,
// feeding the special-case language handling in transform/fold.
func (l Locale) IsTurkic() bool {
	base, _ := l.tag.Base()
	switch base.String() {
	case "tr", "az", "crh":
		return true
	default:
		return false
	}
}

// IsLithuanian, IsGreek, IsDutch report the other special-case case-
// mapping languages; transform/fold does not consult them.
func (l Locale) IsLithuanian() bool { b, _ := l.tag.Base(); return b.String() == "lt" }
func (l Locale) IsGreek() bool      { b, _ := l.tag.Base(); return b.String() == "el" }
func (l Locale) IsDutch() bool      { b, _ := l.tag.Base(); return b.String() == "nl" }

// Compare delegates to a golang.org/x/text/collate collator over the two
// residual ranges. caseInsensitive and numeric select the matching
// collate.Option so the collator's own notion of case- and
// digit-run-insensitivity lines up with the comparator's option set.
func (l Locale) Compare(a, b []rune, caseInsensitive, numeric bool) int {
	c := collatorCache.get(l, caseInsensitive, numeric)
	return c.CompareString(string(a), string(b))
}

// collatorCache is the "localized number formatter cache" analogue for
// collators: a single slot holding the most recently requested
// (locale, option) collator, rebuilt whenever the requested key differs,
// guarded by a single lock.
var collatorCache = newCollatorCacheImpl()

type collatorKey struct {
	locale          string
	caseInsensitive bool
	numeric         bool
}

type collatorCacheImpl struct {
	mu  sync.Mutex
	key collatorKey
	c   *collate.Collator
}

func newCollatorCacheImpl() *collatorCacheImpl { return &collatorCacheImpl{} }

func (cc *collatorCacheImpl) get(l Locale, caseInsensitive, numeric bool) *collate.Collator {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	key := collatorKey{locale: l.Identifier(), caseInsensitive: caseInsensitive, numeric: numeric}
	if cc.c == nil || cc.key != key {
		var opts []collate.Option
		if caseInsensitive {
			opts = append(opts, collate.IgnoreCase())
		}
		if numeric {
			opts = append(opts, collate.Numeric())
		}
		cc.c = collate.New(l.tag, opts...)
		cc.key = key
	}
	return cc.c
}

// String implements fmt.Stringer for debugging/logging.
func (l Locale) String() string { return l.Identifier() }
