package nlp

import (
	"regexp"
	"strings"

	"github.com/dhruvmish/Airline-Assistant/models"
)

var (
	flightNumberRe = regexp.MustCompile(`\b[A-Z]{2}\d{1,4}\b`)
	airportCodeRe  = regexp.MustCompile(`\b[A-Z]{3}\b`)
	bookingRefRe   = regexp.MustCompile(`\b[A-Z0-9]{6,8}\b`)
	// One or more consecutive capitalized words of at least three letters.
	cityRe = regexp.MustCompile(`\b[A-Z][a-z]{2,}(?: [A-Z][a-z]{2,})*\b`)
)

// Common English words that collide with the airport-code pattern.
var airportCodeStopSet = map[string]struct{}{
	"FOR": {}, "AND": {}, "THE": {}, "FROM": {},
}

// Sentence-leading words that the capitalized-word city scan must ignore.
var cityStopSet = map[string]struct{}{
	"Flight": {}, "From": {}, "Book": {}, "Find": {}, "Check": {},
	"When": {}, "What": {}, "Where": {}, "How": {},
}

// entityMatcher is one extraction rule. Rules run in a fixed order; found
// holds the kinds extracted so far so that later rules can defer to
// earlier ones (booking refs yield to flight numbers).
type entityMatcher interface {
	Kind() string
	Match(raw string, found models.EntityBag) []string
}

type flightNumberMatcher struct{}

func (flightNumberMatcher) Kind() string { return models.EntityFlightNumbers }

func (flightNumberMatcher) Match(raw string, _ models.EntityBag) []string {
	return flightNumberRe.FindAllString(strings.ToUpper(raw), -1)
}

type airportCodeMatcher struct{}

func (airportCodeMatcher) Kind() string { return models.EntityAirportCodes }

// Match looks for codes written in uppercase in the original text; city
// names like "New York" must not surface as the bogus code "NEW".
func (airportCodeMatcher) Match(raw string, _ models.EntityBag) []string {
	var codes []string
	for _, code := range airportCodeRe.FindAllString(raw, -1) {
		if _, skip := airportCodeStopSet[code]; skip {
			continue
		}
		codes = append(codes, code)
	}
	return codes
}

type bookingRefMatcher struct{}

func (bookingRefMatcher) Kind() string { return models.EntityBookingRefs }

// Match accepts 6-8 character uppercase alphanumeric tokens carrying at
// least one digit. Anything already claimed as a flight number is skipped.
func (bookingRefMatcher) Match(raw string, found models.EntityBag) []string {
	flights := make(map[string]struct{})
	for _, f := range found[models.EntityFlightNumbers] {
		flights[f] = struct{}{}
	}

	var refs []string
	for _, ref := range bookingRefRe.FindAllString(strings.ToUpper(raw), -1) {
		if !strings.ContainsAny(ref, "0123456789") {
			continue
		}
		if _, dup := flights[ref]; dup {
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}

type cityMatcher struct{}

func (cityMatcher) Kind() string { return models.EntityCities }

func (cityMatcher) Match(raw string, _ models.EntityBag) []string {
	lowered := strings.ToLower(raw)
	if strings.Contains(lowered, " to ") {
		// "City to City" route form: exactly two segments.
		parts := strings.SplitN(lowered, " to ", 2)
		departure := parts[0]
		departure = strings.ReplaceAll(departure, "flights from", "")
		departure = strings.ReplaceAll(departure, "flight from", "")
		departure = strings.TrimSpace(departure)
		arrival := strings.TrimSpace(parts[1])
		if departure == "" || arrival == "" {
			return nil
		}
		return []string{titleWords(departure), titleWords(arrival)}
	}

	// Single-city fallback: capitalized word sequences in the raw text.
	var cities []string
	for _, city := range cityRe.FindAllString(raw, -1) {
		if _, skip := cityStopSet[city]; skip {
			continue
		}
		cities = append(cities, city)
	}
	return cities
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[:1])) + string(r[1:])
	}
	return strings.Join(words, " ")
}

// Extractor pulls structured entities out of raw, non-normalized text.
type Extractor struct {
	matchers []entityMatcher
}

// NewExtractor assembles the rule set in precedence order.
func NewExtractor() *Extractor {
	return &Extractor{matchers: []entityMatcher{
		flightNumberMatcher{},
		airportCodeMatcher{},
		bookingRefMatcher{},
		cityMatcher{},
	}}
}

// Extract runs every rule against the raw text. Kinds with no matches are
// absent from the bag. Malformed input yields partial or empty results,
// never an error.
func (e *Extractor) Extract(raw string) models.EntityBag {
	bag := models.EntityBag{}
	for _, m := range e.matchers {
		if vals := m.Match(raw, bag); len(vals) > 0 {
			bag[m.Kind()] = vals
		}
	}
	return bag
}
