package domain

import "strings"

// ExchangeTag identifies one morphological relation in a word's exchange data.
type ExchangeTag byte

const (
	ExchangeLemma             ExchangeTag = '0'
	ExchangeLemmaForms        ExchangeTag = '1'
	ExchangePlural            ExchangeTag = 's'
	ExchangePreterite         ExchangeTag = 'p'
	ExchangePastParticiple    ExchangeTag = 'd'
	ExchangePresentParticiple ExchangeTag = 'i'
	ExchangeThirdPerson       ExchangeTag = '3'
	ExchangeComparative       ExchangeTag = 'r'
	ExchangeSuperlative       ExchangeTag = 't'
)

// exchangeOrder is the canonical encoding order.
var exchangeOrder = []ExchangeTag{
	ExchangePreterite,
	ExchangePastParticiple,
	ExchangePresentParticiple,
	ExchangeThirdPerson,
	ExchangePlural,
	ExchangeComparative,
	ExchangeSuperlative,
	ExchangeLemma,
	ExchangeLemmaForms,
}

func (t ExchangeTag) String() string { return string(rune(t)) }

func (t ExchangeTag) IsValid() bool {
	switch t {
	case ExchangeLemma, ExchangeLemmaForms, ExchangePlural, ExchangePreterite,
		ExchangePastParticiple, ExchangePresentParticiple, ExchangeThirdPerson,
		ExchangeComparative, ExchangeSuperlative:
		return true
	}
	return false
}

// Exchange holds the parsed morphology of a word keyed by relation.
// A nil Exchange is empty and safe to read.
type Exchange map[ExchangeTag]string

// ParseExchange decodes the slash-delimited "tag:value" wire format.
// Segments without a colon, with an unknown tag or with an empty value are
// skipped. When a tag repeats, the first value wins.
func ParseExchange(s string) Exchange {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var ex Exchange
	for _, seg := range strings.Split(s, "/") {
		tagPart, value, ok := strings.Cut(seg, ":")
		if !ok {
			continue
		}
		tagPart = strings.TrimSpace(tagPart)
		value = strings.TrimSpace(value)
		if len(tagPart) != 1 || value == "" {
			continue
		}
		tag := ExchangeTag(tagPart[0])
		if !tag.IsValid() {
			continue
		}
		if ex == nil {
			ex = make(Exchange, 4)
		}
		if _, seen := ex[tag]; !seen {
			ex[tag] = value
		}
	}
	return ex
}

// String encodes the exchange back to its wire format in canonical tag order.
func (e Exchange) String() string {
	if len(e) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e))
	for _, tag := range exchangeOrder {
		if v, ok := e[tag]; ok {
			parts = append(parts, tag.String()+":"+v)
		}
	}
	return strings.Join(parts, "/")
}

// Get returns the value stored under tag.
func (e Exchange) Get(tag ExchangeTag) (string, bool) {
	v, ok := e[tag]
	return v, ok && v != ""
}

// Lemma returns the base form recorded under tag "0".
func (e Exchange) Lemma() (string, bool) {
	return e.Get(ExchangeLemma)
}

// Clone returns an independent copy.
func (e Exchange) Clone() Exchange {
	if e == nil {
		return nil
	}
	out := make(Exchange, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
