package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"reservation-gateway/internal/pkg/errs"
)

var ErrInvalidPhone = errs.New("invalid phone number")

// Normalizer converts locally-formatted phone numbers into canonical E.164
// form. The default region applies when the input carries no country code.
type Normalizer struct {
	defaultRegion string
}

func NewNormalizer(defaultRegion string) *Normalizer {
	return &Normalizer{defaultRegion: strings.ToUpper(defaultRegion)}
}

// Normalize parses raw against the default region and returns the
// international form, e.g. "6912345678" (GR) -> "+306912345678". The same
// input always yields the same output; unparseable or invalid numbers fail
// with ErrInvalidPhone.
func (n *Normalizer) Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidPhone
	}

	parsed, err := phonenumbers.Parse(trimmed, n.defaultRegion)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidPhone)
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return "", ErrInvalidPhone
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
