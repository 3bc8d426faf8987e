// Package validate — URL and width checks for links and images.
// Every user-supplied URL must pass EnforceSecureURL before it is written
// into an href or src attribute. Only https targets ever get through.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Kind classifies a raw URL.
type Kind int

const (
	SecureAbsolute Kind = iota
	InsecureAbsolute
	DisallowedScheme
	SchemeLess
)

func (k Kind) String() string {
	switch k {
	case SecureAbsolute:
		return "secure-absolute"
	case InsecureAbsolute:
		return "insecure-absolute"
	case DisallowedScheme:
		return "disallowed-scheme"
	case SchemeLess:
		return "scheme-less"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Reason is a fixed rejection code the host turns into a user-facing message.
type Reason string

const (
	ReasonHTTPSRequired   Reason = "httpsRequired"
	ReasonInvalidProtocol Reason = "invalidProtocol"
)

var (
	// ErrEmptyURL signals a blank input. It is not a validation failure:
	// callers treat it as a request to clear the link or image.
	ErrEmptyURL = errors.New("empty url")

	// ErrRejected is matched by every RejectionError.
	ErrRejected = errors.New("url rejected")
)

// RejectionError reports why a URL was refused.
type RejectionError struct {
	URL    string
	Reason Reason
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("url %q rejected: %s", e.URL, e.Reason)
}

func (e *RejectionError) Unwrap() error {
	return ErrRejected
}

// URL is a validated target ready to be assigned to an attribute.
type URL struct {
	Raw   string // trimmed input
	Value string // normalized absolute https URL
	Kind  Kind   // classification of Raw
}

func (u URL) String() string {
	return u.Value
}

var (
	// schemePattern matches an explicit "scheme://" prefix.
	schemePattern = regexp.MustCompile(`^[A-Za-z0-9.-]+://`)

	// opaqueSchemePattern matches "scheme:" forms without slashes, such as
	// javascript:, data: or vbscript:. A digit after the colon reads as a
	// host:port pair instead and is left alone.
	opaqueSchemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:(?:[^0-9]|$)`)
)

const (
	httpsPrefix = "https://"
	httpPrefix  = "http://"
)

// Classify reports the kind of a raw URL without normalizing it.
// Blank input classifies as SchemeLess; EnforceSecureURL handles it first.
func Classify(raw string) Kind {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(lower, httpsPrefix):
		return SecureAbsolute
	case strings.HasPrefix(lower, httpPrefix):
		return InsecureAbsolute
	case schemePattern.MatchString(s), opaqueSchemePattern.MatchString(s):
		return DisallowedScheme
	default:
		return SchemeLess
	}
}

// EnforceSecureURL validates a user-supplied URL.
//
// Blank input returns ErrEmptyURL. http:// is refused with
// ReasonHTTPSRequired and any other explicit scheme with
// ReasonInvalidProtocol. Input without a scheme is accepted with
// "https://" prepended; https:// input is accepted as-is.
func EnforceSecureURL(raw string) (URL, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return URL{}, ErrEmptyURL
	}

	kind := Classify(s)
	switch kind {
	case SecureAbsolute:
		return URL{Raw: s, Value: s, Kind: kind}, nil
	case InsecureAbsolute:
		return URL{}, &RejectionError{URL: s, Reason: ReasonHTTPSRequired}
	case DisallowedScheme:
		return URL{}, &RejectionError{URL: s, Reason: ReasonInvalidProtocol}
	default:
		return URL{Raw: s, Value: httpsPrefix + s, Kind: kind}, nil
	}
}

// ReasonOf extracts the rejection reason from err. It returns "" for nil,
// for ErrEmptyURL and for errors that are not rejections.
func ReasonOf(err error) Reason {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason
	}
	return ""
}
