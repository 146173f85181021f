package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// sensitiveFieldNames are attribute keys whose values are always
// redacted. The API itself is unauthenticated, but proxies and clients
// still send credentials that must never reach a log line.
var sensitiveFieldNames = []string{
	"password",
	"secret",
	"token",
	"apiKey",
	"apikey",
	"api_key",
	"accessToken",
	"access_token",
	"refreshToken",
	"refresh_token",
	"credential",
	"credentials",
	"authorization",
	"auth",
	"bearer",
	"cookie",
	"session",
	"privateKey",
	"private_key",
	"secretKey",
	"secret_key",
}

// Value patterns redacted regardless of the field they appear under.
var (
	jwtPattern       = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern    = regexp.MustCompile(`(?i)^bearer\s+.+$`)
	basicAuthPattern = regexp.MustCompile(`(?i)^basic\s+.+$`)
)

// DefaultRedactOptions returns the masq options every logger in the
// service is built with. Extra field names go through NewReplaceAttr:
//
//	logging.NewReplaceAttr(masq.WithFieldName("seedSource"))
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(sensitiveFieldNames)+5)

	for _, name := range sensitiveFieldNames {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(basicAuthPattern),
	)

	return opts
}

// NewReplaceAttr builds the ReplaceAttr function wired into every
// handler, combining DefaultRedactOptions with any extras.
func NewReplaceAttr(extra ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), extra...)...)
}
