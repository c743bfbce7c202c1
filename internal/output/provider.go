package output

//go:generate $MOCKGEN -source=provider.go -destination=mocks/format_provider_mock.go

import "github.com/wesleyorama2/reqbuild/request"

// FormatProvider is an interface for different output formatters.
type FormatProvider interface {
	// FormatRequest renders a built request.
	FormatRequest(req *request.Request) (string, error)
}
