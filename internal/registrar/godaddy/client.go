// Package godaddy accesses the GoDaddy v1 domains API as the
// source registrar: it fetches a domain's DNS records and pushes
// nameserver delegation changes back after a migration.
package godaddy

import (
	"fmt"
	"net/http"
	"regexp"

	"dns-migrator/internal/errs"
)

type Gateway interface {
	Do(call func() error) error
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Error(s string)
}

type Client struct {
	baseURL string
	key     string
	secret  string
	client  *http.Client
	gateway Gateway
	logger  Logger
}

type Settings struct {
	Key    string
	Secret string
	// BaseURL defaults to the production API endpoint.
	BaseURL string
	Client  *http.Client
	Gateway Gateway
	Logger  Logger
}

var keyRegex = regexp.MustCompile(`^[A-Za-z0-9]{8,14}\_[A-Za-z0-9]{21,22}$`)

var (
	ErrMalformedKey = fmt.Errorf("malformed API key")
	ErrEmptySecret  = fmt.Errorf("empty API secret")
)

func New(settings Settings) (c *Client, err error) {
	switch {
	case !keyRegex.MatchString(settings.Key):
		return nil, fmt.Errorf("%w", ErrMalformedKey)
	case settings.Secret == "":
		return nil, fmt.Errorf("%w", ErrEmptySecret)
	}

	if settings.BaseURL == "" {
		settings.BaseURL = "https://api.godaddy.com"
	}
	if settings.Client == nil {
		settings.Client = http.DefaultClient
	}

	return &Client{
		baseURL: settings.BaseURL,
		key:     settings.Key,
		secret:  settings.Secret,
		client:  settings.Client,
		gateway: settings.Gateway,
		logger:  settings.Logger,
	}, nil
}

func (c *Client) setHeaders(request *http.Request) {
	request.Header.Set("User-Agent", "DNS-Migrator")
	request.Header.Set("Authorization", "sso-key "+c.key+":"+c.secret)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
}

// badResponse reports whether the status code means the domain is
// not found or not manageable through the API, which the decision
// engine interprets as having no DNS presence.
func badResponse(statusCode int) bool {
	switch statusCode {
	case http.StatusNotFound, http.StatusUnprocessableEntity:
		return true
	}
	return false
}

func makeHTTPStatusError(statusCode int, body string) error {
	return fmt.Errorf("%w: %d: %s", errs.ErrBadHTTPStatus, statusCode, body)
}
