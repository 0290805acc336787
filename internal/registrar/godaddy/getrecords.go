package godaddy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"dns-migrator/internal/errs"
	"dns-migrator/internal/models"
)

// GetRecords fetches every DNS record of the domain. Failures are
// soft: a bad response from the API (domain not found or not
// manageable) or a transport error is logged and an empty slice is
// returned, which downstream means "no DNS presence". The caller is
// expected to memoize the result on the domain for the whole run.
func (c *Client) GetRecords(ctx context.Context, domain string) (
	records []models.SourceRecord) {
	err := c.gateway.Do(func() error {
		var fetchErr error
		records, fetchErr = c.fetchRecords(ctx, domain)
		return fetchErr
	})
	if err != nil {
		if errors.Is(err, errs.ErrDomainNotFound) {
			c.logger.Debug("domain " + domain +
				" is not manageable through the registrar API: " + err.Error())
		} else {
			c.logger.Error("fetching records for " + domain +
				", treating as no records: " + err.Error())
		}
		return nil
	}
	return records
}

func (c *Client) fetchRecords(ctx context.Context, domain string) (
	records []models.SourceRecord, err error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	u.Path = fmt.Sprintf("/v1/domains/%s/records", domain)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(request)

	response, err := c.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(response.Body)
		err = makeHTTPStatusError(response.StatusCode, string(b))
		if badResponse(response.StatusCode) {
			return nil, fmt.Errorf("%w: %w", errs.ErrDomainNotFound, err)
		}
		return nil, err
	}

	decoder := json.NewDecoder(response.Body)
	err = decoder.Decode(&records)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrUnmarshalResponse, err)
	}

	return records, nil
}
