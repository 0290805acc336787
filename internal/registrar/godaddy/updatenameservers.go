package godaddy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"dns-migrator/internal/errs"
)

// UpdateNameservers points the domain's delegation at the given
// nameservers, cutting DNS resolution over to the new provider.
// Failures are soft: a cutover failure for one domain must not abort
// the batch, so any error is logged and false is returned.
func (c *Client) UpdateNameservers(ctx context.Context, domain string,
	nameservers []string) (success bool) {
	err := c.gateway.Do(func() error {
		return c.patchNameservers(ctx, domain, nameservers)
	})
	if err != nil {
		c.logger.Error("updating nameservers for " + domain + ": " + err.Error())
		return false
	}
	c.logger.Info("updated nameservers for " + domain + " to " +
		strings.Join(nameservers, ", "))
	return true
}

func (c *Client) patchNameservers(ctx context.Context, domain string,
	nameservers []string) (err error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return err
	}
	u.Path = fmt.Sprintf("/v1/domains/%s", domain)

	requestData := struct {
		NameServers []string `json:"nameServers"`
	}{
		NameServers: nameservers,
	}
	buffer := bytes.NewBuffer(nil)
	encoder := json.NewEncoder(buffer)
	err = encoder.Encode(requestData)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrRequestEncode, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPatch, u.String(), buffer)
	if err != nil {
		return err
	}
	c.setHeaders(request)

	response, err := c.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK ||
		response.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(response.Body)
		return makeHTTPStatusError(response.StatusCode, string(b))
	}

	return nil
}
