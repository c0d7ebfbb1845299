package logcollector

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

// HTTPLogCollector fetches logs with a single GET request
type HTTPLogCollector struct {
	httpClient HTTPClient
}

func NewHTTPLogCollector(httpClient HTTPClient) *HTTPLogCollector {
	return &HTTPLogCollector{
		httpClient: httpClient,
	}
}

func (c *HTTPLogCollector) GetLogs(ctx context.Context, source *url.URL) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.String(), nil)
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Close = true

	logrus.WithField("url", source.Redacted()).Debug("Downloading log file")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not get log data: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(ioutil.Discard, resp.Body)
		resp.Body.Close()
		return "", fmt.Errorf("could not download log file %s, status code is %d", source.Redacted(), resp.StatusCode)
	}

	logrus.WithField("status", resp.StatusCode).Debug("Download request completed")

	return readText(resp.Body)
}
