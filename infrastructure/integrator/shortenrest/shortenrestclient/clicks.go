package shortenrestclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	shortenrestdomain "github.com/vfg2006/shorten-rest-connector/infrastructure/integrator/shortenrest/domain"
)

// rawClicksResponse mantém clicks cru para distinguir campo ausente ou nulo de lista vazia
type rawClicksResponse struct {
	Clicks jsoniter.RawMessage `json:"clicks"`
}

func (c *ShortenRestClient) CheckKey(ctx context.Context, apiKey string) (int, error) {
	resp, err := c.do(ctx, apiKey)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Descarta o corpo para permitir reuso da conexão
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func (c *ShortenRestClient) GetClicks(ctx context.Context, apiKey string) ([]shortenrestdomain.Click, error) {
	resp, err := c.do(ctx, apiKey)
	if err != nil {
		return nil, &shortenrestdomain.FetchError{Op: "get clicks", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &shortenrestdomain.FetchError{
			Op:         "get clicks",
			StatusCode: resp.StatusCode,
			Err:        shortenrestdomain.ErrUnexpectedStatus,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &shortenrestdomain.FetchError{Op: "read body", Err: err}
	}

	var raw rawClicksResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &shortenrestdomain.FetchError{Op: "decode body", Err: err}
	}

	if len(raw.Clicks) == 0 || string(raw.Clicks) == "null" {
		return nil, &shortenrestdomain.FetchError{Op: "decode body", Err: shortenrestdomain.ErrMissingClicks}
	}

	clicks := make([]shortenrestdomain.Click, 0)
	if err := json.Unmarshal(raw.Clicks, &clicks); err != nil {
		return nil, &shortenrestdomain.FetchError{Op: "decode clicks", Err: err}
	}

	return clicks, nil
}

func (c *ShortenRestClient) do(ctx context.Context, apiKey string) (*http.Response, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, clicksPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("content-type", "application/json")
	req.Header.Set(apiKeyHeader, apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}

	return resp, nil
}
