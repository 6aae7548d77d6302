package postalcode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"event-checkout/internal/pkg/errs"
	"event-checkout/internal/usecase/queries"
)

// Client looks codes up in a ViaCEP-compatible service: GET {base}/{code}/json.
// Unknown codes answer 200 with {"erro": true}.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{http: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

var _ queries.PostalCodeDirectory = (*Client)(nil)

type lookupResponse struct {
	PostalCode   string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	Region       string `json:"uf"`
	Error        any    `json:"erro"`
}

// notFound accepts both the boolean and the string form of the flag.
func (r lookupResponse) notFound() bool {
	switch v := r.Error.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

func (c *Client) Lookup(ctx context.Context, code string) (*queries.PostalAddress, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(code) + "/json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create postal code request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "postal code service unreachable")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusBadRequest:
		return nil, queries.ErrPostalCodeNotFound
	default:
		return nil, errs.Newf("postal code service returned status %d", resp.StatusCode)
	}

	var out lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errs.Wrap(err, "failed to decode postal code response")
	}
	if out.notFound() {
		return nil, queries.ErrPostalCodeNotFound
	}

	return &queries.PostalAddress{
		PostalCode:   code,
		Street:       out.Street,
		Neighborhood: out.Neighborhood,
		City:         out.City,
		Region:       out.Region,
	}, nil
}
