package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"alcocalc/internal/domain"
)

// StatusError is a non-2xx answer from the daemon.
type StatusError struct {
	Method  string
	URL     string
	Status  string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %s: %s", e.Method, e.URL, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
}

// Client calls a remote alcocalcd. It implements domain.Calculator.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a Client for base using httpClient, or
// http.DefaultClient when nil.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: httpClient}
}

func (c *Client) Density(ctx context.Context, abv, temperature float64) (domain.DensityResult, error) {
	var out domain.DensityResult
	err := c.getJSON(ctx, "/v1/density", params{"abv": abv, "t": temperature}, &out)
	return out, err
}

func (c *Client) AbvToMassFraction(ctx context.Context, abv float64) (domain.FractionConversion, error) {
	var out domain.FractionConversion
	err := c.getJSON(ctx, "/v1/convert/abv", params{"abv": abv}, &out)
	return out, err
}

func (c *Client) MassFractionToAbv(ctx context.Context, p domain.MassFraction) (domain.FractionConversion, error) {
	var out domain.FractionConversion
	err := c.getJSON(ctx, "/v1/convert/mass-fraction", params{"p": float64(p)}, &out)
	return out, err
}

func (c *Client) VolumeFromMass(ctx context.Context, massG, abv, temperature float64) (domain.VolumeResult, error) {
	var out domain.VolumeResult
	err := c.getJSON(ctx, "/v1/volume", params{"mass": massG, "abv": abv, "t": temperature}, &out)
	return out, err
}

func (c *Client) MassFromVolume(ctx context.Context, volumeML, abv, temperature float64) (domain.VolumeResult, error) {
	var out domain.VolumeResult
	err := c.getJSON(ctx, "/v1/mass", params{"volume": volumeML, "abv": abv, "t": temperature}, &out)
	return out, err
}

func (c *Client) EthanolMass(ctx context.Context, volumeML, abv, temperature float64) (domain.EthanolMassResult, error) {
	var out domain.EthanolMassResult
	err := c.getJSON(ctx, "/v1/ethanol", params{"volume": volumeML, "abv": abv, "t": temperature}, &out)
	return out, err
}

func (c *Client) Dilute(ctx context.Context, req domain.DilutionRequest) (domain.DilutionResult, error) {
	var out domain.DilutionResult
	err := c.post(ctx, "/v1/dilute", req, &out)
	return out, err
}

func (c *Client) CorrectHydrometer(ctx context.Context, readingABV, temperature float64) (domain.HydrometerCorrection, error) {
	var out domain.HydrometerCorrection
	err := c.getJSON(ctx, "/v1/hydrometer", params{"reading": readingABV, "t": temperature}, &out)
	return out, err
}

func (c *Client) CheckTemperature(ctx context.Context, temperature float64) (domain.TemperatureCheck, error) {
	var out domain.TemperatureCheck
	err := c.getJSON(ctx, "/v1/temperature", params{"t": temperature}, &out)
	return out, err
}

func (c *Client) Tables(ctx context.Context) (domain.CoefficientTables, error) {
	var out domain.CoefficientTables
	err := c.getJSON(ctx, "/v1/tables", nil, &out)
	return out, err
}

type params map[string]float64

func (p params) encode() string {
	v := url.Values{}
	for k, f := range p {
		v.Set(k, strconv.FormatFloat(f, 'f', -1, 64))
	}
	return v.Encode()
}

func (c *Client) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, p params, out any) error {
	u := c.Base + path
	if len(p) > 0 {
		u += "?" + p.encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		var body errorBody
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &StatusError{
			Method:  req.Method,
			URL:     req.URL.String(),
			Status:  resp.Status,
			Code:    resp.StatusCode,
			Message: body.Error,
		}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ domain.Calculator = (*Client)(nil)
