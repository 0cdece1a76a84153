// Package cep consulta endereços pelo CEP na API pública do ViaCEP.
package cep

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/validators"
)

var (
	ErrInvalid  = httperr.ErrBusiness("invalid_cep")
	ErrNotFound = httperr.ErrBusiness("cep_not_found")
)

type Address struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"address"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

func NewClient(baseURL string, log zerolog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = time.Second
	rc.HTTPClient.Timeout = 5 * time.Second
	rc.Logger = leveledLogger{log}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
	}
}

func (c *Client) Lookup(ctx context.Context, raw string) (*Address, error) {
	cep, ok := validators.NormalizeCEP(raw)
	if !ok {
		return nil, ErrInvalid
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, cep)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "cep: build request")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "cep: request")
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusBadRequest:
		return nil, ErrInvalid
	case res.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case res.StatusCode >= 300:
		return nil, errors.Errorf("cep: unexpected status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	if err != nil {
		return nil, errors.Wrap(err, "cep: read body")
	}

	// o ViaCEP responde 200 com {"erro": true} (ou "true") para CEP inexistente
	doc := gjson.ParseBytes(body)
	if doc.Get("erro").Bool() {
		return nil, ErrNotFound
	}

	return &Address{
		PostalCode:   cep[:5] + "-" + cep[5:],
		Street:       doc.Get("logradouro").String(),
		Complement:   doc.Get("complemento").String(),
		Neighborhood: doc.Get("bairro").String(),
		City:         doc.Get("localidade").String(),
		State:        doc.Get("uf").String(),
	}, nil
}

// leveledLogger leva os logs do retryablehttp para o zerolog em debug.
type leveledLogger struct {
	l zerolog.Logger
}

func (z leveledLogger) Error(msg string, kv ...interface{}) { z.event(z.l.Error(), msg, kv) }
func (z leveledLogger) Info(msg string, kv ...interface{})  { z.event(z.l.Debug(), msg, kv) }
func (z leveledLogger) Debug(msg string, kv ...interface{}) { z.event(z.l.Debug(), msg, kv) }
func (z leveledLogger) Warn(msg string, kv ...interface{})  { z.event(z.l.Warn(), msg, kv) }

func (z leveledLogger) event(ev *zerolog.Event, msg string, kv []interface{}) {
	ev.Fields(kv).Msg(msg)
}
