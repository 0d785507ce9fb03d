// Package indexer queries a third-party XRPL indexer REST API for
// data rippled does not serve directly, such as NFTs grouped by
// issuer.
package indexer

import (
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
)

// Well-known base URLs for the public xrpldata indexer.
const (
	MainnetBase = "https://api.xrpldata.com/"
	TestnetBase = "https://test-api.xrpldata.com/"
)

type Client struct {
	base   *url.URL
	client http.Client
}

func NewClient(base string) (Client, error) {
	client := Client{
		client: http.Client{Timeout: 30 * time.Second},
	}
	var err error
	client.base, err = url.Parse(base)
	return client, err
}

// Endpoint produces a url for an API path.  Panics on error in order
// to allow inline calling; base was validated in NewClient.
func (this Client) Endpoint(segment ...string) *url.URL {
	endpoint, err := this.base.Parse(path.Join(segment...))
	if err != nil {
		panic(errors.Wrap(err, "indexer: cannot produce endpoint"))
	}
	return endpoint
}

var errTransient = errors.New("GET failed")

// Get requests an endpoint, retrying transient failures with linear
// backoff.  Public indexers rate limit and flake often enough that a
// single attempt is not useful.
func (this Client) Get(response DataResponse, endpoint *url.URL, values *url.Values) error {
	count := 0
	for {
		count++
		err := this.get(response, endpoint, values)
		if err != nil && errors.Cause(err) == errTransient {
			if count > 10 {
				return errors.Wrapf(err, "indexer GET failed (%d attempts)", count)
			}
			<-time.After(time.Duration(count) * time.Second)
		} else {
			return err
		}
	}
}

func (this Client) get(response DataResponse, endpoint *url.URL, values *url.Values) error {
	if values != nil {
		endpoint.RawQuery = values.Encode()
	}

	res, err := this.client.Get(endpoint.String())
	if err != nil {
		return errors.Wrapf(err, "GET %s", endpoint)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= 500 {
		return errors.Wrapf(errTransient, "GET %s returned %s", endpoint, res.Status)
	}
	if res.StatusCode != http.StatusOK {
		return errors.Errorf("GET %s returned %s", endpoint, res.Status)
	}

	var raw json.RawMessage
	err = json.NewDecoder(res.Body).Decode(&raw)
	if err != nil {
		return errors.Wrapf(err, "GET %s could not decode response", endpoint)
	}
	response.setRaw(raw)

	return json.Unmarshal(raw, response)
}

type Response struct {
	Info struct {
		LedgerIndex uint32 `json:"ledger_index"`
		LedgerHash  string `json:"ledger_hash"`
	} `json:"info"`

	// raw bytes kept for further unmarshalling into type-specific
	// structs
	raw json.RawMessage
}

type DataResponse interface {
	getRaw() json.RawMessage
	setRaw(json.RawMessage)
}

func (this *Response) getRaw() json.RawMessage {
	return this.raw
}
func (this *Response) setRaw(raw json.RawMessage) {
	this.raw = raw
}
