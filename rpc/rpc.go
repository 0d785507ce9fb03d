// Package rpc makes JSON-RPC calls to rippled.
package rpc

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/y0ssar1an/q"
)

type Request struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

// JSON-RPC response {"result":{..., "status": "..."}}
type Response struct {
	Result    json.RawMessage `json:"result"`
	Validated *bool           `json:"validated"`
	code      int
	status    string
}

func (r Response) StatusCode() int {
	return r.code
}

func (r Response) UnmarshalResult(v interface{}) error {
	return json.Unmarshal(r.Result, v)
}

// Example error:
// {"result":{"error":"unknownCmd","error_code":31,"error_message":"Unknown method.","request":{"command":"server_infoX"},"status":"error"}}
type Result struct {
	// Always present:
	Status string `json:"status"`

	// Present only when error:
	Error        string          `json:"error,omitempty"`
	ErrorCode    int             `json:"error_code"`
	ErrorMessage string          `json:"error_message"`
	Request      json.RawMessage `json:"request"`

	// Other errors
	ErrorException string `json:"error_exception"`

	// Present sometimes:
	LedgerCurrentIndex uint32 `json:"ledger_current_index"`
	Validated          bool   `json:"validated"`
}

type Client struct {
	url      string
	insecure bool
	client   http.Client
}

func (c Client) String() string {
	return fmt.Sprintf("JSON-RPC via %s", c.url)
}

func NewClient(url string, insecure bool) (Client, error) {
	tr := http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: insecure},
	}
	httpClient := http.Client{Transport: &tr}

	client := Client{
		url:      url,
		insecure: insecure,
		client:   httpClient,
	}

	return client, nil
}

func (client Client) Close() {
	// Is there anything needs closing?
}

// Request performs one JSON-RPC call and fails when rippled reports a
// non-success status.
func (client Client) Request(method string, params ...interface{}) (*Response, error) {
	req := Request{Method: method, Params: params}
	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	res, err := client.client.Post(client.url, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "ripple rpc %s %s", method, client.url)
	}
	defer res.Body.Close()

	response := Response{
		code: res.StatusCode,
	}

	err = json.NewDecoder(res.Body).Decode(&response)
	if err != nil {
		return &response, err
	}

	response.status = jsoniter.Get(response.Result, "status").ToString()

	if response.status != "success" {
		result := Result{}
		err = response.UnmarshalResult(&result)
		if err != nil {
			return &response, errors.Wrapf(err, "failed to parse error detail")
		}
		q.Q(method, result) // debug
		return &response, errors.Errorf("POST %s to %s returned %d %s: %s %s  (Request: %s)", method, client.url, response.StatusCode(), result.Error, result.ErrorMessage, result.ErrorException, string(result.Request))
	}

	return &response, err
}

// call wraps Request for the typed query methods: one params object,
// result unmarshalled into target.
func (client Client) call(method string, params interface{}, target interface{}) error {
	res, err := client.Request(method, params)
	if err != nil {
		return err
	}
	return res.UnmarshalResult(target)
}
