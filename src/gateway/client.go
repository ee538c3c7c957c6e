package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tbs/src/config"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// The travel REST API speaks JSON over HTTPS with an {success, message, data}
// envelope. The caller's bearer token is forwarded on every request; auth is
// owned by the travel API, not by this service.

var httpClient = &http.Client{}

// NewHTTPClient Replace the transport with a custom client implementation
func NewHTTPClient(c *http.Client) {
	httpClient = c
}

func doJSON(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, config.GetTravelAPIBaseURL()+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= http.StatusBadRequest {
		msg := gjson.GetBytes(payload, "message").String()
		if msg == "" {
			msg = gjson.GetBytes(payload, "title").String()
		}
		if msg == "" {
			msg = res.Status
		}
		return payload, fmt.Errorf("%s", msg)
	}
	return payload, nil
}

// dataSection unwraps the response envelope; endpoints that return a naked
// body instead of {data: ...} are tolerated.
func dataSection(payload []byte) []byte {
	if res := gjson.GetBytes(payload, "data"); res.Exists() {
		return []byte(res.Raw)
	}
	return payload
}
