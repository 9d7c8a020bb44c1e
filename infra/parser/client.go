package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/hfujita/order-ingestion-system/consts"
	"github.com/hfujita/order-ingestion-system/entity"
)

const parseOrdersPath = "/api/v1/orders/parse"

// Client calls the document parsing service that turns an uploaded
// CSV/Excel file into raw order rows.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: consts.ParserTimeoutInSec * time.Second,
		},
	}
}

type parseResponse struct {
	Data []entity.RawRow `json:"data"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Parse posts the file to the parsing service and returns the ordered
// row mappings from its JSON envelope. Any non-array or malformed
// result is an error; the caller decides how to surface it.
func (c *Client) Parse(ctx context.Context, content []byte, filename string) ([]entity.RawRow, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+parseOrdersPath, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	log.Debugf("[ParserClient] POST %s (%s, %d bytes)", req.URL, filename, len(content))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parser service unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read parser response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Detail != "" {
			return nil, fmt.Errorf("parser service error: %s", errResp.Detail)
		}
		return nil, fmt.Errorf("parser service returned status %d", resp.StatusCode)
	}

	var parsed parseResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("malformed parser response: %w", err)
	}
	if parsed.Data == nil {
		return nil, errors.New("parser response has no data array")
	}

	return parsed.Data, nil
}
