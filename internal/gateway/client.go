package gateway

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/identity"
	"shareit-backend/internal/pkg/response"
)

// forwarded request headers; everything else is dropped at the gateway.
var forwardedHeaders = []string{
	"Content-Type",
	identity.Header,
	"X-Request-Id",
}

// Client forwards validated requests to the upstream server and relays the
// upstream status and body untouched.
type Client struct {
	serverURL  string
	httpClient *http.Client
}

// NewClient creates a gateway client for the given upstream base URL.
func NewClient(serverURL string, timeout time.Duration) *Client {
	return &Client{
		serverURL: serverURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Forward proxies the incoming request to the upstream server, preserving
// method, path, query string and body.
func (cl *Client) Forward(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Message: "failed to read request body"})
		return
	}

	url := cl.serverURL + c.Request.URL.Path
	if rawQuery := c.Request.URL.RawQuery; rawQuery != "" {
		url += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, url, bytes.NewReader(body))
	if err != nil {
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Message: "failed to build upstream request"})
		return
	}
	for _, h := range forwardedHeaders {
		if v := c.GetHeader(h); v != "" {
			req.Header.Set(h, v)
		}
	}

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		slog.Error("upstream request failed", "method", c.Request.Method, "url", url, "err", err)
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Message: "failed to reach the server"})
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Message: "failed to read upstream response"})
		return
	}

	c.Data(resp.StatusCode, "application/json", respBody)
}
