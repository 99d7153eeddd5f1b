package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gorilla/websocket"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	wsURL      string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &APIClient{
		baseURL: baseURL + "/api",
		wsURL:   "ws" + strings.TrimPrefix(baseURL, "http") + "/api/ws",
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// Response types matching backend

type VerifyResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type Created struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

type FeedMessage struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
}

// SendOTP asks the server to mail a login code
func (c *APIClient) SendOTP(email string) error {
	resp, err := c.postJSON("/auth/send-otp", map[string]string{"email": email}, "")
	if err != nil {
		return fmt.Errorf("send-otp request failed: %w", err)
	}
	defer resp.Body.Close()
	return expect(resp, http.StatusOK, "send-otp")
}

// VerifyOTP exchanges a code for a token
func (c *APIClient) VerifyOTP(email, code string) (*VerifyResponse, error) {
	resp, err := c.postJSON("/auth/verify-otp", map[string]string{"email": email, "otp": code}, "")
	if err != nil {
		return nil, fmt.Errorf("verify-otp request failed: %w", err)
	}
	defer resp.Body.Close()
	if err := expect(resp, http.StatusOK, "verify-otp"); err != nil {
		return nil, err
	}

	var result VerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// Upload is one generated image attached to a form.
type Upload struct {
	Field    string
	Filename string
	Color    color.Color
}

// CreateWithImages posts a multipart form to a collection
func (c *APIClient) CreateWithImages(collection string, fields map[string]string, uploads []Upload, token string) (*Created, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, err
		}
	}
	for _, u := range uploads {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, u.Field, u.Filename))
		header.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, err
		}
		if err := imaging.Encode(part, imaging.New(1600, 1000, u.Color), imaging.JPEG); err != nil {
			return nil, fmt.Errorf("encode %s: %w", u.Filename, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	resp, err := c.do(http.MethodPost, "/"+collection, &buf, w.FormDataContentType(), token)
	if err != nil {
		return nil, fmt.Errorf("create %s request failed: %w", collection, err)
	}
	defer resp.Body.Close()
	return decodeCreated(resp, collection)
}

// CreateJSON posts a JSON document to a collection
func (c *APIClient) CreateJSON(collection string, body any, token string) (*Created, error) {
	resp, err := c.postJSON("/"+collection, body, token)
	if err != nil {
		return nil, fmt.Errorf("create %s request failed: %w", collection, err)
	}
	defer resp.Body.Close()
	return decodeCreated(resp, collection)
}

// Watch streams the change feed until the connection drops
func (c *APIClient) Watch(handle func(FeedMessage)) error {
	conn, _, err := websocket.DefaultDialer.Dial(c.wsURL, nil)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", c.wsURL, err)
	}
	defer conn.Close()

	for {
		var msg FeedMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return err
		}
		handle(msg)
	}
}

// HTTP helpers

func decodeCreated(resp *http.Response, collection string) (*Created, error) {
	if err := expect(resp, http.StatusCreated, "create "+collection); err != nil {
		return nil, err
	}
	var created Created
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &created, nil
}

func expect(resp *http.Response, status int, op string) error {
	if resp.StatusCode == status {
		return nil
	}
	bodyBytes, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%s failed (status %d): %s", op, resp.StatusCode, string(bodyBytes))
}

func (c *APIClient) postJSON(path string, body any, token string) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return c.do(http.MethodPost, path, bytes.NewReader(jsonBody), "application/json", token)
}

func (c *APIClient) do(method, path string, body io.Reader, contentType, token string) (*http.Response, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", contentType)

	return c.httpClient.Do(req)
}
