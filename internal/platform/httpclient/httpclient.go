package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"eldercare-panel/internal/platform/logger"

	"github.com/google/uuid"
)

const (
	DefaultTimeout = 10 * time.Second

	// GenericFailure es el mensaje cuando el backend no manda "detail".
	GenericFailure = "request failed"

	maxBody = 1 << 20 // 1MB
)

// Observer recibe una observación por request saliente (métricas).
// status == 0 indica falla de transporte.
type Observer interface {
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

// Client envuelve *http.Client con helpers JSON para hablar con el backend.
type Client struct {
	HTTP     *http.Client
	BaseURL  string // opcional; si se define, DoJSON acepta paths relativos
	Log      logger.Logger
	Observer Observer
}

// New crea un Client con timeout razonable.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP: &http.Client{Timeout: timeout},
		Log:  logger.Nop(),
	}
}

// NewWithBaseURL crea un Client con BaseURL + timeout.
func NewWithBaseURL(baseURL string, timeout time.Duration) (*Client, error) {
	c := New(timeout)
	if strings.TrimSpace(baseURL) == "" {
		return c, nil
	}
	u, err := url.ParseRequestURI(baseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}
	c.BaseURL = strings.TrimRight(baseURL, "/")
	return c, nil
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *Client {
	c := New(timeout)
	if tr != nil {
		c.HTTP.Transport = tr
	}
	return c
}

// APIError representa una respuesta no-2xx del backend.
// Detail es el campo "detail" del cuerpo, vacío si no vino.
type APIError struct {
	Status int
	Detail string
	Body   string
}

func (e *APIError) Error() string {
	return e.Message()
}

// Message devuelve el detail del servidor o el mensaje genérico.
func (e *APIError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return GenericFailure
}

// NetworkError es una falla de transporte: no hubo respuesta HTTP.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsStatus indica si err es un APIError con ese status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// DoJSON hace un request JSON.
// - pathOrURL: URL absoluta o path relativo si BaseURL está seteado
// - headers: headers extra (opcional)
// - in: body a enviar tal cual como JSON (nil => sin body)
// - out: destino del JSON de respuesta (nil => se ignora)
// No-2xx => *APIError. Sin respuesta => *NetworkError.
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	in any,
	out any,
) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}

	log := c.logger().With(map[string]any{
		"method":     method,
		"path":       req.URL.Path,
		"request_id": requestID,
	})

	started := time.Now()
	resp, err := c.HTTP.Do(req)
	elapsed := time.Since(started)
	if err != nil {
		c.observe(method, req.URL.Path, 0, elapsed)
		log.Warn("request failed", map[string]any{"error": err, "elapsed_ms": elapsed.Milliseconds()})
		return &NetworkError{Method: method, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	c.observe(method, req.URL.Path, resp.StatusCode, elapsed)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return &NetworkError{Method: method, URL: fullURL, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			Status: resp.StatusCode,
			Detail: extractDetail(raw),
			Body:   strings.TrimSpace(string(raw)),
		}
		log.Warn("non-2xx response", map[string]any{"status": resp.StatusCode, "detail": apiErr.Detail})
		return apiErr
	}

	log.Debug("request done", map[string]any{"status": resp.StatusCode, "elapsed_ms": elapsed.Milliseconds()})

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) logger() logger.Logger {
	if c.Log == nil {
		return logger.Nop()
	}
	return c.Log
}

func (c *Client) observe(method, path string, status int, elapsed time.Duration) {
	if c.Observer != nil {
		c.Observer.ObserveRequest(method, path, status, elapsed)
	}
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	if strings.TrimSpace(c.BaseURL) == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}

	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}

// extractDetail lee "detail" de un cuerpo de error.
// FastAPI manda string, o una lista de {"msg": ...} en errores de validación.
func extractDetail(raw []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if m := strings.TrimSpace(it.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}

	if string(envelope.Detail) == "null" {
		return ""
	}
	return string(envelope.Detail)
}
