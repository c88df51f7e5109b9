package drs

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"log/slog"
	"net/http"
	"time"

	"repairs-scheduling-api/internal/pkg/config"
	"repairs-scheduling-api/internal/pkg/errs"
)

// Transport is the raw DRS protocol surface. The session id inside each
// request is managed by Service, not here.
type Transport interface {
	OpenSession(ctx context.Context, req OpenSessionRequest) (*OpenSessionResponse, error)
	CheckAvailability(ctx context.Context, req CheckAvailabilityRequest) (*CheckAvailabilityResponse, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error)
	SelectOrder(ctx context.Context, req SelectOrderRequest) (*SelectOrderResponse, error)
	ScheduleBooking(ctx context.Context, req ScheduleBookingRequest) (*ScheduleBookingResponse, error)
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.DrsConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		endpoint: cfg.URL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *Client) OpenSession(ctx context.Context, req OpenSessionRequest) (*OpenSessionResponse, error) {
	return call[OpenSessionResponse](ctx, c, "openSession", req)
}

func (c *Client) CheckAvailability(ctx context.Context, req CheckAvailabilityRequest) (*CheckAvailabilityResponse, error) {
	return call[CheckAvailabilityResponse](ctx, c, "checkAvailability", req)
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	return call[CreateOrderResponse](ctx, c, "createOrder", req)
}

func (c *Client) SelectOrder(ctx context.Context, req SelectOrderRequest) (*SelectOrderResponse, error) {
	return call[SelectOrderResponse](ctx, c, "selectOrder", req)
}

func (c *Client) ScheduleBooking(ctx context.Context, req ScheduleBookingRequest) (*ScheduleBookingResponse, error) {
	return call[ScheduleBookingResponse](ctx, c, "scheduleBooking", req)
}

type requestEnvelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	SoapNS  string   `xml:"xmlns:soap,attr"`
	Body    requestBody
}

type requestBody struct {
	XMLName xml.Name `xml:"soap:Body"`
	Payload any
}

type responseEnvelope[T any] struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    responseBody[T]
}

type responseBody[T any] struct {
	XMLName xml.Name `xml:"Body"`
	Payload T        `xml:",any"`
}

const soapNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

func call[T any](ctx context.Context, c *Client, action string, payload any) (*T, error) {
	env := requestEnvelope{
		SoapNS: soapNamespace,
		Body:   requestBody{Payload: payload},
	}

	body, err := xml.Marshal(env)
	if err != nil {
		return nil, errs.Wrapf(err, "drs: marshal %s request", action)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrapf(err, "drs: create %s request", action)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", action)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "drs: %s request", action), errs.ErrDrsProtocol)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "drs: read %s response", action), errs.ErrDrsProtocol)
	}

	if resp.StatusCode != http.StatusOK {
		msg := string(respBody)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		c.logger.Error("drs call failed", "action", action, "status", resp.StatusCode)
		return nil, errs.Mark(errs.Newf("drs: %s status %d: %s", action, resp.StatusCode, msg), errs.ErrDrsProtocol)
	}

	var out responseEnvelope[T]
	if err := xml.Unmarshal(respBody, &out); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "drs: unmarshal %s response", action), errs.ErrDrsProtocol)
	}

	return &out.Body.Payload, nil
}
