package backendgw

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"reservation-gateway/internal/domain/booking"
	"reservation-gateway/internal/domain/outcome"
	"reservation-gateway/internal/pkg/config"
	"reservation-gateway/internal/pkg/errs"
)

// Client talks to the opaque transactional reservation backend. One POST per
// orchestrated request; seat allocation, locking and uniqueness live behind
// this call. No timeout is enforced here and no retry happens on failure.
type Client struct {
	cfg        config.BackendConfig
	httpClient *http.Client
}

func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

type reserveRequest struct {
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ProductionID   string `json:"production_id"`
	TheaterID      string `json:"theater_id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Seats          string `json:"num_seats"`
	ReferralSource string `json:"referral_source,omitempty"`
	Referer        string `json:"referer,omitempty"`
	ReservedBy     string `json:"reserved_by,omitempty"`
}

type personDoc struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type performanceDoc struct {
	ProductionID string `json:"production_id"`
	TheaterID    string `json:"theater_id"`
	Title        string `json:"title"`
}

type existingDoc struct {
	Code  string `json:"code"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Seats string `json:"num_seats"`
}

type reserveResponse struct {
	Code          string          `json:"code"`
	ReservationID string          `json:"reservation_id"`
	PublicCode    string          `json:"public_code"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Seats         string          `json:"num_seats"`
	Person        *personDoc      `json:"person"`
	Performance   *performanceDoc `json:"performance"`
	Existing      *existingDoc    `json:"existing"`
}

// Reserve submits the canonical request and decodes the backend's outcome.
// Every backend answer, success or domain-level rejection, comes back as an
// outcome.Result; only transport and decode problems return an error.
func (c *Client) Reserve(ctx context.Context, req booking.Request) (*outcome.Result, error) {
	body, err := json.Marshal(reserveRequest{
		Name:           req.Name,
		Surname:        req.Surname,
		Email:          req.Email,
		Phone:          req.Phone,
		ProductionID:   req.ProductionID,
		TheaterID:      req.TheaterID,
		Date:           req.Date,
		Time:           req.Time,
		Seats:          req.Seats,
		ReferralSource: req.Provenance.ReferralSource,
		Referer:        req.Provenance.Referer,
		ReservedBy:     req.Provenance.ReservedBy,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode reserve request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.ReserveURL(), bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build reserve request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Wrap(err, "reserve call failed")
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read reserve response")
	}

	var resp reserveResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, errs.Wrapf(err, "unparseable reserve response (status %d)", httpResp.StatusCode)
	}
	if resp.Code == "" {
		return nil, errs.New("reserve response carries no outcome code")
	}

	return &outcome.Result{
		Code:    outcome.Code(resp.Code),
		Payload: toPayload(resp),
	}, nil
}

func toPayload(resp reserveResponse) outcome.Payload {
	p := outcome.Payload{
		ReservationID: resp.ReservationID,
		PublicCode:    resp.PublicCode,
		Date:          resp.Date,
		Time:          resp.Time,
		Seats:         resp.Seats,
	}
	if resp.Person != nil {
		p.Person = &outcome.PersonSnapshot{
			Name:    resp.Person.Name,
			Surname: resp.Person.Surname,
			Email:   resp.Person.Email,
			Phone:   resp.Person.Phone,
		}
	}
	if resp.Performance != nil {
		p.Performance = &outcome.PerformanceSnapshot{
			ProductionID: resp.Performance.ProductionID,
			TheaterID:    resp.Performance.TheaterID,
			Title:        resp.Performance.Title,
		}
	}
	if resp.Existing != nil {
		p.Existing = &outcome.ReservationSnapshot{
			Code:  resp.Existing.Code,
			Date:  resp.Existing.Date,
			Time:  resp.Existing.Time,
			Seats: resp.Existing.Seats,
		}
	}
	return p
}
