package request

import (
	"strings"

	"reservation-gateway/internal/usecase/commands"
)

// CreateReservationRequest is the inbound JSON body. Identity validation is
// enumerated by the orchestrator so the caller gets every failing field at
// once; seat count and identifiers stay opaque strings for the backend to
// judge.
type CreateReservationRequest struct {
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ProductionID   string `json:"production_id"`
	TheaterID      string `json:"theater_id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Seats          string `json:"num_seats"`
	RiskToken      string `json:"risk_token,omitempty"`
	RiskAction     string `json:"risk_action,omitempty"`
	ReferralSource string `json:"referral_source,omitempty"`
}

func (r CreateReservationRequest) ToInput(remoteIP, referer string) commands.ReserveInput {
	return commands.ReserveInput{
		Name:           strings.TrimSpace(r.Name),
		Surname:        strings.TrimSpace(r.Surname),
		Email:          strings.TrimSpace(r.Email),
		Phone:          r.Phone,
		ProductionID:   r.ProductionID,
		TheaterID:      r.TheaterID,
		Date:           r.Date,
		Time:           r.Time,
		Seats:          r.Seats,
		RiskToken:      r.RiskToken,
		RiskAction:     r.RiskAction,
		RemoteIP:       remoteIP,
		ReferralSource: r.ReferralSource,
		Referer:        referer,
	}
}
