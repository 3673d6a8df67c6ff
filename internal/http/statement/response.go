package statement

import (
	"github.com/theezequiel42/water-tracker/internal/month"
	"github.com/theezequiel42/water-tracker/internal/statement"
)

type monthResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Month *int   `json:"month,omitempty"`
	Year  *int   `json:"year,omitempty"`
}

type monthsResponse struct {
	Months  []monthResponse `json:"months"`
	Default string          `json:"default"`
}

type namesResponse struct {
	Names []string `json:"names"`
}

type statementResponse struct {
	Name              string        `json:"name"`
	Month             monthResponse `json:"month"`
	Consumption       string        `json:"consumption"`
	ConsumptionStatus string        `json:"consumption_status"`
	Amount            string        `json:"amount"`
	Overdue           *string       `json:"overdue,omitempty"`
}

type chartPointResponse struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type chartResponse struct {
	Name   string               `json:"name"`
	Points []chartPointResponse `json:"points"`
}

func toMonthResponse(d month.Descriptor) monthResponse {
	return monthResponse{
		Key:   d.Key,
		Label: d.Label,
		Month: d.Month,
		Year:  d.Year,
	}
}

func toStatementResponse(s *statement.Statement) statementResponse {
	resp := statementResponse{
		Name:              s.Name,
		Month:             toMonthResponse(s.Month),
		Consumption:       s.ConsumptionText(),
		ConsumptionStatus: s.ConsumptionStatus().String(),
		Amount:            s.AmountText(),
	}

	if s.HasOverdue {
		resp.Overdue = new(s.OverdueText())
	}

	return resp
}

func toChartResponse(name string, points []statement.ChartPoint) chartResponse {
	resp := chartResponse{
		Name:   name,
		Points: make([]chartPointResponse, 0, len(points)),
	}

	for _, p := range points {
		resp.Points = append(resp.Points, chartPointResponse{
			Key:    p.Key,
			Label:  p.Label,
			Amount: p.Amount,
		})
	}

	return resp
}
