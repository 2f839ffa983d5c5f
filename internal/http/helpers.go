package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Pval-k/finance-tracker/internal/core"
	"github.com/Pval-k/finance-tracker/internal/services"
)

// transactionJSON is the wire shape of a ledger entry. Amounts travel
// as decimal numbers; dates as YYYY-MM-DD.
type transactionJSON struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Date     string  `json:"date"`
	Hidden   bool    `json:"hidden,omitempty"`
}

func toTransactionJSON(tx core.Transaction, hidden bool) transactionJSON {
	return transactionJSON{
		ID:       tx.ID,
		Title:    tx.Title,
		Amount:   tx.Amount.Units(),
		Category: tx.Category,
		Type:     string(tx.Type),
		Date:     tx.Date.String(),
		Hidden:   hidden,
	}
}

type budgetJSON struct {
	Budget     float64 `json:"budget"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

type categoryJSON struct {
	Name       string  `json:"name"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

type dashboardJSON struct {
	Granularity  string            `json:"granularity"`
	Label        string            `json:"label"`
	Start        string            `json:"start"`
	End          string            `json:"end"`
	IsCurrent    bool              `json:"isCurrent"`
	Transactions []transactionJSON `json:"transactions"`
	Budget       budgetJSON        `json:"budget"`
	Categories   []categoryJSON    `json:"categories"`
}

func toDashboardJSON(view services.DashboardView) dashboardJSON {
	out := dashboardJSON{
		Granularity: string(view.Granularity),
		Label:       view.Label,
		Start:       view.Interval.Start.Format("2006-01-02"),
		End:         view.Interval.End.Format("2006-01-02"),
		IsCurrent:   view.IsCurrent,
		Budget: budgetJSON{
			Budget:     view.Budget.Budget.Units(),
			Spent:      view.Budget.Spent.Units(),
			Remaining:  view.Budget.Remaining.Units(),
			Percentage: view.Budget.Percentage,
		},
		Transactions: make([]transactionJSON, 0, len(view.Transactions)),
		Categories:   make([]categoryJSON, 0, len(view.Categories)),
	}
	for _, tv := range view.Transactions {
		out.Transactions = append(out.Transactions, toTransactionJSON(tv.Transaction, tv.Hidden))
	}
	for _, b := range view.Categories {
		out.Categories = append(out.Categories, categoryJSON{
			Name:       b.Name,
			Total:      b.Total.Units(),
			Percentage: b.Percentage,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decimalString accepts a JSON number or string so clients can send
// the amount either way.
type decimalString string

func (d *decimalString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var unquoted string
		if err := json.Unmarshal(b, &unquoted); err != nil {
			return err
		}
		s = unquoted
	}
	*d = decimalString(s)
	return nil
}

// parsePeriodQuery reads granularity and date query parameters, with
// month and today as the dashboard defaults.
func parsePeriodQuery(r *http.Request) (core.Granularity, core.Date, error) {
	g := core.GranularityMonth
	if v := strings.TrimSpace(r.URL.Query().Get("granularity")); v != "" {
		parsed, err := core.ParseGranularity(v)
		if err != nil {
			return "", core.Date{}, err
		}
		g = parsed
	}

	ref := core.DateOf(time.Now())
	if v := strings.TrimSpace(r.URL.Query().Get("date")); v != "" {
		parsed, err := core.ParseDate(v)
		if err != nil {
			return "", core.Date{}, err
		}
		ref = parsed
	}
	return g, ref, nil
}
