package report

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/format"
)

// RemovedClientLabel agrupa as vendas cujo cliente foi excluído.
const RemovedClientLabel = "Cliente removido"

const (
	topClientsLimit = 4
	week            = 7 * 24 * time.Hour
)

// Row é uma venda não cancelada dentro da janela.
// ClientID nil: o cliente foi excluído depois da venda.
type Row struct {
	OrderID     uuid.UUID
	ClientID    *uuid.UUID
	ClientName  string
	Amount      float64
	PaymentPlan string
	CreatedAt   time.Time
}

type Source interface {
	// Rows devolve as vendas do escopo do ator em [start, end), sem as canceladas.
	Rows(ctx context.Context, actor access.Actor, start, end time.Time) ([]Row, error)
}

// ===============================
// Report
// ===============================

type Growth struct {
	Sales    float64 `json:"sales"`
	Orders   float64 `json:"orders"`
	Clients  float64 `json:"clients"`
	AvgOrder float64 `json:"avg_order"`
}

type TopClient struct {
	ClientID *uuid.UUID `json:"client_id"`
	Name     string     `json:"name"`
	Orders   int        `json:"orders"`
	Amount   float64    `json:"amount"`
	Value    string     `json:"value"`
	Growth   float64    `json:"growth"`
}

type PeriodSales struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
	Label  string  `json:"label"`
}

type PlanPerformance struct {
	Plan         string  `json:"plan"`
	Title        string  `json:"title"`
	Sold         int     `json:"sold"`
	Revenue      float64 `json:"revenue"`
	RevenueLabel string  `json:"revenue_label"`
	Percentage   int     `json:"percentage"`
}

type Report struct {
	Period      Period    `json:"period"`
	PeriodLabel string    `json:"period_label"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`

	TotalSales    float64 `json:"total_sales"`
	TotalOrders   int     `json:"total_orders"`
	TotalClients  int     `json:"total_clients"`
	AvgOrderValue float64 `json:"avg_order_value"`
	Growth        Growth  `json:"growth"`

	TopClients      []TopClient       `json:"top_clients"`
	SalesByPeriod   []PeriodSales     `json:"sales_by_period"`
	PlanPerformance []PlanPerformance `json:"plan_performance"`
}

type Input struct {
	Period   Period
	Start    time.Time
	End      time.Time
	Current  []Row
	Previous []Row
	// título exibido para cada payment_plan; ausente = o próprio id
	PlanTitles map[string]string
}

type totals struct {
	sales   float64
	orders  int
	clients int
	avg     float64
}

func sum(rows []Row) totals {
	var t totals
	seen := map[uuid.UUID]bool{}

	for _, r := range rows {
		t.sales += r.Amount
		t.orders++
		// cliente excluído não conta como cliente ativo
		if r.ClientID != nil && !seen[*r.ClientID] {
			seen[*r.ClientID] = true
			t.clients++
		}
	}
	if t.orders > 0 {
		t.avg = round2(t.sales / float64(t.orders))
	}
	t.sales = round2(t.sales)
	return t
}

// GrowthPercent compara com o período anterior. Sem base de comparação o crescimento é 0.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return math.Round((current-previous)/previous*1000) / 10
}

func Build(in Input) Report {
	cur := sum(in.Current)
	prev := sum(in.Previous)

	return Report{
		Period:      in.Period,
		PeriodLabel: in.Period.Label(),
		From:        in.Start,
		To:          in.End,

		TotalSales:    cur.sales,
		TotalOrders:   cur.orders,
		TotalClients:  cur.clients,
		AvgOrderValue: cur.avg,
		Growth: Growth{
			Sales:    GrowthPercent(cur.sales, prev.sales),
			Orders:   GrowthPercent(float64(cur.orders), float64(prev.orders)),
			Clients:  GrowthPercent(float64(cur.clients), float64(prev.clients)),
			AvgOrder: GrowthPercent(cur.avg, prev.avg),
		},

		TopClients:      topClients(in.Current, in.Previous),
		SalesByPeriod:   salesByWeek(in.Current, in.Start, in.End),
		PlanPerformance: planPerformance(in.Current, cur.sales, in.PlanTitles),
	}
}

// -------------------------------

func topClients(current, previous []Row) []TopClient {
	byClient := map[uuid.UUID]*TopClient{}
	for _, r := range current {
		key := clientKey(r)
		tc, ok := byClient[key]
		if !ok {
			tc = &TopClient{ClientID: r.ClientID, Name: r.ClientName}
			if r.ClientID == nil {
				tc.Name = RemovedClientLabel
			}
			byClient[key] = tc
		}
		tc.Orders++
		tc.Amount += r.Amount
	}

	before := map[uuid.UUID]float64{}
	for _, r := range previous {
		before[clientKey(r)] += r.Amount
	}

	list := make([]TopClient, 0, len(byClient))
	for key, tc := range byClient {
		tc.Amount = round2(tc.Amount)
		tc.Value = format.BRLFloat(tc.Amount)
		tc.Growth = GrowthPercent(tc.Amount, before[key])
		list = append(list, *tc)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Amount != list[j].Amount {
			return list[i].Amount > list[j].Amount
		}
		return list[i].Name < list[j].Name
	})

	if len(list) > topClientsLimit {
		list = list[:topClientsLimit]
	}
	return list
}

// clientKey usa uuid.Nil para todas as vendas de clientes excluídos.
func clientKey(r Row) uuid.UUID {
	if r.ClientID == nil {
		return uuid.Nil
	}
	return *r.ClientID
}

// salesByWeek agrupa em blocos de 7 dias a partir do início da janela: "Semana 1", "Semana 2"...
func salesByWeek(rows []Row, start, end time.Time) []PeriodSales {
	n := int(math.Ceil(float64(end.Sub(start)) / float64(week)))
	if n < 1 {
		n = 1
	}

	values := make([]float64, n)
	for _, r := range rows {
		i := int(r.CreatedAt.Sub(start) / week)
		if i < 0 || i >= n {
			continue
		}
		values[i] += r.Amount
	}

	out := make([]PeriodSales, n)
	for i, v := range values {
		v = round2(v)
		out[i] = PeriodSales{
			Period: fmt.Sprintf("Semana %d", i+1),
			Value:  v,
			Label:  format.CompactBRL(v),
		}
	}
	return out
}

func planPerformance(rows []Row, total float64, titles map[string]string) []PlanPerformance {
	byPlan := map[string]*PlanPerformance{}
	for _, r := range rows {
		pp, ok := byPlan[r.PaymentPlan]
		if !ok {
			title := titles[r.PaymentPlan]
			if title == "" {
				title = r.PaymentPlan
			}
			pp = &PlanPerformance{Plan: r.PaymentPlan, Title: title}
			byPlan[r.PaymentPlan] = pp
		}
		pp.Sold++
		pp.Revenue += r.Amount
	}

	list := make([]PlanPerformance, 0, len(byPlan))
	for _, pp := range byPlan {
		pp.Revenue = round2(pp.Revenue)
		pp.RevenueLabel = format.BRLFloat(pp.Revenue)
		if total > 0 {
			pp.Percentage = int(math.Round(pp.Revenue / total * 100))
		}
		list = append(list, *pp)
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Revenue != list[j].Revenue {
			return list[i].Revenue > list[j].Revenue
		}
		return list[i].Plan < list[j].Plan
	})
	return list
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
