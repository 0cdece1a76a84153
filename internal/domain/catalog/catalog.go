package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/BruksfildServices01/cesta-amigo/internal/format"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var ErrInvalidPlan = httperr.ErrBusiness("invalid_payment_plan")

// ===============================
// Catalog
// ===============================

type Item struct {
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
	Quantity int    `yaml:"quantity" json:"quantity"`
}

type Plan struct {
	ID           string `yaml:"id" json:"id"`
	Title        string `yaml:"title" json:"title"`
	Description  string `yaml:"description" json:"description"`
	Badge        string `yaml:"badge" json:"badge"`
	Installments int    `yaml:"installments" json:"installments"`
	// meio de pagamento no gateway; vazio = pagamento direto com o vendedor
	Method string `yaml:"method" json:"method,omitempty"`
}

func (p Plan) UsesGateway() bool {
	return p.Method != ""
}

type Catalog struct {
	Title      string `yaml:"title"`
	TotalCents int64  `yaml:"total_cents"`
	Items      []Item `yaml:"items"`
	Plans      []Plan `yaml:"plans"`
}

// Load lê um catálogo em YAML e valida o mínimo para o checkout funcionar.
func Load(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, errors.Wrap(err, "catalog")
	}

	if c.TotalCents <= 0 {
		return nil, errors.New("catalog: total_cents must be positive")
	}
	if len(c.Plans) == 0 {
		return nil, errors.New("catalog: no payment plans")
	}

	seen := make(map[string]bool, len(c.Plans))
	for _, p := range c.Plans {
		if p.ID == "" || seen[p.ID] {
			return nil, errors.Errorf("catalog: duplicated or empty plan id %q", p.ID)
		}
		if p.Installments < 1 {
			return nil, errors.Errorf("catalog: plan %s has no installments", p.ID)
		}
		seen[p.ID] = true
	}

	return &c, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default devolve o catálogo embutido no binário.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(defaultCatalog)
		if err != nil {
			panic(err)
		}
		defaultCat = c
	})
	return defaultCat
}

func (c *Catalog) Plan(id string) (Plan, error) {
	for _, p := range c.Plans {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, ErrInvalidPlan
}

// Total em reais, como gravado em orders.amount.
func (c *Catalog) Total() float64 {
	return float64(c.TotalCents) / 100
}

// Installments divide o total em parcelas exatas em centavos.
// A sobra da divisão vai para a primeira parcela.
func Installments(totalCents int64, n int) []int64 {
	if n < 1 {
		n = 1
	}

	base := totalCents / int64(n)
	rest := totalCents % int64(n)

	parts := make([]int64, n)
	for i := range parts {
		parts[i] = base
	}
	parts[0] += rest

	return parts
}

// ===============================
// View
// ===============================

type PlanView struct {
	Plan
	InstallmentCents []int64 `json:"installment_cents"`
	Value            string  `json:"value"`
	Total            string  `json:"total"`
}

type View struct {
	Title      string     `json:"title"`
	Items      []Item     `json:"items"`
	ItemCount  int        `json:"item_count"`
	TotalCents int64      `json:"total_cents"`
	Total      string     `json:"total"`
	Plans      []PlanView `json:"plans"`
}

// View monta a resposta de GET /api/catalog com valores já formatados em BRL.
func (c *Catalog) View() View {
	total := format.BRL(c.TotalCents)

	plans := make([]PlanView, 0, len(c.Plans))
	for _, p := range c.Plans {
		parts := Installments(c.TotalCents, p.Installments)

		// o valor exibido é a parcela "cheia", sem a sobra
		value := format.BRL(parts[len(parts)-1])
		if p.Installments > 1 {
			value = fmt.Sprintf("%dx %s", p.Installments, value)
		}

		plans = append(plans, PlanView{
			Plan:             p,
			InstallmentCents: parts,
			Value:            value,
			Total:            total,
		})
	}

	return View{
		Title:      c.Title,
		Items:      c.Items,
		ItemCount:  len(c.Items),
		TotalCents: c.TotalCents,
		Total:      total,
		Plans:      plans,
	}
}
