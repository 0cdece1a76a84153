package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/report"
	"github.com/BruksfildServices01/cesta-amigo/internal/format"
	"github.com/BruksfildServices01/cesta-amigo/internal/httperr"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/storage"
)

const (
	CSVContentType = "text/csv; charset=utf-8"
	exportLinkTTL  = 15 * time.Minute
)

type ExportResult struct {
	Filename string
	Content  []byte
	// link temporário quando o arquivo foi enviado ao bucket
	URL string
}

// ExportReport gera o relatório em CSV (separador ";", valores em R$) e, com
// bucket configurado, devolve um link assinado em vez do arquivo.
type ExportReport struct {
	build *BuildReport
	store storage.Store
	log   zerolog.Logger
}

func NewExportReport(build *BuildReport, store storage.Store, log zerolog.Logger) *ExportReport {
	if store == nil {
		store = storage.Disabled{}
	}
	return &ExportReport{build: build, store: store, log: log}
}

func (uc *ExportReport) Execute(
	ctx context.Context,
	actor access.Actor,
	period string,
	now time.Time,
) (*ExportResult, error) {

	rep, err := uc.build.Execute(ctx, actor, period, now)
	if err != nil {
		return nil, err
	}

	content, err := EncodeCSV(rep)
	if err != nil {
		return nil, err
	}

	res := &ExportResult{
		Filename: fmt.Sprintf("relatorio-%s-%s.csv", rep.Period, now.In(uc.build.loc).Format("2006-01-02")),
		Content:  content,
	}

	key := fmt.Sprintf("reports/%s/%s", actor.UserID, res.Filename)
	if _, err := uc.store.Put(ctx, key, CSVContentType, content); err != nil {
		// sem bucket o download direto ainda funciona
		if !httperr.IsBusiness(err, "storage_unavailable") {
			uc.log.Warn().Err(err).Str("key", key).Msg("report upload failed")
		}
		return res, nil
	}

	url, err := uc.store.PresignGet(ctx, key, exportLinkTTL)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("report presign failed")
		return res, nil
	}
	res.URL = url

	return res, nil
}

// EncodeCSV escreve as seções do relatório uma após a outra, separadas por linha vazia.
func EncodeCSV(rep *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	records := [][]string{
		{"Relatório", rep.PeriodLabel},
		{"De", format.DateShort(rep.From), "Até", format.DateShort(rep.To)},
		{},
		{"Indicador", "Valor", "Crescimento"},
		{"Vendas totais", format.BRLFloat(rep.TotalSales), format.Percent(rep.Growth.Sales)},
		{"Pedidos", strconv.Itoa(rep.TotalOrders), format.Percent(rep.Growth.Orders)},
		{"Clientes", strconv.Itoa(rep.TotalClients), format.Percent(rep.Growth.Clients)},
		{"Ticket médio", format.BRLFloat(rep.AvgOrderValue), format.Percent(rep.Growth.AvgOrder)},
		{},
		{"Top clientes", "Pedidos", "Valor", "Crescimento"},
	}

	for _, tc := range rep.TopClients {
		records = append(records, []string{tc.Name, strconv.Itoa(tc.Orders), tc.Value, format.Percent(tc.Growth)})
	}

	records = append(records, []string{}, []string{"Período", "Vendas"})
	for _, ps := range rep.SalesByPeriod {
		records = append(records, []string{ps.Period, format.BRLFloat(ps.Value)})
	}

	records = append(records, []string{}, []string{"Plano", "Vendidos", "Receita", "Participação"})
	for _, pp := range rep.PlanPerformance {
		records = append(records, []string{pp.Title, strconv.Itoa(pp.Sold), pp.RevenueLabel, strconv.Itoa(pp.Percentage) + "%"})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, errors.Wrap(err, "report: encode csv")
	}
	return buf.Bytes(), nil
}
