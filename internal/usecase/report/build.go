package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/access"
	"github.com/BruksfildServices01/cesta-amigo/internal/domain/catalog"
	domain "github.com/BruksfildServices01/cesta-amigo/internal/domain/report"
	"github.com/BruksfildServices01/cesta-amigo/internal/timezone"
)

type BuildReport struct {
	source  domain.Source
	catalog *catalog.Catalog
	loc     *time.Location
}

func NewBuildReport(source domain.Source, cat *catalog.Catalog) *BuildReport {
	return &BuildReport{
		source:  source,
		catalog: cat,
		loc:     timezone.Default(),
	}
}

func (uc *BuildReport) Execute(
	ctx context.Context,
	actor access.Actor,
	period string,
	now time.Time,
) (*domain.Report, error) {

	p, err := domain.ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	start, end := p.Window(now, uc.loc)
	prevStart, prevEnd := domain.Previous(start, end)

	// janela atual e anterior em paralelo
	var current, previous []domain.Row
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := uc.source.Rows(gctx, actor, start, end)
		current = rows
		return err
	})
	g.Go(func() error {
		rows, err := uc.source.Rows(gctx, actor, prevStart, prevEnd)
		previous = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := domain.Build(domain.Input{
		Period:     p,
		Start:      start,
		End:        end,
		Current:    current,
		Previous:   previous,
		PlanTitles: uc.planTitles(),
	})
	return &rep, nil
}

func (uc *BuildReport) planTitles() map[string]string {
	titles := make(map[string]string, len(uc.catalog.Plans))
	for _, p := range uc.catalog.Plans {
		titles[p.ID] = p.Title
	}
	return titles
}
