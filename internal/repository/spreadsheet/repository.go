package spreadsheet

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bakersinn/despatch-dashboard/internal/domain/dataset"
	"github.com/bakersinn/despatch-dashboard/internal/pkg/storage"
	"golang.org/x/sync/errgroup"
)

// Source names one worksheet inside a file held by the storage.
type Source struct {
	Name  string
	File  string
	Sheet string
}

// Sources configures where each table is read from.
type Sources struct {
	Orders    Source
	Despatch  Source
	DateIndex Source
}

func (s Sources) all() []Source {
	return []Source{s.Orders, s.Despatch, s.DateIndex}
}

type sourceRepositoryImpl struct {
	storage storage.FileStorage
	sources Sources
}

func NewSourceRepository(fileStorage storage.FileStorage, sources Sources) dataset.SourceRepository {
	if sources.Orders.Name == "" {
		sources.Orders.Name = "orders"
	}
	if sources.Despatch.Name == "" {
		sources.Despatch.Name = "despatch"
	}
	if sources.DateIndex.Name == "" {
		sources.DateIndex.Name = "date_index"
	}
	return &sourceRepositoryImpl{
		storage: fileStorage,
		sources: sources,
	}
}

// Load implements dataset.SourceRepository.
// The three sources are read in parallel; the first failure wins.
func (r *sourceRepositoryImpl) Load(ctx context.Context) (*dataset.Tables, error) {
	if err := r.checkSources(ctx); err != nil {
		return nil, err
	}

	tables := &dataset.Tables{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := r.readSource(gCtx, r.sources.Orders)
		if err != nil {
			return err
		}
		orders, report, err := buildOrders(s)
		if err != nil {
			return fmt.Errorf("%s: %w", r.sources.Orders.Name, err)
		}
		tables.Orders = orders
		tables.Report.Orders = r.stamp(report, r.sources.Orders)
		return nil
	})

	g.Go(func() error {
		s, err := r.readSource(gCtx, r.sources.Despatch)
		if err != nil {
			return err
		}
		despatch, hasArea, report, err := buildDespatch(s)
		if err != nil {
			return fmt.Errorf("%s: %w", r.sources.Despatch.Name, err)
		}
		tables.Despatch = despatch
		tables.DespatchHasArea = hasArea
		tables.Report.Despatch = r.stamp(report, r.sources.Despatch)
		return nil
	})

	g.Go(func() error {
		s, err := r.readSource(gCtx, r.sources.DateIndex)
		if err != nil {
			return err
		}
		index, report, err := buildDateIndex(s)
		if err != nil {
			return fmt.Errorf("%s: %w", r.sources.DateIndex.Name, err)
		}
		tables.DateIndex = index
		tables.Report.DateIndex = r.stamp(report, r.sources.DateIndex)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// Sources implements dataset.SourceRepository.
func (r *sourceRepositoryImpl) Sources(ctx context.Context) ([]dataset.SourceInfo, error) {
	infos := make([]dataset.SourceInfo, 0, 3)
	for _, src := range r.sources.all() {
		info, err := r.storage.Stat(ctx, src.File)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", dataset.ErrFileAccess, src.File, err)
		}
		infos = append(infos, dataset.SourceInfo{
			Name:    src.Name,
			Path:    src.File,
			Size:    info.Size,
			ModTime: info.ModTime,
		})
	}
	return infos, nil
}

// checkSources fails with ErrFileAccess naming every source file that is
// absent, so one reload reports all of them at once.
func (r *sourceRepositoryImpl) checkSources(ctx context.Context) error {
	var missing []string
	for _, src := range r.sources.all() {
		ok, err := r.storage.Exists(ctx, src.File)
		if err != nil {
			return fmt.Errorf("%s: %w: %s: %v", src.Name, dataset.ErrFileAccess, src.File, err)
		}
		if !ok {
			missing = append(missing, src.Name+" ("+src.File+")")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", dataset.ErrFileAccess, strings.Join(missing, ", "))
	}
	return nil
}

func (r *sourceRepositoryImpl) readSource(ctx context.Context, src Source) (*sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := r.storage.Open(ctx, src.File)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s: %v", src.Name, dataset.ErrFileAccess, src.File, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s: %v", src.Name, dataset.ErrFileAccess, src.File, err)
	}

	s, err := readSheet(data, src.File, src.Sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}
	return s, nil
}

func (r *sourceRepositoryImpl) stamp(report dataset.SourceReport, src Source) dataset.SourceReport {
	report.Source = src.Name
	report.File = src.File
	report.Sheet = src.Sheet
	return report
}
