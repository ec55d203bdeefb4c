package buildio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/davidpeckham/vin/pkg/ent/model"
	"github.com/davidpeckham/vin/pkg/ent/snapshot"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"golang.org/x/sync/errgroup"
)

// List of fields from the pattern CSV file. The value corresponds to
// the position of a field in a row.
const (
	patIDF       = 0
	patWmiF      = 1
	patKeyF      = 2
	patElementF  = 3
	patValueF    = 4
	patYearFromF = 5
	patYearToF   = 6
)

// importPatterns streams the pattern extract through a worker pool.
// Workers drop rows that reference unknown WMIs or elements; the rest
// go to the snapshot in batches.
func (b *buildio) importPatterns() error {
	slog.Info("Importing pattern table")

	chIn := make(chan []string)
	chOut := make(chan model.Pattern)
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		return b.loadPatterns(ctx, chIn)
	})
	for i := 0; i < b.cfg.JobsNum; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return b.workerPattern(ctx, chIn, chOut)
		})
	}
	g.Go(func() error {
		return b.dbPattern(ctx, chOut)
	})

	go func() {
		wg.Wait()
		close(chOut)
	}()

	if err := g.Wait(); err != nil {
		slog.Error("error in goroutines", "error", err)
		return err
	}

	slog.Info("Imported pattern table")
	return nil
}

func (b *buildio) loadPatterns(ctx context.Context, chIn chan<- []string) error {
	r, f, err := b.openCSV("pattern.csv")
	if err != nil {
		return err
	}
	defer f.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			row, err := r.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("cannot read pattern.csv: %w", err)
			}
			chIn <- row
		}
	}
}

func (b *buildio) workerPattern(
	ctx context.Context,
	chIn <-chan []string,
	chOut chan<- model.Pattern,
) error {
	enc := gnfmt.GNgob{}
	for row := range chIn {
		p, ok, err := b.convertPattern(enc, row)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chOut <- p:
		}
	}
	return nil
}

// convertPattern turns a CSV row into a pattern record, checking the
// referenced WMI and element against the key-value store.
func (b *buildio) convertPattern(
	enc gnfmt.GNgob,
	row []string,
) (model.Pattern, bool, error) {
	var res model.Pattern

	id, err := strconv.Atoi(row[patIDF])
	if err != nil {
		return res, false, fmt.Errorf("bad pattern id %q: %w", row[patIDF], err)
	}
	elementID, err := strconv.Atoi(row[patElementF])
	if err != nil {
		return res, false, fmt.Errorf("bad element id %q: %w", row[patElementF], err)
	}

	known, err := b.kv.GetValue(wmiKey(row[patWmiF]))
	if err != nil {
		return res, false, err
	}
	if known == nil {
		slog.Warn("Pattern references unknown wmi", "wmi", row[patWmiF], "id", id)
		return res, false, nil
	}

	val, err := b.kv.GetValue(elementKey(elementID))
	if err != nil {
		return res, false, err
	}
	if val == nil {
		slog.Warn("Pattern references unknown element", "element", elementID, "id", id)
		return res, false, nil
	}
	var el snapshot.Element
	if err = enc.Decode(val, &el); err != nil {
		return res, false, fmt.Errorf("cannot decode element record: %w", err)
	}

	res = model.Pattern{
		ID:         id,
		Wmi:        row[patWmiF],
		KeyPattern: row[patKeyF],
		ElementID:  el.ID,
		Value:      row[patValueF],
		YearFrom:   nullInt(row[patYearFromF]),
		YearTo:     nullInt(row[patYearToF]),
	}
	return res, true, nil
}

func (b *buildio) dbPattern(ctx context.Context, chOut <-chan model.Pattern) error {
	var total int64
	batch := make([]model.Pattern, 0, insertBatch)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := b.db.CreateInBatches(batch, insertBatch).Error; err != nil {
			return fmt.Errorf("cannot insert pattern rows: %w", err)
		}
		total += int64(len(batch))
		batch = batch[:0]
		fmt.Printf("\rImported %s patterns", humanize.Comma(total))
		return nil
	}

	for p := range chOut {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		batch = append(batch, p)
		if len(batch) == insertBatch {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
