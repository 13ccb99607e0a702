package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/audiograms/internal/formatter"
	"github.com/mesh-intelligence/audiograms/internal/logging"
	"github.com/mesh-intelligence/audiograms/internal/page"
	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// DataPointGateway lists, creates, saves and deletes data points.
type DataPointGateway interface {
	List(ctx context.Context, expID int) ([]types.DataPoint, error)
	Create(ctx context.Context, dp types.DataPoint) error
	Save(ctx context.Context, dp types.DataPoint) error
	Delete(ctx context.Context, id int) error
}

// Batch is the work a data point save pass performs, in the order it is
// sent: Upserts in row order, then Deletes in row order.
type Batch struct {
	ExperimentID int
	// Upserts holds kept rows with frequency and SPL. New rows carry
	// types.NewDataPointID and are created; the rest are saved.
	Upserts []types.DataPoint
	// Deletes holds the ids of rows marked for deletion.
	Deletes []int
	// Invalid holds rows that could not be parsed. They are reported with
	// the outcome of the pass and do not stop the other rows.
	Invalid []error
}

// Empty reports whether the batch sends nothing.
func (b Batch) Empty() bool {
	return len(b.Upserts) == 0 && len(b.Deletes) == 0
}

// Plan builds the batch for the data point table in doc. Rows with a blank
// frequency or SPL are skipped. No request is sent.
func Plan(doc *page.Document) (Batch, error) {
	if doc == nil {
		return Batch{}, types.ErrNoDataPoints
	}
	rows := doc.Rows()
	if len(rows) == 0 {
		return Batch{}, types.ErrNoDataPoints
	}
	expID, err := tableExperimentID(doc.Table())
	if err != nil {
		return Batch{}, err
	}

	b := Batch{ExperimentID: expID}
	for _, row := range rows {
		if row.Deleted() {
			id, err := rowDataPointID(row.ID)
			if err != nil {
				b.Invalid = append(b.Invalid, err)
				continue
			}
			b.Deletes = append(b.Deletes, id)
			continue
		}
		dp, ok, err := parseRow(doc, expID, row)
		if err != nil {
			b.Invalid = append(b.Invalid, err)
			continue
		}
		if ok {
			b.Upserts = append(b.Upserts, dp)
		}
	}

	if b.Empty() {
		if len(b.Invalid) > 0 {
			return Batch{}, errors.Join(b.Invalid...)
		}
		return Batch{}, types.ErrNoDataPoints
	}
	return b, nil
}

// BatchEditor sends a Batch to the server one request at a time.
type BatchEditor struct {
	gw  DataPointGateway
	log *logging.Logger
}

// NewBatchEditor returns an editor sending through gw.
func NewBatchEditor(gw DataPointGateway, log *logging.Logger) *BatchEditor {
	if log == nil {
		log = logging.Nop()
	}
	return &BatchEditor{gw: gw, log: log}
}

// Apply creates or saves every upsert and then deletes every marked row.
// A failing row is logged and the pass continues with the next one; the
// failures, with the batch's invalid rows, are returned joined.
func (e *BatchEditor) Apply(ctx context.Context, b Batch) error {
	errs := append([]error(nil), b.Invalid...)

	for _, dp := range b.Upserts {
		var err error
		if dp.IsNew() {
			err = e.gw.Create(ctx, dp)
			if err != nil {
				err = fmt.Errorf("new data point at %s kHz: %w", formatFloat(dp.FrequencyKHz), err)
			}
		} else {
			err = e.gw.Save(ctx, dp)
			if err != nil {
				err = fmt.Errorf("data point %d: %w", dp.ID, err)
			}
		}
		if err != nil {
			e.log.Warn("data point not saved", "experiment_id", b.ExperimentID, "data_point_id", dp.ID, "error", err)
			errs = append(errs, err)
		}
	}

	for _, id := range b.Deletes {
		if err := e.gw.Delete(ctx, id); err != nil {
			e.log.Warn("data point not deleted", "experiment_id", b.ExperimentID, "data_point_id", id, "error", err)
			errs = append(errs, fmt.Errorf("delete data point %d: %w", id, err))
		}
	}

	e.log.Debug("data point batch applied",
		"experiment_id", b.ExperimentID,
		"upserts", len(b.Upserts),
		"deletes", len(b.Deletes),
		"failures", len(errs))
	return errors.Join(errs...)
}

// parseRow reads one kept row. ok is false when frequency or SPL is blank.
func parseRow(doc *page.Document, expID int, row page.Row) (dp types.DataPoint, ok bool, err error) {
	v, err := fieldValues(doc,
		formatter.FieldID(row.ID, formatter.FieldFrequency),
		formatter.FieldID(row.ID, formatter.FieldSPL),
		formatter.FieldID(row.ID, formatter.FieldDuration),
		formatter.FieldID(row.ID, formatter.FieldSPLReference),
		formatter.FieldID(row.ID, formatter.FieldSPLReferenceMethod),
	)
	if err != nil {
		return dp, false, err
	}
	field := func(name string) string { return v[formatter.FieldID(row.ID, name)] }

	freq, spl := field(formatter.FieldFrequency), field(formatter.FieldSPL)
	if freq == "" || spl == "" {
		return dp, false, nil
	}

	dp = types.DataPoint{ID: types.NewDataPointID, ExperimentID: expID}
	if !row.New() {
		if dp.ID, err = rowDataPointID(row.ID); err != nil {
			return dp, false, err
		}
	}
	if dp.FrequencyKHz, err = parseFloat(row.ID, "frequency", freq); err != nil {
		return dp, false, err
	}
	if dp.SPLDecibel, err = parseFloat(row.ID, "SPL", spl); err != nil {
		return dp, false, err
	}
	if s := field(formatter.FieldDuration); s != "" {
		d, err := parseFloat(row.ID, "duration", s)
		if err != nil {
			return dp, false, err
		}
		dp.DurationMillis = &d
	}
	if s := field(formatter.FieldSPLReference); s != "" {
		ref, err := strconv.Atoi(s)
		if err != nil {
			return dp, false, fmt.Errorf("%s: %w: SPL reference %q", row.ID, types.ErrInvalidNumber, s)
		}
		dp.SPLReferenceID = &ref
	}
	dp.SPLReferenceMethod = field(formatter.FieldSPLReferenceMethod)
	return dp, true, nil
}

func parseFloat(rowID, name, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %s %q", rowID, types.ErrInvalidNumber, name, s)
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// rowDataPointID returns the data point id of row "datapoint_<id>".
func rowDataPointID(rowID string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(rowID, "datapoint_"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: row %q", types.ErrMissingID, rowID)
	}
	return id, nil
}

// tableExperimentID returns the audiogram id of table "experiment_<id>".
func tableExperimentID(tableID string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(tableID, "experiment_"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: data point table %q", types.ErrMissingID, tableID)
	}
	return id, nil
}
