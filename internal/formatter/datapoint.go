package formatter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// Data point table markup.
const (
	ClassAudiogram        = "audiogram"
	ClassDataPoint        = "datapoint"
	ClassDataPointNew     = "datapoint_new"
	ClassDataPointDeleted = "datapoint_deleted"

	// RowNew is the id of the template row for a new data point.
	RowNew = "datapoint_new"
)

// Data point field names. The input of field f in row r has id r + "_" + f.
const (
	FieldFrequency          = "testtone_frequency_in_khz"
	FieldSPL                = "sound_pressure_level_in_decibel"
	FieldDuration           = "testtone_duration_in_millisecond"
	FieldSPLReference       = "sound_pressure_level_reference"
	FieldSPLReferenceMethod = "sound_pressure_level_reference_method"
)

// TableID returns the id of the data point table of audiogram expID.
func TableID(expID int) string {
	return "experiment_" + strconv.Itoa(expID)
}

// RowID returns the row id of data point id.
func RowID(id int) string {
	return "datapoint_" + strconv.Itoa(id)
}

// FieldID returns the id of field in row rowID.
func FieldID(rowID, field string) string {
	return rowID + "_" + field
}

// DataPoints renders the data points of an audiogram as an editable table.
type DataPoints struct {
	Options OptionSource
}

// Format renders dps for audiogram expID, followed by an empty template row
// for adding a data point.
func (f DataPoints) Format(ctx context.Context, expID int, dps []types.DataPoint) (string, error) {
	refs, err := f.Options.SPLReferences(ctx)
	if err != nil {
		return "", fmt.Errorf("read spl reference options: %w", err)
	}
	for i := range refs {
		refs[i].Label = Normalize(refs[i].Label)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<table id=\"%s\" class=\"%s\">\n", TableID(expID), ClassAudiogram)
	b.WriteString("<tr><th>Frequency (kHz)</th><th>SPL (dB)</th><th>Duration (ms)</th>" +
		"<th>SPL reference</th><th>Reference method</th><th></th></tr>\n")
	for _, dp := range dps {
		writeRow(&b, RowID(dp.ID), ClassDataPoint, dp, refs)
	}
	b.WriteString("</table>\nAdd a new data point\n<table>\n")
	writeRow(&b, RowNew, ClassDataPointNew, types.DataPoint{ID: types.NewDataPointID}, refs)
	b.WriteString("</table>\n")
	return b.String(), nil
}

func writeRow(b *strings.Builder, rowID, class string, dp types.DataPoint, refs []types.Option) {
	isNew := class == ClassDataPointNew

	var freq, spl, dur string
	if !isNew {
		freq = strconv.FormatFloat(dp.FrequencyKHz, 'f', -1, 64)
		spl = strconv.FormatFloat(dp.SPLDecibel, 'f', -1, 64)
	}
	if dp.DurationMillis != nil {
		dur = strconv.FormatFloat(*dp.DurationMillis, 'f', -1, 64)
	}
	var ref types.Scalar
	if dp.SPLReferenceID != nil {
		ref = types.ScalarInt(*dp.SPLReferenceID)
	}
	method := types.ScalarOf(types.SPLMethodCode(dp.SPLReferenceMethod))

	fmt.Fprintf(b, "<tr id=\"%s\" class=\"%s\">\n", rowID, class)
	cell := func(field, val, inputClass string) {
		fmt.Fprintf(b, "<td><input type=\"text\" id=\"%s\" class=\"%s\" value=\"%s\"/></td>\n",
			FieldID(rowID, field), inputClass, html.EscapeString(val))
	}
	cell(FieldFrequency, freq, "freq_input")
	cell(FieldSPL, spl, "spl_input")
	cell(FieldDuration, dur, "ms_input")
	fmt.Fprintf(b, "<td>%s</td>\n", selectField(FieldID(rowID, FieldSPLReference), ref, refs))
	fmt.Fprintf(b, "<td>%s</td>\n", selectField(FieldID(rowID, FieldSPLReferenceMethod), method, types.SPLMethods))
	if !isNew {
		fmt.Fprintf(b, "<td><img src=\"/static/images/trashcan.png\" class=\"delete_icon\" alt=\"delete %d\"/></td>\n", dp.ID)
	}
	b.WriteString("</tr>\n")
}
