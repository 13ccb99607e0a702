package formatter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// Experiment renders the experiment metadata form.
type Experiment struct {
	Options OptionSource
}

// Format renders e under id. A new experiment is rendered with id 0 and
// empty fields.
func (f Experiment) Format(ctx context.Context, id int, e types.Experiment) (string, error) {
	publications, err := f.Options.Publications(ctx)
	if err != nil {
		return "", fmt.Errorf("read publication options: %w", err)
	}
	species, err := f.Options.Species(ctx)
	if err != nil {
		return "", fmt.Errorf("read species options: %w", err)
	}
	facilities, err := f.Options.Facilities(ctx)
	if err != nil {
		return "", fmt.Errorf("read facility options: %w", err)
	}
	methods, err := f.Options.MeasurementMethods(ctx)
	if err != nil {
		return "", fmt.Errorf("read measurement method options: %w", err)
	}
	tones, err := f.Options.ToneMethods(ctx)
	if err != nil {
		return "", fmt.Errorf("read tone method options: %w", err)
	}
	for _, opts := range [][]types.Option{publications, species, facilities, methods, tones} {
		for i := range opts {
			opts[i].Label = Normalize(opts[i].Label)
		}
	}

	text := func(name string) string { return Normalize(e.Field(name).String()) }

	return Hidden(FieldRecordID, strconv.Itoa(id)) +
		PulldownKeyVal("Publication", types.FieldCitationID, e.CitationID, publications) +
		PulldownKeyVal("Species (English name)", types.FieldOttID, e.OttID, species) + "\n" +
		section("display_experiment_details",
			Pulldown("Measurement type", types.FieldMeasurementType, e.MeasurementType, types.MeasurementTypes),
			Input("Number of measurements", types.FieldNumberOfMeasurements, e.NumberOfMeasurements.String()),
			PulldownKeyVal("Facility name", types.FieldFacilityID, e.FacilityID, facilities),
			Input("Latitude in decimal degree", types.FieldLatitudeInDecimalDegree, e.LatitudeInDecimalDegree.String()),
			Input("Longitude in decimal degree", types.FieldLongitudeInDecimalDegree, e.LongitudeInDecimalDegree.String()),
			Text("Position of animal", types.FieldPositionOfAnimal, text(types.FieldPositionOfAnimal)),
			Input("Distance to sound source in meter", types.FieldDistanceToSoundSourceInMeter, e.DistanceToSoundSourceInMeter.String()),
			Text("Test environment description", types.FieldTestEnvironmentDescription, text(types.FieldTestEnvironmentDescription)),
			Pulldown("Medium", types.FieldMedium, e.Medium, types.Media),
			PulldownKeyVal("Measurement method", types.FieldMeasurementMethodID, e.MeasurementMethodID, methods),
			Text("Position first electrode", types.FieldPositionFirstElectrode, text(types.FieldPositionFirstElectrode)),
			Text("Position second electrode", types.FieldPositionSecondElectrode, text(types.FieldPositionSecondElectrode)),
			Text("Position third electrode", types.FieldPositionThirdElectrode, text(types.FieldPositionThirdElectrode)),
			Input("Year of experiment start", types.FieldYearOfExperimentStart, e.YearOfExperimentStart.String()),
			Input("Year of experiment end", types.FieldYearOfExperimentEnd, e.YearOfExperimentEnd.String()),
			Text("Calibration", types.FieldCalibration, text(types.FieldCalibration)),
			Input("Threshold determination info", types.FieldThresholdDeterminationMethod, text(types.FieldThresholdDeterminationMethod)),
			PulldownKeyVal("Testtone form method", types.FieldTesttoneFormMethodID, e.TesttoneFormMethodID, tones),
			Pulldown("Testtone presentation staircase", types.FieldTesttonePresentationStaircase, e.TesttonePresentationStaircase, types.YesNo),
			Pulldown("Testtone presentation method constants", types.FieldTesttonePresentationMethodConstants, e.TesttonePresentationMethodConstants, types.YesNo),
			Pulldown("Testtone presentation sound form", types.FieldTesttonePresentationSoundForm, e.TesttonePresentationSoundForm, types.SoundForms),
			Pulldown("Sedated", types.FieldSedated, e.Sedated, types.YesNo),
			Text("Sedation details", types.FieldSedationDetails, text(types.FieldSedationDetails)),
			Input("Background noise in decibel", types.FieldBackgroundNoiseInDecibel, e.BackgroundNoiseInDecibel.String()),
		), nil
}
