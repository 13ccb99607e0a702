package types

import "fmt"

// NewExperimentID is the id sent to save_experiment to create an experiment.
// The server answers with the freshly allocated id.
const NewExperimentID = 0

// Values for the experiment select fields, in display order.
var (
	MeasurementTypes = []string{
		"auditory threshold",
		"critical ratio",
		"critical bandwidth",
		"time period of integration",
		"TTS - Temporary Threshold Shift",
		"PTS - Permanent Threshold Shift",
		"signal duration test",
	}
	Media      = []string{"air", "water"}
	YesNo      = []string{"yes", "no", "unknown"}
	SoundForms = []string{"click", "tone-pips", "pip trains", "prolonged", "SAM (sinusoidal amplitude modulation)"}
)

// Experiment field names, as used for JSON keys, query parameters and form
// field ids.
const (
	FieldCitationID                          = "citation_id"
	FieldOttID                               = "ott_id"
	FieldBackgroundNoiseInDecibel            = "background_noise_in_decibel"
	FieldCalibration                         = "calibration"
	FieldDistanceToSoundSourceInMeter        = "distance_to_sound_source_in_meter"
	FieldFacilityID                          = "facility_id"
	FieldLatitudeInDecimalDegree             = "latitude_in_decimal_degree"
	FieldLongitudeInDecimalDegree            = "longitude_in_decimal_degree"
	FieldMeasurementMethodID                 = "measurement_method_id"
	FieldMeasurementType                     = "measurement_type"
	FieldMedium                              = "medium"
	FieldNumberOfMeasurements                = "number_of_measurements"
	FieldPositionFirstElectrode              = "position_first_electrode"
	FieldPositionSecondElectrode             = "position_second_electrode"
	FieldPositionThirdElectrode              = "position_third_electrode"
	FieldPositionOfAnimal                    = "position_of_animal"
	FieldSedated                             = "sedated"
	FieldSedationDetails                     = "sedation_details"
	FieldTestEnvironmentDescription          = "test_environment_description"
	FieldTesttoneFormMethodID                = "testtone_form_method_id"
	FieldTesttonePresentationMethodConstants = "testtone_presentation_method_constants"
	FieldTesttonePresentationSoundForm       = "testtone_presentation_sound_form"
	FieldTesttonePresentationStaircase       = "testtone_presentation_staircase"
	FieldThresholdDeterminationMethod        = "threshold_determination_method"
	FieldYearOfExperimentStart               = "year_of_experiment_start"
	FieldYearOfExperimentEnd                 = "year_of_experiment_end"
)

// ExperimentFields lists every bound experiment field in the order
// save_experiment documents them.
var ExperimentFields = []string{
	FieldCitationID,
	FieldOttID,
	FieldBackgroundNoiseInDecibel,
	FieldCalibration,
	FieldDistanceToSoundSourceInMeter,
	FieldFacilityID,
	FieldLatitudeInDecimalDegree,
	FieldLongitudeInDecimalDegree,
	FieldMeasurementMethodID,
	FieldMeasurementType,
	FieldMedium,
	FieldNumberOfMeasurements,
	FieldPositionFirstElectrode,
	FieldPositionSecondElectrode,
	FieldPositionThirdElectrode,
	FieldPositionOfAnimal,
	FieldSedated,
	FieldSedationDetails,
	FieldTestEnvironmentDescription,
	FieldTesttoneFormMethodID,
	FieldTesttonePresentationMethodConstants,
	FieldTesttonePresentationSoundForm,
	FieldTesttonePresentationStaircase,
	FieldThresholdDeterminationMethod,
	FieldYearOfExperimentStart,
	FieldYearOfExperimentEnd,
}

// Experiment holds the metadata of one audiogram experiment. One experiment
// has exactly one animal and one audiogram, all sharing ID.
type Experiment struct {
	ID int `json:"id"`

	CitationID                          Scalar `json:"citation_id"`
	OttID                               Scalar `json:"ott_id"`
	BackgroundNoiseInDecibel            Scalar `json:"background_noise_in_decibel"`
	Calibration                         Scalar `json:"calibration"`
	DistanceToSoundSourceInMeter        Scalar `json:"distance_to_sound_source_in_meter"`
	FacilityID                          Scalar `json:"facility_id"`
	LatitudeInDecimalDegree             Scalar `json:"latitude_in_decimal_degree"`
	LongitudeInDecimalDegree            Scalar `json:"longitude_in_decimal_degree"`
	MeasurementMethodID                 Scalar `json:"measurement_method_id"`
	MeasurementType                     Scalar `json:"measurement_type"`
	Medium                              Scalar `json:"medium"`
	NumberOfMeasurements                Scalar `json:"number_of_measurements"`
	PositionFirstElectrode              Scalar `json:"position_first_electrode"`
	PositionSecondElectrode             Scalar `json:"position_second_electrode"`
	PositionThirdElectrode              Scalar `json:"position_third_electrode"`
	PositionOfAnimal                    Scalar `json:"position_of_animal"`
	Sedated                             Scalar `json:"sedated"`
	SedationDetails                     Scalar `json:"sedation_details"`
	TestEnvironmentDescription          Scalar `json:"test_environment_description"`
	TesttoneFormMethodID                Scalar `json:"testtone_form_method_id"`
	TesttonePresentationMethodConstants Scalar `json:"testtone_presentation_method_constants"`
	TesttonePresentationSoundForm       Scalar `json:"testtone_presentation_sound_form"`
	TesttonePresentationStaircase       Scalar `json:"testtone_presentation_staircase"`
	ThresholdDeterminationMethod        Scalar `json:"threshold_determination_method"`
	YearOfExperimentStart               Scalar `json:"year_of_experiment_start"`
	YearOfExperimentEnd                 Scalar `json:"year_of_experiment_end"`
}

// Field returns a pointer to the named field so it can be read or bound by
// name. Returns nil for an unknown name.
func (e *Experiment) Field(name string) *Scalar {
	switch name {
	case FieldCitationID:
		return &e.CitationID
	case FieldOttID:
		return &e.OttID
	case FieldBackgroundNoiseInDecibel:
		return &e.BackgroundNoiseInDecibel
	case FieldCalibration:
		return &e.Calibration
	case FieldDistanceToSoundSourceInMeter:
		return &e.DistanceToSoundSourceInMeter
	case FieldFacilityID:
		return &e.FacilityID
	case FieldLatitudeInDecimalDegree:
		return &e.LatitudeInDecimalDegree
	case FieldLongitudeInDecimalDegree:
		return &e.LongitudeInDecimalDegree
	case FieldMeasurementMethodID:
		return &e.MeasurementMethodID
	case FieldMeasurementType:
		return &e.MeasurementType
	case FieldMedium:
		return &e.Medium
	case FieldNumberOfMeasurements:
		return &e.NumberOfMeasurements
	case FieldPositionFirstElectrode:
		return &e.PositionFirstElectrode
	case FieldPositionSecondElectrode:
		return &e.PositionSecondElectrode
	case FieldPositionThirdElectrode:
		return &e.PositionThirdElectrode
	case FieldPositionOfAnimal:
		return &e.PositionOfAnimal
	case FieldSedated:
		return &e.Sedated
	case FieldSedationDetails:
		return &e.SedationDetails
	case FieldTestEnvironmentDescription:
		return &e.TestEnvironmentDescription
	case FieldTesttoneFormMethodID:
		return &e.TesttoneFormMethodID
	case FieldTesttonePresentationMethodConstants:
		return &e.TesttonePresentationMethodConstants
	case FieldTesttonePresentationSoundForm:
		return &e.TesttonePresentationSoundForm
	case FieldTesttonePresentationStaircase:
		return &e.TesttonePresentationStaircase
	case FieldThresholdDeterminationMethod:
		return &e.ThresholdDeterminationMethod
	case FieldYearOfExperimentStart:
		return &e.YearOfExperimentStart
	case FieldYearOfExperimentEnd:
		return &e.YearOfExperimentEnd
	default:
		return nil
	}
}

// IsNew reports whether saving e creates a new experiment.
func (e Experiment) IsNew() bool {
	return e.ID == NewExperimentID
}

// Validate checks the enumerated fields.
func (e Experiment) Validate() error {
	if e.ID < 0 {
		return ErrMissingID
	}
	checks := []struct {
		name    string
		value   Scalar
		allowed []string
	}{
		{FieldMeasurementType, e.MeasurementType, MeasurementTypes},
		{FieldMedium, e.Medium, Media},
		{FieldSedated, e.Sedated, YesNo},
		{FieldTesttonePresentationStaircase, e.TesttonePresentationStaircase, YesNo},
		{FieldTesttonePresentationMethodConstants, e.TesttonePresentationMethodConstants, YesNo},
		{FieldTesttonePresentationSoundForm, e.TesttonePresentationSoundForm, SoundForms},
	}
	for _, c := range checks {
		if !contains(c.allowed, c.value.String()) {
			return fmt.Errorf("%w: %s %q", ErrInvalidOption, c.name, c.value.String())
		}
	}
	return nil
}
