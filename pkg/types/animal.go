package types

import "fmt"

// Animal sex values.
const (
	SexFemale = "female"
	SexMale   = "male"
)

// Animal liberty status values.
const (
	LibertyCaptive  = "captive"
	LibertyStranded = "stranded"
	LibertyWild     = "wild"
)

// Animal life stage values.
const (
	LifeStageJuvenile = "juvenile"
	LifeStageSubAdult = "sub-adult"
	LifeStageAdult    = "adult"
)

// Allowed values for the animal select fields, in display order. The empty
// string is the unset value and is always accepted.
var (
	Sexes      = []string{SexFemale, SexMale}
	Liberties  = []string{LibertyCaptive, LibertyStranded, LibertyWild}
	LifeStages = []string{LifeStageJuvenile, LifeStageSubAdult, LifeStageAdult}
)

// Animal is the individual animal tested in one audiogram experiment. It is
// keyed by the experiment id it shares with the audiogram.
type Animal struct {
	ExpID             int    `json:"exp_id"`
	OttID             Scalar `json:"ott_id"`
	IndividualName    Scalar `json:"individual_name"`
	Sex               Scalar `json:"sex"`
	Liberty           Scalar `json:"liberty_status"`
	LifeStage         Scalar `json:"life_stage"`
	AgeInMonths       Scalar `json:"age_in_month"`
	CaptivityInMonths Scalar `json:"captivity_duration_in_month"`

	// Read-only, reported by edit_animal_metadata.
	VernacularName Scalar `json:"vernacular_name_english"`
	SpeciesName    Scalar `json:"species_name"`
}

// Validate checks the enumerated fields. Returns ErrMissingID when the
// experiment id is not set.
func (a Animal) Validate() error {
	if a.ExpID <= 0 {
		return ErrMissingID
	}
	if !contains(Sexes, a.Sex.String()) {
		return fmt.Errorf("%w: sex %q", ErrInvalidOption, a.Sex.String())
	}
	if !contains(Liberties, a.Liberty.String()) {
		return fmt.Errorf("%w: liberty status %q", ErrInvalidOption, a.Liberty.String())
	}
	if !contains(LifeStages, a.LifeStage.String()) {
		return fmt.Errorf("%w: life stage %q", ErrInvalidOption, a.LifeStage.String())
	}
	return nil
}
