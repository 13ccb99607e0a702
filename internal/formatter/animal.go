package formatter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// Animal form field ids.
const (
	FieldAnimalOttID             = "ott_id"
	FieldAnimalIndividualName    = "individual_name"
	FieldAnimalSex               = "sex"
	FieldAnimalLiberty           = "liberty_status"
	FieldAnimalLifeStage         = "life_stage"
	FieldAnimalAgeInMonths       = "age_in_month"
	FieldAnimalCaptivityInMonths = "captivity_duration_in_month"
)

// Animal renders the animal form of an audiogram.
type Animal struct {
	Options OptionSource
}

// Format renders a for audiogram expID. The species list is read from the
// option source.
func (f Animal) Format(ctx context.Context, expID int, a types.Animal) (string, error) {
	species, err := f.Options.Species(ctx)
	if err != nil {
		return "", fmt.Errorf("read species options: %w", err)
	}
	for i := range species {
		species[i].Label = Normalize(species[i].Label)
	}
	return section("display_animal_details",
		Hidden(FieldRecordID, strconv.Itoa(expID)),
		PulldownKeyVal("Species (English name)", FieldAnimalOttID, a.OttID, species),
		Input("Name of the individual animal", FieldAnimalIndividualName, Normalize(a.IndividualName.String())),
		Pulldown("Sex", FieldAnimalSex, a.Sex, types.Sexes),
		Pulldown("Liberty status", FieldAnimalLiberty, a.Liberty, types.Liberties),
		Pulldown("Life stage", FieldAnimalLifeStage, a.LifeStage, types.LifeStages),
		Input("Age of the animal (months)", FieldAnimalAgeInMonths, a.AgeInMonths.String()),
		Input("Duration in captivity (months)", FieldAnimalCaptivityInMonths, a.CaptivityInMonths.String()),
	), nil
}
