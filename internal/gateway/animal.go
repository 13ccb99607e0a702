package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mesh-intelligence/audiograms/pkg/types"
)

// Animals reads and saves the animal tested in an audiogram experiment.
type Animals struct {
	client *Client
}

// Read returns the animal of experiment expID.
func (g *Animals) Read(ctx context.Context, expID int) (types.Animal, error) {
	if expID <= 0 {
		return types.Animal{}, types.ErrMissingID
	}
	var rows []types.Animal
	err := g.client.getJSON(ctx, call{
		op:       "read animal",
		endpoint: EndpointReadAnimal,
		entityID: strconv.Itoa(expID),
		params:   url.Values{"expId": {strconv.Itoa(expID)}},
	}, &rows)
	if err != nil {
		return types.Animal{}, err
	}
	a, err := first(rows, "read animal", EndpointReadAnimal)
	if err != nil {
		return types.Animal{}, err
	}
	a.ExpID = expID
	return a, nil
}

// Save writes a's fields. The server answers "True" on success.
func (g *Animals) Save(ctx context.Context, a types.Animal) error {
	if err := a.Validate(); err != nil {
		return err
	}
	params := url.Values{
		"expId":           {strconv.Itoa(a.ExpID)},
		"age":             {a.AgeInMonths.String()},
		"captivity":       {a.CaptivityInMonths.String()},
		"ott_id":          {a.OttID.String()},
		"sex":             {a.Sex.String()},
		"liberty":         {a.Liberty.String()},
		"lifestage":       {a.LifeStage.String()},
		"individual_name": {a.IndividualName.String()},
	}
	return g.client.ack(ctx, call{
		op:       "save animal",
		endpoint: EndpointSaveAnimal,
		entityID: strconv.Itoa(a.ExpID),
		params:   params,
		mutates:  true,
	})
}
