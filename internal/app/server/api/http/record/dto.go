package record

import (
	"datakeeper/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
)

type request struct {
	ID   *int64 `json:"id,omitempty" nullable:"true" doc:"ID записи; при обновлении должен совпадать с ID в пути"`
	Name string `json:"name,omitempty" example:"Alice Wonderland" doc:"Имя, не может быть пустым"`
}

func (r request) toRecord() record.Record {
	rec := record.New(r.Name)
	if r.ID != nil {
		rec = rec.WithID(*r.ID)
	}
	return rec
}

// validate reports domain violations; apierr merges them with huma's own
// body errors into one 400 response.
func (r request) validate() []error {
	if err := record.New(r.Name).Validate(); err != nil {
		return []error{err}
	}
	return nil
}

type listOutput struct {
	Body []record.Record
}

type findInput struct {
	ID int64 `path:"id" example:"1" doc:"ID записи"`
}

type createInput struct {
	Body request
}

func (in *createInput) Resolve(_ huma.Context) []error {
	return in.Body.validate()
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"ID записи"`
	Body request
}

func (in *updateInput) Resolve(_ huma.Context) []error {
	return in.Body.validate()
}

// recordOutput carries either a record or nothing at all. Body holds
// noBody for bare-status answers, which huma writes as zero bytes.
type recordOutput struct {
	Status int
	Body   any
}

var noBody []byte

type deleteOutput struct {
	Status int
}
