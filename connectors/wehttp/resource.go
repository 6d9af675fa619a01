package wehttp

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/goccy/go-json"

	"github.com/weegigs/wee-counter-go/we"
)

type EntityEncoder[S any] interface {
	Encode(w http.ResponseWriter, r *http.Request, e *we.Entity[S]) error
}

type EntitySerializer[S any] func(entity *we.Entity[S]) (map[string]any, error)

// StateSerializer exposes the fields of the state as the resource body.
func StateSerializer[S any](entity *we.Entity[S]) (map[string]any, error) {
	serialized, err := json.Marshal(entity.State)
	if err != nil {
		return nil, err
	}

	resource := make(map[string]any)
	if err = json.Unmarshal(serialized, &resource); err != nil {
		return nil, err
	}

	return resource, nil
}

func NewResourceEncoder[S any]() ResourceEncoder[S] {
	return ResourceEncoder[S]{Serializer: StateSerializer[S]}
}

type ResourceEncoder[S any] struct {
	Serializer EntitySerializer[S]
}

func (encoder ResourceEncoder[S]) Encode(w http.ResponseWriter, r *http.Request, e *we.Entity[S]) error {
	serialize := encoder.Serializer
	if serialize == nil {
		serialize = StateSerializer[S]
	}

	resource, err := serialize(e)
	if err != nil {
		http.Error(w, "failed to serialize state", http.StatusInternalServerError)
		return err
	}

	resource["$id"] = e.Stream.Encode()
	resource["$type"] = e.Type
	resource["$revision"] = e.Revision

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resource)

	return nil
}
