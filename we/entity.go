package we

type EntityType string

func (et EntityType) String() string {
	return string(et)
}

type EntityTyped interface {
	EntityType() EntityType
}

func EntityTypeOf(state any) EntityType {
	if named, ok := state.(EntityTyped); ok {
		return named.EntityType()
	}

	return EntityType(NameOf(state))
}

// Entity is the state of a stream after replaying every message up to
// Revision.
type Entity[S any] struct {
	Stream   StreamId
	Revision Revision
	Type     EntityType
	State    *S
}

func (e *Entity[S]) Initialized() bool {
	return e.Revision != InitialRevision
}
