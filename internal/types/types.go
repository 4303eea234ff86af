// internal/types/types.go
package types

import "fmt"

// EntityID identifies an entity slot in the registry. Generation is bumped
// every time the slot is recycled, so an ID held past its entity's death
// never resolves to the slot's next occupant.
type EntityID struct {
	Index      uint32
	Generation uint32
}

// NoEntity is the zero ID; the registry never hands it out.
var NoEntity = EntityID{}

// IsZero reports whether id is NoEntity.
func (id EntityID) IsZero() bool {
	return id == NoEntity
}

func (id EntityID) String() string {
	return fmt.Sprintf("%d#%d", id.Index, id.Generation)
}

// Less orders IDs by slot index, then generation.
func (id EntityID) Less(other EntityID) bool {
	if id.Index != other.Index {
		return id.Index < other.Index
	}
	return id.Generation < other.Generation
}
