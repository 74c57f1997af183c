// internal/component/exit.go
package component

import "go-haunted-house/internal/types"

// ExitMarker is a tagged world position mortals flee toward.
type ExitMarker struct {
	Position types.Vec3
}
