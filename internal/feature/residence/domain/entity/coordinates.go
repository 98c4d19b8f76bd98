package entity

import "fmt"

// Coordinates identifies where an image was taken.
// It is opaque to this feature: only used for logs and for seeding offline results.
type Coordinates map[string]any

// String returns a stable textual form. fmt prints map keys in sorted order.
func (c Coordinates) String() string {
	return fmt.Sprint(map[string]any(c))
}
