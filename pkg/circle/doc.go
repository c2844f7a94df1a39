// Package circle defines the Circle value object: a radius, a center and a
// per-instance value of π, with diameter, area and circumference derived
// from the radius on every read and folded back into it on every write.
//
// The zero value is a circle of radius 0 centered at the origin that uses
// math.Pi. A Circle holds no locks; callers sharing one across goroutines
// synchronize access themselves.
package circle
