// Package orbit models bodies on concentric circular orbits.
//
// Every body has a fixed orbital radius, a fixed signed angular velocity and
// a fixed visual size. Its angle is never integrated: it is evaluated in
// closed form from the frame number,
//
//	angle(frame) = (frame + PhaseOffset) * AngularVelocity
//
// so any frame, past or future, is reproducible exactly and long runs do not
// drift. Trails are the same formula evaluated at earlier frames.
//
// # Layout
//
// [Generate] lays bodies out at MinRadius, MinRadius+Spacing, ... and draws
// angular velocities from a seeded source, so a given (count, seed) pair always
// yields the same animation.
package orbit
