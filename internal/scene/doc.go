// Package scene derives the drawable beaker for one evaluation cycle.
//
//   - [PlanGeometry]: beaker width and liquid fill from the volume input
//   - [GenerateParticles]: randomly placed solute particles per mass tier
//   - [GenerateWave]: animated surface wave keyframes
//   - [Compose]: the [Description] handed to renderers
//
// Nothing here keeps state between cycles. Randomness comes from a caller
// supplied [Rand] so tests can seed it.
package scene
