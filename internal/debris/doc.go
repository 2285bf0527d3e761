// Package debris implements the particle physics core: per-particle
// motion integration, boundary collision response by material model,
// stress/deformation bookkeeping, and the explosion spawner that owns
// the bounded particle population.
package debris
