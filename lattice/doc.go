// Package lattice provides the shared geometry of the 2D square lattice
// used by every walk sampler in this module.
//
// What:
//
//   - Coord: an immutable (x, y) lattice site on ℤ²; usable as a map key.
//   - Moves: the four axis-aligned unit steps (+x, −x, +y, −y).
//   - Symmetry: the 8-element point-symmetry group of the square lattice
//     (identity, three rotations, four reflections), acting on relative
//     offsets, plus pivot-anchored application for chain transforms.
//   - Occupancy: a set of occupied sites supporting O(1) membership,
//     insertion and removal — the collision oracle for self-avoidance.
//   - Walk: an ordered site sequence with a self-avoidance check.
//
// Why:
//
//   - Growth samplers (Rosenbluth, PERM) need O(1) "is this neighbor
//     free?" answers on an unbounded lattice.
//   - The pivot sampler needs the full symmetry group and incremental
//     occupancy updates with rollback.
//
// Complexity:
//
//   - Coord arithmetic, Symmetry.Apply: O(1).
//   - Occupancy Has/Add/Remove: O(1) expected (hash set).
//   - Occupancy.FreeNeighbors: O(1) (four probes).
//   - Walk.SelfAvoiding: O(n) time, O(n) memory.
//
// All operations are total: the package defines no error conditions.
package lattice
