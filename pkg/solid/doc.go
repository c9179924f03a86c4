// Package solid is a small exact modelling kernel for parts built from
// axis-aligned extrusions.
//
// A Solid is an immutable value. Extrude, Translate, Replicate, Union and
// Fillet never modify their receiver or arguments; each returns a new Solid.
// Boolean union is resolved on a coordinate-compressed cell grid, so
// coincident faces between inputs merge instead of producing internal walls,
// and Tessellate always yields a closed mesh with outward facing triangles.
package solid
