// Package plot is a small scene model: a Figure holds Axes, and each Axes
// holds artifacts grouped by category (collections, patches, lines, texts,
// generic artists and images).
//
// Artifacts draw themselves onto a render.Renderer. Geometry that lives in
// data space (lines, patch outlines, meshes) is issued with the Axes data
// transform; marks whose size is set in points (markers, scatter points,
// glyph runs, resampled images) are issued in device pixels with an identity
// transform. Size-dependent artifacts implement [Scalable] and read their
// display-time size factor from the [Pass] they are drawn in; nothing about
// a draw changes the artifact itself.
package plot
