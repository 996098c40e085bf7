// Package ascii renders workflows as Unicode box-drawing diagrams.
//
// A diagram is composed on a rectangular rune canvas: each node becomes a
// bordered box styled by its type, and each connection becomes an orthogonal
// arrowed path styled by its line style. Render is the entry point.
package ascii
