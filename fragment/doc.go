// Package fragment builds the outlines of curved track-tile decorations:
// round caps, ring segments and curved arrows. Every builder is a pure
// function of its geometry and returns a new path.
//
// Angles are in degrees and grow towards the positive Y axis, which is
// clockwise on screen. A CurvedElement is measured from its inner edge
// while a CurvedArrow is measured from its center line.
package fragment
