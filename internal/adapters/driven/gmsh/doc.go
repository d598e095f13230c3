// Package gmsh renders geometry descriptions in the Gmsh .geo input grammar.
//
// Coordinates are written as numeric literals using the shortest
// round-trip representation, so identical parameters always produce
// byte-identical files. The device dimensions are also emitted as named
// variables at the top of the file for readability.
package gmsh
