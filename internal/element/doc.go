// Package element evaluates an authored element tree into a flat, ordered
// list of model.Block values.
//
// A tree is made of plain Go values. Declarations (Resource, Data, Variable
// and friends) are the leaves that produce blocks. Components are functions
// from props to another node; they are how authors compose reusable pieces.
// Fragments and slices group siblings without producing anything themselves.
//
// All handles are minted from the Scope passed to every component, so one
// render never shares reference state with another.
package element
