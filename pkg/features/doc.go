// Package features defines the closed sets of task and platform flags gulps
// understands, together with the static tables that map each flag to the
// template it renders, the npm packages it needs and the notes printed once
// installation is done.
//
// The tables are plain Go values. Completeness (every FeatureFlag has a
// template, a package set and notes) is checked by tests rather than at
// runtime.
package features
