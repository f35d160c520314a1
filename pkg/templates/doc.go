// Package templates renders the gulp files written into a target project.
//
// The template tree is embedded at build time under templates/gulps and
// addressed by features.TemplateID, which is the path relative to that root.
// Templates are Go text/templates executed with missingkey=error, so a
// reference to an unknown context field fails the render instead of
// producing "<no value>".
package templates
