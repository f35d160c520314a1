// Package generator runs the scaffolding workflow against a target project:
// ask, resolve, plan, render, write, install, then report what to do next.
//
// The planner decides everything up front. Nothing is written when no task
// is selected, and an install failure stops the run before any post-install
// message is produced.
package generator
