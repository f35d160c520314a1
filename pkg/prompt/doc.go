// Package prompt asks the user which tasks to generate.
//
// Questions are asked one at a time and in order. Each one may carry a When
// predicate over the answers collected so far; a question whose predicate
// returns false is skipped. Two implementations exist: HuhPrompter drives a
// terminal form, StaticPrompter answers from a preset map and is used when
// stdin is not a terminal and in tests.
package prompt
