// Package planner turns user input into an artifact plan.
//
// It runs in three steps, each a pure function over immutable values:
//
//	ResolveFlags                 direct flags + prompt answers -> ResolvedFlags
//	PlanArtifacts                ResolvedFlags -> ArtifactPlan
//	DescribePostInstallMessages  ResolvedFlags -> []string
//
// Nothing here performs I/O. Prompting, rendering, writing and installing
// belong to the generator package, which threads the same ResolvedFlags value
// through all three calls.
package planner
