package planner

import (
	"fmt"

	"github.com/arthur-debert/gulps/pkg/features"
)

// PostInstallNotes returns the notes for every enabled task in canonical order.
func PostInstallNotes(r ResolvedFlags) []features.Note {
	var notes []features.Note
	for _, f := range r.Tasks() {
		notes = append(notes, features.NotesFor(f)...)
	}
	return notes
}

// DescribePostInstallMessages renders PostInstallNotes as plain sentences.
func DescribePostInstallMessages(r ResolvedFlags) []string {
	notes := PostInstallNotes(r)
	msgs := make([]string, 0, len(notes))
	for _, n := range notes {
		msgs = append(msgs, fmt.Sprintf("Run the command %s %s", n.Command, n.Purpose))
	}
	return msgs
}
