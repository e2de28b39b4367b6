// Package views works with client view lines, "depot-pattern workspace-pattern" with an optional leading - on exclusions.
package views

import "strings"

const (
	DepotRoot         = "//"
	ExclusionPrefix   = "-"
	DepotRootWildcard = DepotRoot + "..."
	LabelMarker       = "@"
)

// PathPrefixes returns the depot column of every non excluded view, in input order.
// Blank lines and depot columns without a depot root are skipped.
func PathPrefixes(views []string) (res []string) {
	for _, view := range views {
		columns := strings.Fields(view)
		if len(columns) == 0 {
			continue
		}
		left := strings.TrimSpace(columns[0])
		if strings.Contains(left, ExclusionPrefix+DepotRoot) {
			continue
		}
		i := strings.Index(left, DepotRoot)
		if i == -1 {
			continue
		}
		res = append(res, left[i:])
	}
	return
}

// ComputePathPrefixes returns the prefixes to pass to p4 changes for a client with the given views.
// Each prefix is followed by a space, including the last one.
func ComputePathPrefixes(views []string) string {
	var b strings.Builder
	for _, p := range PathPrefixes(views) {
		b.WriteString(p)
		b.WriteByte(' ')
	}
	return b.String()
}

// IsProjectPathValidForMultipleViews reports whether a user supplied project path
// can be used with a client that has more than one view. Only the depot root and labelled paths can.
func IsProjectPathValidForMultipleViews(path string) bool {
	return path == DepotRootWildcard || strings.Contains(path, LabelMarker)
}
