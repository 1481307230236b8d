// Package report implements the "report" command: it prints the versions of
// the watch-list packages, host environment facts and any community plugins
// installed in the workspace, formatted for pasting into an issue.
package report
