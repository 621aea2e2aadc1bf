// SPDX-License-Identifier: MIT

package runner

// SwapNewWorkspace replaces the workspace constructor used by Run and
// returns a function restoring the original. Tests only.
func SwapNewWorkspace(fn func(rows, cols int) (*Workspace, error)) (restore func()) {
	prev := newWorkspace
	newWorkspace = fn
	return func() { newWorkspace = prev }
}
