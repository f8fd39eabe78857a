// Package ui renders command output: progress lines, aligned tables and
// warnings with remedial actions.
package ui
