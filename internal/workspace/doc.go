// Package workspace resolves where the shared Xcode workspace lives and
// reconciles its project references with the projects an installation needs.
//
// Context loads podws.yaml and turns its relative paths into absolute ones.
// ResolvePath picks the single workspace document location. Reconciler
// merges required project references into that document, writing only when
// something is missing.
package workspace
