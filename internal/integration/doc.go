// Package integration sequences a full integration: resolve the workspace
// location, reconcile its project references, hand each non-empty aggregate
// target to the TargetIntegrator in name order, then emit diagnostics.
//
// Everything runs synchronously. Only workspace resolution and the workspace
// write are fatal; per-target integration errors are collected and returned
// after diagnostics ran for all targets.
package integration
