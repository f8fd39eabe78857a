// Package xcconfig reads generated .xcconfig build-setting files.
// Settings keep their file order so diagnostics derived from them are
// reported in a stable sequence.
package xcconfig
