// Package xcworkspace reads and writes Xcode workspace documents
// (<name>.xcworkspace/contents.xcworkspacedata).
//
// Only top-level FileRef elements are interpreted. Any other element, such
// as a Group the developer created in Xcode, is kept verbatim and written
// back in its original position.
package xcworkspace
