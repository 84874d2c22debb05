// Package libdiff computes structural diffs between documents.
//
// # Usage
//
//	changes := libdiff.Diff(oldDoc, newDoc)
//	for _, c := range changes {
//		fmt.Println(c)
//	}
//
// Key sequences are diffed in document order, so a diff distinguishes
// keys that were added or removed from keys whose values changed.
// Arrays compare positionally.
//
// # Related Packages
//
//   - github.com/boml-format/go-boml/ir - the document tree
package libdiff
