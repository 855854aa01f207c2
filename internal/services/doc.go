// Package services defines shared utilities consumed by the external
// tool integrations and the acquisition pipeline.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper so failures carry
//     component context and classify consistently at the CLI boundary.
//   - A thin command executor abstraction that makes subprocess
//     invocation testable without spawning real binaries.
package services
