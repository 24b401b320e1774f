// Package fsops executes filesystem operations through synthfs.
// Assembly and installation never touch the tree directly: they build
// lists of create-dir, write-file and copy-file operations and hand
// them to an Executor, which runs them as a single synthfs pipeline.
package fsops
