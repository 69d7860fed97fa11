// Package schema provides the implementations for handling (Unix-based)
// operating system syscalls that the other packages consume through their own
// provider interfaces. The package serves as the foundational layer for all
// interactions with the kernel throughout the codebase.
package schema
