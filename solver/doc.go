// Package solver invokes the external vertex-cover solver executables and
// compares their outputs across prepared datasets.
//
// Collaborator contract
//
//	A solver is any executable that reads the canonical edge-list format
//	on standard input and writes a single line
//
//	    <comma-and-space-separated node list> => <integer cardinality>
//
//	to standard output, exiting 0 on success. Any non-zero exit code is a
//	solver failure and aborts processing for that graph.
//
// The solvers themselves are out of scope here — no vertex-cover
// algorithm lives in this repository. This package owns only the process
// boundary: spawning, feeding stdin, capturing output, classifying
// failures, and checking that a reported cover actually covers.
//
// Configuration is an explicit Config value loaded from a TOML file, not
// a package-level default map; see LoadConfig.
//
// Errors
//
//	ErrSolverNotFound - executable missing or not a regular file.
//	ErrSolverFailed   - non-zero exit code.
//	ErrBadOutput      - stdout does not match the "... => k" format, or
//	                    the cardinality disagrees with the node list.
//	ErrNoSolvers      - a configuration naming no solvers.
package solver
