// Package probe collects the process-ambient state the envcheck CLI
// reports on: the running executable's own path and the current working
// directory.
//
// Collection is read-only and cannot partially succeed — either both
// values are available or an error is returned. The package performs no
// symlink resolution on the executable path; see Collect for why.
package probe
