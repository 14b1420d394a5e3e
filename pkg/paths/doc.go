// Package paths resolves the per-user locations tmplmerge reads its
// configuration from and writes its log file to. It follows the XDG Base
// Directory specification via github.com/adrg/xdg, with environment
// variable overrides for each directory.
package paths
