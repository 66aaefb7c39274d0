// Package logpath resolves a writable, platform-appropriate location for an
// application's log file.
//
// Each supported platform has an ordered profile of candidate directory
// templates. Candidates are tried in order; a candidate whose base value
// (an environment variable or the home directory) is empty or relative is
// skipped without touching the filesystem, otherwise its directory is created one
// level at a time and probed for write access. The first writable candidate
// wins and the resolved path is always <dir>/log.log.
//
// Directories created while probing a candidate that is later rejected are
// left on disk. A path level that exists as something other than a directory
// aborts the whole resolution with ErrStructuralConflict.
package logpath
