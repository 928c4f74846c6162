// Package hostinfo detects the host operating system, architecture and
// interpreter word size. The word size is what native game modules must
// match, so it can be overridden from configuration when the Python
// interpreter that will load them differs from this binary.
package hostinfo
