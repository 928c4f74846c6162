// Package prompt reads operator answers for the extractor's interactive steps:
// installation disambiguation, manual installation path and destination.
//
// Prompts block until a full line is read; there is no timeout. A closed
// input stream is treated as an empty answer so unattended runs take the
// offered defaults.
package prompt
