// Package arch classifies native game binaries as 32-bit or 64-bit by
// reading their headers directly.
//
// PE images are identified by the MZ marker, the e_lfanew offset and the
// machine field following the PE signature. ELF objects use the class byte of
// e_ident, and Mach-O objects their magic. Classification never fails: any
// missing, truncated or foreign file is reported with BitsUnknown and a
// Detail string for diagnostics.
package arch
