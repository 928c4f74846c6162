// Package checks contains the existence probes of the installation verifier.
//
// Every probe is a pure read that converts absence into a CheckResult and
// never stops early: all manifest entries are evaluated regardless of
// earlier failures. Module probes use Resolver, which looks up dotted module
// paths in directories and zip archives on the search path instead of
// importing anything.
package checks
