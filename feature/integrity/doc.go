// Package integrity implements the installation verifier.
//
// Service runs nine sections of existence probes against a server tree in a
// fixed order: environment variables, directories, files, module imports,
// submodules, native binaries, game content, database files and the install
// marker heuristic. Aggregate partitions the results into blocking failures
// (critical probes that failed) and warnings, and derives a PASS or FAIL
// verdict. A FAIL verdict is rendered with a fixed remediation checklist.
//
// # Outputs
//
//   - RenderText: the colour-aware checklist written to standard output.
//   - RenderJSON / WriteJSONFile: the machine-readable report.
//   - Publisher: uploads the JSON report to an S3-compatible bucket under
//     reports/<host>/<run-id>.json.
//
// Nothing in this package modifies the server tree or the environment.
package integrity
