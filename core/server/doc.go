// Package server describes the game server tree the tools inspect and fill.
//
// The Config struct names the server root (every manifest path is relative to
// it) and an optional OS family override. The family decides which native
// binary names are expected (.pyd on Windows, .so elsewhere), which client
// install locations are probed and which launch script flavour is written.
//
// The package also names the two environment variables the verifier reads:
// MOM_INSTALL (client install root) and PYTHONPATH (module search path).
package server
