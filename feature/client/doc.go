// Package client extracts a MoM server tree from a game client installation.
//
// The Orchestrator moves through a fixed sequence of phases:
//
//	Init → Locating → {Located | NotFound → ManualPathPrompt} → ClassifyingArch →
//	AwaitingDestination → CopyingFiles → UnpackingArchive → VerifyingContent →
//	GeneratingScript → Done
//
// Errors inside a phase are recorded on the Result and never move the run
// backwards or abort it. Copying is best effort per item. Existing
// destination directories are removed before being copied again, without
// confirmation.
package client
