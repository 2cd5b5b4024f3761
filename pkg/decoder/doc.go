// ABOUTME: Decode session protocol and codec backend contract
// ABOUTME: Connects pluggable codec backends to the chunk pipeline with in-band commands
// Package decoder defines the codec backend contract and the session protocol
// between a running decode loop and its controlling playback stage.
//
// A backend implements Plugin plus whichever capability interfaces it
// supports (FileDecoder, StreamDecoder, FileScanner, StreamScanner,
// Lifecycle). A Registry holds the ordered plugin list, brackets process-wide
// init/finish hooks, and dispatches by filename suffix or MIME type.
//
// One Session spans one run of a backend against one source. The decode
// worker announces the resolved format once, then alternately fills chunks
// and submits them; each submission returns the controller's pending command
// (none, stop, or seek). Seeks are acknowledged with the timestamp the
// backend actually landed on, or reported as recoverable errors.
//
// Example:
//
//	reg := decoder.NewRegistry(decoder.NewMP3Plugin(), decoder.NewFLACPlugin())
//	defer reg.Close()
//
//	sess := decoder.NewSession(audio.NewPool(32), 16)
//	go sess.RunPath(reg.ForPath(path), path)
//	for chunk := range sess.Chunks() {
//		// play chunk, then release it
//	}
package decoder
