// Package deploy implements the two workflows of the message-store CLIs:
//
//   - Deploy uploads the contract artifact, instantiates it with the
//     configured initial message and optionally smoke tests the instance.
//   - Update replaces the message of an existing instance and reads it back.
//
// Both workflows validate their local preconditions before any network call,
// run strictly sequentially and abort on the first error. Nothing is retried
// or rolled back: an upload followed by a failed instantiation leaves the
// uploaded code orphaned.
package deploy
