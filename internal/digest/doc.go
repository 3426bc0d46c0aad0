// Package digest hashes set trees.
//
// Sum is a BLAKE2b-256 Merkle digest over the tree structure: two trees have
// the same digest exactly when they are Equal (up to hash collisions).
// Fingerprint truncates it to a short hex string for display and logging.
package digest
