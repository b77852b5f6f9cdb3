// Package entropy computes the Shannon entropy of byte sequences.
//
// Entropy is measured in bits per byte and ranges from 0 (a single repeated
// value) to 8 (all 256 values equally frequent). Compressed or encrypted
// content sits close to 8, which makes entropy the usual first signal for
// packing detection:
//
//	h := entropy.Shannon(section)
//	if entropy.Classify(h) == entropy.LevelHigh {
//	    // likely packed or encrypted
//	}
//
// Profile computes entropy per fixed-size block, to locate high-entropy
// regions inside a larger buffer.
//
// All functions are pure and safe for concurrent use.
package entropy
