// Package libdiff aligns sequences of record identities.
//
// # Usage
//
//	hunks := libdiff.Align(ancestorKeys, localKeys)
//
// Each Hunk names a maximal region where the two sequences differ,
// given as a half open range of each. Everything outside the hunks is
// matched item for item, which makes the hunks the edit script turning
// the first sequence into the second.
package libdiff
