// Build is O(N log^2 N) (dominated by the per-level sort used to find each
// median); query is O(log N) average, O(N) worst case on a degenerate
// (e.g. all-collinear) point set. The tree is immutable once New returns.
package kdtree
