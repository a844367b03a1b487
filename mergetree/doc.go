// Package mergetree builds the sub-level-set merge tree of an input
// graph's minima: a tree whose leaves are local minima and whose
// internal nodes are the saddles at which two basins first merge as the
// flood height rises, built by a union-find sweep over saddles in
// ascending height order.
//
// This is a different hierarchy from package mscomplex's persistence
// simplification: mscomplex ranks saddles by the sand volume in the
// two descending cells they separate, while MergeTree ranks the same
// saddles purely by height, to answer "which basins have merged by the
// time the water has risen to height h".
package mergetree
