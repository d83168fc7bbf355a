// Package cowtree implements an in-memory ordered associative container as
// a B+-tree with a copy-on-write overlay: a tree may be derived from a base
// tree, observing all of the base's entries, while mutations to the derived
// tree never perturb the base. Nodes are shared by reference between base
// and derived trees until a write forces a clone; ownership of every node
// is tracked so the tree can tell in O(1) whether a node is already private
// to it or still foreign and must be cloned before it can be touched.
package cowtree
