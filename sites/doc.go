// Package sites implements a multi-indexed store of per-site labeling
// state: one Site per chain node, indexed by vertex identity (primary),
// by current label, and by active flag.
//
// All mutation goes through Store.Modify, which keeps the secondary label
// and active indices coherent with the primary map — callers never touch
// the indices directly.
package sites
