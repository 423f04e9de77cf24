// Package domain contains the core vocabulary entities: word lists, learning
// pairs, and the per-direction scheduling records that drive training. It is
// independent of any storage format or delivery mechanism.
package domain
