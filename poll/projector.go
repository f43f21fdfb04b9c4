// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import "sort"

// Unrecorded labels a ballot whose option no longer resolves.
const Unrecorded = "not recorded"

// UserVote pairs an identity with the label of its ballot.
type UserVote struct {
	Identity string
	Label    string
}

// Totals counts ballots per option. Ballots outside the registry are ignored.
func Totals(reg *Registry, ballots []Ballot) []int {
	totals := make([]int, reg.Len())
	for _, b := range ballots {
		if reg.Valid(b.Option) {
			totals[b.Option]++
		}
	}
	return totals
}

// PerUser lists ballots sorted by identity.
func PerUser(reg *Registry, ballots []Ballot) []UserVote {
	out := make([]UserVote, 0, len(ballots))
	for _, b := range ballots {
		out = append(out, UserVote{Identity: b.Identity, Label: labelFor(reg, b.Option)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identity < out[j].Identity })
	return out
}

// Grouped maps every label, including unchosen ones, to sorted identities.
func Grouped(reg *Registry, ballots []Ballot) map[string][]string {
	groups := make(map[string][]string, reg.Len())
	for _, label := range reg.Labels() {
		groups[label] = []string{}
	}
	for _, b := range ballots {
		label, ok := reg.Label(b.Option)
		if !ok {
			continue
		}
		groups[label] = append(groups[label], b.Identity)
	}
	for _, ids := range groups {
		sort.Strings(ids)
	}
	return groups
}

func labelFor(reg *Registry, idx int) string {
	if label, ok := reg.Label(idx); ok {
		return label
	}
	return Unrecorded
}
