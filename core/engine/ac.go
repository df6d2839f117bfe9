// core/engine/ac.go
package engine

/*
Aho-Corasick scanner over the 4-letter DNA alphabet.

- buildAC(seeds) builds a trie with failure links and a dense goto function.
- scanAC(target, nodes, seeds) emits (seedIdx, startPos) for every seed
  occurrence, in scan order.
*/

type acNode struct {
	next [4]int // dense goto after failure-link resolution
	fail int
	out  []int // seed indices ending at this state
}

func baseIdx(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return -1
	}
}

func buildAC(seeds []seed) []acNode {
	nodes := make([]acNode, 1)
	for i := range nodes[0].next {
		nodes[0].next[i] = -1
	}

	// goto function
	for si, s := range seeds {
		state := 0
		for _, b := range s.pat {
			ix := baseIdx(b)
			if nodes[state].next[ix] == -1 {
				nodes[state].next[ix] = len(nodes)
				var nn acNode
				for k := range nn.next {
					nn.next[k] = -1
				}
				nodes = append(nodes, nn)
			}
			state = nodes[state].next[ix]
		}
		nodes[state].out = append(nodes[state].out, si)
	}

	// failure links (BFS); missing edges are rewritten to their fallback so
	// the scan loop never walks failure chains.
	queue := make([]int, 0, len(nodes))
	for ch := 0; ch < 4; ch++ {
		nx := nodes[0].next[ch]
		if nx != -1 {
			nodes[nx].fail = 0
			queue = append(queue, nx)
		} else {
			nodes[0].next[ch] = 0
		}
	}
	for qh := 0; qh < len(queue); qh++ {
		r := queue[qh]
		for ch := 0; ch < 4; ch++ {
			s := nodes[r].next[ch]
			if s != -1 {
				queue = append(queue, s)
				f := nodes[r].fail
				nodes[s].fail = nodes[f].next[ch]
				nodes[s].out = append(nodes[s].out, nodes[nodes[s].fail].out...)
			} else {
				nodes[r].next[ch] = nodes[nodes[r].fail].next[ch]
			}
		}
	}
	return nodes
}

type seedHit struct {
	SeedIdx int
	Pos     int // start position of the seed match within target
}

// scanAC runs the automaton over target and collects all seed occurrences.
// Targets are pre-validated A/C/G/T, but any stray byte resets the state
// rather than crashing.
func scanAC(target []byte, nodes []acNode, seeds []seed) []seedHit {
	var hits []seedHit
	state := 0
	for i := 0; i < len(target); i++ {
		ix := baseIdx(target[i])
		if ix < 0 {
			state = 0
			continue
		}
		state = nodes[state].next[ix]
		if len(nodes[state].out) == 0 {
			continue
		}
		for _, si := range nodes[state].out {
			hits = append(hits, seedHit{
				SeedIdx: si,
				Pos:     i - (len(seeds[si].pat) - 1),
			})
		}
	}
	return hits
}
