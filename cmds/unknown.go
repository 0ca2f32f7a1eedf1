package cmds

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

type UnknownCommandError struct {
	Name string
	// Near lists defined names within a small edit distance
	Near []string
}

func (e *UnknownCommandError) Error() string {
	if len(e.Near) == 0 {
		return fmt.Sprintf("unknown command: %s", e.Name)
	}
	return fmt.Sprintf("unknown command: %s (did you mean %s?)", e.Name, strings.Join(e.Near, ", "))
}

func (p *Executor) near(name string) []string {
	var ret []string
	for _, candidate := range slices.Sorted(maps.Keys(p.commands)) {
		if editDistance(name, candidate) <= 2 {
			ret = append(ret, candidate)
		}
	}
	return ret
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
