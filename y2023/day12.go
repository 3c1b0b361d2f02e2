package main

import (
	"strings"

	"github.com/advent/aoc"
)

type springRow struct {
	springs string
	groups  []int
}

func parseSpringRow(line string) springRow {
	springs, groups, ok := strings.Cut(line, " ")
	if !ok {
		panic("bad row: " + line)
	}
	return springRow{springs: springs, groups: aoc.Ints(strings.Split(groups, ",")...)}
}

// unfold repeats the row five times, joining the springs with '?'.
func (r springRow) unfold() springRow {
	var out springRow
	springs := make([]string, 5)
	for i := range springs {
		springs[i] = r.springs
		out.groups = append(out.groups, r.groups...)
	}
	out.springs = strings.Join(springs, "?")
	return out
}

// arrangements counts the ways of replacing every '?' so that the runs of
// '#' match groups.
func (r springRow) arrangements() int {
	memo := map[[2]int]int{}
	var count func(i, j int) int
	count = func(i, j int) int {
		if i >= len(r.springs) {
			if j == len(r.groups) {
				return 1
			}
			return 0
		}
		key := [2]int{i, j}
		if v, ok := memo[key]; ok {
			return v
		}
		n := 0
		c := r.springs[i]
		if c == '.' || c == '?' {
			n += count(i+1, j)
		}
		if (c == '#' || c == '?') && j < len(r.groups) {
			end := i + r.groups[j]
			if end <= len(r.springs) &&
				!strings.Contains(r.springs[i:end], ".") &&
				(end == len(r.springs) || r.springs[end] != '#') {
				n += count(end+1, j+1)
			}
		}
		memo[key] = n
		return n
	}
	return count(0, 0)
}

/*
want=21

???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
*/
func (s solver) D12p1() any {
	sum := 0
	s.ForLines(func(line string) {
		sum += parseSpringRow(line).arrangements()
	})
	return sum
}

// want=525152
func (s solver) D12p2() any {
	return aoc.ParallelMapFold(s.Lines(), func(line string) int {
		return parseSpringRow(line).unfold().arrangements()
	}, func(sum, n int) int {
		return sum + n
	}, 0)
}
