package main

import (
	"cmp"
	"slices"
	"strings"

	"github.com/advent/aoc"
)

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

type camelHand struct {
	cards string
	bid   int
	kind  int // 0 high card .. 6 five of a kind
}

// handKind ranks a hand by the shape of its card counts. With jokers, J
// joins the largest group of the other cards.
func handKind(cards string, jokers bool) int {
	counts := map[rune]int{}
	j := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			j++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += j

	switch {
	case groups[0] == 5:
		return 6
	case groups[0] == 4:
		return 5
	case groups[0] == 3 && groups[1] == 2:
		return 4
	case groups[0] == 3:
		return 3
	case groups[0] == 2 && groups[1] == 2:
		return 2
	case groups[0] == 2:
		return 1
	}
	return 0
}

func totalWinnings(lines []string, jokers bool) int {
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}
	hands := make([]camelHand, len(lines))
	for i, l := range lines {
		cards, bid, ok := strings.Cut(l, " ")
		if !ok || len(cards) != 5 {
			panic("bad hand: " + l)
		}
		hands[i] = camelHand{cards: cards, bid: aoc.Int(bid), kind: handKind(cards, jokers)}
	}
	slices.SortFunc(hands, func(a, b camelHand) int {
		if c := cmp.Compare(a.kind, b.kind); c != 0 {
			return c
		}
		for i := range a.cards {
			if c := cmp.Compare(strings.IndexByte(order, a.cards[i]), strings.IndexByte(order, b.cards[i])); c != 0 {
				return c
			}
		}
		return 0
	})
	sum := 0
	for i, h := range hands {
		sum += (i + 1) * h.bid
	}
	return sum
}

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() any {
	return totalWinnings(s.Lines(), false)
}

// want=5905
func (s solver) D7p2() any {
	return totalWinnings(s.Lines(), true)
}
