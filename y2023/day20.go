package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/advent/aoc"
)

type pulse struct {
	from, to string
	high     bool
}

type pulseModule struct {
	kind    byte // '%' flip-flop, '&' conjunction, 'b' broadcaster
	outputs []string
	on      bool
	memory  map[string]bool // last pulse from each input, for conjunctions
}

type pulseNetwork struct {
	modules map[string]*pulseModule
}

func parsePulseNetwork(lines []string) *pulseNetwork {
	n := &pulseNetwork{modules: map[string]*pulseModule{}}
	for _, l := range lines {
		name, outs, ok := strings.Cut(l, " -> ")
		if !ok {
			panic("bad module: " + l)
		}
		m := &pulseModule{outputs: strings.Split(outs, ", ")}
		switch {
		case name == "broadcaster":
			m.kind = 'b'
		case name[0] == '%' || name[0] == '&':
			m.kind = name[0]
			name = name[1:]
		default:
			panic("bad module: " + l)
		}
		n.modules[name] = m
	}
	for name, m := range n.modules {
		for _, o := range m.outputs {
			if dst, ok := n.modules[o]; ok && dst.kind == '&' {
				if dst.memory == nil {
					dst.memory = map[string]bool{}
				}
				dst.memory[name] = false
			}
		}
	}
	return n
}

// inputs returns the modules that send to name, sorted.
func (n *pulseNetwork) inputs(name string) []string {
	var in []string
	for from, m := range n.modules {
		if slices.Contains(m.outputs, name) {
			in = append(in, from)
		}
	}
	slices.Sort(in)
	return in
}

// press pushes the button once and returns the number of low and high
// pulses sent. observe, if not nil, sees every pulse.
func (n *pulseNetwork) press(observe func(pulse)) (low, high int) {
	q := aoc.NewQueue(pulse{from: "button", to: "broadcaster"})
	q.While(func(p pulse) bool {
		if p.high {
			high++
		} else {
			low++
		}
		if observe != nil {
			observe(p)
		}
		m, ok := n.modules[p.to]
		if !ok {
			return true // untyped sink such as output or rx
		}
		send := func(high bool) {
			for _, o := range m.outputs {
				q.Push(pulse{from: p.to, to: o, high: high})
			}
		}
		switch m.kind {
		case 'b':
			send(p.high)
		case '%':
			if !p.high {
				m.on = !m.on
				send(m.on)
			}
		case '&':
			m.memory[p.from] = p.high
			all := true
			for _, h := range m.memory {
				all = all && h
			}
			send(!all)
		}
		return true
	})
	return low, high
}

/*
want=32000000

broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
*/
func (s solver) D20p1() any {
	n := parsePulseNetwork(s.Lines())
	low, high := 0, 0
	for range 1000 {
		l, h := n.press(nil)
		low += l
		high += h
	}
	return low * high
}

// D20p2 relies on the shape of the puzzle input: rx is fed by a single
// conjunction whose inputs each send a high pulse on a fixed cycle, so rx
// first gets a low pulse when all of those cycles line up.
func (s solver) D20p2() any {
	n := parsePulseNetwork(s.Lines())
	feeders := n.inputs("rx")
	if len(feeders) != 1 || n.modules[feeders[0]].kind != '&' {
		panic(fmt.Sprintf("rx is fed by %v; want one conjunction", feeders))
	}
	hub := feeders[0]
	first := map[string]int{}
	for _, in := range n.inputs(hub) {
		first[in] = 0
	}
	for presses := 1; ; presses++ {
		n.press(func(p pulse) {
			if p.to == hub && p.high && first[p.from] == 0 {
				first[p.from] = presses
			}
		})
		var cycles []int
		for _, c := range first {
			if c == 0 {
				break
			}
			cycles = append(cycles, c)
		}
		if len(cycles) == len(first) {
			s.Debugf("%s inputs first fire at %v", hub, first)
			return aoc.LCM(cycles...)
		}
	}
}
