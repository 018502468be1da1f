package clique_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lanmesh/clique"
	"github.com/katalvlaran/lanmesh/edgelist"
)

// ExampleMax finds the password of a LAN party: the fully meshed group of
// machines, printed as the sorted comma-joined member list.
func ExampleMax() {
	in := strings.NewReader(`
		ka-co
		ta-co
		de-co
		ta-ka
		de-ta
		ka-de
		co-aq
		aq-yn
	`)
	g, err := edgelist.Parse(in)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := clique.Max(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	fmt.Println(res.Size())
	// Output:
	// co,de,ka,ta
	// 4
}

// ExampleWithOnImprove watches the incumbent grow as the search tightens
// its bound.
func ExampleWithOnImprove() {
	g, _ := edgelist.ParseLines([]string{"a-b", "b-c", "a-c", "c-d"})

	res, _ := clique.Max(g, clique.WithOnImprove(func(members []string) {
		fmt.Println("incumbent:", members)
	}))
	fmt.Println("final:", res)
	// Output:
	// incumbent: [c d]
	// incumbent: [a b c]
	// final: a,b,c
}
