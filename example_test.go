package spsc_test

import (
	"fmt"

	"github.com/veloxq/spsc"
)

// Example_pushPop mirrors the walkthrough at the top of the rtrb crate's
// documentation: push until full, then drain.
func Example_pushPop() {
	q := spsc.New[int](2)
	p, c := q.Split()
	defer p.Close()
	defer c.Close()

	fmt.Println(p.Push(10))
	fmt.Println(p.Push(20))
	err := p.Push(30)
	fmt.Println(err)

	fmt.Println(c.Pop())
	fmt.Println(c.Pop())

	// Output:
	// <nil>
	// <nil>
	// full ring buffer
	// 10 <nil>
	// 20 <nil>
}

// Example_writeChunk walks through requesting a chunk that wraps across
// the end of the backing slice, writing into both halves, and committing.
func Example_writeChunk() {
	q := spsc.New[int](3)
	p, c := q.Split()
	defer p.Close()
	defer c.Close()

	p.Push(10)
	c.Pop()

	chunk, _ := p.WriteChunk(3)
	first, second := chunk.First(), chunk.Second()
	fmt.Println(len(first), len(second))
	first[0], first[1] = 20, 30
	second[0] = 40
	chunk.CommitAll()

	for range 3 {
		v, _ := c.Pop()
		fmt.Println(v)
	}

	// Output:
	// 2 1
	// 20
	// 30
	// 40
}

// Example_peekIdempotent supplements the core rtrb surface: calling Peek
// twice in a row returns the same element both times, since Peek never
// advances the read index.
func Example_peekIdempotent() {
	q := spsc.New[string](1)
	p, c := q.Split()
	defer p.Close()
	defer c.Close()

	p.Push("hello")

	v1, _ := c.Peek()
	v2, _ := c.Peek()
	fmt.Println(*v1, *v2)

	v3, _ := c.Pop()
	fmt.Println(v3)

	// Output:
	// hello hello
	// hello
}
