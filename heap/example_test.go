package heap_test

import (
	"fmt"

	"github.com/dhstar/dhstar/heap"
)

func ExampleRadixHeap() {
	h, _ := heap.NewRadixHeap(3, 10)
	_ = h.Insert(0, 5)
	_ = h.Insert(1, 1)
	_ = h.Insert(2, 3)

	for h.Len() > 0 {
		item, _ := h.DeleteMin()
		fmt.Println(item)
	}
	// Output:
	// 1
	// 2
	// 0
}

func ExampleFibHeap() {
	h, _ := heap.NewFibHeap(3)
	_ = h.Insert(0, 5)
	_ = h.Insert(1, 1)
	_ = h.Insert(2, 3)
	_ = h.DecreaseKey(0, 0)

	for h.Len() > 0 {
		item, _ := h.DeleteMin()
		fmt.Println(item)
	}
	// Output:
	// 0
	// 1
	// 2
}
