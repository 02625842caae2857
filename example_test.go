package sievego_test

import (
	"fmt"

	"github.com/hupe1980/sievego"
)

func ExampleSieve() {
	s, err := sievego.New[int](30)
	if err != nil {
		panic(err)
	}

	fmt.Println(s)
	fmt.Println(s.Size())

	p, _ := s.Get(6)
	fmt.Println(p)

	// Output:
	// [2, 3, ..., 23, 29]
	// 10
	// 17
}

func ExampleSieve_ExtendTo() {
	s, err := sievego.New[int](10)
	if err != nil {
		panic(err)
	}

	if err := s.ExtendTo(30); err != nil {
		panic(err)
	}

	next, _ := s.NextPrime(13)
	fmt.Println(next)

	// Output:
	// 17
}

func ExampleSieve_SubList() {
	s, err := sievego.New[int](30)
	if err != nil {
		panic(err)
	}

	w, err := s.SubList(2, 5)
	if err != nil {
		panic(err)
	}

	for p, err := range w.Values() {
		if err != nil {
			break
		}
		fmt.Println(p)
	}

	// Output:
	// 5
	// 7
	// 11
}
