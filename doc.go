// Package zerosum is a small collection of sum-search algorithms over
// integer slices.
//
// Subpackages:
//
//	threesum/ — unique triplets summing to zero (or a target), sort + two-pointer scan
//	examples/ — runnable demonstration program
//
// Quick example:
//
//	threesum.Find([]int{-2, 0, 0, 2, 2, 2}) // [(-2,0,2)]
//
//	go get github.com/katalvlaran/zerosum/threesum
package zerosum
