package seq_test

import (
	"fmt"

	"github.com/arloliu/chainstat/seq"
)

func ExampleNumbers_Median() {
	s := seq.Of(12, 19, 4, 1, 2, 5, 8)

	median, _ := s.Median()
	q1, _ := s.Q1()
	q3, _ := s.Q3()

	fmt.Println(median, q1, q3)
	fmt.Println(s)
	// Output:
	// 5 2 12
	// 12,19,4,1,2,5,8
}

func ExampleNumbers_FindOutliers() {
	s := seq.Of(1, 8, 4, 7, 2, -19, 100)

	outliers, _ := s.FindOutliers()
	kept, _ := s.RemoveOutliers()

	fmt.Println(outliers)
	fmt.Println(kept)
	// Output:
	// -19,100
	// 1,8,4,7,2
}

func ExampleRecords_Pluck() {
	points := seq.RecordsOf(seq.Point(5, 50), seq.Point(10, 100))

	xs, _ := points.Pluck(seq.FieldX)
	fmt.Println(xs.Sum())
	// Output: 15
}
