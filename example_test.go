package bytestat_test

import (
	"fmt"
	"log"

	"github.com/arloliu/bytestat"
	"github.com/arloliu/bytestat/ngram"
)

func ExampleNgramDistribution() {
	data := []byte("MZ\x90\x00MZ\x90\x00MZ")

	top, err := bytestat.NgramDistribution(data, 2, 1, ngram.WithTopK(2))
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range top {
		fmt.Printf("%s %d\n", p.Gram, p.Count)
	}
	// Output:
	// 4d5a 3
	// 004d 2
}

func ExampleHumanReadableSize() {
	fmt.Println(bytestat.HumanReadableSize(1023, 0))
	fmt.Println(bytestat.HumanReadableSize(1536, 1))
	fmt.Println(bytestat.HumanReadableSize(3*1024*1024*1024, 2))
	// Output:
	// 1023B
	// 1.5KB
	// 3.00GB
}

func ExampleShannonEntropy() {
	fmt.Printf("%.3f\n", bytestat.ShannonEntropy([]byte("aaab")))
	// Output: 0.811
}
