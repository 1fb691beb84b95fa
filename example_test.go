package byteops_test

import (
	"fmt"

	"github.com/hupe1980/byteops"
)

func Example() {
	buf := []byte("key=value\x00")

	fmt.Println(byteops.ContainsZero(buf))
	fmt.Println(byteops.Contains(buf, '='))
	fmt.Println(byteops.Is(buf, 'k'))
	fmt.Println(byteops.Is(nil, 0))
	// Output:
	// true
	// true
	// false
	// false
}

func ExampleIsZeroArray() {
	var page [4096]byte
	fmt.Println(byteops.IsZeroArray(&page))

	page[100] = 1
	fmt.Println(byteops.IsZeroArray(&page))
	// Output:
	// true
	// false
}

func ExampleSplat() {
	block := byteops.Splat[[16]byte](0xFF)
	fmt.Println(byteops.IsArray(&block, 0xFF))
	// Output: true
}

func ExampleSplatWord() {
	fmt.Printf("%#x\n", byteops.SplatWord[uint32](0xAB))
	// Output: 0xabababab
}

func ExampleNewScanner() {
	s := byteops.NewScanner(byteops.WithBatch(byteops.BatchWord))
	fmt.Println(s.Batch())
	fmt.Println(s.Contains([]byte{1, 2, 3}, 2))
	// Output:
	// word
	// true
}

func ExampleBytes() {
	shapes := []byteops.Bytes{
		byteops.Byte(0),
		byteops.Word32(0x01020304),
		byteops.Slice{9, 9, 9},
		byteops.View(&[8]byte{}),
	}
	for _, s := range shapes {
		fmt.Println(s.ContainsZero(), s.Is(9))
	}
	// Output:
	// true false
	// false false
	// false true
	// true false
}
