package byteops

import (
	"fmt"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkArray verifies the fixed-width implementation for A against the slice
// implementation and a byte loop.
func checkArray[A Array](t *testing.T, r *rand.Rand) {
	t.Helper()

	var zero A
	n := int(unsafe.Sizeof(zero))
	t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
		for _, b := range []byte{0x00, 0x2A, 0x80, 0xFF} {
			a := Splat[A](b)
			s := arrayBytes(&a)
			require.Len(t, s, n)
			for _, c := range s {
				require.Equal(t, b, c)
			}

			require.True(t, IsArray(&a, b))
			require.True(t, ContainsArray(&a, b))
			require.False(t, IsArray(&a, ^b))
			require.False(t, ContainsArray(&a, ^b))
			require.Equal(t, b == 0, IsZeroArray(&a))
			require.Equal(t, b == 0, ContainsZeroArray(&a))

			// Plant the complement at the first, a random and the last position.
			for _, pos := range []int{0, r.Intn(n), n - 1} {
				s[pos] = ^b
				require.False(t, IsArray(&a, b), "pos=%d", pos)
				require.True(t, ContainsArray(&a, ^b), "pos=%d", pos)
				require.Equal(t, Is(s, b), IsArray(&a, b))
				require.Equal(t, Contains(s, ^b), ContainsArray(&a, ^b))
				s[pos] = b
			}
		}

		for iter := 0; iter < 10; iter++ {
			var a A
			s := arrayBytes(&a)
			_, _ = r.Read(s)
			b := s[r.Intn(n)]
			if iter%2 == 1 {
				b = byte(r.Intn(256))
			}

			require.Equal(t, naiveIs(s, b), IsArray(&a, b))
			require.Equal(t, naiveContains(s, b), ContainsArray(&a, b))
			require.Equal(t, Is(s, b), IsArray(&a, b), "fixed and slice must agree")
			require.Equal(t, Contains(s, b), ContainsArray(&a, b), "fixed and slice must agree")
			require.Equal(t, IsZero(s), IsZeroArray(&a))
			require.Equal(t, ContainsZero(s), ContainsZeroArray(&a))

			v := View(&a)
			require.Equal(t, IsArray(&a, b), v.Is(b))
			require.Equal(t, ContainsArray(&a, b), v.Contains(b))
			require.Equal(t, IsZeroArray(&a), v.IsZero())
			require.Equal(t, ContainsZeroArray(&a), v.ContainsZero())
		}
	})
}

func TestArrays(t *testing.T) {
	r := rand.New(rand.NewSource(9))

	checkArray[[2]byte](t, r)
	checkArray[[4]byte](t, r)
	checkArray[[8]byte](t, r)

	checkArray[[16]byte](t, r)
	checkArray[[32]byte](t, r)
	checkArray[[64]byte](t, r)

	checkArray[[128]byte](t, r)
	checkArray[[192]byte](t, r)
	checkArray[[256]byte](t, r)
	checkArray[[320]byte](t, r)
	checkArray[[384]byte](t, r)
	checkArray[[448]byte](t, r)

	checkArray[[512]byte](t, r)
	checkArray[[768]byte](t, r)
	checkArray[[1024]byte](t, r)
	checkArray[[1280]byte](t, r)
	checkArray[[1536]byte](t, r)
	checkArray[[1792]byte](t, r)

	checkArray[[2048]byte](t, r)
	checkArray[[3072]byte](t, r)
	checkArray[[4096]byte](t, r)
	checkArray[[5120]byte](t, r)
	checkArray[[6144]byte](t, r)
	checkArray[[7168]byte](t, r)
}

type digest [32]byte

func TestArray_NamedType(t *testing.T) {
	var d digest
	assert.True(t, IsZeroArray(&d))
	d[31] = 1
	assert.False(t, IsZeroArray(&d))
	assert.True(t, ContainsZeroArray(&d))
	assert.True(t, ContainsArray(&d, 1))

	d = Splat[digest](7)
	assert.True(t, IsArray(&d, 7))
}

func TestView_ReadsThrough(t *testing.T) {
	var a [16]byte
	v := View(&a)
	assert.True(t, v.IsZero())
	a[3] = 9
	assert.False(t, v.IsZero())
	assert.True(t, v.Contains(9))
}
