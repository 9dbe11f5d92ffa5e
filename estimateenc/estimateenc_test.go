// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package estimateenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, v := range []float64{0, 1, -1, 3.14159, 1e18, -2.5e-10} {
		require.Equal(v, Decode(Encode(v)))
	}
}

func TestEncodeIsLittleEndian(t *testing.T) {
	require := require.New(t)

	// 1.0 as IEEE-754 double is 0x3FF0000000000000; little-endian
	// byte order puts the zero bytes first.
	encoded := Encode(1.0)
	require.Equal([8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f}, encoded)
}
