package density

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/blake2b"
)

// TableName identifies the compiled-in coefficient set.
const TableName = "OIML R 22 (1975)"

// coeffA holds the density at 20 °C as a polynomial in mass fraction,
// A[k] multiplying p^k, in kg/m³.
var coeffA = [12]float64{
	9.982012300e2,
	-1.929769495e2,
	3.891238958e2,
	-1.668103923e3,
	1.352215441e4,
	-8.829278388e4,
	3.062874042e5,
	-6.138381234e5,
	7.470172998e5,
	-5.478461354e5,
	2.234460334e5,
	-3.903285426e4,
}

// coeffB is the pure-water temperature term, B[k] multiplying Δt^(k+1).
var coeffB = [6]float64{
	-2.0618513e-1,
	-5.2682542e-3,
	3.6130013e-5,
	-3.8957702e-7,
	7.1693540e-9,
	-9.9739231e-11,
}

// coeffC holds the cross terms. Row i multiplies Δt^(i+1); entry k in a row
// multiplies p^(k+1).
var coeffC = [5][]float64{
	{
		1.693443461530087e-1,
		-1.046914743455169e1,
		7.196353469546523e1,
		-7.047478054272792e2,
		3.924090430035045e3,
		-1.210164659068747e4,
		2.248646550400788e4,
		-2.605562982188164e4,
		1.852373922069467e4,
		-7.420201433430137e3,
		1.285617841998974e3,
	},
	{
		-1.193013005057010e-2,
		2.517399633803461e-1,
		-2.170575700536993,
		1.353034988843029e1,
		-5.029988758547014e1,
		1.096355666577570e2,
		-1.422753946421155e2,
		1.080435942856230e2,
		-4.414153236817392e1,
		7.442971530188783,
	},
	{
		-6.802995733503803e-4,
		1.876837790289664e-2,
		-2.002561813734156e-1,
		1.022992966719220,
		-2.895696483903638,
		4.810060584300675,
		-4.672147440794683,
		2.458043105903461,
		-5.411227621436812e-1,
	},
	{
		4.075376675622027e-6,
		-8.763058573471110e-6,
		6.515031360099368e-6,
		-1.515784836987210e-6,
	},
	{
		-2.788074354782409e-8,
		1.345612883493354e-8,
	},
}

// Coefficients returns copies of the A, B and C tables.
func Coefficients() (a, b []float64, c [][]float64) {
	a = append([]float64(nil), coeffA[:]...)
	b = append([]float64(nil), coeffB[:]...)
	c = make([][]float64, len(coeffC))
	for i, row := range coeffC {
		c[i] = append([]float64(nil), row...)
	}
	return a, b, c
}

// TableFingerprint returns the hex BLAKE2b-256 digest of the tables, hashed
// as little-endian IEEE-754 bits in A, B, C row order.
func TableFingerprint() string {
	h, _ := blake2b.New256(nil)
	var buf [8]byte
	write := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	for _, v := range coeffA {
		write(v)
	}
	for _, v := range coeffB {
		write(v)
	}
	for _, row := range coeffC {
		for _, v := range row {
			write(v)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
