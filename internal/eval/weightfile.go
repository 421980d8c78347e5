package eval

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// header identifies a weight file's layout by its first line.
type header string

const (
	headerV3 header = "# 64+1+2-4-1" // legacy H=4, up-converted to H=8 on load
	headerV4 header = "# 64+1+2-8-1" // canonical H=8
)

func sizeForHeader(h header) (int, error) {
	switch h {
	case headerV3:
		return (NCells+1+2+1)*4 + 4 + 1, nil
	case headerV4:
		return NWeights, nil
	default:
		return 0, fmt.Errorf("eval: unrecognized weight header %q", h)
	}
}

// Load reads a network from path. The special path "RANDOM" returns a
// freshly Glorot-initialized network instead of reading a file.
func Load(path string) (*Network, error) {
	if path == "RANDOM" {
		n := New()
		n.Init(rand.New(rand.NewSource(1)))
		return n, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("eval: open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var h header
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			if h == "" {
				h = header(line)
			}
			continue
		}
		return parseBody(h, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("eval: read %s: %w", path, err)
	}
	return nil, fmt.Errorf("eval: %s has no weight row", path)
}

func parseBody(h header, line string) (*Network, error) {
	want, err := sizeForHeader(h)
	if err != nil {
		return nil, err
	}
	fields := strings.Split(line, ",")
	if len(fields) != want {
		return nil, fmt.Errorf("eval: weight row has %d values, want %d for %s", len(fields), want, h)
	}
	raw := make([]float32, want)
	for i, s := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
		if err != nil {
			return nil, fmt.Errorf("eval: weight[%d]=%q: %w", i, s, err)
		}
		raw[i] = float32(v)
	}

	n := New()
	switch h {
	case headerV4:
		copy(n.Weight[:], raw)
	case headerV3:
		upconvertV3(n, raw)
	}
	return n, nil
}

// upconvertV3 widens a legacy H=4 weight table into the canonical
// H=8 layout. Both formats share the same block structure (all
// hidden units' cell weights, then all tebans, then all fixed-stone
// weights, then all biases, then the output weights and bias); v3
// simply has 4 of each instead of 8. The 4 new hidden units are left
// zeroed, so they contribute nothing until retrained.
func upconvertV3(n *Network, v3 []float32) {
	const h3 = 4
	cellV3 := v3[0 : h3*NCells]
	tebanV3 := v3[h3*NCells : h3*NCells+h3]
	fixedV3 := v3[h3*NCells+h3 : h3*NCells+h3+2*h3]
	biasV3 := v3[h3*NCells+h3+2*h3 : h3*NCells+2*h3+2*h3]
	outV3 := v3[h3*NCells+4*h3 : h3*NCells+5*h3]
	outBiasV3 := v3[h3*NCells+5*h3]

	for i := 0; i < h3; i++ {
		copy(n.Weight[offCell+i*NCells:offCell+(i+1)*NCells], cellV3[i*NCells:(i+1)*NCells])
		n.Weight[offTeban+i] = tebanV3[i]
		n.Weight[offFixed+i] = fixedV3[i]
		n.Weight[offFixed+NHidden+i] = fixedV3[h3+i]
		n.Weight[offBias+i] = biasV3[i]
		n.Weight[offHid+i] = outV3[i]
	}
	n.Weight[offOut] = outBiasV3
}

// Save writes n to path in the canonical v4 format.
func Save(path string, n *Network) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("eval: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, string(headerV4))
	parts := make([]string, len(n.Weight))
	for i, v := range n.Weight {
		parts[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	fmt.Fprint(w, strings.Join(parts, ","))
	return w.Flush()
}
