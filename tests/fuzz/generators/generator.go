package generators

import (
	"fmt"
	"math/rand"
	"strings"
)

// RandomSource abstracts the source of randomness.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// RandSource wraps math/rand.
type RandSource struct {
	*rand.Rand
}

// ByteSource uses a byte slice as a source of randomness.
// An exhausted source always answers 0, which selects the smallest production.
type ByteSource struct {
	data []byte
	pos  int
}

func (s *ByteSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}

func (s *ByteSource) Float64() float64 {
	if s.pos >= len(s.data) {
		return 0.0
	}
	v := int(s.data[s.pos])
	s.pos++
	return float64(v) / 255.0
}

// Generator generates random affine lambda terms: every bound variable is
// referenced at most once, so evaluation of a generated term always halts.
// Builtin globals may be referenced any number of times.
type Generator struct {
	src   RandomSource
	depth int
	fresh int
	// bound variables not referenced yet
	unused []string
}

const MaxDepth = 8

// Globals lists the builtin names generated terms may reference freely.
var Globals = []string{"null", "true", "false", "dump", "new", "Object", "Exception", "VarNotFound"}

func New(seed int64) *Generator {
	return &Generator{src: &RandSource{rand.New(rand.NewSource(seed))}}
}

func NewFromData(data []byte) *Generator {
	return &Generator{src: &ByteSource{data: data}}
}

// Intn exposes the random source's Intn method for embedded structs.
func (g *Generator) Intn(n int) int {
	return g.src.Intn(n)
}

// GenerateProgram returns a term surrounded by whitespace and comments.
func (g *Generator) GenerateProgram() string {
	g.fresh, g.unused = 0, nil
	return g.GenerateNoise() + g.GenerateTerm() + g.GenerateNoise()
}

// GenerateTerm returns one term. Calls and lambdas get rarer with depth.
func (g *Generator) GenerateTerm() string {
	if g.depth >= MaxDepth {
		return g.GenerateAtom()
	}
	g.depth++
	defer func() { g.depth-- }()

	switch g.src.Intn(6) {
	case 0, 1:
		return g.GenerateAtom()
	case 2, 3:
		return g.GenerateLambda()
	default:
		return g.GenerateCall()
	}
}

// GenerateAtom returns a variable reference: an unused bound variable when
// one is available, otherwise a global.
func (g *Generator) GenerateAtom() string {
	if n := len(g.unused); n > 0 && g.src.Intn(3) != 0 {
		i := g.src.Intn(n)
		name := g.unused[i]
		g.unused = append(g.unused[:i], g.unused[i+1:]...)
		return name
	}
	return Globals[g.src.Intn(len(Globals))]
}

func (g *Generator) GenerateLambda() string {
	name := fmt.Sprintf("x%d", g.fresh)
	g.fresh++
	g.unused = append(g.unused, name)
	body := g.GenerateTerm()
	g.release(name)

	binder := `\`
	if g.src.Intn(4) == 0 {
		binder = "λ"
	}
	return binder + name + "." + g.space() + body
}

func (g *Generator) GenerateCall() string {
	callee := g.operand()
	return callee + g.separator() + g.operand()
}

// operand returns a term that can stand in a call without changing how
// the call parses.
func (g *Generator) operand() string {
	t := g.GenerateTerm()
	if strings.ContainsAny(t, ` \λ`) || strings.Contains(t, "\n") {
		return "(" + t + ")"
	}
	return t
}

// release drops name from the unused set once its scope ends.
func (g *Generator) release(name string) {
	for i, n := range g.unused {
		if n == name {
			g.unused = append(g.unused[:i], g.unused[i+1:]...)
			return
		}
	}
}

func (g *Generator) space() string {
	if g.src.Intn(2) == 0 {
		return ""
	}
	return " "
}

func (g *Generator) separator() string {
	if g.src.Intn(8) == 0 {
		return "\n  "
	}
	return " "
}

func (g *Generator) GenerateNoise() string {
	// 10% chance to generate noise
	if g.src.Intn(10) != 0 {
		return ""
	}

	var sb strings.Builder
	count := g.src.Intn(3) + 1
	for i := 0; i < count; i++ {
		switch g.src.Intn(4) {
		case 0:
			sb.WriteString(" ")
		case 1:
			sb.WriteString("\t")
		case 2:
			sb.WriteString("\n")
		case 3:
			sb.WriteString("# noise\n")
		}
	}
	return sb.String()
}
