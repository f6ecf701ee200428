package mcdm

import (
	"sort"
	"strings"

	"github.com/SultanDF/exam-dss/pkg/core/model"
)

// Scoring method names understood by the engine
const (
	MethodSAW    = "saw"
	MethodTOPSIS = "topsis"
)

type scoreFunc func(matrix [][]float64, criteria []model.Criterion, weights []float64) []float64

// Engine scores decision matrices with a pluggable MCDM method. It is
// immutable after construction and safe for concurrent use.
type Engine struct {
	methods map[string]scoreFunc
}

// NewEngine returns an engine with the SAW and TOPSIS methods registered.
func NewEngine() *Engine {
	return &Engine{
		methods: map[string]scoreFunc{
			MethodSAW:    sawScores,
			MethodTOPSIS: topsisScores,
		},
	}
}

// Methods returns the registered method names in sorted order.
func (e *Engine) Methods() []string {
	names := make([]string, 0, len(e.methods))
	for name := range e.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Supports reports whether the engine recognizes the method name.
// Matching is case-insensitive.
func (e *Engine) Supports(method string) bool {
	_, ok := e.methods[strings.ToLower(method)]
	return ok
}

// Evaluate scores every row of the decision matrix with the named method
// (case-insensitive). Criterion weights are renormalized to sum to 1
// regardless of the scale they were supplied in, and the resolved weights
// are returned keyed by criterion name. Scores lie in [0,1]; higher is
// better for every method.
func (e *Engine) Evaluate(matrix [][]float64, criteria []model.Criterion, method string) ([]float64, map[string]float64, error) {
	score, ok := e.methods[strings.ToLower(method)]
	if !ok {
		return nil, nil, &UnsupportedMethodError{Method: method, Supported: e.Methods()}
	}
	if err := validateDecision(matrix, criteria); err != nil {
		return nil, nil, err
	}
	weights, err := resolveWeights(criteria)
	if err != nil {
		return nil, nil, err
	}

	resolved := make(map[string]float64, len(criteria))
	for i, c := range criteria {
		resolved[c.Name] = weights[i]
	}
	return score(matrix, criteria, weights), resolved, nil
}

// Rank returns alternative indices ordered by score descending. Equal
// scores keep the lower index first, so rankings are deterministic.
func (e *Engine) Rank(scores []float64) []int {
	indices := make([]int, len(scores))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})
	return indices
}
