package generate_test

// stubSource replays scripted values. Float consumes fractions u and
// returns lo+(hi-lo)*u. Int, Choice and Sample return scripted values
// as is. Exhausted scripts fall back to the lowest possible result.
type stubSource struct {
	us      []float64
	ints    []int
	choices []int
	samples [][]int
}

func (s *stubSource) Float(lo, hi float64) float64 {
	var u float64
	if len(s.us) > 0 {
		u, s.us = s.us[0], s.us[1:]
	}
	return lo + (hi-lo)*u
}

func (s *stubSource) Int(lo, _ int) int {
	if len(s.ints) == 0 {
		return lo
	}
	res := s.ints[0]
	s.ints = s.ints[1:]
	return res
}

func (s *stubSource) Choice(int) int {
	if len(s.choices) == 0 {
		return 0
	}
	res := s.choices[0]
	s.choices = s.choices[1:]
	return res
}

func (s *stubSource) Sample(_, k int) []int {
	if len(s.samples) > 0 {
		res := s.samples[0]
		s.samples = s.samples[1:]
		return res
	}
	res := make([]int, k)
	for i := range res {
		res[i] = i
	}
	return res
}
