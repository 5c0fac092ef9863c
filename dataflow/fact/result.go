package fact

// DataflowResult totalizes in/out facts over every node of a CFG at
// solver start (spec.md §3). Keyed by pointer identity, mirroring the
// IR's node identity everywhere else in this module.
type DataflowResult[N comparable, F any] struct {
	in, out map[N]F
}

func NewDataflowResult[N comparable, F any]() *DataflowResult[N, F] {
	return &DataflowResult[N, F]{in: map[N]F{}, out: map[N]F{}}
}

func (r *DataflowResult[N, F]) In(n N) F     { return r.in[n] }
func (r *DataflowResult[N, F]) Out(n N) F    { return r.out[n] }
func (r *DataflowResult[N, F]) SetIn(n N, f F)  { r.in[n] = f }
func (r *DataflowResult[N, F]) SetOut(n N, f F) { r.out[n] = f }
