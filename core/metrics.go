package core

import "expvar"

// Stats separates rejected business preconditions from system faults;
// a spike in Faults means something is broken, a spike in Rejections does not.
var Stats = struct {
	Rejections *expvar.Int
	Faults     *expvar.Int
}{
	Rejections: expvar.NewInt("school.rejections"),
	Faults:     expvar.NewInt("school.faults"),
}
