/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command gorsplot draws samples from a triangular density under a
// flat proposal on (0, 1) and writes a histogram of the result next to
// the two density curves.
package main

import (
	"flag"
	"math"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/plot/vg"

	"github.com/gors-project/gors/data"
	"github.com/gors-project/gors/sample"
	"github.com/gors-project/gors/viz"
)

var (
	zapLogger, _ = zap.NewProduction()
	log          = zapLogger.Sugar()
)

// triangular is the unnormalized triangular density on (0, 1) with its
// peak at 0.5, dominated by the flat unit proposal.
func triangular(x float64) float64 {
	if x < 0.5 {
		return math.Log(2 * x)
	}
	return math.Log(2 - 2*x)
}

func main() {
	n := flag.Int("n", 10000, "number of samples to draw")
	seed := flag.Uint64("seed", 42, "seed for the shared generator")
	out := flag.String("out", "hist.png", "output PNG path")
	flag.Parse()
	defer zapLogger.Sync()

	rng := rand.New(rand.NewSource(*seed))
	s := sample.NewRejection(
		rng.Float64,
		func(x float64) float64 { return 0 },
		triangular,
		sample.WithRand(rng),
	)

	vec, err := s.SampleSeed(*n, *seed)
	if err != nil {
		log.Fatalw("sampling failed", "error", err)
	}

	v := data.NewVector(vec)
	min, max := v.MinMax()
	log.Infow("sampled",
		"n", len(vec),
		"mean", v.Mean(),
		"stddev", v.StdDev(),
		"min", min,
		"max", max,
	)

	p, err := viz.Hist(s, 0, 1, 1.2)
	if err != nil {
		log.Fatalw("plotting failed", "error", err)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, *out); err != nil {
		log.Fatalw("rendering failed", "error", err)
	}

	log.Infow("wrote histogram", "path", *out)
}
