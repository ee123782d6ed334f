package usecase

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"alba-sim/internal/core/port"
)

// SampleSizePerGroup computes the required per-group sample size for a
// two-proportion test detecting an absolute lift of mde over the baseline
// rate, using Cohen's arcsine effect size and the normal approximation.
func SampleSizePerGroup(req port.SampleSizeReq) (float64, error) {
	switch {
	case req.Baseline <= 0 || req.Baseline >= 1:
		return 0, fmt.Errorf("sample_size.baseline: rate %g outside (0,1)", req.Baseline)
	case req.MDE <= 0 || req.Baseline+req.MDE >= 1:
		return 0, fmt.Errorf("sample_size.mde: lift %g leaves target rate outside (0,1)", req.MDE)
	case req.Alpha <= 0 || req.Alpha >= 1:
		return 0, fmt.Errorf("sample_size.alpha: significance level %g outside (0,1)", req.Alpha)
	case req.Power <= 0 || req.Power >= 1:
		return 0, fmt.Errorf("sample_size.power: power %g outside (0,1)", req.Power)
	}

	target := req.Baseline + req.MDE
	h := 2*math.Asin(math.Sqrt(target)) - 2*math.Asin(math.Sqrt(req.Baseline))
	z := distuv.UnitNormal.Quantile(1-req.Alpha/2) + distuv.UnitNormal.Quantile(req.Power)
	return (z * z) / (h * h), nil
}

// SampleSize wraps SampleSizePerGroup into the response DTO, rounding up
// to whole participants.
func SampleSize(req port.SampleSizeReq) (port.SampleSizeResp, error) {
	n, err := SampleSizePerGroup(req)
	if err != nil {
		return port.SampleSizeResp{}, err
	}
	perGroup := int(math.Ceil(n))
	return port.SampleSizeResp{
		Baseline:   req.Baseline,
		TargetRate: req.Baseline + req.MDE,
		Alpha:      req.Alpha,
		Power:      req.Power,
		PerGroup:   perGroup,
		Total:      perGroup * 2,
	}, nil
}
