package mpf

import (
	"math/big"
)

// F2Q returns the rational number with the smallest denominator whose
// relative error with respect to x is at most bound. The candidates are
// the convergents of the continued fraction expansion of x's exact
// value; the first convergent within the bound is returned. A nil bound
// selects 2**(1-prec) where prec is x's precision, i.e. about one unit
// in the last place of x.
//
// An integer result has Denom() == 1. F2Q(±0) is 0/1. The error (of
// class ErrDomain) is non-nil if x is an infinity or NaN, or if bound
// is given but is not a finite positive number.
func (x *Float) F2Q(bound *Float) (*big.Rat, error) {
	if debugFloat {
		x.validate()
	}
	if x.form == inf || x.form == nan {
		return nil, ErrDomain.New("no rational approximation for %s", x)
	}
	if x.form == zero {
		return new(big.Rat), nil
	}

	var eps *big.Rat
	if bound == nil {
		eps = new(big.Rat).SetFrac(natOne, new(big.Int).Lsh(natOne, uint(x.prec-1)))
	} else {
		if bound.form != finite || bound.neg {
			return nil, ErrDomain.New("invalid error bound %s", bound)
		}
		eps, _ = bound.Rat(nil)
	}

	// |x| = num/den exactly
	var num, den big.Int
	x.mant.toInt(&num)
	den.SetInt64(1)
	if e := int64(x.exp) - int64(len(x.mant))*_W; e >= 0 {
		num.Lsh(&num, uint(e))
	} else {
		den.Lsh(&den, uint(-e))
	}
	v := new(big.Rat).SetFrac(&num, &den)
	tol := new(big.Rat).Mul(v, eps)

	// continued fraction expansion; p/q walks the convergents
	pk2, pk1 := big.NewInt(0), big.NewInt(1)
	qk2, qk1 := big.NewInt(1), big.NewInt(0)
	var a, r big.Int
	diff := new(big.Rat)
	for {
		a.QuoRem(&num, &den, &r)
		p := new(big.Int).Add(new(big.Int).Mul(&a, pk1), pk2)
		q := new(big.Int).Add(new(big.Int).Mul(&a, qk1), qk2)

		exact := r.Sign() == 0
		if !exact {
			diff.Abs(diff.Sub(v, diff.SetFrac(p, q)))
		}
		if exact || diff.Cmp(tol) <= 0 {
			res := new(big.Rat).SetFrac(p, q)
			if x.neg {
				res.Neg(res)
			}
			return res, nil
		}

		pk2, pk1 = pk1, p
		qk2, qk1 = qk1, q
		num.Set(&den)
		den.Set(&r)
	}
}
