package projector

import "fmt"

// Rate is a multiplicative growth factor per period: 1.04 is +4% a period,
// 1 is no growth.
type Rate float64

// Percent returns the rate as a percentage change, 4 for 1.04.
func (r Rate) Percent() float64 { return (float64(r) - 1) * 100 }

func (r Rate) String() string {
	return fmt.Sprintf("%.2f%%", r.Percent())
}

// SignedString returns the percentage change with an explicit sign, and "-"
// for no change.
func (r Rate) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", r.Percent())
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}

// Percent is a plain percentage, like a tax rate: 0.24 prints as 24.00%.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p)*100)
}
