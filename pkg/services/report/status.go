package report

import (
	"fmt"
	"math"

	"github.com/edu-tools/mentor-dashboard/pkg/models/domain"
)

// Classify maps actual weekly hours against the expected target. Bands are
// evaluated in precedence order; the boundaries at exactly 70% and 115% fall
// on the milder side. Without a positive expectation no ratio exists and the
// status is the neutral "Normal".
func Classify(actualHours, expectedHours float64) domain.HoursStatus {
	if expectedHours <= 0 {
		return domain.HoursStatus{Tier: domain.TierNeutral, Label: "Normal"}
	}

	pct := actualHours / expectedHours * 100
	rounded := int(math.Round(pct))

	switch {
	case pct < 70:
		return domain.HoursStatus{
			Tier:  domain.TierSignificantlyOff,
			Label: fmt.Sprintf("Significantly Below Expected (%d%%)", rounded),
		}
	case pct < 85:
		return domain.HoursStatus{
			Tier:  domain.TierOffTarget,
			Label: fmt.Sprintf("Below Expected (%d%%)", rounded),
		}
	case pct > 130:
		return domain.HoursStatus{
			Tier:  domain.TierSignificantlyOff,
			Label: fmt.Sprintf("Significantly Above Expected (%d%%)", rounded),
		}
	case pct > 115:
		return domain.HoursStatus{
			Tier:  domain.TierOffTarget,
			Label: fmt.Sprintf("Above Expected (%d%%)", rounded),
		}
	default:
		return domain.HoursStatus{
			Tier:  domain.TierOnTarget,
			Label: fmt.Sprintf("Meeting Expectations (%d%%)", rounded),
		}
	}
}
