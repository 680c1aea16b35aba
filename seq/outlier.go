package seq

import (
	"fmt"
	"math"

	"github.com/arloliu/chainstat/errs"
)

// OutlierFactor scales the IQR into the outlier distance limit.
const OutlierFactor = 1.5

// OutlierThreshold returns the median of the sequence and the distance limit
// OutlierFactor × IQR. A value is an outlier when its absolute distance from
// the median exceeds limit.
//
// The rule measures distance from the median, not from the quartiles, so it
// differs from Tukey's fences whenever the median is not centred between Q1
// and Q3. See TukeyFences for the classical bounds.
func (s *Numbers) OutlierThreshold() (median, limit float64, err error) {
	if len(s.values) == 0 {
		return 0, 0, fmt.Errorf("outlier threshold: %w", errs.ErrEmptySequence)
	}

	sorted, release := s.sortedScratch()
	defer release()

	iqr, err := interquartileRange(sorted)
	if err != nil {
		return 0, 0, fmt.Errorf("outlier threshold: %w", err)
	}

	return medianOfSorted(sorted), OutlierFactor * iqr, nil
}

// FindOutliers returns, in their original order, the elements farther than
// OutlierFactor × IQR from the median.
func (s *Numbers) FindOutliers() (*Numbers, error) {
	return s.partitionOutliers(true)
}

// RemoveOutliers returns, in their original order, the elements that
// FindOutliers does not select.
func (s *Numbers) RemoveOutliers() (*Numbers, error) {
	return s.partitionOutliers(false)
}

// TestOutlier reports whether v would be an outlier of the current data. The
// median and IQR come from the existing elements; v is not added.
func (s *Numbers) TestOutlier(v float64) (bool, error) {
	median, limit, err := s.OutlierThreshold()
	if err != nil {
		return false, err
	}

	return math.Abs(v-median) > limit, nil
}

// TukeyFences returns the classical bounds Q1 - 1.5·IQR and Q3 + 1.5·IQR.
func (s *Numbers) TukeyFences() (low, high float64, err error) {
	sorted, release := s.sortedScratch()
	defer release()

	q1, err := lowerQuartile(sorted)
	if err != nil {
		return 0, 0, err
	}
	q3, err := upperQuartile(sorted)
	if err != nil {
		return 0, 0, err
	}
	iqr := q3 - q1

	return q1 - OutlierFactor*iqr, q3 + OutlierFactor*iqr, nil
}

func (s *Numbers) partitionOutliers(keepOutliers bool) (*Numbers, error) {
	median, limit, err := s.OutlierThreshold()
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(s.values))
	for _, v := range s.values {
		if (math.Abs(v-median) > limit) == keepOutliers {
			out = append(out, v)
		}
	}

	return &Numbers{values: out}, nil
}
